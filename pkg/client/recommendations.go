package client

import (
	"context"
	"fmt"
	"net/url"
)

// RecommendationService handles recommendation-related API calls
type RecommendationService struct {
	client *Client
}

// GenerateRequest are the trip parameters for a recommendation
type GenerateRequest struct {
	Profile             string  `json:"profile"`
	Destination         string  `json:"destination,omitempty"`
	Budget              float64 `json:"budget"`
	DurationDays        int     `json:"duration_days"`
	EcoPriority         string  `json:"eco_priority,omitempty"`
	TransportPreference string  `json:"transport_preference,omitempty"`
	CarbonPriority      bool    `json:"carbon_priority"`
}

// CarbonRequest are the inputs of the carbon calculator
type CarbonRequest struct {
	Transport  string  `json:"transport"`
	DistanceKm float64 `json:"distance_km"`
}

// CompareRequest asks for a comparison across traveler profiles
type CompareRequest struct {
	Profiles       []string `json:"profiles"`
	Destination    string   `json:"destination,omitempty"`
	Budget         float64  `json:"budget"`
	DurationDays   int      `json:"duration_days"`
	CarbonPriority bool     `json:"carbon_priority"`
}

// Profiles retrieves the static traveler profiles
func (s *RecommendationService) Profiles(ctx context.Context) ([]ProfileEntry, error) {
	var profiles []ProfileEntry
	if err := s.client.doRequest(ctx, "GET", "/api/v1/recommendations/profiles", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Generate builds a recommendation for a traveler profile
func (s *RecommendationService) Generate(ctx context.Context, req GenerateRequest) (*Recommendation, error) {
	var rec Recommendation
	if err := s.client.doRequest(ctx, "POST", "/api/v1/recommendations/generate", req, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Activities retrieves activities ranked for a traveler profile
func (s *RecommendationService) Activities(ctx context.Context, profile string) ([]Entity, error) {
	path := fmt.Sprintf("/api/v1/recommendations/activities/%s", url.PathEscape(profile))

	var activities []Entity
	if err := s.client.doRequest(ctx, "GET", path, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// Accommodations retrieves eco-friendly accommodations for a traveler profile
func (s *RecommendationService) Accommodations(ctx context.Context, profile string) ([]Entity, error) {
	path := fmt.Sprintf("/api/v1/recommendations/accommodations/%s", url.PathEscape(profile))

	var accommodations []Entity
	if err := s.client.doRequest(ctx, "GET", path, nil, &accommodations); err != nil {
		return nil, err
	}
	return accommodations, nil
}

// Transports retrieves transport options with carbon ratings
func (s *RecommendationService) Transports(ctx context.Context, carbonSensitive bool) ([]TransportOption, error) {
	path := "/api/v1/recommendations/transports"
	if carbonSensitive {
		path += "?carbon_sensitive=true"
	}

	var options []TransportOption
	if err := s.client.doRequest(ctx, "GET", path, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// CarbonCalculator computes the footprint of a transport over a distance
func (s *RecommendationService) CarbonCalculator(ctx context.Context, req CarbonRequest) (*TransportCarbon, error) {
	var carbon TransportCarbon
	if err := s.client.doRequest(ctx, "POST", "/api/v1/recommendations/carbon-calculator", req, &carbon); err != nil {
		return nil, err
	}
	return &carbon, nil
}

// Compare ranks recommendations generated for several traveler profiles
func (s *RecommendationService) Compare(ctx context.Context, req CompareRequest) (*Comparison, error) {
	var comparison Comparison
	if err := s.client.doRequest(ctx, "POST", "/api/v1/recommendations/compare", req, &comparison); err != nil {
		return nil, err
	}
	return &comparison, nil
}
