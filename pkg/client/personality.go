package client

import "context"

// PersonalityService handles personality quiz API calls
type PersonalityService struct {
	client *Client
}

// answersRequest wraps quiz answers for the analysis endpoints
type answersRequest struct {
	Answers map[string]string `json:"answers"`
}

// Questions retrieves the personality quiz
func (s *PersonalityService) Questions(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := s.client.doRequest(ctx, "GET", "/api/v1/personality/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Analyze derives a personality profile from quiz answers
func (s *PersonalityService) Analyze(ctx context.Context, answers map[string]string) (*PersonalityProfile, error) {
	var profile PersonalityProfile
	if err := s.client.doRequest(ctx, "POST", "/api/v1/personality/analyze", answersRequest{Answers: answers}, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GeneratePackage builds a full trip package from quiz answers
func (s *PersonalityService) GeneratePackage(ctx context.Context, answers map[string]string) (*TripPackage, error) {
	var pkg TripPackage
	if err := s.client.doRequest(ctx, "POST", "/api/v1/personality/package", answersRequest{Answers: answers}, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}
