package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/dto"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/services"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/testutil"
)

func newPersonalityHandler(catalog *testutil.MockCatalog) *PersonalityHandler {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	personality := services.NewPersonalityService(services.NewRuleBasedClassifier(), log)
	packages := services.NewPackageService(log)
	return NewPersonalityHandler(personality, packages, catalog, log, validator.New())
}

func TestPersonalityHandler_Questions(t *testing.T) {
	handler := newPersonalityHandler(testutil.NewMockCatalog())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/personality/questions", nil)
	rr := httptest.NewRecorder()

	handler.Questions(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var response struct {
		Data []map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 7 {
		t.Errorf("quiz returned %d questions, want 7", len(response.Data))
	}
}

func TestPersonalityHandler_Analyze(t *testing.T) {
	handler := newPersonalityHandler(testutil.NewMockCatalog())

	tests := []struct {
		name           string
		requestBody    dto.AnalyzeRequest
		expectedStatus int
	}{
		{
			name:           "valid answers",
			requestBody:    dto.AnalyzeRequest{Answers: map[string]string{"1": "relaxation", "2": "high"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no answers",
			requestBody:    dto.AnalyzeRequest{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/personality/analyze", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Analyze(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestPersonalityHandler_GeneratePackage(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.DestinationList = testutil.SampleDestinations()
	catalog.AccommodationList = testutil.SampleAccommodations()
	handler := newPersonalityHandler(catalog)

	body, _ := json.Marshal(dto.PackageRequest{
		Answers: map[string]string{"1": "nature", "2": "high", "4": "medium"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/personality/package", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.GeneratePackage(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var response struct {
		Data struct {
			PackageName  string `json:"package_name"`
			DurationDays int    `json:"duration_days"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.PackageName == "" {
		t.Error("package has no name")
	}
	if response.Data.DurationDays != 5 {
		t.Errorf("package duration = %d, want 5", response.Data.DurationDays)
	}
}

func TestPersonalityHandler_GeneratePackage_StoreDown(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.DestinationsError = errors.New("fuseki unreachable")
	handler := newPersonalityHandler(catalog)

	body, _ := json.Marshal(dto.PackageRequest{
		Answers: map[string]string{"1": "nature"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/personality/package", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.GeneratePackage(rr, req)

	// No destinations means the package generator refuses with 422.
	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, http.StatusUnprocessableEntity, rr.Body.String())
	}
}
