package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/profile"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/domain/recommendation"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/testutil"
)

func newRecommendationService(catalog *testutil.MockCatalog) *RecommendationService {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return NewRecommendationService(catalog, log)
}

func TestRecommendationService_ActivitiesForProfile(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.ActivityList = testutil.SampleActivities()
	service := newRecommendationService(catalog)

	activities, err := service.ActivitiesForProfile(context.Background(), profile.ProfileAdventure)
	if err != nil {
		t.Fatalf("ActivitiesForProfile() error = %v", err)
	}

	if len(activities) != 4 {
		t.Fatalf("ActivitiesForProfile() returned %d activities, want 4", len(activities))
	}
	if activities[0].Name != "Randonnée du Zaghouan" || activities[0].MatchScore != 100 {
		t.Errorf("top activity = %v (%v), want Randonnée du Zaghouan (100)", activities[0].Name, activities[0].MatchScore)
	}
	for i := 1; i < len(activities); i++ {
		if activities[i].MatchScore > activities[i-1].MatchScore {
			t.Errorf("activities not sorted descending at index %d", i)
		}
	}
}

func TestRecommendationService_ActivitiesForProfile_StoreFailureDegrades(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.ActivitiesError = errors.New("fuseki unreachable")
	service := newRecommendationService(catalog)

	activities, err := service.ActivitiesForProfile(context.Background(), profile.ProfileCulture)
	if err != nil {
		t.Fatalf("ActivitiesForProfile() error = %v, want degraded nil", err)
	}
	if len(activities) != 0 {
		t.Errorf("ActivitiesForProfile() = %v, want empty on store failure", activities)
	}
}

func TestRecommendationService_AccommodationsForProfile(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.AccommodationList = testutil.SampleAccommodations()
	service := newRecommendationService(catalog)

	accommodations, err := service.AccommodationsForProfile(context.Background(), profile.ProfileFamille)
	if err != nil {
		t.Fatalf("AccommodationsForProfile() error = %v", err)
	}

	// Only the two lodgings at or above 70 survive.
	if len(accommodations) != 2 {
		t.Fatalf("AccommodationsForProfile() returned %d, want the eco subset of 2", len(accommodations))
	}
	for _, acc := range accommodations {
		if acc.SustainabilityScore < 70 {
			t.Errorf("accommodation %v below the eco threshold", acc.Name)
		}
	}
}

func TestRecommendationService_AccommodationsForProfile_FallbackToAll(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.AccommodationList = testutil.SampleAccommodations()
	for i := range catalog.AccommodationList {
		catalog.AccommodationList[i].SustainabilityScore = 40
	}
	service := newRecommendationService(catalog)

	accommodations, err := service.AccommodationsForProfile(context.Background(), profile.ProfileFamille)
	if err != nil {
		t.Fatalf("AccommodationsForProfile() error = %v", err)
	}
	if len(accommodations) != 3 {
		t.Errorf("AccommodationsForProfile() returned %d, want all 3 when none reach the threshold", len(accommodations))
	}
}

func TestRecommendationService_TransportOptions(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.TransportList = testutil.SampleTransports()
	service := newRecommendationService(catalog)

	options, err := service.TransportOptions(context.Background(), false)
	if err != nil {
		t.Fatalf("TransportOptions() error = %v", err)
	}
	if len(options) != 3 {
		t.Fatalf("TransportOptions() returned %d options, want 3", len(options))
	}
	if options[0].Carbon.Score != 100 || options[0].Carbon.Level != recommendation.CarbonLevelLow {
		t.Errorf("train carbon = %+v, want score 100 level Faible", options[0].Carbon)
	}
	if options[2].Carbon.Score != 35 {
		t.Errorf("car carbon score = %v, want 35", options[2].Carbon.Score)
	}
}

func TestRecommendationService_TransportOptions_CarbonSensitiveSort(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	// Deliberately dirtiest-first input order.
	catalog.TransportList = testutil.SampleTransports()
	catalog.TransportList[0], catalog.TransportList[2] = catalog.TransportList[2], catalog.TransportList[0]
	service := newRecommendationService(catalog)

	options, err := service.TransportOptions(context.Background(), true)
	if err != nil {
		t.Fatalf("TransportOptions() error = %v", err)
	}
	for i := 1; i < len(options); i++ {
		if options[i].Carbon.Score > options[i-1].Carbon.Score {
			t.Errorf("options not sorted by carbon score descending at index %d", i)
		}
	}
	if options[len(options)-1].Name != "Voiture de location" {
		t.Errorf("dirtiest option = %v, want Voiture de location last", options[len(options)-1].Name)
	}
}

func TestRecommendationService_GenerateRecommendation(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.ActivityList = testutil.SampleActivities()
	catalog.AccommodationList = testutil.SampleAccommodations()
	catalog.TransportList = testutil.SampleTransports()
	service := newRecommendationService(catalog)

	rec, err := service.GenerateRecommendation(context.Background(), profile.TravelerProfile{
		ProfileID:    profile.ProfileAdventure,
		Budget:       1000,
		DurationDays: 2,
	}, "Zaghouan", false)
	if err != nil {
		t.Fatalf("GenerateRecommendation() error = %v", err)
	}

	if len(rec.Activities) != 2 {
		t.Errorf("selected %d activities, want 2", len(rec.Activities))
	}
	if rec.Accommodation == nil || rec.Accommodation.Name != "Ecolodge Dar Zaghouan" {
		t.Errorf("accommodation = %+v, want Ecolodge Dar Zaghouan", rec.Accommodation)
	}
	if rec.Transport == nil || rec.Transport.Name != "Train Tunis-Sousse" {
		t.Errorf("transport = %+v, want Train Tunis-Sousse", rec.Transport)
	}

	// 0.4*avg(100, 50) + 0.3*92 + 0.3*100
	want := 0.4*75 + 0.3*92 + 0.3*100
	if rec.RecommendationScore != want {
		t.Errorf("recommendation score = %v, want %v", rec.RecommendationScore, want)
	}
	if rec.TotalCarbonKg != 12.5 {
		t.Errorf("total carbon = %v, want 12.5", rec.TotalCarbonKg)
	}
	if len(rec.Reasons) == 0 {
		t.Error("recommendation has no reasons")
	}
}

func TestRecommendationService_GenerateRecommendation_AllStoresDown(t *testing.T) {
	catalog := testutil.NewMockCatalog()
	catalog.ActivitiesError = errors.New("down")
	catalog.AccommodationsError = errors.New("down")
	catalog.TransportsError = errors.New("down")
	service := newRecommendationService(catalog)

	rec, err := service.GenerateRecommendation(context.Background(), profile.TravelerProfile{
		ProfileID:    profile.ProfileCulture,
		DurationDays: 3,
	}, "Tunis", true)
	if err != nil {
		t.Fatalf("GenerateRecommendation() error = %v, want degraded result", err)
	}

	if rec.RecommendationScore != 0 {
		t.Errorf("degraded score = %v, want 0", rec.RecommendationScore)
	}
	if len(rec.Activities) != 0 || rec.Accommodation != nil || rec.Transport != nil {
		t.Error("degraded recommendation should carry no candidates")
	}
	if len(rec.Reasons) == 0 {
		t.Error("degraded recommendation still needs its profile reason")
	}
}

func TestRecommendationService_Compare(t *testing.T) {
	service := newRecommendationService(testutil.NewMockCatalog())

	ecoPkg := &recommendation.Recommendation{
		Profile:             profile.ProfileAdventure,
		RecommendationScore: 87.6,
		TotalCarbonKg:       12.5,
	}
	ecoPkg.Activities = testutil.SampleActivities()[:2]
	ecoPkg.Activities[0].MatchScore = 100
	ecoPkg.Activities[1].MatchScore = 50

	dirtyPkg := &recommendation.Recommendation{
		Profile:             profile.ProfileCulture,
		RecommendationScore: 50,
		TotalCarbonKg:       600,
	}

	got := service.Compare([]*recommendation.Recommendation{ecoPkg, dirtyPkg})

	if len(got.Packages) != 2 {
		t.Fatalf("Compare() rated %d packages, want 2", len(got.Packages))
	}

	if got.Packages[0].EcoScore != 97.5 {
		t.Errorf("eco score = %v, want 97.5", got.Packages[0].EcoScore)
	}
	if got.Packages[0].ExperienceScore != 75 {
		t.Errorf("experience score = %v, want 75", got.Packages[0].ExperienceScore)
	}
	if got.Packages[1].EcoScore != 0 {
		t.Errorf("displayed eco score = %v, want clamped 0", got.Packages[1].EcoScore)
	}

	if got.BestEco == nil || got.BestEco.Profile != profile.ProfileAdventure {
		t.Errorf("best eco = %+v, want the low-carbon package", got.BestEco)
	}
	if got.BestValue == nil || got.BestValue.Profile != profile.ProfileAdventure {
		t.Errorf("best value = %+v, want the high-score package", got.BestValue)
	}
}

func TestRecommendationService_TransportCarbon(t *testing.T) {
	service := newRecommendationService(testutil.NewMockCatalog())

	got := service.TransportCarbon("Avion", 1000)
	if got.TotalCO2Kg != 255 {
		t.Errorf("plane co2 = %v, want 255", got.TotalCO2Kg)
	}
	if len(got.Alternatives) != 1 || got.Alternatives[0].Savings != 214 {
		t.Errorf("train alternative = %+v, want 214 savings", got.Alternatives)
	}
}
