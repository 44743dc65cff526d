package service_test

import (
	"testing"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
)

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	got, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get empty: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil profile before save, got %+v", got)
	}

	p := model.Profile{
		Age: 32, WeightKg: 68.5, HeightCm: 172,
		Gender: "Female", FitnessLevel: "Débutant",
		Goal: "perte de poids", Diet: "végétarien", SessionsPerWeek: 3,
	}
	if err := service.SaveProfile(db, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = service.GetProfile(db)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected stored profile")
	}
	if got.Gender != "female" || got.FitnessLevel != "débutant" {
		t.Fatalf("gender/level must be normalized lowercase, got %+v", got)
	}
	if got.Age != 32 || got.WeightKg != 68.5 || got.SessionsPerWeek != 3 {
		t.Fatalf("unexpected profile values: %+v", got)
	}
}

func TestSaveProfileUpsertsSingleRow(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if err := service.SaveProfile(db, model.Profile{Age: 25, WeightKg: 70, HeightCm: 180, Gender: "male"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := service.SaveProfile(db, model.Profile{Age: 26, WeightKg: 72, HeightCm: 180, Gender: "male"}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Age != 26 || got.WeightKg != 72 {
		t.Fatalf("expected updated values, got %+v", got)
	}
}

func TestSaveProfileRejectsNegatives(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	if err := service.SaveProfile(db, model.Profile{Age: -1}); err == nil {
		t.Fatal("expected error for negative age")
	}
	if err := service.SaveProfile(db, model.Profile{WeightKg: -2}); err == nil {
		t.Fatal("expected error for negative weight")
	}
}
