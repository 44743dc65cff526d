package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupBarcodeParsesResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "status": 1,
  "product": {
    "product_name": "Skyr nature",
    "brands": "Brand Co",
    "nutriments": {
      "energy-kcal_100g": 63,
      "proteins_100g": 11,
      "carbohydrates_100g": 4,
      "fat_100g": 0.2
    }
  }
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	food, err := c.LookupBarcode(context.Background(), "12345678")
	if err != nil {
		t.Fatalf("lookup barcode: %v", err)
	}
	if food.Name != "Skyr nature" || food.Calories != 63 || food.Protein != 11 {
		t.Fatalf("unexpected parsed food: %+v", food)
	}
}

func TestSearchFoodSkipsUnnamedProducts(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "products": [
    {"product_name": "", "nutriments": {}},
    {"product_name": "Riz basmati", "nutriments": {"energy-kcal_100g": 130, "carbohydrates_100g": 28}}
  ]
}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	food, err := c.SearchFood(context.Background(), "riz")
	if err != nil {
		t.Fatalf("search food: %v", err)
	}
	if food.Name != "Riz basmati" || food.Carbs != 28 {
		t.Fatalf("unexpected parsed food: %+v", food)
	}
}

func TestLookupBarcodeNotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": 0, "product": {}}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	if _, err := c.LookupBarcode(context.Background(), "000"); err == nil {
		t.Fatal("expected not-found error")
	}
}
