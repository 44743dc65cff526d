package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// Food carries per-100g macros for a looked-up product, matching the
// units of the built-in nutrition table.
type Food struct {
	Name     string
	Brand    string
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// LookupBarcode fetches one product by its barcode.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (Food, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL(), url.PathEscape(strings.TrimSpace(barcode)))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return Food{}, err
	}

	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Food{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return Food{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}
	return toFood(parsed.Product), nil
}

// SearchFood returns the best text-search match for a food name.
func (c *Client) SearchFood(ctx context.Context, query string) (Food, error) {
	endpoint := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=5",
		c.baseURL(), url.QueryEscape(strings.TrimSpace(query)))
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return Food{}, err
	}

	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Food{}, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		return toFood(p), nil
	}
	return Food{}, fmt.Errorf("no openfoodfacts product found for query %q", query)
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", "athletiq/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

func toFood(p offProduct) Food {
	return Food{
		Name:     strings.TrimSpace(p.ProductName),
		Brand:    strings.TrimSpace(p.Brands),
		Calories: nutrientPer100g(p.Nutriments, "energy-kcal"),
		Carbs:    nutrientPer100g(p.Nutriments, "carbohydrates"),
		Protein:  nutrientPer100g(p.Nutriments, "proteins"),
		Fat:      nutrientPer100g(p.Nutriments, "fat"),
	}
}

func nutrientPer100g(n map[string]any, base string) float64 {
	if v, ok := parseFloatAny(n[base+"_100g"]); ok {
		return v
	}
	return 0
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	Nutriments  map[string]any `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}
