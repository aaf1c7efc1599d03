package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// OpenFoodFactsService looks up per-100g nutrition by barcode. Transport
// errors and 5xx responses are retried a fixed number of times with a
// linearly increasing delay.
type OpenFoodFactsService struct {
	baseURL    string
	client     *http.Client
	attempts   int
	retryDelay time.Duration
}

func NewOpenFoodFactsService(baseURL string) *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		attempts:   3,
		retryDelay: time.Second,
	}
}

type offProductResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName string         `json:"product_name"`
		Nutriments  map[string]any `json:"nutriments"`
	} `json:"product"`
}

// Lookup fetches a product and normalizes it into create-ready food item
// fields. A product unknown to OpenFoodFacts is a not-found error.
func (s *OpenFoodFactsService) Lookup(ctx context.Context, barcode string) (*FoodItemInput, error) {
	if barcode == "" {
		return nil, validationError("barcode is required")
	}

	u := fmt.Sprintf("%s/api/v2/product/%s?fields=product_name,nutriments",
		s.baseURL, url.PathEscape(barcode))

	body, status, err := s.getWithRetry(ctx, u)
	if err != nil {
		return nil, upstreamError("failed to call OpenFoodFacts", err)
	}
	if status == http.StatusNotFound {
		return nil, notFoundError("product not found for this barcode")
	}
	if status != http.StatusOK {
		return nil, upstreamError(fmt.Sprintf("OpenFoodFacts API error %d", status), nil)
	}

	var pr offProductResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, upstreamError("failed to parse OpenFoodFacts response", err)
	}
	if pr.Status != 1 {
		return nil, notFoundError("product not found for this barcode")
	}

	name := pr.Product.ProductName
	if name == "" {
		name = "Product " + barcode
	}
	nutriments := pr.Product.Nutriments
	calories := nutrimentValue(nutriments, "energy-kcal_100g", "energy-kcal")

	return &FoodItemInput{
		Name:          name,
		Calories:      &calories,
		Proteins:      nutrimentValue(nutriments, "proteins_100g", "proteins"),
		Carbohydrates: nutrimentValue(nutriments, "carbohydrates_100g", "carbohydrates"),
		Fat:           nutrimentValue(nutriments, "fat_100g", "fat"),
		Barcode:       barcode,
	}, nil
}

func (s *OpenFoodFactsService) getWithRetry(ctx context.Context, u string) ([]byte, int, error) {
	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := s.client.Do(req)
		if err == nil {
			body, readErr := io.ReadAll(resp.Body)
			resp.Body.Close()
			if readErr == nil && resp.StatusCode < http.StatusInternalServerError {
				return body, resp.StatusCode, nil
			}
			if readErr != nil {
				lastErr = readErr
			} else {
				lastErr = fmt.Errorf("server error %d", resp.StatusCode)
			}
		} else {
			lastErr = err
		}

		if attempt == s.attempts {
			break
		}
		slog.Warn("OpenFoodFacts call failed, retrying",
			"attempt", attempt, "error", lastErr)
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(s.retryDelay * time.Duration(attempt)):
		}
	}
	return nil, 0, lastErr
}

// nutrimentValue reads the first numeric value among the given keys. The
// nutriments object mixes numbers with unit strings, so non-numbers are
// ignored.
func nutrimentValue(nutriments map[string]any, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := nutriments[key].(float64); ok {
			return v
		}
	}
	return 0
}
