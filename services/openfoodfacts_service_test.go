package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOFF(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewOpenFoodFactsService(srv.URL)
	svc.retryDelay = time.Millisecond
	return svc
}

func TestLookupNormalizesProduct(t *testing.T) {
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/3017624010701", r.URL.Path)
		assert.Equal(t, "product_name,nutriments", r.URL.Query().Get("fields"))
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"product_name": "Nutella",
				"nutriments": {
					"energy-kcal_100g": 539,
					"energy-kcal_unit": "kcal",
					"proteins_100g": 6.3,
					"carbohydrates_100g": 57.5,
					"fat_100g": 30.9
				}
			}
		}`))
	})

	in, err := svc.Lookup(context.Background(), "3017624010701")
	require.NoError(t, err)
	assert.Equal(t, "Nutella", in.Name)
	require.NotNil(t, in.Calories)
	assert.Equal(t, 539.0, *in.Calories)
	assert.Equal(t, 6.3, in.Proteins)
	assert.Equal(t, 57.5, in.Carbohydrates)
	assert.Equal(t, 30.9, in.Fat)
	assert.Equal(t, "3017624010701", in.Barcode)
}

func TestLookupFallbackKeysAndName(t *testing.T) {
	// Some products only carry the unsuffixed keys and no name.
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 1,
			"product": {
				"nutriments": {"energy-kcal": 120, "proteins": 4.5}
			}
		}`))
	})

	in, err := svc.Lookup(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, "Product 111", in.Name)
	assert.Equal(t, 120.0, *in.Calories)
	assert.Equal(t, 4.5, in.Proteins)
	assert.Equal(t, 0.0, in.Fat, "missing nutriments default to zero")
}

func TestLookupUnknownProduct(t *testing.T) {
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
	})

	_, err := svc.Lookup(context.Background(), "000")
	assert.True(t, IsNotFound(err))
}

func TestLookupNotFoundStatus(t *testing.T) {
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := svc.Lookup(context.Background(), "000")
	assert.True(t, IsNotFound(err))
}

func TestLookupRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"status": 1, "product": {"product_name": "Late", "nutriments": {"energy-kcal_100g": 10}}}`))
	})

	in, err := svc.Lookup(context.Background(), "222")
	require.NoError(t, err)
	assert.Equal(t, "Late", in.Name)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLookupGivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	svc := newTestOFF(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Lookup(context.Background(), "222")
	assert.True(t, IsUpstream(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestLookupRequiresBarcode(t *testing.T) {
	svc := NewOpenFoodFactsService("http://unused.invalid")
	_, err := svc.Lookup(context.Background(), "")
	assert.True(t, IsValidation(err))
}
