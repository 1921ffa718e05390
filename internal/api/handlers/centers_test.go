package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight-quote-service/internal/api/dto"
	"freight-quote-service/internal/domain"
)

func TestListCenters(t *testing.T) {
	h := &CenterHandler{Catalog: domain.DefaultCatalog()}

	req := httptest.NewRequest(http.MethodGet, "/cds", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.ListCentersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Centers, 5)
	assert.Equal(t, "RS", res.Centers[0].ID)
	assert.Equal(t, "98400-000", res.Centers[0].PostalCode)
}

func TestListCentersRejectsPost(t *testing.T) {
	h := &CenterHandler{Catalog: domain.DefaultCatalog()}

	req := httptest.NewRequest(http.MethodPost, "/cds", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	h := &HealthHandler{
		CatalogSize:         5,
		GeoPing:             func(*http.Request) bool { return true },
		InventoryConfigured: false,
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Check(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res["status"])
	assert.Equal(t, "available", res["geo_api"])
	assert.Equal(t, "not configured", res["inventory"])
	assert.EqualValues(t, 5, res["centers"])
}
