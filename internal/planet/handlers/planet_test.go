package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planets-explorer/internal/planet"
)

func newHandler() *PlanetHandler {
	return NewPlanetHandler(planet.NewService(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestGenerate_WithSeed(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Generate(rec, httptest.NewRequest(http.MethodGet, "/api/planet/generate?seed=12345", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "planet-12345", got["id"])
	assert.Equal(t, "Frozen", got["type"])
	assert.Equal(t, false, got["discovered"])
	assert.NotContains(t, got, "discoveryDate")

	colors, ok := got["color"].(map[string]any)
	require.True(t, ok)
	assert.Regexp(t, `^hsl\(-?[\d.]+, [\d.]+%, [\d.]+%\)$`, colors["surface"])
}

func TestGenerate_IsDeterministic(t *testing.T) {
	h := newHandler()

	first := httptest.NewRecorder()
	h.Generate(first, httptest.NewRequest(http.MethodGet, "/api/planet/generate?seed=-77", nil))
	second := httptest.NewRecorder()
	h.Generate(second, httptest.NewRequest(http.MethodGet, "/api/planet/generate?seed=-77", nil))

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGenerate_RandomSeedWhenOmitted(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler().Generate(rec, httptest.NewRequest(http.MethodGet, "/api/planet/generate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got planet.PlanetRecord
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.GreaterOrEqual(t, got.Seed, int64(0))
	assert.Less(t, got.Seed, int64(planet.MaxRandomSeed))
}

func TestGenerate_Rejections(t *testing.T) {
	h := newHandler()

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodGet, "/api/planet/generate?seed=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid seed parameter")

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/planet/generate?seed=1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
