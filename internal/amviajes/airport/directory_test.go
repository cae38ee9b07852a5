package airport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(document{Airports: fixtureAirports()})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func loadedDirectory(t *testing.T) *Directory {
	t.Helper()
	dir := NewDirectory(NewFileSource(writeFixture(t)))
	require.NoError(t, dir.Load(context.Background()))
	return dir
}

func TestDirectory_NotLoaded(t *testing.T) {
	dir := NewDirectory(NewFileSource(filepath.Join(t.TempDir(), "missing.json")))

	assert.False(t, dir.Loaded())
	_, err := dir.All()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = dir.ByID("1")
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = dir.Autocomplete("", "", DefaultLimit)
	assert.ErrorIs(t, err, ErrNotLoaded)

	err = dir.Load(context.Background())
	assert.Error(t, err)
	assert.False(t, dir.Loaded())
}

func TestDirectory_Lookups(t *testing.T) {
	dir := loadedDirectory(t)
	assert.True(t, dir.Loaded())

	a, err := dir.ByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Córdoba", a.City)

	_, err = dir.ByID("99")
	assert.ErrorIs(t, err, ErrNotFound)

	a, err = dir.ByCity("CÓRDOBA")
	require.NoError(t, err)
	assert.Equal(t, "3", a.ID)

	_, err = dir.ByCity("Tokio")
	assert.ErrorIs(t, err, ErrNotFound)

	byCountry, err := dir.ByCountry("Argentina")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(byCountry))

	all, err := dir.ByCountry("")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	countries, err := dir.Countries()
	require.NoError(t, err)
	assert.Equal(t, []string{"Argentina", "España", "México", "Países Bajos"}, countries)

	matches, err := dir.Autocomplete("buenos", "2", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(matches))
}

func TestDirectory_AllReturnsCopy(t *testing.T) {
	dir := loadedDirectory(t)

	all, err := dir.All()
	require.NoError(t, err)
	all[0].City = "Changed"

	a, err := dir.ByID(all[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Changed", a.City)
}

func TestFileSource_BundledData(t *testing.T) {
	airports, err := NewFileSource("../../../data/db.json").Airports(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, airports)

	cities := map[string]bool{}
	seen := map[string]bool{}
	for _, a := range airports {
		cities[a.City] = true
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	assert.True(t, cities["Córdoba"])
	assert.True(t, cities["Buenos Aires"])
}

func TestFileSource_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewFileSource(path).Airports(context.Background())
	assert.ErrorContains(t, err, "airports decode")
}

func TestHTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/db.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(document{Airports: fixtureAirports()})
	}))
	defer server.Close()

	airports, err := NewHTTPSource(server.URL+"/data/db.json", server.Client()).Airports(context.Background())
	require.NoError(t, err)
	assert.Len(t, airports, 6)

	_, err = NewHTTPSource(server.URL+"/missing.json", server.Client()).Airports(context.Background())
	assert.ErrorContains(t, err, "status 404")
}

func TestHTTPSource_MissingKeyYieldsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"otros": []}`))
	}))
	defer server.Close()

	airports, err := NewHTTPSource(server.URL, nil).Airports(context.Background())
	require.NoError(t, err)
	assert.Empty(t, airports)
}
