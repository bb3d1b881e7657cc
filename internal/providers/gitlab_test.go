package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contribgraph/pkg/models"
)

func TestGitLabFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/bob/calendar.json", r.URL.Path)
		fmt.Fprint(w, `{"2024-01-01":2,"2024-02-10":7}`)
	}))
	defer srv.Close()

	src := NewGitLab(srv.URL)
	records, err := src.Fetch(context.Background(), "bob")
	require.NoError(t, err)

	// map iteration order is not defined
	assert.ElementsMatch(t, []models.DayRecord{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-02-10", Count: 7},
	}, records)
}

func TestGitLabFetchEscapesUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/weird%2Fname/calendar.json", r.URL.EscapedPath())
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	src := NewGitLab(srv.URL)
	records, err := src.Fetch(context.Background(), "weird/name")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGitLabFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewGitLab(srv.URL)
	_, err := src.Fetch(context.Background(), "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
