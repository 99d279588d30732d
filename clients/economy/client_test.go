package economy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanctyr/core"
	"sanctyr/models"
)

func TestEconomyClient_GetProfile_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/profile/123456789", r.URL.Path)
		assert.Equal(t, "test-secret", r.Header.Get("X-API-Secret"))

		response := models.EconomyProfile{
			UserID:   "123456789",
			Username: "warden",
			Avatar:   "abc123",
			Wallet:   1500,
			Bank:     42000,
			Inventory: []models.EconomyItem{
				{Name: "Ember Shard", Quantity: 3},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewEconomyClient(&http.Client{}, server.URL, "test-secret")

	profile, err := client.GetProfile(context.Background(), "123456789")
	require.NoError(t, err)
	assert.Equal(t, "123456789", profile.UserID)
	assert.Equal(t, int64(1500), profile.Wallet)
	assert.Equal(t, int64(42000), profile.Bank)
	require.Len(t, profile.Inventory, 1)
	assert.Equal(t, "Ember Shard", profile.Inventory[0].Name)
}

func TestEconomyClient_GetProfile_NotConfigured(t *testing.T) {
	client := NewEconomyClient(&http.Client{}, "", "")

	profile, err := client.GetProfile(context.Background(), "123456789")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, core.ErrNotConfigured)
}

func TestEconomyClient_GetProfile_NotFound_DistinctFromUpstreamError(t *testing.T) {
	// A 404 means "no profile yet" and must be distinguishable from a 500
	notFoundServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFoundServer.Close()

	client := NewEconomyClient(&http.Client{}, notFoundServer.URL, "test-secret")
	profile, err := client.GetProfile(context.Background(), "123456789")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.NotErrorIs(t, err, core.ErrUpstream)

	errorServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database unavailable"))
	}))
	defer errorServer.Close()

	client = NewEconomyClient(&http.Client{}, errorServer.URL, "test-secret")
	profile, err = client.GetProfile(context.Background(), "123456789")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, core.ErrUpstream)
	assert.NotErrorIs(t, err, core.ErrNotFound)
}

func TestEconomyClient_ExecuteAction_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/actions", r.URL.Path)
		assert.Equal(t, "test-secret", r.Header.Get("X-API-Secret"))

		var req models.EconomyActionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "daily", req.Command)
		assert.Equal(t, "123456789", req.UserID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.EconomyActionResult{
			Success: true,
			Message: "You claimed your daily reward!",
		})
	}))
	defer server.Close()

	client := NewEconomyClient(&http.Client{}, server.URL, "test-secret")

	result, err := client.ExecuteAction(context.Background(), "daily", "123456789", nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "You claimed your daily reward!", result.Message)
}

func TestEconomyClient_ExecuteAction_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unknown command"))
	}))
	defer server.Close()

	client := NewEconomyClient(&http.Client{}, server.URL, "test-secret")

	result, err := client.ExecuteAction(context.Background(), "bogus", "123456789", nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, core.ErrUpstream)
}
