package warehouse_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"courierdesk/internal/adapters/out/warehouse"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("should require a base URL", func(t *testing.T) {
		_, err := warehouse.NewClient("", "token", http.DefaultClient)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should require an http client", func(t *testing.T) {
		_, err := warehouse.NewClient("http://warehouse.local", "token", nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestClient_GetStats(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/warehouse/stats", r.URL.Path)
		assert.Equal(t, "Bearer wh-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalReceipts":3,"totalPieces":12,"totalWeight":45.5,"pending":1,"classified":2}`))
	}))
	defer server.Close()

	client, err := warehouse.NewClient(server.URL, "wh-token", server.Client())
	require.NoError(t, err)

	stats, err := client.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReceipts)
	assert.Equal(t, 12, stats.TotalPieces)
	assert.InDelta(t, 45.5, stats.TotalWeight, 0.001)
}

func TestClient_CreateReceipt(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/warehouse/whr", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var received warehouse.Receipt
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, "WHR-0001", received.Code)

		received.ID = "whr-1"
		received.Status = "pending"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(received)
	}))
	defer server.Close()

	client, err := warehouse.NewClient(server.URL, "", server.Client())
	require.NoError(t, err)

	created, err := client.CreateReceipt(ctx, warehouse.Receipt{Code: "WHR-0001", Pieces: 4})

	require.NoError(t, err)
	assert.Equal(t, "whr-1", created.ID)
	assert.Equal(t, "pending", created.Status)
}

func TestClient_Classify(t *testing.T) {
	ctx := t.Context()

	t.Run("should reject an undeclared receipt type locally", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client, err := warehouse.NewClient(server.URL, "", server.Client())
		require.NoError(t, err)

		err = client.Classify(ctx, "whr-1", "parcel")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, requests, "invalid type must never reach the service")
	})

	t.Run("should escape the receipt id in the path", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/warehouse/whr/whr%2F1/classify", r.URL.EscapedPath())
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client, err := warehouse.NewClient(server.URL, "", server.Client())
		require.NoError(t, err)

		require.NoError(t, client.Classify(ctx, "whr/1", "awb"))
	})
}

func TestClient_ErrorStatusIncludesBody(t *testing.T) {
	ctx := t.Context()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("receipt storage unavailable"))
	}))
	defer server.Close()

	client, err := warehouse.NewClient(server.URL, "", server.Client())
	require.NoError(t, err)

	err = client.Health(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "receipt storage unavailable")
}
