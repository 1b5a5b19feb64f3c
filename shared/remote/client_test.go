package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomPayload struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

func TestClient_Get(t *testing.T) {
	t.Run("decodes a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/rooms/42", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(roomPayload{ID: 42, Status: "available"})
		}))
		defer server.Close()

		client := NewClient(server.URL)

		var room roomPayload
		found, err := client.Get(context.Background(), "/rooms/42", &room)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, roomPayload{ID: 42, Status: "available"}, room)
	})

	t.Run("reports absence on 404 without an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		var room roomPayload
		found, err := client.Get(context.Background(), "/rooms/42", &room)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("wraps server errors as rejections with the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		_, err := client.Get(context.Background(), "/rooms/42", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("reports transport failures as unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewClient(server.URL)

		_, err := client.Get(context.Background(), "/rooms/42", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnreachable)
	})

	t.Run("reports timeouts as unreachable", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer server.Close()
		defer close(release)

		client := NewClient(server.URL, WithTimeout(50*time.Millisecond))

		_, err := client.Get(context.Background(), "/rooms/42", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnreachable)
	})
}

func TestClient_Put(t *testing.T) {
	t.Run("sends a JSON body", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.Put(context.Background(), "/rooms/42/status", map[string]string{"status": "reserved"}, nil)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"status": "reserved"}, received)
	})

	t.Run("treats 404 on mutation as rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		client := NewClient(server.URL)

		err := client.Put(context.Background(), "/rooms/42/status", map[string]string{"status": "reserved"}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRejected)
	})
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/reservations/99" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	existed, err := client.Delete(context.Background(), "/reservations/99")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = client.Delete(context.Background(), "/reservations/100")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8001/")
	assert.Equal(t, "http://localhost:8001", client.baseURL)
}
