//go:build unit

package estimator_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodshare/internal/infra/estimator"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) commands.ExpiryEstimator {
	return estimator.NewClient(config.EstimatorConfig{
		BaseURL: baseURL,
		Timeout: time.Second,
	})
}

func TestClientEstimate(t *testing.T) {
	t.Run("success: decodes a bare number of safe hours", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &gotBody))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("7.5"))
		}))
		defer srv.Close()

		hours, err := newClient(srv.URL).Estimate(context.Background(), "dairy", 4.5, 60, "sealed")
		require.NoError(t, err)
		assert.Equal(t, 7.5, hours)

		assert.Equal(t, "/predict", gotPath)
		assert.Equal(t, "dairy", gotBody["Food_Type"])
		assert.Equal(t, 4.5, gotBody["Storage_Temp"])
		assert.Equal(t, 60.0, gotBody["Humidity"])
		assert.Equal(t, "sealed", gotBody["Packaging"])
	})

	t.Run("error: non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Estimate(context.Background(), "dairy", 4.5, 60, "sealed")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("error: malformed response body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"hours":`))
		}))
		defer srv.Close()

		_, err := newClient(srv.URL).Estimate(context.Background(), "dairy", 4.5, 60, "sealed")
		require.Error(t, err)
	})

	t.Run("error: unreachable service", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := newClient(srv.URL).Estimate(context.Background(), "dairy", 4.5, 60, "sealed")
		require.Error(t, err)
	})
}
