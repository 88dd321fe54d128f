//go:build unit

package randomorg_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"raffle-draw/internal/infra/randomorg"
	"raffle-draw/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const signedResult = `{
  "jsonrpc": "2.0",
  "result": {
    "random": {
      "method": "generateSignedIntegers",
      "hashedApiKey": "aGFzaA==",
      "n": 2, "min": 1, "max": 10, "replacement": false, "base": 10,
      "data": [7, 3],
      "completionTime": "2024-03-01 12:00:00Z",
      "serialNumber": 4242
    },
    "signature": "c2lnbmF0dXJl",
    "bitsUsed": 7, "bitsLeft": 249993, "requestsLeft": 999, "advisoryDelay": 0
  },
  "id": "1"
}`

func serve(t *testing.T, status int, body string, inspect func(map[string]any)) *randomorg.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			inspect(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return randomorg.NewClient(srv.URL, 5*time.Second)
}

func rpcError(code int, msg string) string {
	b, _ := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"error":   map[string]any{"code": code, "message": msg},
		"id":      "1",
	})
	return string(b)
}

func TestClient_GenerateSignedIntegers(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps the signed object verbatim", func(t *testing.T) {
		var sent map[string]any
		c := serve(t, http.StatusOK, signedResult, func(req map[string]any) { sent = req })

		proof, err := c.GenerateSignedIntegers(ctx, "secret-aaaa", 2, 1, 10)
		require.NoError(t, err)

		assert.Equal(t, "generateSignedIntegers", sent["method"])
		params, ok := sent["params"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "secret-aaaa", params["apiKey"])
		assert.Equal(t, false, params["replacement"])
		assert.EqualValues(t, 2, params["n"])

		assert.Equal(t, []int{7, 3}, proof.Numbers)
		assert.EqualValues(t, 4242, proof.SerialNumber)
		assert.Equal(t, "c2lnbmF0dXJl", proof.Signature)
		assert.Equal(t, "aGFzaA==", proof.HashedAPIKey)
		assert.Equal(t, 1, proof.RangeLow)
		assert.Equal(t, 10, proof.RangeHigh)
		assert.Contains(t, string(proof.Random), `"method": "generateSignedIntegers"`)
	})

	tests := []struct {
		name   string
		status int
		body   string
		marker error
	}{
		{"key not running", http.StatusOK, rpcError(401, "The API key you specified is not running"), errs.ErrQuotaExhausted},
		{"requests exhausted", http.StatusOK, rpcError(402, "The API key has exceeded its daily request allowance"), errs.ErrQuotaExhausted},
		{"bits exhausted", http.StatusOK, rpcError(403, "The API key has exceeded its daily bit allowance"), errs.ErrQuotaExhausted},
		{"service unavailable", http.StatusOK, rpcError(100, "The server is temporarily unavailable"), errs.ErrTransientFailure},
		{"server error range", http.StatusOK, rpcError(-32000, "Server error"), errs.ErrTransientFailure},
		{"invalid params", http.StatusOK, rpcError(202, "Parameter 'n' is out of range"), errs.ErrProviderError},
		{"http 503", http.StatusServiceUnavailable, "", errs.ErrTransientFailure},
		{"http 429", http.StatusTooManyRequests, "", errs.ErrTransientFailure},
		{"http 400", http.StatusBadRequest, "", errs.ErrProviderError},
		{"garbage body", http.StatusOK, "<html>", errs.ErrTransientFailure},
		{"no result", http.StatusOK, `{"jsonrpc":"2.0","id":"1"}`, errs.ErrTransientFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := serve(t, tt.status, tt.body, nil)

			proof, err := c.GenerateSignedIntegers(ctx, "secret-aaaa", 2, 1, 10)

			assert.Nil(t, proof)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.marker), "got %v", err)
		})
	}

	t.Run("unreachable host is transient", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := randomorg.NewClient(url, time.Second).GenerateSignedIntegers(ctx, "k", 1, 1, 2)

		assert.True(t, errs.Is(err, errs.ErrTransientFailure))
	})

	t.Run("canceled context is returned as is", func(t *testing.T) {
		c := serve(t, http.StatusOK, signedResult, nil)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := c.GenerateSignedIntegers(cctx, "k", 1, 1, 2)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
