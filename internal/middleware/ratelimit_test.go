package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func limitedHandler(capacity, refillRate int) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return RateLimitMiddleware(capacity, refillRate)(ok)
}

func doRequest(h http.Handler, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitSharesBucketAcrossPorts(t *testing.T) {
	// a client reconnecting on fresh ephemeral ports must still drain one
	// bucket, not mint a new one per connection
	h := limitedHandler(2, 0)

	passed := 0
	for port := 40000; port < 40020; port++ {
		if doRequest(h, fmt.Sprintf("203.0.113.7:%d", port)) == http.StatusOK {
			passed++
		}
	}
	assert.Equal(t, 2, passed)
}

func TestRateLimitKeysByIP(t *testing.T) {
	h := limitedHandler(1, 0)

	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "203.0.113.1:2222"))
	// a different host is untouched by the first host's empty bucket
	assert.Equal(t, http.StatusOK, doRequest(h, "203.0.113.2:3333"))
}

func TestRateLimitExceededResponse(t *testing.T) {
	h := limitedHandler(1, 0)
	doRequest(h, "198.51.100.9:5555")

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", nil)
	req.RemoteAddr = "198.51.100.9:5556"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestClientIPFallsBackOnBareValue(t *testing.T) {
	assert.Equal(t, "203.0.113.7", clientIP("203.0.113.7:443"))
	assert.Equal(t, "no-port-here", clientIP("no-port-here"))
}
