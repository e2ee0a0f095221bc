package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scriptura"
	scripturahttp "scriptura/http"
)

func testDelays() []time.Duration {
	return []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the body on 200", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Write([]byte("<html>ok</html>"))
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays(testDelays()))
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", body)
		assert.Equal(t, scripturahttp.DefaultUserAgent, gotUA)
	})

	t.Run("404 fails immediately with ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays(testDelays()))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, scriptura.ENOTFOUND, scriptura.ErrorCode(err))
		assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})

	t.Run("503 is retried until success", func(t *testing.T) {
		t.Parallel()

		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte("recovered"))
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays(testDelays()))
		defer f.Close()

		body, err := f.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "recovered", body)
		assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	})

	t.Run("exhausted retries return EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays(testDelays()))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, scriptura.EUNAVAILABLE, scriptura.ErrorCode(err))
		assert.EqualValues(t, 4, atomic.LoadInt32(&attempts))
	})

	t.Run("non-retryable status fails on the first attempt", func(t *testing.T) {
		t.Parallel()

		var attempts int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays(testDelays()))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)
		assert.Equal(t, scriptura.EUNAVAILABLE, scriptura.ErrorCode(err))
		assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})

	t.Run("canceled context stops the retry loop", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		f := scripturahttp.NewFetcher(scripturahttp.WithRetryDelays([]time.Duration{time.Minute}))
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, srv.URL)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
