package imagery_test

import (
	"bytes"
	"context"
	"image/png"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmeAyanda/ClimateChange-ImpactOnAgriculture-Project/internal/adapter/imagery"
)

func testLogger() *slog.Logger { return slog.Default() }

func TestClientFetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		payload := []byte("fake-jpeg-bytes")
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(payload)
		}))
		defer srv.Close()

		client := imagery.NewClient(time.Second, testLogger())
		result, err := client.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, payload, result.Data)
		assert.Equal(t, "image/jpeg", result.ContentType)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		client := imagery.NewClient(time.Second, testLogger())
		_, err := client.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("connection refused is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close() // shut down before the request

		client := imagery.NewClient(time.Second, testLogger())
		_, err := client.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
	})

	t.Run("non-image content type is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>not a photo</html>"))
		}))
		defer srv.Close()

		client := imagery.NewClient(time.Second, testLogger())
		_, err := client.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "content type")
	})
}

func TestCachedSource(t *testing.T) {
	var upstream atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstream.Add(1)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer srv.Close()

	client := imagery.NewClient(time.Second, testLogger())
	cached := imagery.NewCachedSource(client, time.Minute, nil)

	first, err := cached.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	second, err := cached.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), upstream.Load(), "second fetch must be served from cache")
}

func TestCachedSourceDoesNotCacheFailures(t *testing.T) {
	var upstream atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		upstream.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cached := imagery.NewCachedSource(imagery.NewClient(time.Second, testLogger()), time.Minute, nil)

	_, err := cached.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	_, err = cached.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	assert.Equal(t, int64(2), upstream.Load(), "failures must not be cached")
}

func TestPlaceholder(t *testing.T) {
	data := imagery.Placeholder()
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 600, img.Bounds().Dx())
	assert.Equal(t, 400, img.Bounds().Dy())

	assert.Same(t, &data[0], &imagery.Placeholder()[0], "placeholder bytes are rendered once")
}
