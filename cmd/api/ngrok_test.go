package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNgrokURL(t *testing.T) {
	t.Run("Prefers https tunnel", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tunnels", r.URL.Path)
			w.Write([]byte(`{"tunnels": [
				{"public_url": "http://abc.ngrok.io", "proto": "http"},
				{"public_url": "https://abc.ngrok.io", "proto": "https"}
			]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURL(context.Background(), ts.Client(), ts.URL+"/", 1, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "https://abc.ngrok.io", got)
	})

	t.Run("Waits for the tunnel to come up", func(t *testing.T) {
		var calls atomic.Int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.Write([]byte(`{"tunnels": []}`))
				return
			}
			w.Write([]byte(`{"tunnels": [{"public_url": "http://late.ngrok.io", "proto": "http"}]}`))
		}))
		defer ts.Close()

		got, err := detectNgrokURL(context.Background(), ts.Client(), ts.URL, 5, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, "http://late.ngrok.io", got)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("Gives up", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels": []}`))
		}))
		defer ts.Close()

		_, err := detectNgrokURL(context.Background(), ts.Client(), ts.URL, 2, time.Millisecond)
		assert.ErrorContains(t, err, "no tunnel after 2 attempts")
	})

	t.Run("Stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := detectNgrokURL(ctx, http.DefaultClient, "http://127.0.0.1:1", 3, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
