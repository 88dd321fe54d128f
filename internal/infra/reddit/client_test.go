//go:build unit

package reddit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"raffle-draw/internal/infra/reddit"
	"raffle-draw/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const galleryListing = `[{"data":{"children":[{"data":{
  "id":"abc123",
  "title":"[Main] Booster box - 10 spots at $12",
  "author":"host",
  "selftext":"1 /u/alice\n2 /u/bob PAID",
  "permalink":"/r/testraffles/comments/abc123/booster_box/",
  "url":"https://www.reddit.com/gallery/abc123",
  "subreddit":"testraffles",
  "is_gallery":true,
  "gallery_data":{"items":[{"media_id":"m1"}]},
  "media_metadata":{"m1":{"s":{"u":"https://preview.redd.it/m1.jpg?width=640&amp;s=x"}}}
}}]}},{"data":{"children":[]}}]`

func newClient(t *testing.T, handler http.HandlerFunc) *reddit.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return reddit.NewClient(reddit.Config{
		BaseURL:          srv.URL + "/",
		UserAgent:        "raffle-draw-test/1.0",
		Timeout:          5 * time.Second,
		BreakerFailures:  2,
		BreakerOpenSpell: time.Minute,
	})
}

func TestClient_FetchPost(t *testing.T) {
	ctx := context.Background()

	t.Run("gallery post", func(t *testing.T) {
		var gotPath, gotAgent string
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAgent = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte(galleryListing))
		})

		post, err := c.FetchPost(ctx, "abc123")
		require.NoError(t, err)

		assert.Equal(t, "/comments/abc123.json", gotPath)
		assert.Equal(t, "raffle-draw-test/1.0", gotAgent)
		assert.Equal(t, "abc123", post.ID)
		assert.Equal(t, "host", post.Author)
		assert.Equal(t, "1 /u/alice\n2 /u/bob PAID", post.Body)
		assert.Equal(t, "https://www.reddit.com/r/testraffles/comments/abc123/booster_box/", post.Permalink)
		assert.Equal(t, "https://preview.redd.it/m1.jpg?width=640&s=x", post.ImageURL)
	})

	t.Run("direct image link", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"data":{"children":[{"data":{"id":"x1","url":"https://i.redd.it/box.PNG"}}]}}]`))
		})

		post, err := c.FetchPost(ctx, "x1")
		require.NoError(t, err)
		assert.Equal(t, "https://i.redd.it/box.PNG", post.ImageURL)
	})

	t.Run("missing post", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.NotFound(w, nil)
		})

		_, err := c.FetchPost(ctx, "gone")
		assert.True(t, errs.Is(err, errs.ErrContentUnavailable))
	})

	t.Run("empty listing", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := c.FetchPost(ctx, "gone")
		assert.True(t, errs.Is(err, errs.ErrContentUnavailable))
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		var hits atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			w.WriteHeader(http.StatusBadGateway)
		})

		for i := 0; i < 4; i++ {
			_, err := c.FetchPost(ctx, "abc123")
			assert.True(t, errs.Is(err, errs.ErrContentUnavailable))
		}
		assert.EqualValues(t, 2, hits.Load())
	})
	t.Run("canceled requests do not open the breaker", func(t *testing.T) {
		var hits atomic.Int32
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			hits.Add(1)
			_, _ = w.Write([]byte(galleryListing))
		})
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		for i := 0; i < 4; i++ {
			_, err := c.FetchPost(canceled, "abc123")
			assert.ErrorIs(t, err, context.Canceled)
		}

		p, err := c.FetchPost(ctx, "abc123")
		require.NoError(t, err)
		assert.Equal(t, "abc123", p.ID)
		assert.EqualValues(t, 1, hits.Load())
	})
}
