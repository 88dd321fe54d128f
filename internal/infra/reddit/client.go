// Package reddit reads raffle posts through reddit's public JSON endpoints.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/roster"

	"github.com/sony/gobreaker"
)

const maxPostBytes = 4 << 20

type Config struct {
	BaseURL          string
	UserAgent        string
	Timeout          time.Duration
	BreakerFailures  uint32
	BreakerOpenSpell time.Duration
}

type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker
}

func NewClient(cfg Config) *Client {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 5
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "reddit",
			Timeout: cfg.BreakerOpenSpell,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			// A caller giving up says nothing about reddit's health.
			IsSuccessful: func(err error) bool {
				return err == nil || errs.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

type listing struct {
	Data struct {
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Author        string                   `json:"author"`
	Selftext      string                   `json:"selftext"`
	Permalink     string                   `json:"permalink"`
	URL           string                   `json:"url"`
	Subreddit     string                   `json:"subreddit"`
	IsGallery     bool                     `json:"is_gallery"`
	GalleryData   *galleryData             `json:"gallery_data"`
	MediaMetadata map[string]mediaMetadata `json:"media_metadata"`
	Preview       *preview                 `json:"preview"`
}

type galleryData struct {
	Items []struct {
		MediaID string `json:"media_id"`
	} `json:"items"`
}

type mediaMetadata struct {
	S struct {
		U string `json:"u"`
	} `json:"s"`
}

type preview struct {
	Images []struct {
		Source struct {
			URL string `json:"url"`
		} `json:"source"`
	} `json:"images"`
}

// FetchPost returns the post with its body and first image. Every failure,
// including an open breaker, is marked errs.ErrContentUnavailable.
func (c *Client) FetchPost(ctx context.Context, postID string) (*roster.Post, error) {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, postID)
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "fetch post "+postID), errs.ErrContentUnavailable)
	}
	return out.(*roster.Post), nil
}

func (c *Client) fetch(ctx context.Context, postID string) (*roster.Post, error) {
	url := fmt.Sprintf("%s/comments/%s.json?raw_json=1&limit=1", c.baseURL, postID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit returned HTTP %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxPostBytes))
	if err != nil {
		return nil, err
	}

	var listings []listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		return nil, errs.Wrap(err, "decode post listing")
	}
	if len(listings) == 0 || len(listings[0].Data.Children) == 0 {
		return nil, errs.New("post not found")
	}

	p := listings[0].Data.Children[0].Data
	return &roster.Post{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		Permalink: c.absolute(p.Permalink),
		Body:      p.Selftext,
		ImageURL:  firstImage(p),
		Subreddit: p.Subreddit,
	}, nil
}

func (c *Client) absolute(permalink string) string {
	if permalink == "" || strings.HasPrefix(permalink, "http") {
		return permalink
	}
	return "https://www.reddit.com" + permalink
}

func firstImage(p postData) string {
	if p.IsGallery && p.GalleryData != nil {
		for _, item := range p.GalleryData.Items {
			if m, ok := p.MediaMetadata[item.MediaID]; ok && m.S.U != "" {
				return html.UnescapeString(m.S.U)
			}
		}
	}
	if p.Preview != nil && len(p.Preview.Images) > 0 {
		return html.UnescapeString(p.Preview.Images[0].Source.URL)
	}
	lower := strings.ToLower(p.URL)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return p.URL
		}
	}
	return ""
}
