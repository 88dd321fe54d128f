package raffle

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"raffle-draw/internal/pkg/errs"
)

var ErrInvalidSourceURL = errs.Mark(errs.New("source must be a reddit post link"), errs.ErrInvalidRaffleRequest)

var (
	postPathPattern  = regexp.MustCompile(`^/(?:r/\w+/)?comments/([a-z0-9]+)(?:/|$)`)
	shortLinkPattern = regexp.MustCompile(`^/([a-z0-9]+)/?$`)
	titleSlotPattern = regexp.MustCompile(`(?i)(\d+)\s+spots\b`)
)

// ExtractPostID accepts the www, mobile, old and short-link forms of a post URL
// and returns the lowercase post id.
func ExtractPostID(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", ErrInvalidSourceURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidSourceURL
	}

	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.EscapedPath())

	switch {
	case host == "redd.it":
		if m := shortLinkPattern.FindStringSubmatch(path); m != nil {
			return m[1], nil
		}
	case host == "reddit.com" || strings.HasSuffix(host, ".reddit.com"):
		if m := postPathPattern.FindStringSubmatch(path); m != nil {
			return m[1], nil
		}
	}
	return "", ErrInvalidSourceURL
}

// ParseSlotsFromTitle finds "<n> spots" in a post title, e.g.
// "[NM] Booster box | 306 Spots @ $1ea" -> 306.
func ParseSlotsFromTitle(title string) (int, bool) {
	m := titleSlotPattern.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < MinSlots || n > MaxSlots {
		return 0, false
	}
	return n, true
}

// SourceInfo is the post metadata snapshotted into a verification record.
type SourceInfo struct {
	PostID    string `json:"postId"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Permalink string `json:"permalink"`
	ImageURL  string `json:"imageUrl,omitempty"`
	Subreddit string `json:"subreddit"`
}
