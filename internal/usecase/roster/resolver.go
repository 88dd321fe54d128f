// Package roster turns a raffle post into a slot roster, reading either the post
// body or an externally hosted list the post links to.
package roster

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/pkg/metrics"
)

//go:generate mockgen -source=resolver.go -destination=../../../tests/mock/roster/resolver.go -package=rostermock

type Post struct {
	ID        string
	Title     string
	Author    string
	Permalink string
	Body      string
	ImageURL  string
	Subreddit string
}

// ContentSource errors are expected to carry errs.ErrContentUnavailable.
type ContentSource interface {
	FetchPost(ctx context.Context, postID string) (*Post, error)
}

type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) (string, error)
}

var (
	markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\s)]+)\)`)
	anchorPattern       = regexp.MustCompile(`(?i)\b(list|roster|spots?)\b.*\bhere\b|\bhere\b.*\b(list|roster|spots?)\b`)
	bareURLPattern      = regexp.MustCompile(`(?:https?|gs)://[^\s)\]>"]+`)
)

var storageHosts = []string{
	"docs.google.com",
	"drive.google.com",
	"storage.googleapis.com",
	"dropbox.com",
	"dl.dropboxusercontent.com",
	"pastebin.com",
}

type Resolver struct {
	content   ContentSource
	documents DocumentFetcher
	metrics   *metrics.Metrics
}

func NewResolver(content ContentSource, documents DocumentFetcher, m *metrics.Metrics) *Resolver {
	return &Resolver{
		content:   content,
		documents: documents,
		metrics:   m,
	}
}

// FetchPost exposes post metadata for callers that need the title before a
// roster can be resolved.
func (r *Resolver) FetchPost(ctx context.Context, postID string) (*Post, error) {
	post, err := r.content.FetchPost(ctx, postID)
	if err != nil {
		r.metrics.ContentFetchTotal.WithLabelValues("post", "error").Inc()
		return nil, errs.Mark(err, errs.ErrContentUnavailable)
	}
	r.metrics.ContentFetchTotal.WithLabelValues("post", "ok").Inc()
	return post, nil
}

// Resolve fails only when the post itself is unreachable. A linked roster
// document that cannot be fetched or parsed falls back to the post body.
func (r *Resolver) Resolve(ctx context.Context, postID string, totalSlots int) (*raffle.Resolution, error) {
	post, err := r.FetchPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	assignments := raffle.ParseAssignments(post.Body)
	var external string
	if link := FindRosterLink(post.Body); link != "" {
		if doc := r.fetchDocument(ctx, link); doc != nil {
			assignments = doc
			external = link
		}
	}

	roster, discarded := raffle.NewRoster(totalSlots, assignments)
	if len(discarded) > 0 {
		slog.Warn("discarded roster entries outside slot range",
			"post_id", postID,
			"total_slots", totalSlots,
			"discarded", len(discarded))
	}
	if roster.Empty() {
		slog.Warn("roster is empty, every winner will be unassigned", "post_id", postID)
	}

	return &raffle.Resolution{
		Roster: roster,
		Source: raffle.SourceInfo{
			PostID:    post.ID,
			Title:     post.Title,
			Author:    post.Author,
			Permalink: post.Permalink,
			ImageURL:  post.ImageURL,
			Subreddit: post.Subreddit,
		},
		Discarded:        discarded,
		ExternalDocument: external,
	}, nil
}

func (r *Resolver) fetchDocument(ctx context.Context, link string) []raffle.SlotAssignment {
	text, err := r.documents.FetchDocument(ctx, link)
	if err != nil {
		r.metrics.ContentFetchTotal.WithLabelValues("document", "error").Inc()
		slog.Warn("roster document unavailable, using post body", "url", link, "error", err.Error())
		return nil
	}
	r.metrics.ContentFetchTotal.WithLabelValues("document", "ok").Inc()

	parsed := raffle.ParseAssignments(text)
	if len(parsed) == 0 {
		slog.Warn("roster document has no slot lines, using post body", "url", link)
		return nil
	}
	return parsed
}

// FindRosterLink returns the first markdown link whose text reads like
// "list is here", else the first URL pointing at a known document host.
func FindRosterLink(body string) string {
	for _, m := range markdownLinkPattern.FindAllStringSubmatch(body, -1) {
		if anchorPattern.MatchString(m[1]) {
			return m[2]
		}
	}
	for _, u := range bareURLPattern.FindAllString(body, -1) {
		if isStorageURL(u) {
			return u
		}
	}
	return ""
}

func isStorageURL(u string) bool {
	if strings.HasPrefix(u, "gs://") {
		return true
	}
	lower := strings.ToLower(u)
	for _, host := range storageHosts {
		if strings.Contains(lower, "://"+host+"/") || strings.Contains(lower, "://www."+host+"/") {
			return true
		}
	}
	return false
}
