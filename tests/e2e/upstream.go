//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

const randomPath = "/json-rpc/4/invoke"

// Upstream stands in for both the post API and the randomness provider.
type Upstream struct {
	server *httptest.Server

	mu    sync.Mutex
	posts map[string]fakePost

	serial atomic.Int64
}

type fakePost struct {
	Title string
	Body  string
}

func newUpstream() *Upstream {
	u := &Upstream{posts: map[string]fakePost{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/comments/", u.servePost)
	mux.HandleFunc(randomPath, u.serveRandom)
	u.server = httptest.NewServer(mux)
	return u
}

func (u *Upstream) URL() string {
	return u.server.URL
}

func (u *Upstream) RandomURL() string {
	return u.server.URL + randomPath
}

func (u *Upstream) Close() {
	u.server.Close()
}

func (u *Upstream) SetPost(id, title, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.posts[id] = fakePost{Title: title, Body: body}
}

func (u *Upstream) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.posts = map[string]fakePost{}
}

func (u *Upstream) servePost(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/comments/"), ".json")

	u.mu.Lock()
	p, ok := u.posts[id]
	u.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	listing := []map[string]any{{
		"data": map[string]any{
			"children": []map[string]any{{
				"data": map[string]any{
					"id":        id,
					"title":     p.Title,
					"author":    "host",
					"selftext":  p.Body,
					"permalink": fmt.Sprintf("/r/testraffles/comments/%s/raffle/", id),
					"subreddit": "testraffles",
				},
			}},
		},
	}}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listing)
}

// serveRandom answers generateSignedIntegers with the lowest n values of the range.
func (u *Upstream) serveRandom(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Params struct {
			N   int `json:"n"`
			Min int `json:"min"`
			Max int `json:"max"`
		} `json:"params"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := make([]int, 0, req.Params.N)
	for i := 0; i < req.Params.N; i++ {
		data = append(data, req.Params.Min+i)
	}

	resp := map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result": map[string]any{
			"random": map[string]any{
				"method":         "generateSignedIntegers",
				"hashedApiKey":   "aGFzaA==",
				"n":              req.Params.N,
				"min":            req.Params.Min,
				"max":            req.Params.Max,
				"replacement":    false,
				"base":           10,
				"data":           data,
				"completionTime": "2024-03-01 12:00:00Z",
				"serialNumber":   u.serial.Add(1),
			},
			"signature":    "c2lnbmF0dXJl",
			"requestsLeft": 999,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
