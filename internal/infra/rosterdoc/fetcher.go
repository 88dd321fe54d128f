// Package rosterdoc downloads externally hosted roster documents as plain text.
package rosterdoc

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"syscall"
	"time"

	"raffle-draw/internal/pkg/errs"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

var (
	ErrDocumentTooLarge = errs.New("roster document exceeds size limit")
	ErrUnsupportedLink  = errs.New("unsupported roster link")
	ErrBlockedHost      = errs.New("roster link points at an internal address")
	ErrFetcherClosed    = errs.New("roster fetcher closed")
)

const maxRedirects = 5

var (
	googleDocPattern   = regexp.MustCompile(`^/document/d/([\w-]+)`)
	googleSheetPattern = regexp.MustCompile(`^/spreadsheets/d/([\w-]+)`)
	driveFilePattern   = regexp.MustCompile(`^/file/d/([\w-]+)`)
	pastePattern       = regexp.MustCompile(`^/([A-Za-z0-9]+)/?$`)
)

type Config struct {
	Timeout            time.Duration
	MaxBytes           int64
	GCSCredentialsFile string
	// AllowPrivateHosts lets links reach loopback and private networks.
	// Only for local setups where the document host runs next to the service.
	AllowPrivateHosts  bool
}

// Fetcher downloads roster documents linked from public posts. Unless
// AllowPrivateHosts is set, it never connects to loopback, private,
// link-local or unspecified addresses, including after redirects and DNS
// resolution.
type Fetcher struct {
	http            *http.Client
	maxBytes        int64
	credentialsFile string
	allowPrivate    bool

	gcsOnce sync.Once
	mu      sync.RWMutex
	closed  bool
	gcs     *storage.Client
	gcsErr  error
}

func NewFetcher(cfg Config) *Fetcher {
	f := &Fetcher{
		maxBytes:        cfg.MaxBytes,
		credentialsFile: cfg.GCSCredentialsFile,
		allowPrivate:    cfg.AllowPrivateHosts,
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}
	if !f.allowPrivate {
		dialer.Control = refuseInternal
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	// Proxies would bypass the dial check.
	transport.Proxy = nil

	f.http = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errs.New(fmt.Sprintf("stopped after %d redirects", maxRedirects))
			}
			return f.checkHost(req.URL)
		},
	}
	return f
}

// refuseInternal runs after DNS resolution, for every connection the
// transport opens.
func refuseInternal(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return errs.Wrap(err, "split dial address")
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return errs.Wrap(ErrBlockedHost, host)
	}
	if isInternal(addr) {
		return errs.Wrap(ErrBlockedHost, host)
	}
	return nil
}

func isInternal(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsInterfaceLocalMulticast() ||
		addr.IsUnspecified()
}

// checkHost rejects literal internal addresses and localhost before any
// connection is attempted.
func (f *Fetcher) checkHost(u *url.URL) error {
	if f.allowPrivate {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return errs.Wrap(ErrUnsupportedLink, u.String())
	}
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return errs.Wrap(ErrBlockedHost, host)
	}
	if addr, err := netip.ParseAddr(host); err == nil && isInternal(addr) {
		return errs.Wrap(ErrBlockedHost, host)
	}
	return nil
}

func (f *Fetcher) FetchDocument(ctx context.Context, link string) (string, error) {
	if bucket, object, ok := ParseGCSLink(link); ok {
		return f.fetchGCS(ctx, bucket, object)
	}
	return f.fetchHTTP(ctx, RewriteURL(link))
}

func (f *Fetcher) fetchHTTP(ctx context.Context, link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", errs.Wrap(ErrUnsupportedLink, link)
	}
	if err := f.checkHost(u); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", errs.Wrap(err, "build document request")
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "download roster document")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("roster document returned HTTP %d", resp.StatusCode))
	}
	return f.read(resp.Body)
}

// fetchGCS holds the read lock for the whole download so Close waits for it.
func (f *Fetcher) fetchGCS(ctx context.Context, bucket, object string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return "", ErrFetcherClosed
	}

	client, err := f.storageClient()
	if err != nil {
		return "", err
	}
	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return "", errs.Wrap(err, fmt.Sprintf("open gs://%s/%s", bucket, object))
	}
	defer r.Close()
	return f.read(r)
}

// storageClient is created on first use; most rosters never touch GCS.
// Callers hold f.mu for reading.
func (f *Fetcher) storageClient() (*storage.Client, error) {
	f.gcsOnce.Do(func() {
		opts := []option.ClientOption{storage.WithDisabledClientMetrics()}
		if f.credentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(f.credentialsFile))
		} else {
			opts = append(opts, option.WithoutAuthentication())
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		f.gcs, f.gcsErr = storage.NewClient(ctx, opts...)
		if f.gcsErr != nil {
			f.gcsErr = errs.Wrap(f.gcsErr, "create storage client")
		}
	})
	return f.gcs, f.gcsErr
}

func (f *Fetcher) read(r io.Reader) (string, error) {
	limit := f.maxBytes
	if limit <= 0 {
		limit = 4 << 20
	}
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", errs.Wrap(err, "read roster document")
	}
	if int64(len(body)) > limit {
		return "", ErrDocumentTooLarge
	}
	return string(body), nil
}

func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.gcs == nil {
		return nil
	}
	err := f.gcs.Close()
	f.gcs = nil
	return err
}

// ParseGCSLink accepts gs://bucket/object and
// https://storage.googleapis.com/bucket/object.
func ParseGCSLink(link string) (string, string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return "", "", false
	}
	switch {
	case u.Scheme == "gs":
		object := strings.TrimPrefix(u.Path, "/")
		return u.Host, object, u.Host != "" && object != ""
	case strings.EqualFold(u.Host, "storage.googleapis.com"):
		parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", "", false
		}
		return parts[0], parts[1], true
	}
	return "", "", false
}

// RewriteURL turns share links into their plain-text download form.
func RewriteURL(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	switch host {
	case "docs.google.com":
		if m := googleDocPattern.FindStringSubmatch(u.Path); m != nil {
			return "https://docs.google.com/document/d/" + m[1] + "/export?format=txt"
		}
		if m := googleSheetPattern.FindStringSubmatch(u.Path); m != nil {
			return "https://docs.google.com/spreadsheets/d/" + m[1] + "/export?format=csv"
		}
	case "drive.google.com":
		if m := driveFilePattern.FindStringSubmatch(u.Path); m != nil {
			return "https://drive.google.com/uc?export=download&id=" + m[1]
		}
	case "dropbox.com":
		q := u.Query()
		q.Set("dl", "1")
		u.RawQuery = q.Encode()
		return u.String()
	case "pastebin.com":
		if m := pastePattern.FindStringSubmatch(u.Path); m != nil && m[1] != "raw" {
			return "https://pastebin.com/raw/" + m[1]
		}
	}
	return link
}
