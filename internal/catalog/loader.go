package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/html"
)

// ErrTransport is returned when the listing cannot be fetched or parsed.
// Callers are expected to degrade to an empty catalog rather than fail.
var ErrTransport = errors.New("catalog transport failed")

// Loader fetches the track listing and streams song files from the server.
type Loader struct {
	baseURL    string
	songsPath  string
	cacheDir   string
	httpClient *http.Client
}

// NewLoader creates a loader for the given server base URL.
// Songs are resolved under songsPath and cached in cacheDir for playback.
func NewLoader(baseURL, songsPath, cacheDir string) *Loader {
	return &Loader{
		baseURL:   baseURL,
		songsPath: songsPath,
		cacheDir:  cacheDir,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load fetches and parses the directory listing into a catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	listingURL, err := url.JoinPath(l.baseURL, l.songsPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	listingURL += "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	return New(parseListing(doc)), nil
}

// Fetch downloads a song file into the local cache and returns its path.
// Already-cached files are reused without touching the network.
func (l *Loader) Fetch(ctx context.Context, file string) (string, error) {
	cached := filepath.Join(l.cacheDir, file)
	if _, err := os.Stat(cached); err == nil {
		return cached, nil
	}

	if err := os.MkdirAll(l.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}

	songURL, err := url.JoinPath(l.baseURL, l.songsPath, url.PathEscape(file))
	if err != nil {
		return "", fmt.Errorf("build song url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, songURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch song: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch song: unexpected status %s", resp.Status)
	}

	// Download to a temp file first so a partial transfer never
	// ends up in the cache under the final name.
	tmp, err := os.CreateTemp(l.cacheDir, file+".part-*")
	if err != nil {
		return "", fmt.Errorf("create cache file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download song: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close cache file: %w", err)
	}

	if err := os.Rename(tmp.Name(), cached); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalize cache file: %w", err)
	}

	return cached, nil
}
