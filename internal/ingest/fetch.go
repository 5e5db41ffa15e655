package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// DefaultBaseURL is the public home of the international results dataset.
const DefaultBaseURL = "https://raw.githubusercontent.com/martj42/international_results/master"

// Client downloads dataset files over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for baseURL with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Download fetches results, goalscorers and shootouts into dir, concurrently,
// and returns the written paths. Each file is written to a temporary name and
// renamed once complete, so an interrupted download never leaves a truncated
// CSV behind.
func (c *Client) Download(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	names := []string{ResultsFile, GoalsFile, ShootoutsFile}
	paths := make([]string, len(names))

	p := pool.New().WithErrors().WithContext(ctx)
	for i, name := range names {
		p.Go(func(ctx context.Context) error {
			dst := filepath.Join(dir, name)
			if err := c.get(ctx, "/"+name, dst); err != nil {
				return err
			}
			paths[i] = dst
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// get performs a GET against the dataset host and streams the body to dst.
func (c *Client) get(ctx context.Context, path, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}

	tmp := dst + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("download %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, dst)
}
