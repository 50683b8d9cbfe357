// Package input fetches puzzle inputs over HTTP and keeps a local copy so
// each day is downloaded at most once.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

// ErrMissingSession is returned when an input must be downloaded but no
// session cookie is configured.
var ErrMissingSession = errors.New("input: session is required to download inputs")

// StatusError reports a non-2xx download response.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string { return "get failed with " + e.Status }

// Cache stores raw inputs by day. Load must return an error matching
// os.ErrNotExist on a miss.
type Cache interface {
	Load(ctx context.Context, day int) (string, error)
	Save(ctx context.Context, day int, text string) error
}

// Client implements ports.InputSource.
type Client struct {
	cache   Cache
	base    *url.URL
	session string
	http    *http.Client
}

// New returns a client downloading from <baseURL>/day/<n>/input. A nil hc
// uses http.DefaultClient.
func New(cache Cache, baseURL, session string, hc *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{cache: cache, base: u, session: session, http: hc}, nil
}

func (c *Client) Get(ctx context.Context, day int) (string, error) {
	text, err := c.cache.Load(ctx, day)
	if err == nil {
		return text, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if c.session == "" {
		return "", ErrMissingSession
	}

	target := c.base.JoinPath("day", strconv.Itoa(day), "input")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("error fetching input data: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &StatusError{Status: res.Status}
	}
	b, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error fetching input data: %w", err)
	}
	text = string(b)
	if err := c.cache.Save(ctx, day, text); err != nil {
		return "", err
	}
	return text, nil
}
