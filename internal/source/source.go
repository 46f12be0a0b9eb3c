// Package source opens the text a triangle is read from: standard input, a
// local file, or an http(s) URL.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"min_triangle_path/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const Stdin = "-"

var (
	ErrNotFound    = errors.New("input not found")
	ErrRateLimited = errors.New("input server rate limited")
)

type FetchError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s", e.URL, e.Status)
}

type Client struct {
	http    *resty.Client
	stdin   io.Reader
	timeout time.Duration
	logger  *zap.Logger
}

func NewClient(cfg config.Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("source")

	return &Client{
		http:    newHTTPClient(logger),
		stdin:   os.Stdin,
		timeout: cfg.Timeout,
		logger:  logger,
	}
}

func newHTTPClient(logger *zap.Logger) *resty.Client {
	return resty.New().
		SetLogger(logger.Sugar()).
		SetHeader("Accept", "text/plain").
		SetRetryCount(1).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp != nil && resp.StatusCode() == http.StatusTooManyRequests
		})
}

// WithStdin returns a copy of c that reads r for the "-" location.
func (c *Client) WithStdin(r io.Reader) *Client {
	clone := *c
	clone.stdin = r
	return &clone
}

func (c *Client) WithLogger(logger *zap.Logger) *Client {
	clone := *c
	clone.logger = logger.Named("source")
	clone.http = newHTTPClient(clone.logger)
	return &clone
}

// WithTimeout returns a copy of c whose remote fetches, retries included,
// are bounded by d. Zero disables the bound.
func (c *Client) WithTimeout(d time.Duration) *Client {
	clone := *c
	clone.timeout = d
	return &clone
}

// Open returns a reader for location. An empty location or "-" is standard
// input; the caller must close the result.
func (c *Client) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	location = strings.TrimSpace(location)
	switch {
	case location == "" || location == Stdin:
		c.logger.Debug("reading standard input")
		return io.NopCloser(c.stdin), nil
	case isURL(location):
		return c.fetch(ctx, location)
	default:
		return c.openFile(location)
	}
}

func (c *Client) openFile(path string) (io.ReadCloser, error) {
	c.logger.Debug("opening file", zap.String("path", path))
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open input: %w", err)
	}
	return file, nil
}

func (c *Client) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch input: %w", err)
	}
	c.logger.Debug("fetched input",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode()),
		zap.Int("bytes", len(resp.Body())),
		zap.Duration("elapsed", time.Since(start)),
	)
	if resp.IsError() {
		return nil, fetchErrorFromResponse(url, resp)
	}
	return io.NopCloser(bytes.NewReader(resp.Body())), nil
}

func fetchErrorFromResponse(url string, resp *resty.Response) error {
	fetchErr := &FetchError{
		URL:        url,
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
	}

	switch resp.StatusCode() {
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: %s", ErrNotFound, fetchErr.Error())
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, fetchErr.Error())
	default:
		return fetchErr
	}
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
