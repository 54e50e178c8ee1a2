package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/zargony/advent-of-code-2021/internal/input"
)

const year = 2021

// Client downloads puzzle inputs from adventofcode.com. Inputs are personal,
// so every request carries the account's session cookie.
type Client struct {
	baseURL    string
	session    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

func NewClient(baseURL, session string, logger *zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if session == "" {
		return nil, fmt.Errorf("session cookie is required, set AOC_SESSION")
	}

	return &Client{
		baseURL:    baseURL,
		session:    session,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}, nil
}

// Fetch downloads the input of one puzzle day.
func (c *Client) Fetch(ctx context.Context, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, year, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch input for day %d: %w", day, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching input for day %d", resp.Status, day)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Ensure makes the input file of a day available below dir, downloading it
// when missing. An existing file is never overwritten.
func (c *Client) Ensure(ctx context.Context, dir string, day int) error {
	path := filepath.Join(dir, input.Filename(day))
	if _, err := os.Stat(path); err == nil {
		c.logger.Debug().Str("file", path).Msg("Input file already present, skipping download")
		return nil
	}

	body, err := c.Fetch(ctx, day)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := os.WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("failed to write input file: %w", err)
	}

	c.logger.Info().Int("day", day).Str("file", path).Msg("Input file downloaded")

	return nil
}
