package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

// maxBodySize bounds a provider response.
const maxBodySize = 1 << 16

// Client fetches puzzles from a provider over HTTP. It does not retry.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Source = (*Client)(nil)

// NewClient creates a client for the provider at baseURL.
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// NewPuzzle requests a puzzle. Every failure wraps ErrProviderUnavailable.
func (c *Client) NewPuzzle(ctx context.Context, userID string) (core.Puzzle, error) {
	endpoint := c.baseURL + "/init"
	if userID != "" {
		endpoint += "/user/" + url.PathEscape(userID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return core.Puzzle{}, unavailable(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return core.Puzzle{}, unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return core.Puzzle{}, unavailable(fmt.Errorf("unexpected status %s", resp.Status))
	}

	var body wirePuzzle
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&body); err != nil {
		return core.Puzzle{}, unavailable(fmt.Errorf("malformed body: %w", err))
	}
	p, err := body.puzzle()
	if err != nil {
		return core.Puzzle{}, unavailable(err)
	}
	if err := ValidatePuzzle(p); err != nil {
		return core.Puzzle{}, unavailable(err)
	}
	return p, nil
}

// wirePuzzle is the response body as sent. Pointer fields tell a missing
// field apart from a zero value.
type wirePuzzle struct {
	UserID   *string   `json:"userId"`
	Width    *int      `json:"width"`
	Height   *int      `json:"height"`
	MaxMoves *int      `json:"maxMoves"`
	Target   []float64 `json:"target"`
}

// puzzle converts the body, rejecting missing fields and a target that is
// not exactly three channels.
func (w wirePuzzle) puzzle() (core.Puzzle, error) {
	var missing []string
	if w.UserID == nil {
		missing = append(missing, "userId")
	}
	if w.Width == nil {
		missing = append(missing, "width")
	}
	if w.Height == nil {
		missing = append(missing, "height")
	}
	if w.MaxMoves == nil {
		missing = append(missing, "maxMoves")
	}
	if w.Target == nil {
		missing = append(missing, "target")
	}
	if len(missing) > 0 {
		return core.Puzzle{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}
	if len(w.Target) != 3 {
		return core.Puzzle{}, fmt.Errorf("target has %d channels, expected 3", len(w.Target))
	}

	return core.Puzzle{
		UserID:   *w.UserID,
		Width:    *w.Width,
		Height:   *w.Height,
		MaxMoves: *w.MaxMoves,
		Target:   core.RGB{w.Target[0], w.Target[1], w.Target[2]},
	}, nil
}

func unavailable(err error) error {
	return fmt.Errorf("provider: %w: %w", ErrProviderUnavailable, err)
}
