package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	"gitlab.com/judgehub-2025.net/internal/domain"
)

const defaultFetchTimeout = 30 * time.Second

// Fetcher is the shared HTTP plumbing behind every platform client.
// Safe for concurrent use.
type Fetcher struct {
	httpClient *http.Client
	logger     primary.Logger
}

func NewFetcher(logger primary.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: defaultFetchTimeout,
		},
		logger: logger,
	}
}

// GetJSON fetches url and decodes its JSON body into out. Non-2xx
// statuses and decode failures surface as domain.TransportError.
func (f *Fetcher) GetJSON(ctx context.Context, platform domain.Platform, op, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &domain.TransportError{Platform: platform, Op: op, Err: err}
	}

	f.logger.Debug("fetching upstream resource", "platform", platform, "op", op, "url", url)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return &domain.TransportError{Platform: platform, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &domain.TransportError{
			Platform: platform,
			Op:       op,
			Err:      fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Platform: platform, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// GetText fetches url and returns the raw body. Used for non-JSON
// upstream resources such as TOML category listings.
func (f *Fetcher) GetText(ctx context.Context, platform domain.Platform, op, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.TransportError{Platform: platform, Op: op, Err: err}
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Platform: platform, Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &domain.TransportError{
			Platform: platform,
			Op:       op,
			Err:      fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Platform: platform, Op: op, Err: err}
	}
	return body, nil
}
