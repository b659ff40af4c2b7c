package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pocketfin/pocketfin_app/internal/apperrors"
	portsproviders "github.com/pocketfin/pocketfin_app/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// quoteResponse mirrors the provider's /quote payload. Only the current
// price is used; the remaining fields are kept for debugging.
type quoteResponse struct {
	Current       decimal.Decimal `json:"c"`
	High          decimal.Decimal `json:"h"`
	Low           decimal.Decimal `json:"l"`
	Open          decimal.Decimal `json:"o"`
	PreviousClose decimal.Decimal `json:"pc"`
}

// Client fetches live stock quotes from a Finnhub-compatible API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Ensure Client implements the price provider port
var _ portsproviders.PriceProvider = (*Client)(nil)

// NewClient creates a quote client. A zero timeout falls back to the default.
func NewClient(baseURL string, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchPrice retrieves the current quote for a symbol. All failures are
// wrapped in apperrors.ErrPriceProvider so callers can degrade uniformly.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s&token=%s", c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: building quote request for %s: %v", apperrors.ErrPriceProvider, symbol, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: fetching quote for %s: %v", apperrors.ErrPriceProvider, symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return decimal.Zero, fmt.Errorf("%w: quote for %s returned status %d", apperrors.ErrPriceProvider, symbol, resp.StatusCode)
	}

	var quote quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decoding quote for %s: %v", apperrors.ErrPriceProvider, symbol, err)
	}

	// The API reports 0 for unknown symbols instead of an error status.
	if quote.Current.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: no quote available for %s", apperrors.ErrPriceProvider, symbol)
	}
	return quote.Current, nil
}
