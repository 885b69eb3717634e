// Package rates talks to a frankfurter-style FX rate provider. Every kind
// of failure — network error, non-success status, malformed payload,
// missing rate — collapses into ErrUnavailable; the caller only needs to
// know that no rate could be obtained. There is no caching and no retry.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrUnavailable is returned for any failure to obtain data from the
// rate provider. Match with errors.Is.
var ErrUnavailable = errors.New("rate provider unavailable")

// monthlyDays is the length of the rate series served by Monthly.
const monthlyDays = 30

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient returns a rate client for the provider at baseURL. The timeout
// bounds every outbound call; a timed-out request surfaces as ErrUnavailable.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

type rangeResponse struct {
	Rates map[string]map[string]float64 `json:"rates"`
}

// Latest returns the current rate of target per one unit of base. Identical
// currencies short-circuit to 1 without contacting the provider.
func (c *Client) Latest(ctx context.Context, base, target string) (float64, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)
	if base == target {
		return 1, nil
	}

	url := fmt.Sprintf("%s/latest?base=%s&symbols=%s", c.baseURL, base, target)
	var payload latestResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return 0, err
	}

	rate, ok := payload.Rates[target]
	if !ok {
		return 0, fmt.Errorf("no rate for %s->%s: %w", base, target, ErrUnavailable)
	}
	return rate, nil
}

// Currencies returns the sorted list of currency codes the provider quotes.
func (c *Client) Currencies(ctx context.Context) ([]string, error) {
	var payload map[string]string
	if err := c.getJSON(ctx, c.baseURL+"/currencies", &payload); err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(payload))
	for code := range payload {
		codes = append(codes, strings.ToUpper(code))
	}
	sort.Strings(codes)
	return codes, nil
}

// Monthly returns one rate per day for the past 30 days, oldest first.
// Days the provider has no quote for (weekends, holidays) carry the last
// known value forward; a gap at the start of the window is seeded from the
// current rate.
func (c *Client) Monthly(ctx context.Context, base, target string) ([]float64, error) {
	base = strings.ToUpper(base)
	target = strings.ToUpper(target)
	if base == target {
		series := make([]float64, monthlyDays)
		for i := range series {
			series[i] = 1
		}
		return series, nil
	}

	today := time.Now().UTC()
	start := today.AddDate(0, 0, -(monthlyDays - 1))
	url := fmt.Sprintf("%s/%s..%s?base=%s&symbols=%s",
		c.baseURL, start.Format("2006-01-02"), today.Format("2006-01-02"), base, target)

	var payload rangeResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	series := make([]float64, 0, monthlyDays)
	var last float64
	var haveLast bool
	for i := 0; i < monthlyDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		if daily, ok := payload.Rates[day]; ok {
			if rate, ok := daily[target]; ok {
				last = rate
				haveLast = true
			}
		}
		if !haveLast {
			rate, err := c.Latest(ctx, base, target)
			if err != nil {
				return nil, err
			}
			last = rate
			haveLast = true
		}
		series = append(series, last)
	}
	return series, nil
}

// Trend classifies a rate series as "up", "down", or "flat". A series is
// flat when the first-to-last change is under 0.1 percent in magnitude.
func Trend(series []float64) string {
	if len(series) < 2 {
		return "flat"
	}
	first, last := series[0], series[len(series)-1]
	if first == 0 {
		return "flat"
	}
	change := (last - first) / first * 100
	if change < 0.1 && change > -0.1 {
		return "flat"
	}
	if change > 0 {
		return "up"
	}
	return "down"
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build rate request: %w", ErrUnavailable)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("rate provider request: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rate provider status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode rate response: %w", ErrUnavailable)
	}
	return nil
}
