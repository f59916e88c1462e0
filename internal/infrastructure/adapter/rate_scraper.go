package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/sony/gobreaker"
)

// ---------------------------------------------------------------------------
// Scraped rate provider – published daily-rates page behind a breaker
// ---------------------------------------------------------------------------

// ScrapedRateProvider pulls the current 30-year FHA rate from a published
// daily-rates page. The scrape sits behind a circuit breaker so a flapping
// upstream trips fast and the composite provider can move on to its
// fallbacks instead of stalling every calculation.
type ScrapedRateProvider struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewScrapedRateProvider creates a scraper for the given rates page.
func NewScrapedRateProvider(url string, logger *slog.Logger) *ScrapedRateProvider {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "rate-scraper",
		MaxRequests: 1,
		Interval:    5 * time.Minute,
		Timeout:     10 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("rate scraper breaker state change",
				"breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &ScrapedRateProvider{
		url:     url,
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: breaker,
		logger:  logger,
	}
}

// CurrentRate fetches and parses the rates page. Implements port.RateProvider.
func (p *ScrapedRateProvider) CurrentRate(ctx context.Context) (float64, error) {
	result, err := p.breaker.Execute(func() (interface{}, error) {
		return p.scrape(ctx)
	})
	if err != nil {
		return 0, fmt.Errorf("scrape rate: %w", err)
	}
	return result.(float64), nil
}

func (p *ScrapedRateProvider) scrape(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "affordability-service/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rates page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse rates page: %w", err)
	}

	return extractFHARate(doc)
}

// extractFHARate walks the rate table looking for the 30-year FHA row and
// pulls the first percentage out of it.
func extractFHARate(doc *goquery.Document) (float64, error) {
	var rate float64
	var found bool

	doc.Find("table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := strings.ToLower(row.Find("td").First().Text())
		if !strings.Contains(label, "fha") || !strings.Contains(label, "30") {
			return true
		}

		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			if found {
				return
			}
			if r, ok := parsePercent(cell.Text()); ok {
				rate = r
				found = true
			}
		})
		return !found
	})

	if !found {
		return 0, fmt.Errorf("no 30-year FHA rate found on page")
	}
	return rate, nil
}

// parsePercent turns cell text like "6.875%" into 6.875. Rates outside the
// plausible 1-20% band are rejected as parse noise.
func parsePercent(text string) (float64, bool) {
	text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "%"))
	r, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	if r < 1 || r > 20 {
		return 0, false
	}
	return r, true
}
