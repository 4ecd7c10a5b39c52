package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bitcoin-sv/bank-wallet/internal/coin"
	"github.com/bitcoin-sv/bank-wallet/internal/rate"
)

const timeoutDefault = 10 * time.Second

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidResponse  = errors.New("invalid rate response")
)

type rateResponse struct {
	Rate decimal.Decimal `json:"rate"`
	Date int64           `json:"date"`
}

// Client fetches rates from a rates API serving
// {base}/latest/{currency}/{coin}/index.json and
// {base}/historical/{coin}/{currency}/{yyyy}/{MM}/{dd}/{HH}/{mm}/index.json.
type Client struct {
	client  http.Client
	baseURL string
	logger  *slog.Logger
}

func WithLogger(logger *slog.Logger) func(*Client) {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithTimeout(timeout time.Duration) func(*Client) {
	return func(c *Client) {
		c.client.Timeout = timeout
	}
}

func New(baseURL string, opts ...func(client *Client)) (*Client, error) {
	_, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rates api url: %w", err)
	}

	c := &Client{
		client:  http.Client{Timeout: timeoutDefault},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.logger = c.logger.With(slog.String("module", "rate-network"))

	return c, nil
}

func (c *Client) GetLatestRate(ctx context.Context, cn coin.Coin, currencyCode string) (rate.Rate, error) {
	path := fmt.Sprintf("latest/%s/%s/index.json", currencyCode, cn)

	resp, err := c.get(ctx, path)
	if err != nil {
		return rate.Rate{}, err
	}

	return rate.Rate{Coin: cn, CurrencyCode: currencyCode, Value: resp.Rate, Timestamp: resp.Date}, nil
}

func (c *Client) GetRate(ctx context.Context, cn coin.Coin, currencyCode string, date time.Time) (decimal.Decimal, error) {
	date = date.UTC()
	path := fmt.Sprintf("historical/%s/%s/%s/index.json", cn, currencyCode, date.Format("2006/01/02/15/04"))

	resp, err := c.get(ctx, path)
	if err != nil {
		return decimal.Zero, err
	}

	return resp.Rate, nil
}

func (c *Client) get(ctx context.Context, path string) (*rateResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to get rate failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Join(ErrUnexpectedStatus, fmt.Errorf("path: %s, status: %s", path, resp.Status))
		// client errors other than rate limiting are not retried
		if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError && resp.StatusCode != http.StatusTooManyRequests {
			return nil, errors.Join(rate.ErrRequestRejected, err)
		}
		return nil, err
	}

	var result rateResponse
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		return nil, errors.Join(ErrInvalidResponse, err)
	}

	if !result.Rate.IsPositive() {
		return nil, errors.Join(ErrInvalidResponse, fmt.Errorf("path: %s, rate: %s", path, result.Rate))
	}

	c.logger.Debug("Rate fetched", slog.String("path", path), slog.String("rate", result.Rate.String()))

	return &result, nil
}
