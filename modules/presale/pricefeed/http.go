package pricefeed

import (
	"context"
	"net/http"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cenkalti/backoff/v5"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/presale-ledger/modules/presale/internal/entity"
	"github.com/gaze-network/presale-ledger/pkg/httpclient"
	"github.com/gaze-network/presale-ledger/pkg/logger"
	"github.com/gaze-network/presale-ledger/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

const (
	DefaultRetries    = 3
	DefaultRetryDelay = 200 * time.Millisecond
	DefaultPath       = "/price"
)

type HTTPConfig struct {
	URL        string        `mapstructure:"url"`
	Path       string        `mapstructure:"path"`
	Retries    uint          `mapstructure:"retries"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Debug      bool          `mapstructure:"debug"`
}

// quoteResponse is the body served by the quote endpoint, e.g. {"price":"3521.04","updatedAt":1714521600}.
type quoteResponse struct {
	Price     decimal.Decimal `json:"price"`
	UpdatedAt int64           `json:"updatedAt"`
}

// HTTPFeed fetches quotes from a JSON endpoint, retrying transient failures.
type HTTPFeed struct {
	client     *httpclient.Client
	path       string
	decimals   uint8
	retries    uint
	retryDelay time.Duration
}

func NewHTTPFeed(config HTTPConfig, feedDecimals uint8) (*HTTPFeed, error) {
	client, err := httpclient.New(config.URL, httpclient.Config{
		Debug:   config.Debug,
		Timeout: config.Timeout,
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create price feed http client")
	}
	return &HTTPFeed{
		client:     client,
		path:       utils.Default(config.Path, DefaultPath),
		decimals:   feedDecimals,
		retries:    utils.Default(config.Retries, DefaultRetries),
		retryDelay: utils.Default(config.RetryDelay, DefaultRetryDelay),
	}, nil
}

func (f *HTTPFeed) Decimals() uint8 {
	return f.decimals
}

func (f *HTTPFeed) LatestPrice(ctx context.Context) (entity.Price, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = f.retryDelay
	policy.MaxInterval = f.retryDelay * 10

	notify := func(err error, next time.Duration) {
		logger.WarnContext(ctx, "Price feed request failed, retrying",
			slogx.String("url", f.client.BaseURL().String()),
			slogx.Duration("next", next),
			slogx.Error(err),
		)
	}
	price, err := backoff.Retry(ctx, func() (entity.Price, error) {
		return f.fetch(ctx)
	},
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(f.retries),
		backoff.WithNotify(notify),
	)
	if err != nil {
		return entity.Price{}, errors.Wrap(err, "failed to fetch price quote")
	}
	return price, nil
}

func (f *HTTPFeed) fetch(ctx context.Context) (entity.Price, error) {
	resp, err := f.client.Get(ctx, f.path, httpclient.RequestOptions{})
	if err != nil {
		return entity.Price{}, errors.WithStack(err)
	}
	status := resp.StatusCode()
	switch {
	case status >= http.StatusInternalServerError || status == http.StatusTooManyRequests:
		return entity.Price{}, errors.Errorf("price feed responded %d", status)
	case status != http.StatusOK:
		return entity.Price{}, backoff.Permanent(errors.Errorf("price feed responded %d", status))
	}

	var body quoteResponse
	if err := resp.UnmarshalBody(&body); err != nil {
		return entity.Price{}, backoff.Permanent(errors.WithStack(err))
	}
	// negative quotes are passed through so the ledger rejects them
	answer := body.Price.Shift(int32(f.decimals)).Truncate(0).BigInt()

	updatedAt := time.Unix(body.UpdatedAt, 0).UTC()
	if body.UpdatedAt == 0 {
		updatedAt = time.Time{}
	}
	return entity.Price{
		Answer:    answer,
		Decimals:  f.decimals,
		UpdatedAt: updatedAt,
	}, nil
}

// FormatPrice renders a feed answer as a human decimal.
func FormatPrice(p entity.Price) string {
	if p.Answer == nil {
		return "0"
	}
	return decimal.NewFromBigInt(p.Answer, -int32(p.Decimals)).String()
}
