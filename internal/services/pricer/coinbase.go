package pricer

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/vadiminshakov/btcterm/internal/clients"
	"github.com/vadiminshakov/btcterm/internal/domain"
)

type quoteClient interface {
	Ticker(ctx context.Context, productID string) (clients.Ticker, error)
	Stats(ctx context.Context, productID string) (clients.Stats, error)
}

// CoinbasePricer builds readings from the Coinbase ticker and stats endpoints.
type CoinbasePricer struct {
	client quoteClient
	logger *zap.Logger
}

func NewCoinbasePricer(client quoteClient, logger *zap.Logger) *CoinbasePricer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoinbasePricer{client: client, logger: logger}
}

// GetReading never fails: any error is turned into a zero reading for the whole pair.
// A missing price reads as 0, a null or empty one zeroes the pair. A stats call
// answered with a non-200 status keeps the price and uses it as high and low.
func (p *CoinbasePricer) GetReading(ctx context.Context, pair domain.TrackedPair) domain.Reading {
	id := pair.ID()
	logger := p.logger.With(zap.String("pair", id))

	ticker, err := p.client.Ticker(ctx, id)
	if err != nil {
		logger.Debug("ticker request failed, using zero reading", zap.Error(err))
		return domain.ZeroReading()
	}

	if ticker.Price.Present && !ticker.Price.Valid {
		logger.Debug("ticker price is not a number, using zero reading")
		return domain.ZeroReading()
	}

	price := decimal.Zero
	if ticker.Price.Valid {
		price = ticker.Price.Decimal
	}
	high, low := price, price

	stats, err := p.client.Stats(ctx, id)
	switch {
	case err == nil:
		if stats.High.Valid {
			high = stats.High.Decimal
		}
		if stats.Low.Valid {
			low = stats.Low.Decimal
		}
	case clients.IsStatusError(err):
		logger.Debug("stats unavailable, falling back to price", zap.Error(err))
	default:
		logger.Debug("stats request failed, using zero reading", zap.Error(err))
		return domain.ZeroReading()
	}

	return domain.Reading{Price: price, High: high, Low: low, OK: true}
}
