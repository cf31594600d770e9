package domain

import "github.com/shopspring/decimal"

// Reading price data fetched for one pair in one refresh cycle.
type Reading struct {
	// Price last traded price.
	Price decimal.Decimal
	// High 24h high.
	High decimal.Decimal
	// Low 24h low.
	Low decimal.Decimal
	// OK false when the fetch failed and the reading was zeroed.
	OK bool
}

// ZeroReading returns the reading used when a fetch fails.
func ZeroReading() Reading {
	return Reading{
		Price: decimal.Zero,
		High:  decimal.Zero,
		Low:   decimal.Zero,
	}
}

// IsZero reports whether all price fields are zero.
func (r Reading) IsZero() bool {
	return r.Price.IsZero() && r.High.IsZero() && r.Low.IsZero()
}
