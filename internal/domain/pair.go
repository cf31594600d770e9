// Package domain defines core data structures used throughout the dashboard.
package domain

import "fmt"

// Pair cryptocurrency trading pair.
type Pair struct {
	// From base currency symbol.
	From string
	// To quote currency symbol.
	To string
}

// String returns the string representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}

// ProductID returns the exchange product identifier, e.g. BTC-USD.
func (p Pair) ProductID() string {
	return fmt.Sprintf("%s-%s", p.From, p.To)
}

// TrackedPair pair shown on the dashboard together with its display metadata.
type TrackedPair struct {
	Pair
	// Glyph single character shown before the name.
	Glyph string
	// Name display name.
	Name string
}

// ID returns the exchange product identifier used as the snapshot key.
func (t TrackedPair) ID() string {
	return t.ProductID()
}

var defaultPairs = [...]TrackedPair{
	{Pair: Pair{From: "BTC", To: "USD"}, Glyph: "₿", Name: "BITCOIN"},
	{Pair: Pair{From: "ETH", To: "USD"}, Glyph: "♦", Name: "ETHEREUM"},
	{Pair: Pair{From: "SOL", To: "USD"}, Glyph: "◎", Name: "SOLANA"},
	{Pair: Pair{From: "SUI", To: "USD"}, Glyph: "◈", Name: "SUI"},
}

// DefaultPairs returns the fixed set of tracked pairs in display order.
// The returned slice is a fresh copy.
func DefaultPairs() []TrackedPair {
	pairs := make([]TrackedPair, len(defaultPairs))
	copy(pairs, defaultPairs[:])
	return pairs
}
