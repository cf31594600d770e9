// Package ui turns readings into display strings and draws the dashboard.
package ui

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vadiminshakov/btcterm/internal/domain"
)

// noChange is shown whenever a change cannot be computed.
const noChange = "0.00%"

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Direction selects the color and arrow of the change column.
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
)

// Arrow returns the glyph for the direction.
func (d Direction) Arrow() string {
	if d == DirectionUp {
		return "▲"
	}
	return "▼"
}

// Row display strings for one reading.
type Row struct {
	PriceText  string
	ChangeText string
	Direction  Direction
	HighText   string
	LowText    string
}

// Format builds the display strings of a reading. It accepts any reading,
// including the all-zero one produced by a failed fetch.
func Format(r domain.Reading) Row {
	change := ChangeText(r)
	return Row{
		PriceText:  FormatPrice(r.Price),
		ChangeText: change,
		Direction:  DirectionOf(change),
		HighText:   FormatBound(r.High),
		LowText:    FormatBound(r.Low),
	}
}

// ChangeText returns the change from the 24h low in percent, always with a plus sign.
// Without a usable range or price it returns "0.00%".
func ChangeText(r domain.Reading) string {
	if !r.High.GreaterThan(r.Low) || !r.Price.IsPositive() || !r.Low.IsPositive() {
		return noChange
	}
	change := r.Price.Sub(r.Low).Div(r.Low).Mul(hundred)
	return "+" + change.StringFixed(2) + "%"
}

// DirectionOf classifies a change text: only a leading plus counts as up,
// so "0.00%" is shown as down.
func DirectionOf(change string) Direction {
	if strings.HasPrefix(change, "+") {
		return DirectionUp
	}
	return DirectionDown
}

// FormatPrice formats a price with precision depending on its magnitude:
// 2 decimals from 1000, 4 decimals from 1, 6 decimals below 1.
func FormatPrice(d decimal.Decimal) string {
	switch {
	case d.GreaterThanOrEqual(thousand):
		return money(d, 2)
	case d.GreaterThanOrEqual(one):
		return money(d, 4)
	default:
		return money(d, 6)
	}
}

// FormatBound formats a 24h high or low: 2 decimals from 1, 4 decimals below.
func FormatBound(d decimal.Decimal) string {
	if d.GreaterThanOrEqual(one) {
		return money(d, 2)
	}
	return money(d, 4)
}

// money prints with thousands separators, e.g. $116,802.19.
func money(d decimal.Decimal, places int32) string {
	p := message.NewPrinter(language.English)
	f := d.Round(places).InexactFloat64()
	switch places {
	case 2:
		return p.Sprintf("$%.2f", f)
	case 4:
		return p.Sprintf("$%.4f", f)
	default:
		return p.Sprintf("$%.6f", f)
	}
}
