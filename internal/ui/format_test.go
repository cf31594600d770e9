package ui

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vadiminshakov/btcterm/internal/domain"
)

func reading(price, high, low string) domain.Reading {
	return domain.Reading{
		Price: decimal.RequireFromString(price),
		High:  decimal.RequireFromString(high),
		Low:   decimal.RequireFromString(low),
		OK:    true,
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"67012.55", "$67,012.55"},
		{"1234567.891", "$1,234,567.89"},
		{"1000", "$1,000.00"},
		{"999.5", "$999.5000"},
		{"150.5", "$150.5000"},
		{"1", "$1.0000"},
		{"0.5", "$0.500000"},
		{"0.000123", "$0.000123"},
		{"0", "$0.000000"},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestFormatPrice_DecimalPlaces(t *testing.T) {
	twoPlaces := regexp.MustCompile(`^\$\d{1,3}(,\d{3})+\.\d{2}$`)
	fourPlaces := regexp.MustCompile(`^\$\d{1,3}\.\d{4}$`)
	sixPlaces := regexp.MustCompile(`^\$0\.\d{6}$`)

	for _, p := range []string{"1000", "1000.001", "25000.4", "99999.99", "123456789.1"} {
		assert.Regexp(t, twoPlaces, FormatPrice(decimal.RequireFromString(p)), p)
	}
	for _, p := range []string{"1", "1.23456", "42", "999.99"} {
		assert.Regexp(t, fourPlaces, FormatPrice(decimal.RequireFromString(p)), p)
	}
	for _, p := range []string{"0", "0.1", "0.999", "0.0000001"} {
		assert.Regexp(t, sixPlaces, FormatPrice(decimal.RequireFromString(p)), p)
	}
}

func TestFormatBound(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"68000", "$68,000.00"},
		{"110", "$110.00"},
		{"1", "$1.00"},
		{"0.25", "$0.2500"},
		{"0", "$0.0000"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBound(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestChangeText(t *testing.T) {
	tests := []struct {
		name      string
		reading   domain.Reading
		want      string
		direction Direction
	}{
		{"price within range", reading("105", "110", "100"), "+5.00%", DirectionUp},
		{"price at low", reading("100", "110", "100"), "+0.00%", DirectionUp},
		{"failed fetch", domain.ZeroReading(), "0.00%", DirectionDown},
		{"degenerate range", reading("100", "100", "100"), "0.00%", DirectionDown},
		{"zero price", reading("0", "110", "100"), "0.00%", DirectionDown},
		{"zero low", reading("5", "10", "0"), "0.00%", DirectionDown},
		{"rounding", reading("1.23456", "2", "1"), "+23.46%", DirectionUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ChangeText(tt.reading)
			assert.Equal(t, tt.want, change)
			assert.Equal(t, tt.direction, DirectionOf(change))
		})
	}
}

func TestFormat(t *testing.T) {
	row := Format(reading("105", "110", "100"))
	assert.Equal(t, Row{
		PriceText:  "$105.0000",
		ChangeText: "+5.00%",
		Direction:  DirectionUp,
		HighText:   "$110.00",
		LowText:    "$100.00",
	}, row)
	assert.Equal(t, "▲", row.Direction.Arrow())

	zero := Format(domain.ZeroReading())
	assert.Equal(t, "$0.000000", zero.PriceText)
	assert.Equal(t, "0.00%", zero.ChangeText)
	assert.Equal(t, "▼", zero.Direction.Arrow())
	assert.Equal(t, "$0.0000", zero.HighText)
	assert.Equal(t, "$0.0000", zero.LowText)
}
