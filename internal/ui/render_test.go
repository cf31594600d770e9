package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/btcterm/internal/domain"
)

func testSnapshot() *domain.Snapshot {
	s := domain.NewSnapshot(domain.DefaultPairs())
	s.Set("BTC-USD", reading("67012.55", "68000", "66000"))
	s.Set("ETH-USD", reading("105", "110", "100"))
	s.Set("SOL-USD", reading("100", "100", "100"))
	// SUI-USD keeps the zero reading of a failed fetch
	return s
}

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.Local)

	require.NoError(t, NewRenderer(&buf).Render(testSnapshot(), now))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, clearScreen))
	assert.Contains(t, out, "BTC-TERM v1.0")
	assert.Contains(t, out, "15:04:05")
	assert.Contains(t, out, "CONTROLS:")
	assert.Contains(t, out, "[R] Refresh")
	assert.Contains(t, out, "[Q] Quit")

	assert.Contains(t, out, "$67,012.55")
	assert.Contains(t, out, "▲ +1.53%")
	assert.Contains(t, out, "▲ +5.00%")
	assert.Contains(t, out, "HIGH: $68,000.00")
	assert.Contains(t, out, "LOW: $66,000.00")
	assert.Contains(t, out, "$0.000000")

	// pairs in fixed order
	idx := func(s string) int { return strings.Index(out, s) }
	assert.Less(t, idx("BITCOIN"), idx("ETHEREUM"))
	assert.Less(t, idx("ETHEREUM"), idx("SOLANA"))
	assert.Less(t, idx("SOLANA"), idx("SUI "))

	// only the failed pair is marked
	assert.Equal(t, 1, strings.Count(out, "STALE"))
	assert.Equal(t, 2, strings.Count(out, "▼ 0.00%"))

	// header separator plus one between every pair, a distinct one after the last
	assert.Equal(t, 4, strings.Count(out, border.MiddleLeft))
	assert.Equal(t, 1, strings.Count(out, lastRowLeft))
	assert.Less(t, idx(lastRowLeft), idx("CONTROLS:"))
}

func TestRenderer_FrameIsAligned(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Render(testSnapshot(), time.Now()))

	lines := strings.Split(strings.TrimPrefix(buf.String(), clearScreen), newline)
	framed := 0
	for _, l := range lines {
		if l == "" || strings.HasPrefix(l, "▓") {
			continue
		}
		framed++
		assert.Equal(t, boxWidth+2, lipgloss.Width(l), "line %q", l)
	}
	// header 4, five lines plus separator per pair, footer 2
	assert.Equal(t, 4+6*4+2, framed)
}

func TestRenderer_EmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Render(domain.NewSnapshot(nil), time.Now()))
	assert.Contains(t, buf.String(), "CONTROLS:")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRenderer_WriteError(t *testing.T) {
	r := NewRenderer(failingWriter{})
	assert.Error(t, r.Render(testSnapshot(), time.Now()))
	assert.Error(t, r.Farewell())
}

func TestRenderer_Farewell(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf).Farewell())
	assert.Contains(t, buf.String(), "Bye!")
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Banner(&buf))
	assert.Contains(t, buf.String(), "80s HACKER TERMINAL AESTHETIC")
	assert.Contains(t, buf.String(), "Press [R] to refresh | [Q] to quit")
}
