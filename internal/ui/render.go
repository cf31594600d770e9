package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/btcterm/internal/domain"
)

const (
	// boxWidth inner width of the dashboard frame.
	boxWidth = 46

	clearScreen = "\033[2J\033[H"
	// lines end with CR LF because the terminal may be in raw mode.
	newline = "\r\n"

	title = " ₿ITCOIN DASHBOARD "
)

// closing row separator, a double line sets the pair list apart from the footer.
const (
	lastRowLeft  = "╞"
	lastRowFill  = "═"
	lastRowRight = "╡"
)

var border = lipgloss.NormalBorder()

type styles struct {
	frame  lipgloss.Style
	bold   lipgloss.Style
	brand  lipgloss.Style
	live   lipgloss.Style
	up     lipgloss.Style
	down   lipgloss.Style
	stale  lipgloss.Style
	notice lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	green := lipgloss.Color("10")
	return styles{
		frame:  r.NewStyle().Foreground(green),
		bold:   r.NewStyle().Bold(true),
		brand:  r.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		live:   r.NewStyle().Foreground(green),
		up:     r.NewStyle().Foreground(green),
		down:   r.NewStyle().Foreground(lipgloss.Color("9")),
		stale:  r.NewStyle().Faint(true),
		notice: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// Renderer draws the full dashboard. Colors are dropped automatically when
// the output does not support them.
type Renderer struct {
	out    io.Writer
	styles styles
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Render clears the screen and draws header, one block per snapshot entry and footer.
func (r *Renderer) Render(snapshot *domain.Snapshot, now time.Time) error {
	var b strings.Builder
	b.WriteString(clearScreen)

	r.header(&b, now)
	entries := snapshot.Entries()
	for i, e := range entries {
		r.row(&b, e, i == len(entries)-1)
	}
	r.footer(&b)

	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Wrap(err, "failed to write dashboard")
	}
	return nil
}

// Farewell prints the goodbye line.
func (r *Renderer) Farewell() error {
	_, err := io.WriteString(r.out, newline+r.styles.live.Render("👋 Bye!")+newline+newline)
	return errors.Wrap(err, "failed to write farewell")
}

func (r *Renderer) header(b *strings.Builder, now time.Time) {
	left := (boxWidth - lipgloss.Width(title)) / 2
	right := boxWidth - lipgloss.Width(title) - left
	r.edge(b, border.TopLeft, strings.Repeat(border.Top, left)+title+strings.Repeat(border.Top, right), border.TopRight)

	r.line(b, " "+r.styles.brand.Render("BTC-TERM v1.0"))
	r.line(b, " "+r.styles.live.Render("● LIVE")+" | "+now.Format("15:04:05"))
	r.separator(b, false)
}

func (r *Renderer) row(b *strings.Builder, e domain.SnapshotEntry, last bool) {
	row := Format(e.Reading)

	change := r.styles.down
	if row.Direction == DirectionUp {
		change = r.styles.up
	}

	priceLine := "  " + r.styles.bold.Render(fmt.Sprintf("%-14s", row.PriceText)) +
		"  " + change.Render(row.Direction.Arrow()+" "+row.ChangeText)
	if !e.Reading.OK {
		priceLine += " " + r.styles.stale.Render("STALE")
	}

	r.line(b, "  "+r.styles.bold.Render(fmt.Sprintf("%s %-10s", e.Pair.Glyph, e.Pair.Name)))
	r.line(b, "")
	r.line(b, priceLine)
	r.line(b, "")
	r.line(b, fmt.Sprintf("  HIGH: %-12s  LOW: %s", row.HighText, row.LowText))
	r.separator(b, last)
}

func (r *Renderer) footer(b *strings.Builder) {
	r.line(b, "  "+r.styles.bold.Render("CONTROLS:")+" [R] Refresh  [Q] Quit")
	r.edge(b, border.BottomLeft, strings.Repeat(border.Bottom, boxWidth), border.BottomRight)
	b.WriteString(r.styles.brand.Render("▓▒░ LIVE FROM COINBASE ░▒▓"))
	b.WriteString(newline)
}

func (r *Renderer) separator(b *strings.Builder, last bool) {
	if last {
		r.edge(b, lastRowLeft, strings.Repeat(lastRowFill, boxWidth), lastRowRight)
		return
	}
	r.edge(b, border.MiddleLeft, strings.Repeat(border.Top, boxWidth), border.MiddleRight)
}

// line draws content between vertical borders, padded to the frame width.
func (r *Renderer) line(b *strings.Builder, content string) {
	pad := boxWidth - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	b.WriteString(r.styles.frame.Render(border.Left))
	b.WriteString(content)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(r.styles.frame.Render(border.Right))
	b.WriteString(newline)
}

func (r *Renderer) edge(b *strings.Builder, left, fill, right string) {
	b.WriteString(r.styles.frame.Render(left + fill + right))
	b.WriteString(newline)
}
