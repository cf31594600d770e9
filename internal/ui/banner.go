package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const bannerArt = ` ____ _____ ____     _____ _____ ____  __  __
| __ )_   _/ ___|   |_   _| ____|  _ \|  \/  |
|  _ \ | || |   _____ | | |  _| | |_) | |\/| |
| |_) || || |__|_____|| | | |___|  _ <| |  | |
|____/ |_| \____|     |_| |_____|_| \_\_|  |_|`

// Banner prints the startup banner and the controls hint.
func Banner(out io.Writer) error {
	r := lipgloss.NewRenderer(out)
	s := newStyles(r)

	box := r.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("10")).
		Foreground(lipgloss.Color("10")).
		Padding(1, 3)

	text := box.Render(bannerArt + "\n\n" + s.brand.Render("▓▒░ 80s HACKER TERMINAL AESTHETIC ░▒▓"))
	hint := s.notice.Render("Press [R] to refresh | [Q] to quit")

	_, err := io.WriteString(out, "\n"+text+"\n\n"+hint+"\n\n")
	return errors.Wrap(err, "failed to write banner")
}
