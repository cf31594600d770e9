// Package terminal owns the input mode of the controlling terminal and
// delivers single key presses.
package terminal

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"

	keyBuffer = 16
)

// Session is the terminal mode of the process. For an interactive input it
// holds the saved original state, restored by Close.
type Session struct {
	in          *os.File
	out         io.Writer
	fd          int
	interactive bool
	state       *term.State
	keys        chan byte
	closeOnce   sync.Once
	logger      *zap.Logger
}

// Open switches an interactive input to raw single key mode and starts
// delivering key presses. A non-interactive input is left untouched and
// Keys returns nil.
func Open(in *os.File, out io.Writer, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{in: in, out: out, logger: logger}

	if in == nil {
		return s, nil
	}
	s.fd = int(in.Fd())
	if !term.IsTerminal(s.fd) {
		logger.Info("input is not a terminal, controls disabled")
		return s, nil
	}

	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to switch terminal to raw mode")
	}
	s.state = state
	s.interactive = true
	s.keys = make(chan byte, keyBuffer)

	if _, err := io.WriteString(out, hideCursor); err != nil {
		logger.Debug("failed to hide cursor", zap.Error(err))
	}

	go s.readKeys()

	return s, nil
}

// Interactive reports whether key presses can be read.
func (s *Session) Interactive() bool {
	return s.interactive
}

// Keys returns the channel of key presses; nil for a non-interactive input.
func (s *Session) Keys() <-chan byte {
	return s.keys
}

// Close restores the original terminal state. It is safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		if !s.interactive {
			return
		}
		if _, werr := io.WriteString(s.out, showCursor); werr != nil {
			s.logger.Debug("failed to show cursor", zap.Error(werr))
		}
		if rerr := term.Restore(s.fd, s.state); rerr != nil {
			err = errors.Wrap(rerr, "failed to restore terminal state")
		}
	})
	return err
}

// readKeys runs until the input ends. It stays blocked in Read after Close,
// the process exits right after that anyway.
func (s *Session) readKeys() {
	buf := make([]byte, 1)
	for {
		n, err := s.in.Read(buf)
		if err != nil {
			s.logger.Debug("stopped reading keys", zap.Error(err))
			close(s.keys)
			return
		}
		if n == 0 {
			continue
		}
		select {
		case s.keys <- buf[0]:
		default:
			// nobody is waiting and the buffer is full, drop the key
		}
	}
}
