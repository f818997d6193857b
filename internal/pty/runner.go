// Package pty runs a program inside a pseudo-terminal so it can be driven like
// a user at a keyboard. The end-to-end tests use it to exercise the real binary.
package pty

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
)

// Size represents terminal dimensions in rows and columns.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner is the interface for spawning and controlling a PTY.
// Implementations can be swapped (e.g. creack/pty, or a mock for tests).
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. Spawns cmd in a PTY with the given size.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	// Context cancellation is handled by the caller (e.g. closing the returned ReadWriteCloser).
	return f, nil
}

// Resize implements Runner. The rwc must be the *os.File returned by Start;
// other types are a no-op.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// ErrClosed is returned when the program's output ends before a match.
var ErrClosed = errors.New("pty: output closed")

// Session is a running program with its accumulated screen output.
type Session struct {
	runner Runner
	cmd    *exec.Cmd
	rwc    io.ReadWriteCloser

	mu      sync.Mutex
	out     bytes.Buffer
	changed chan struct{}
	done    bool
	readErr error
}

// Start launches cmd through runner and begins collecting its output.
func Start(ctx context.Context, runner Runner, cmd *exec.Cmd, size Size) (*Session, error) {
	rwc, err := runner.Start(ctx, cmd, size)
	if err != nil {
		return nil, err
	}
	s := &Session{runner: runner, cmd: cmd, rwc: rwc, changed: make(chan struct{})}
	go s.read()
	return s, nil
}

func (s *Session) read() {
	buf := make([]byte, 4096)
	for {
		n, err := s.rwc.Read(buf)
		s.mu.Lock()
		s.out.Write(buf[:n])
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.readErr = err
			}
		}
		close(s.changed)
		s.changed = make(chan struct{})
		s.mu.Unlock()
		if err != nil {
			return
		}
	}
}

// Send writes keys to the program, as if typed.
func (s *Session) Send(keys string) error {
	_, err := io.WriteString(s.rwc, keys)
	return err
}

// Resize changes the terminal size.
func (s *Session) Resize(size Size) error {
	return s.runner.Resize(s.rwc, size)
}

// Output returns everything the program has written so far.
func (s *Session) Output() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.String()
}

// WaitFor blocks until the output contains want, or returns an error when ctx
// expires or the output ends first.
func (s *Session) WaitFor(ctx context.Context, want string) error {
	for {
		s.mu.Lock()
		found := strings.Contains(s.out.String(), want)
		done, changed := s.done, s.changed
		s.mu.Unlock()
		if found {
			return nil
		}
		if done {
			return ErrClosed
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-changed:
		}
	}
}

// Close closes the terminal and waits for the program to exit.
func (s *Session) Close() error {
	err := s.rwc.Close()
	if werr := s.cmd.Wait(); err == nil {
		err = werr
	}
	return err
}
