// Package prompt asks the person at the terminal to approve actions.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type terminalConfirmer struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalConfirmer reads y/N answers from in after writing the prompt to out.
func NewTerminalConfirmer(in io.Reader, out io.Writer) service.Confirmer {
	return &terminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *terminalConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", prompt); err != nil {
		return false, errors.Wrap(err, "failed to write prompt")
	}

	type answer struct {
		line string
		err  error
	}
	done := make(chan answer, 1)
	go func() {
		line, err := c.in.ReadString('\n')
		done <- answer{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case a := <-done:
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, errors.Wrap(a.err, "failed to read answer")
		}

		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

type staticConfirmer bool

// NewStaticConfirmer answers every prompt with accept. It backs --yes flags
// and surfaces that confirm in the request itself.
func NewStaticConfirmer(accept bool) service.Confirmer {
	return staticConfirmer(accept)
}

func (c staticConfirmer) Confirm(context.Context, string) (bool, error) {
	return bool(c), nil
}
