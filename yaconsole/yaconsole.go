// Package yaconsole is the line-oriented text console the demo reports to:
// progress lines, hex dumps and failure codes translated to text.
package yaconsole

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
)

// Console writes whole lines to an underlying writer.
// Write errors are sticky: after the first one every call is a no-op and Err
// returns it.
type Console struct {
	mu  sync.Mutex
	out io.Writer
	err error
}

func New(out io.Writer) *Console {
	return &Console{out: out}
}

// WaitReady blocks for delay, the time a serial host needs to attach.
// It returns ctx.Err() if the context ends first.
func (c *Console) WaitReady(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Console) Println(line string) {
	c.write(line + "\n")
}

func (c *Console) Printf(format string, args ...any) {
	c.write(fmt.Sprintf(format, args...) + "\n")
}

// Hex prints label followed by data as contiguous uppercase hex pairs.
func (c *Console) Hex(label string, data []byte) {
	c.write(label + strings.ToUpper(hex.EncodeToString(data)) + "\n")
}

// Status prints prefix and the text of the error code, e.g.
// "Decryption failed: RSA - the private key operation failed".
func (c *Console) Status(prefix string, err error) {
	c.Printf("%s: %s", prefix, yaerrors.CodeOf(err).String())
}

// Err returns the first write error, if any.
func (c *Console) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.err
}

func (c *Console) write(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.err != nil {
		return
	}

	_, c.err = io.WriteString(c.out, s)
}
