package rsademo

import (
	"context"
	"errors"
	"strings"

	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
)

// HaltPolicy decides what happens after a failure has been reported.
type HaltPolicy uint8

const (
	// HaltExit returns immediately so the caller can exit with a non-zero status.
	HaltExit HaltPolicy = iota
	// HaltIdle idles until the context ends, the way the device waits for a reset.
	HaltIdle
)

// ErrUnknownHaltPolicy is returned by UnmarshalText for an unrecognized name.
var ErrUnknownHaltPolicy = errors.New("unknown halt policy")

func (h HaltPolicy) String() string {
	switch h {
	case HaltExit:
		return "exit"
	case HaltIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// UnmarshalText accepts "exit", or "idle" and its alias "wait".
func (h *HaltPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "exit":
		*h = HaltExit
	case "idle", "wait":
		*h = HaltIdle
	default:
		return ErrUnknownHaltPolicy
	}

	return nil
}

// Halt stops the demo after a failure. No further work is done either way.
func Halt(ctx context.Context, policy HaltPolicy, log yalogger.Logger) {
	if policy != HaltIdle {
		return
	}

	if log == nil {
		log = yalogger.NewBaseLogger(nil).NewLogger()
	}

	log.Warn("Demo halted, waiting for reset")

	<-ctx.Done()

	log.Debug("Reset received")
}
