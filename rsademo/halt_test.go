package rsademo_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/config"
	"github.com/YaCodeDev/GoYaRSADemo/rsademo"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/YaCodeDev/GoYaRSADemo/yarsa"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		Level:  yalogger.PanicLevel,
		Output: io.Discard,
	}).NewLogger()
}

func TestHalt_ExitReturnsImmediately(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})

	go func() {
		rsademo.Halt(context.Background(), rsademo.HaltExit, quietLogger())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("exit policy blocked")
	}
}

func TestHalt_IdleWaitsForContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		rsademo.Halt(ctx, rsademo.HaltIdle, quietLogger())
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("idle policy returned before reset")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("idle policy ignored reset")
	}
}

func TestHalt_IdleWithoutLogger(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NotPanics(t, func() {
		rsademo.Halt(ctx, rsademo.HaltIdle, nil)
	})
}

func TestHaltPolicy_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := map[string]rsademo.HaltPolicy{
		"exit":   rsademo.HaltExit,
		" IDLE ": rsademo.HaltIdle,
		"wait":   rsademo.HaltIdle,
	}

	for input, want := range tests {
		var got rsademo.HaltPolicy

		require.NoError(t, got.UnmarshalText([]byte(input)), input)
		assert.Equal(t, want, got, input)
		assert.NotEqual(t, "unknown", got.String())
	}

	var policy rsademo.HaltPolicy

	assert.ErrorIs(t, policy.UnmarshalText([]byte("reboot")), rsademo.ErrUnknownHaltPolicy)
}

func TestConfig_DefaultsMatchTags(t *testing.T) {
	var got rsademo.Config

	err := config.LoadConfigStructFromEnvHandlingError(&got, "RSA_DEMO_TEST_UNSET", quietLogger())
	require.Nil(t, err)

	if diff := cmp.Diff(rsademo.DefaultConfig(), got); diff != "" {
		t.Fatalf("default config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("RSA_DEMO_TEST_ENV_VOLUME_ROOT", "/mnt/sd")
	t.Setenv("RSA_DEMO_TEST_ENV_PADDING", "pkcs1v15")
	t.Setenv("RSA_DEMO_TEST_ENV_HALT", "idle")
	t.Setenv("RSA_DEMO_TEST_ENV_STARTUP_DELAY", "2s")
	t.Setenv("RSA_DEMO_TEST_ENV_LOG_LEVEL", "debug")

	var got rsademo.Config

	err := config.LoadConfigStructFromEnvHandlingError(&got, "RSA_DEMO_TEST_ENV", quietLogger())
	require.Nil(t, err)

	assert.Equal(t, "/mnt/sd", got.VolumeRoot)
	assert.Equal(t, yarsa.PaddingPKCS1v15, got.Padding)
	assert.Equal(t, rsademo.HaltIdle, got.Halt)
	assert.Equal(t, 2*time.Second, got.StartupDelay)
	assert.Equal(t, yalogger.DebugLevel, got.Log.Level)

	logCfg := got.LoggerConfig()
	assert.Equal(t, yalogger.DebugLevel, logCfg.Level)
	assert.True(t, logCfg.DisableTimestamp)
}
