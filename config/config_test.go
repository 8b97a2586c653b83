package config_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/config"
	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyFiles struct {
	PublicFile  string `default:"/public.der"`
	PrivateFile string `default:"/private.der"`
}

type testStruct struct {
	VolumeRoot     string         `default:"/media/sd"`
	KeyBits        int            `default:"2048"`
	MaxKeyFileSize int64          `default:"2048"`
	MessageLimit   uint16         `default:"100"`
	Ratio          float64        `default:"0.25"`
	Verbose        bool           `default:"false"`
	StartupDelay   time.Duration  `default:"2s"`
	Level          yalogger.Level `default:"info" env:"LOG_LEVEL"`
	Note           string         `default:""`
	Keys           keyFiles
}

func quietLogger() yalogger.Logger {
	return yalogger.NewBaseLogger(&yalogger.Config{
		Level:  yalogger.PanicLevel,
		Output: io.Discard,
	}).NewLogger()
}

func TestLoadConfigStructFromEnv_Defaults(t *testing.T) {
	var got testStruct

	err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_DEFAULTS", quietLogger())
	require.Nil(t, err)

	want := testStruct{
		VolumeRoot:     "/media/sd",
		KeyBits:        2048,
		MaxKeyFileSize: 2048,
		MessageLimit:   100,
		Ratio:          0.25,
		StartupDelay:   2 * time.Second,
		Level:          yalogger.InfoLevel,
		Keys: keyFiles{
			PublicFile:  "/public.der",
			PrivateFile: "/private.der",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigStructFromEnv_EnvOverrides(t *testing.T) {
	t.Setenv("YA_TEST_ENV_VOLUME_ROOT", "/mnt/card")
	t.Setenv("YA_TEST_ENV_KEY_BITS", "4096")
	t.Setenv("YA_TEST_ENV_VERBOSE", "true")
	t.Setenv("YA_TEST_ENV_STARTUP_DELAY", "250ms")
	t.Setenv("YA_TEST_ENV_LOG_LEVEL", "trace")
	t.Setenv("YA_TEST_ENV_KEYS_PUBLIC_FILE", "/keys/pub.der")

	var got testStruct

	err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_ENV", quietLogger())
	require.Nil(t, err)

	assert.Equal(t, "/mnt/card", got.VolumeRoot)
	assert.Equal(t, 4096, got.KeyBits)
	assert.True(t, got.Verbose)
	assert.Equal(t, 250*time.Millisecond, got.StartupDelay)
	assert.Equal(t, yalogger.TraceLevel, got.Level)
	assert.Equal(t, "/keys/pub.der", got.Keys.PublicFile)
	assert.Equal(t, "/private.der", got.Keys.PrivateFile)
}

func TestLoadConfigStructFromEnv_PresetValueKept(t *testing.T) {
	got := testStruct{VolumeRoot: "/preset"}

	err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_PRESET", quietLogger())
	require.Nil(t, err)

	assert.Equal(t, "/preset", got.VolumeRoot)
}

func TestLoadConfigStructFromEnv_Errors(t *testing.T) {
	t.Run("[Parse] bad int", func(t *testing.T) {
		t.Setenv("YA_TEST_BAD_KEY_BITS", "lots")

		var got testStruct

		err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_BAD", quietLogger())
		require.NotNil(t, err)
		assert.Equal(t, yaerrors.CodeConfig, err.Code())
	})

	t.Run("[Required] no default", func(t *testing.T) {
		type required struct {
			Secret string
		}

		var got required

		err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_REQ", quietLogger())
		require.NotNil(t, err)
		assert.ErrorIs(t, err, config.ErrValueIsRequired)
	})

	t.Run("[Type] not a struct", func(t *testing.T) {
		var got int

		err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_INT", quietLogger())
		require.NotNil(t, err)
		assert.ErrorIs(t, err, config.ErrConfigStructMustBeStruct)
	})
}

func TestLoadDotEnv(t *testing.T) {
	const key = "YA_TEST_DOTENV_VOLUME_ROOT"

	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte(key+"=/from/dotenv\n"), 0o600))

	require.Nil(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"), file))

	var got testStruct

	err := config.LoadConfigStructFromEnvHandlingError(&got, "YA_TEST_DOTENV", quietLogger())
	require.Nil(t, err)

	assert.Equal(t, "/from/dotenv", got.VolumeRoot)
}
