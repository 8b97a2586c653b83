package valueparser_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/valueparser"
	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Scalars(t *testing.T) {
	t.Parallel()

	bits, err := valueparser.ParseValue[int](" 2048 ")
	require.Nil(t, err)
	assert.Equal(t, 2048, bits)

	size, err := valueparser.ParseValue[uint16]("2048")
	require.Nil(t, err)
	assert.Equal(t, uint16(2048), size)

	enabled, err := valueparser.ParseValue[bool]("true")
	require.Nil(t, err)
	assert.True(t, enabled)

	ratio, err := valueparser.ParseValue[float64]("0.5")
	require.Nil(t, err)
	assert.InDelta(t, 0.5, ratio, 1e-9)

	msg, err := valueparser.ParseValue[string](" keep spaces ")
	require.Nil(t, err)
	assert.Equal(t, " keep spaces ", msg)
}

func TestParseValue_Errors(t *testing.T) {
	t.Parallel()

	_, err := valueparser.ParseValue[int]("two thousand")
	require.NotNil(t, err)
	assert.Equal(t, yaerrors.CodeConfig, err.Code())
	assert.ErrorIs(t, err, valueparser.ErrUnparsableValue)

	_, err = valueparser.ParseValue[uint8]("300")
	require.NotNil(t, err, "overflow must be rejected")
}

func TestParseInto_CustomTypes(t *testing.T) {
	t.Parallel()

	var (
		level yalogger.Level
		delay time.Duration
	)

	require.Nil(t, valueparser.ParseInto("debug", reflect.ValueOf(&level).Elem()))
	assert.Equal(t, yalogger.DebugLevel, level)

	require.Nil(t, valueparser.ParseInto("1500ms", reflect.ValueOf(&delay).Elem()))
	assert.Equal(t, 1500*time.Millisecond, delay)

	err := valueparser.ParseInto("loud", reflect.ValueOf(&level).Elem())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, yalogger.ErrInvalidLogLevel)
}

func TestParseInto_Unsupported(t *testing.T) {
	t.Parallel()

	var list []string

	err := valueparser.ParseInto("a,b", reflect.ValueOf(&list).Elem())
	require.NotNil(t, err)
	assert.ErrorIs(t, err, valueparser.ErrUnsupportedType)

	err = valueparser.ParseInto("1", reflect.ValueOf(1))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, valueparser.ErrInvalidValue)
}
