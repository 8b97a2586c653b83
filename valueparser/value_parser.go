package valueparser

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
)

var durationType = reflect.TypeOf(time.Duration(0))

// ParseValue converts a string value to the specified type T.
//
// Example usage:
//
//	bits, err := valueparser.ParseValue[int]("2048")
//	if err != nil {
//		// Handle error
//	}
func ParseValue[T ParsableType](value string) (T, yaerrors.Error) {
	var result T

	if err := ParseInto(value, reflect.ValueOf(&result).Elem()); err != nil {
		return result, err.Wrap("parse value")
	}

	return result, nil
}

// ParseInto parses value into target, which must be settable.
// Custom types are tried first through encoding.TextUnmarshaler and
// Unmarshalable, then by kind. time.Duration uses time.ParseDuration.
func ParseInto(value string, target reflect.Value) yaerrors.Error {
	if !target.CanSet() {
		return yaerrors.FromError(
			yaerrors.CodeConfig,
			ErrInvalidValue,
			"parse into: target of type "+target.Type().String()+" is not settable",
		)
	}

	if ok, err := tryUnmarshal(value, target); ok {
		return err
	}

	if target.Type() == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(value))
		if err != nil {
			return unparsable(value, target, err)
		}

		target.SetInt(int64(d))

		return nil
	}

	//nolint:exhaustive // Only scalar kinds are parsable, the rest falls through to default.
	switch target.Kind() {
	case reflect.String:
		target.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(strings.TrimSpace(value), 10, target.Type().Bits())
		if err != nil {
			return unparsable(value, target, err)
		}

		target.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(strings.TrimSpace(value), 10, target.Type().Bits())
		if err != nil {
			return unparsable(value, target, err)
		}

		target.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), target.Type().Bits())
		if err != nil {
			return unparsable(value, target, err)
		}

		target.SetFloat(v)

	case reflect.Bool:
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return unparsable(value, target, err)
		}

		target.SetBool(v)

	default:
		return yaerrors.FromError(
			yaerrors.CodeConfig,
			ErrUnsupportedType,
			"parse into: "+target.Type().String(),
		)
	}

	return nil
}

// tryUnmarshal reports whether target has a custom unmarshaler and, if so,
// the result of running it.
func tryUnmarshal(value string, target reflect.Value) (bool, yaerrors.Error) {
	ptr := target.Addr().Interface()

	if unmarshaler, ok := ptr.(encoding.TextUnmarshaler); ok {
		if err := unmarshaler.UnmarshalText([]byte(value)); err != nil {
			return true, unparsable(value, target, err)
		}

		return true, nil
	}

	if unmarshaler, ok := ptr.(Unmarshalable); ok {
		if err := unmarshaler.Unmarshal(value); err != nil {
			return true, unparsable(value, target, err)
		}

		return true, nil
	}

	return false, nil
}

func unparsable(value string, target reflect.Value, cause error) yaerrors.Error {
	return yaerrors.FromError(
		yaerrors.CodeConfig,
		fmt.Errorf("%w: %w", ErrUnparsableValue, cause),
		fmt.Sprintf("parse %q as %s", value, target.Type()),
	)
}
