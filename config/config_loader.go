package config

import (
	"encoding"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"github.com/YaCodeDev/GoYaRSADemo/valueparser"
	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/joho/godotenv"
)

// LoadConfigStructFromEnv loads environment variables into a struct and
// terminates the program through log.Fatalf on error.
// It is a wrapper around LoadConfigStructFromEnvHandlingError.
func LoadConfigStructFromEnv[T any](instance *T, prefix string, log yalogger.Logger) {
	safetyCheck(&log)

	if err := LoadConfigStructFromEnvHandlingError(instance, prefix, log); err != nil {
		log.Fatalf("Failed to load config struct from env: %v", err)
	}
}

// LoadConfigStructFromEnvHandlingError loads environment variables into a struct.
//
// Keys are the field names converted to SCREAMING_SNAKE_CASE, joined to prefix
// and to the names of enclosing structs with underscores. An `env:"NAME"` tag
// replaces the converted field name. Values already present in the process
// environment win over the .env file, which wins over the `default` tag.
// A field that is still zero, has no `default` tag and no variable set is an error.
//
// Supported field types are strings, integers, unsigned integers, floats, bools,
// time.Duration and anything implementing encoding.TextUnmarshaler or
// valueparser.Unmarshalable.
//
// Example usage:
//
//	type Keys struct {
//		PublicFile  string `default:"/public.der"`
//		PrivateFile string `default:"/private.der"`
//	}
//
//	type Config struct {
//		VolumeRoot string         `default:"/media/sd"`
//		KeyBits    int            `default:"2048"`
//		Level      yalogger.Level `default:"info" env:"LOG_LEVEL"`
//		Keys       Keys
//	}
//
//	var cfg Config
//
//	// reads RSA_DEMO_VOLUME_ROOT, RSA_DEMO_KEY_BITS, RSA_DEMO_LOG_LEVEL,
//	// RSA_DEMO_KEYS_PUBLIC_FILE and RSA_DEMO_KEYS_PRIVATE_FILE
//	if err := config.LoadConfigStructFromEnvHandlingError(&cfg, "RSA_DEMO", log); err != nil {
//		// handle error
//	}
func LoadConfigStructFromEnvHandlingError[T any](
	instance *T,
	prefix string,
	log yalogger.Logger,
) yaerrors.Error {
	safetyCheck(&log)

	if err := LoadDotEnv(DotEnvFile); err != nil {
		log.Warnf("Error loading .env file: %v", err)
	}

	if instance == nil {
		return yaerrors.FromErrorWithLog(
			yaerrors.CodeConfig,
			ErrConfigStructMustBeStruct,
			"config loader, got nil",
			log,
		)
	}

	value := reflect.ValueOf(instance).Elem()
	if value.Kind() != reflect.Struct {
		return yaerrors.FromErrorWithLog(
			yaerrors.CodeConfig,
			ErrConfigStructMustBeStruct,
			fmt.Sprintf("config loader, got %T", instance),
			log,
		)
	}

	return loadConfigStructFromEnv(value, prefix, log)
}

// LoadDotEnv loads the given files into the process environment without
// overriding variables that are already set. Missing files are not an error.
func LoadDotEnv(files ...string) yaerrors.Error {
	for _, file := range files {
		err := godotenv.Load(file)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return yaerrors.FromError(yaerrors.CodeConfig, err, "load "+file)
	}

	return nil
}

// loadConfigStructFromEnv does the actual work of LoadConfigStructFromEnv,
// recursing into nested structs.
func loadConfigStructFromEnv(
	structValue reflect.Value,
	keyPath string,
	log yalogger.Logger,
) yaerrors.Error {
	structType := structValue.Type()

	for i := range structValue.NumField() {
		field := structType.Field(i)
		fieldVal := structValue.Field(i)

		if !fieldVal.CanSet() {
			log.Warnf("Field %s cannot be set", field.Name)

			continue
		}

		name := field.Tag.Get(EnvTagName)
		if name == "" {
			name = toScreamingSnakeCase(field.Name)
		}

		envKey := joinKey(keyPath, name)

		if field.Type.Kind() == reflect.Struct && !isTextUnmarshaler(fieldVal) {
			if err := loadConfigStructFromEnv(fieldVal, envKey, log); err != nil {
				return err.WrapWithLog("failed to load struct field "+field.Name, log)
			}

			continue
		}

		defaultValStr, hasDefault := field.Tag.Lookup(DefaultTagName)

		value, exists := os.LookupEnv(envKey)

		switch {
		case exists:
		case !fieldVal.IsZero():
			continue
		case hasDefault:
			value = defaultValStr
		default:
			return yaerrors.FromErrorWithLog(
				yaerrors.CodeConfig,
				ErrValueIsRequired,
				"config loader: environment variable "+envKey,
				log,
			)
		}

		if err := valueparser.ParseInto(value, fieldVal); err != nil {
			return err.WrapWithLog(
				fmt.Sprintf("config loader: field %s from %s", field.Name, envKey),
				log,
			)
		}
	}

	return nil
}

func isTextUnmarshaler(v reflect.Value) bool {
	_, ok := v.Addr().Interface().(encoding.TextUnmarshaler)

	return ok
}
