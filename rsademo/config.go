package rsademo

import (
	"time"

	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
	"github.com/YaCodeDev/GoYaRSADemo/yarsa"
	"github.com/YaCodeDev/GoYaRSADemo/yastorage"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "RSA_DEMO"

const (
	DefaultVolumeRoot     = "/media/sd"
	DefaultPublicKeyFile  = "/public.der"
	DefaultPrivateKeyFile = "/private.der"
	DefaultMessage        = "Hello, Wio Terminal with RSA encryption!"

	// DefaultKeyBits is the only key size the buffers below are sized for.
	DefaultKeyBits = 2048
	// MaxEncryptedLength is one RSA block of a DefaultKeyBits modulus.
	MaxEncryptedLength = DefaultKeyBits / 8
	// DefaultMaxMessageLength is the capacity of the decryption buffer.
	DefaultMaxMessageLength = 100
)

// LogConfig is read from RSA_DEMO_LOG_*.
type LogConfig struct {
	Level         yalogger.Level `default:"info"`
	FullTimestamp bool           `default:"false"`
}

// Config holds everything the demo can be tuned with.
// Field names map to RSA_DEMO_<SCREAMING_SNAKE_CASE> variables.
type Config struct {
	VolumeRoot       string        `default:"/media/sd"`
	PublicKeyFile    string        `default:"/public.der"`
	PrivateKeyFile   string        `default:"/private.der"`
	Message          string        `default:"Hello, Wio Terminal with RSA encryption!"`
	KeyBits          int           `default:"2048"`
	MaxKeyFileSize   int64         `default:"2048"`
	MaxMessageLength int           `default:"100"`
	Padding          yarsa.Padding `default:"oaep"`
	Personalization  string        `default:"rsa_encrypt"`
	StartupDelay     time.Duration `default:"0s"`
	Halt             HaltPolicy    `default:"exit"`
	Log              LogConfig
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		VolumeRoot:       DefaultVolumeRoot,
		PublicKeyFile:    DefaultPublicKeyFile,
		PrivateKeyFile:   DefaultPrivateKeyFile,
		Message:          DefaultMessage,
		KeyBits:          DefaultKeyBits,
		MaxKeyFileSize:   yastorage.DefaultMaxFileSize,
		MaxMessageLength: DefaultMaxMessageLength,
		Padding:          yarsa.PaddingOAEP,
		Personalization:  yarsa.DefaultPersonalization,
		Halt:             HaltExit,
		Log: LogConfig{
			Level: yalogger.InfoLevel,
		},
	}
}

// LoggerConfig converts the log section into a yalogger configuration.
func (c Config) LoggerConfig() *yalogger.Config {
	return &yalogger.Config{
		BaseLoggerType:   yalogger.Logrus,
		Level:            c.Log.Level,
		FullTimestamp:    c.Log.FullTimestamp,
		DisableTimestamp: !c.Log.FullTimestamp,
		TimestampFormat:  yalogger.DefaultTimestampFormat,
	}
}
