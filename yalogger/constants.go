package yalogger

// Level mirrors the logrus level ordering so it converts without a table.
type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
	TraceLevel
)

type BaseLoggerType uint8

const (
	Logrus BaseLoggerType = iota
)

const (
	KeyRunID     = "run_id"
	KeyComponent = "component"
)

const DefaultTimestampFormat = "2006-01-02 15:04:05"
