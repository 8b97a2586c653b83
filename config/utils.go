package config

import (
	"strings"

	"github.com/YaCodeDev/GoYaRSADemo/yalogger"
)

// safetyCheck replaces a nil logger with a default one and warns about it.
func safetyCheck(log *yalogger.Logger) {
	if *log == nil {
		*log = yalogger.NewBaseLogger(nil).NewLogger()

		(*log).Warn("Logger is nil, using default logger")
	}
}

// toScreamingSnakeCase converts a string to SCREAMING_SNAKE_CASE.
// Acronyms stay together: "HTTPResponse" becomes "HTTP_RESPONSE" and
// "MaxKeyFileSize" becomes "MAX_KEY_FILE_SIZE".
func toScreamingSnakeCase(s string) string {
	s = matchFirstCap.ReplaceAllString(s, "${1}_${2}")
	s = matchAllCap.ReplaceAllString(s, "${1}_${2}")

	return strings.ToUpper(s)
}

// joinKey prefixes key with prefix using an underscore, skipping an empty prefix.
func joinKey(prefix, key string) string {
	prefix = strings.TrimSuffix(prefix, "_")
	if prefix == "" {
		return key
	}

	return prefix + "_" + key
}
