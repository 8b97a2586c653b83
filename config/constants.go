package config

import "regexp"

const (
	DefaultTagName = "default"
	EnvTagName     = "env"
	DotEnvFile     = ".env"
)

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)
