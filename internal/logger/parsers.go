package logger

import (
	"strings"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// levelAliases are accepted on top of zerolog's own level names.
var levelAliases = map[string]zerolog.Level{
	"warning":  zerolog.WarnLevel,
	"disabled": zerolog.Disabled,
}

// ParseLevel maps a --log-level or log_config.log_level value to a zerolog
// level. Matching ignores case and surrounding space; empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	if level, ok := levelAliases[name]; ok {
		return level, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, errorwrapper.NewValidationError("log_level", name, "invalid log level")
	}
	return level, nil
}

// ParseFormat maps a log_config.log_format value; anything unknown is console.
func ParseFormat(name string) LogFormat {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}
