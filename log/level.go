package log

import (
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Level is the importance or severity of a log event. The higher the
// level, the more important or severe the event. Levels share slog's
// numbering, with [LevelDisabled] added above every severity to turn
// logging off entirely.
type Level slog.Level

// Names for common levels.
const (
	LevelDebug    = Level(slog.LevelDebug)
	LevelInfo     = Level(slog.LevelInfo)
	LevelWarn     = Level(slog.LevelWarn)
	LevelError    = Level(slog.LevelError)
	LevelDisabled = Level(1<<31 - 1)
)

// String returns a name for the level. If the level is between named
// values, an integer offset is appended to the nearest name, as in
// "INFO+2".
func (l Level) String() string {
	if l >= LevelDisabled {
		return "DISABLED"
	}

	return slog.Level(l).String()
}

// Level returns l as a [slog.Level]. It implements [slog.Leveler].
func (l Level) Level() slog.Level { return slog.Level(l) }

// MarshalText implements [encoding.TextMarshaler]
// by calling [Level.String].
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. It accepts any
// string produced by [Level.MarshalText], ignoring case, as well as
// "disable", "disabled", or "false" for [LevelDisabled] and numeric
// offsets such as "Error+1".
func (l *Level) UnmarshalText(data []byte) (err error) {
	switch strings.ToLower(string(data)) {
	case "disable", "disabled", "false":
		*l = LevelDisabled
	default:
		err = (*slog.Level)(l).UnmarshalText(data)
	}

	return
}

// MarshalJSON implements [encoding/json.Marshaler]
// by quoting the output of [Level.String].
func (l Level) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, l.String()), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. It accepts the
// same strings as [Level.UnmarshalText].
func (l *Level) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}

// UnmarshalYAML implements [yaml.Unmarshaler]. It accepts the same
// strings as [Level.UnmarshalText].
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}

// LevelFlag implements the interfaces needed to use a Level as a
// command-line flag.
type LevelFlag Level

func (lf *LevelFlag) String() string {
	return (Level)(*lf).String()
}

func (lf *LevelFlag) Set(s string) error {
	return (*Level)(lf).UnmarshalText([]byte(s))
}

func (lf *LevelFlag) Get() any {
	return (Level)(*lf)
}

func (lf *LevelFlag) Type() string {
	return "level"
}
