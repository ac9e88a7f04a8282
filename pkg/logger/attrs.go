package logger

import "log/slog"

// Component tags records with the emitting component (e.g. "sendkit").
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Err renders an error as a string attribute under the "error" key.
// A nil error yields an empty value.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
