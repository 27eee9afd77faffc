package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Strategy records a naming strategy under the key "strategy".
func Strategy(name string) slog.Attr {
	return slog.String("strategy", name)
}

// Filename records a filename under the key "filename".
func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}
