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

// CircuitID records the circuit identifier under the key "circuit_id".
func CircuitID(id string) slog.Attr {
	return slog.String("circuit_id", id)
}

// RuleID records the rule identifier under the key "rule_id".
func RuleID(id string) slog.Attr {
	return slog.String("rule_id", id)
}

// Fingerprint records a result fingerprint under the key "fingerprint".
// If fp is empty, it returns an empty Attr.
func Fingerprint(fp string) slog.Attr {
	if fp == "" {
		return slog.Attr{}
	}
	return slog.String("fingerprint", fp)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
