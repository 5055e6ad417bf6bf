package sl

import (
	"fmt"
	"log/slog"
)

// Err creates a slog.Attr with the given error. A nil error is logged as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Query creates a slog.Attr naming a cache query key.
func Query(key fmt.Stringer) slog.Attr {
	return slog.String("query", key.String())
}
