package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders lists lowercase header names that carry credentials:
// bearer tokens, session cookies and Firebase App Check tokens.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"x-api-key":           true,
	"x-firebase-appcheck": true,
}

// RedactHeaders returns the headers as log attributes sorted by name, with
// credential headers masked. Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !sensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
