package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// logs. The HTTP middleware reads the same set when dumping request headers.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
}

// sensitiveFields are attribute keys redacted wherever they appear.
var sensitiveFields = []string{"password", "secret", "dsn", "conn_string"}

// sensitivePrefixes catch variants such as "session_secret" or "database_password".
var sensitivePrefixes = []string{"session_", "database_password"}

var (
	// connURLPattern matches credentials embedded in a connection URL,
	// e.g. postgres://todos:hunter2@db:5432/todos.
	connURLPattern = regexp.MustCompile(`(?i)postgres(ql)?://[^:/\s]+:[^@\s]+@`)

	// sessionCookiePattern matches a raw gorilla session cookie value as it
	// appears in a Cookie header dump.
	sessionCookiePattern = regexp.MustCompile(`todos_session=[A-Za-z0-9\-_=]+`)
)

// newRedactAttr returns a masq ReplaceAttr for slog.HandlerOptions.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+2)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(connURLPattern),
		masq.WithRegex(sessionCookiePattern),
	)

	return masq.New(opts...)
}
