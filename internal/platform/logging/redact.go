package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// redactedFields are attribute and struct field names whose values never
// reach a log sink. Token covers domain.Publishing.Token.
var redactedFields = []string{
	"Token", "token",
	"craft_api_token", "CRAFT_API_TOKEN",
	"authorization", "Authorization",
	"api_key", "apiKey",
	"password", "secret",
	"cookie",
}

var (
	bearerValue = regexp.MustCompile(`(?i)^bearer\s+\S+`)
	jwtValue    = regexp.MustCompile(`^eyJ[\w-]*\.eyJ[\w-]*\.[\w-]*$`)
)

// DefaultRedactOptions returns the masq options applied to every record.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+3)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithRegex(bearerValue),
		masq.WithRegex(jwtValue),
	)
}

// NewReplaceAttr returns a slog ReplaceAttr hook that redacts secrets using
// DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
