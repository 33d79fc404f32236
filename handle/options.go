package handle

import (
	"log/slog"

	"golang.org/x/text/unicode/norm"
)

type options struct {
	password    string
	hasPassword bool
	normalize   bool
	form        norm.Form
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures an acquisition.
type Option func(*options)

// WithPassword opens an encrypted document. An empty password counts as no
// password, so the document is opened through the plain entry point.
func WithPassword(password string) Option {
	return func(o *options) {
		o.password = password
		o.hasPassword = password != ""
	}
}

// WithNormalization normalizes every span's text to form as it is copied out
// of the engine. PDFs frequently mix precomposed and decomposed accents.
func WithNormalization(form norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = form
	}
}

// WithLogger sets the logger for lifecycle events. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
