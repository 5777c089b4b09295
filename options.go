package filevault

type options struct {
	logger *Logger
}

// Option configures Vault constructor behavior.
type Option func(*options)

// WithLogger configures structured logging for vault operations.
//
// The default is a no-op logger: the vault itself has no recovery or retry
// behavior, so logging is purely observational and stays opt-in.
//
// If nil is passed, the no-op logger is kept.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
