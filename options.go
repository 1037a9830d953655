package body

import (
	"go.uber.org/zap"
)

// JSONFunc parses a decoded application/json body. The data must not be retained after
// the function returns, as the buffer is reused.
type JSONFunc func(data []byte) (any, error)

type Option func(*Parser)

// WithLogger sets the logger. All the messages are logged at the debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithJSON replaces the default JSON parse function. Passing nil results in
// a configuration error.
func WithJSON(fn JSONFunc) Option {
	return func(p *Parser) {
		p.parseJSON = fn
		p.customJSON = true
	}
}

// WithObserver sets the observer, notified about every Parse call.
func WithObserver(observer Observer) Option {
	return func(p *Parser) {
		if observer != nil {
			p.observer = observer
		}
	}
}
