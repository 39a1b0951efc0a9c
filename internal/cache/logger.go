package cache

import "github.com/rs/zerolog"

// zerologAdapter reports cache backend errors through a zerolog logger.
type zerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologLogger adapts a zerolog logger to the cache Logger interface.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return zerologAdapter{logger: logger}
}

func (a zerologAdapter) Error(msg string, err error) {
	a.logger.Error().Err(err).Msg(msg)
}
