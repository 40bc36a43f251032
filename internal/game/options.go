package game

import "go.uber.org/zap"

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithIDGenerator replaces the session id source.
func WithIDGenerator(next func() string) Option {
	return func(g *Game) {
		if next != nil {
			g.newID = next
		}
	}
}
