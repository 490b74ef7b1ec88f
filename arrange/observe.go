package arrange

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/springs/record"
)

// WithLogger routes the counting hooks to l at debug level.
// A nil logger, or one with debug disabled, leaves the hooks as no-ops so
// the hot path pays nothing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil || !l.Core().Enabled(zap.DebugLevel) {
			return
		}
		o.Hooks = LogHooks(l)
	}
}

// LogHooks returns Hooks that write one structured entry per event to l.
func LogHooks(l *zap.Logger) Hooks {
	return Hooks{
		OnState: func(s State, count uint64) {
			l.Debug("automaton state",
				zap.Int("pos", s.Pos),
				zap.Int("run", s.Run),
				zap.Int("length", s.Length),
				zap.Uint64("count", count))
		},
		OnMemoHit: func(s State) {
			l.Debug("memo hit",
				zap.Int("pos", s.Pos),
				zap.Int("run", s.Run),
				zap.Int("length", s.Length))
		},
		OnCandidate: func(p record.Pattern, accepted bool) {
			l.Debug("candidate",
				zap.String("pattern", p.String()),
				zap.Bool("accepted", accepted))
		},
	}.withDefaults()
}
