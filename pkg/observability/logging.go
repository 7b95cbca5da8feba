package observability

import (
	"log/slog"

	"github.com/aretw0/automata/pkg/domain"
)

// LogHooks returns hooks that write every event to logger.
// Builds and errors are logged at Info, steps and phases at Debug.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnBuild: func(e *domain.BuildEvent) {
			logger.Info("build",
				"kind", e.Kind,
				"states", e.States,
				"alphabet", e.Alphabet,
				"starts", e.Starts,
			)
		},
		OnStep: func(e *domain.StepEvent) {
			logger.Debug("step",
				"kind", e.Kind,
				"step", e.Step,
				"symbol", e.Symbol,
				"configurations", e.Configurations,
				"outcome", Outcome(e),
			)
		},
		OnPhase: func(e *domain.PhaseEvent) {
			logger.Debug("phase",
				"kind", e.Kind,
				"step", e.Step,
				"phase", e.Phase,
				"configurations", e.Configurations,
			)
		},
		OnError: func(e *domain.ErrorEvent) {
			logger.Info("operation failed",
				"kind", e.Kind,
				"op", e.Op,
				"error", e.Err,
			)
		},
	}
}
