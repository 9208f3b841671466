package application

import (
	"context"
	"time"

	"vaultdiff/internal/logging"
	"vaultdiff/internal/ports"
)

// settingRiskAcknowledged is the settings key under which the one-time
// merge risk acknowledgment is persisted. Once set it is never cleared.
const settingRiskAcknowledged = "merge.risk_acknowledged"

// RiskGate tracks whether the user has ever accepted the merge-risk
// warning and gates merge-capable actions behind that acceptance.
type RiskGate struct {
	settings ports.Settings
	dialogs  ports.Dialogs
	logger   logging.Logger
	settle   time.Duration
}

// NewRiskGate creates a gate with the given settle delay. The delay runs
// once, after a fresh acceptance is persisted, so that storage observers
// see the write before the first merge view opens.
func NewRiskGate(settings ports.Settings, dialogs ports.Dialogs, logger logging.Logger, settle time.Duration) *RiskGate {
	return &RiskGate{
		settings: settings,
		dialogs:  dialogs,
		logger:   logger,
		settle:   settle,
	}
}

// EnsureAcknowledged reports whether the user has, previously or just now,
// accepted the merge risk. When the persisted flag is already set it
// returns true without any dialog interaction. Otherwise the risk warning
// is shown; declining it leaves the flag unset and returns false.
func (g *RiskGate) EnsureAcknowledged(ctx context.Context) (bool, error) {
	value, ok, err := g.settings.Get(settingRiskAcknowledged)
	if err != nil {
		g.logger.Warn(ctx, "could not read acknowledgment flag", logging.Fields{"error": err.Error()})
	} else if ok && value == "true" {
		return true, nil
	}

	accepted, err := g.dialogs.ConfirmMergeRisk(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		g.logger.Warn(ctx, "risk dialog failed", logging.Fields{"error": err.Error()})
		return false, nil
	}
	if !accepted {
		return false, nil
	}

	if err := g.settings.Set(settingRiskAcknowledged, "true"); err != nil {
		g.logger.Warn(ctx, "could not persist acknowledgment flag", logging.Fields{"error": err.Error()})
	}
	g.logger.Info(ctx, "merge risk acknowledged", nil)

	select {
	case <-time.After(g.settle):
	case <-ctx.Done():
		return false, ctx.Err()
	}
	return true, nil
}
