package cli

import (
	"github.com/dateseq/dateseq/internal/config"
	"github.com/dateseq/dateseq/internal/history"
	"github.com/dateseq/dateseq/internal/paths"
)

// historyEnabled reports whether generation history should be recorded.
func historyEnabled(cfg *config.Config) bool {
	if cfg == nil {
		return true
	}
	return !cfg.History.Disabled
}

// historyMaxEntries returns the configured retention cap.
func historyMaxEntries(cfg *config.Config) int {
	if cfg == nil || cfg.History.MaxEntries <= 0 {
		return history.DefaultMaxEntries
	}
	return cfg.History.MaxEntries
}

// openHistoryStore opens the history database at the standard location.
// Caller is responsible for calling store.Close().
func openHistoryStore(cfg *config.Config) (*history.Store, error) {
	return history.Open(paths.HistoryDB(), historyMaxEntries(cfg))
}
