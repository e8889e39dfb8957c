// internal/service/signal/factory.go

package signal

import (
	"log/slog"

	"contentpulse/internal/config"
	"contentpulse/internal/domain/seo"
)

// NewProvider selects the signal provider for the given configuration.
// Absent credentials yield the clearly-labeled mock so the engine degrades
// instead of crashing at the first external call.
func NewProvider(cfg config.SignalConfig, logger *slog.Logger) seo.SignalProvider {
	if cfg.APIKey == "" {
		logger.Warn("no signal provider API key configured, using deterministic mock provider")
		return NewMockProvider()
	}

	return NewSERPProvider(cfg.BaseURL, cfg.APIKey, logger)
}
