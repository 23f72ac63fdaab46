package history

import (
	"fmt"
	"log/slog"

	"open-atmos/mechanism-configuration/pkg/config"
)

// Open returns the store selected by cfg.Driver.
func Open(cfg config.HistoryConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemoryStore(), nil
	case DriverCGO, DriverPureGo:
		sc := DefaultSQLiteConfig()
		sc.Driver = cfg.Driver
		sc.Path = cfg.Path
		return NewSQLiteStore(sc, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
