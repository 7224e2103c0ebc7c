package di

import (
	"context"

	"github.com/pkg/profile"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"minigrep/internal/config"
)

type stopper interface {
	Stop()
}

// RegisterProfiling records a cpu or mem profile into cfg.ProfileDir for the
// lifetime of the app.
func RegisterProfiling(lc fx.Lifecycle, cfg *config.Settings, logger *zap.Logger) {
	var mode func(*profile.Profile)
	switch cfg.Profile {
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return
	}

	var p stopper
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Debug("profiling started", zap.String("mode", cfg.Profile), zap.String("dir", cfg.ProfileDir))
			p = profile.Start(mode, profile.ProfilePath(cfg.ProfileDir), profile.Quiet, profile.NoShutdownHook)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if p != nil {
				p.Stop()
			}
			return nil
		},
	})
}
