package impl

import (
	"io"
	"log/slog"
	"time"

	"userapi/config"
)

const testSecret = "test-secret"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
			TokenTTL:   time.Hour,
		},
	}
	cfg.SecretKey.Access = secret

	return cfg
}
