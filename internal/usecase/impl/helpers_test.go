package impl

import (
	"io"
	"log/slog"

	"bookkeeper/config"
	"bookkeeper/internal/domain/money"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{},
		Ledger: &config.LedgerConfig{
			Timezone:          "UTC",
			MaxListLimit:      100,
			DefaultCategories: config.DefaultCategorySeeds(),
		},
	}
}

func amount(s string) money.Amount {
	return money.MustParse(s)
}
