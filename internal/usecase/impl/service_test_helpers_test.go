package impl

import (
	"io"
	"log/slog"

	"libris/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Rental:  &config.RentalConfig{LoanPeriodDays: 7},
		Catalog: &config.CatalogConfig{PageSize: 10},
	}
}
