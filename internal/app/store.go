package app

import (
	"github.com/archduke/archduke/internal/config"
	"github.com/archduke/archduke/internal/db"
)

var globalStore *db.DB

func MustOpenStore() {
	cfg := config.Global()

	var err error
	globalStore, err = db.New(cfg.DataDir, cfg.Storage.File)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("data_dir", cfg.DataDir).
			Msg("failed to open store")
		panic(err)
	}
	globalLogger.Info().
		Str("data_dir", cfg.DataDir).
		Str("file", cfg.Storage.File).
		Msg("opened store")
}

func CloseStore() {
	if err := globalStore.Close(); err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close store")
		return
	}
	globalLogger.Info().Msg("closed store")
}
