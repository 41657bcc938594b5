package config

import (
	"os"
	"path/filepath"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const appName = "archduke"

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env     string `env:"ARCHDUKE_ENV" env-default:"prod"`
	DataDir string `env:"ARCHDUKE_DATA_DIR"`
	LogFile string `env:"ARCHDUKE_LOG_FILE" env-default:"archduke.log"`
	Storage StorageConfig
	UI      UIConfig
}

type StorageConfig struct {
	File string `env:"ARCHDUKE_DB_FILE" env-default:"archduke.db"`
}

type UIConfig struct {
	TableWidth int `env:"ARCHDUKE_TABLE_WIDTH" env-default:"70"`
}

// LogPath is where the application log is written. A relative LogFile is
// taken from DataDir.
func (c *Config) LogPath() string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, c.LogFile)
}

// DefaultDataDir returns $XDG_DATA_HOME/archduke, falling back to
// ~/.local/share/archduke.
func DefaultDataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, appName), nil
}
