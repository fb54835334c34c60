package config

import (
	"os"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName       string
	Env           string
	Debug         bool
	DataPath      string
	SweepInterval time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:       os.Getenv("APP_NAME"),
			Env:           os.Getenv("APP_ENV"),
			Debug:         os.Getenv("DEBUG") == "true",
			DataPath:      dataPath(),
			SweepInterval: sweepInterval(),
		}
	})
}

func dataPath() string {
	if p := os.Getenv("LENDSTOCK_DB"); p != "" {
		return p
	}
	return "lendstock.db"
}

func sweepInterval() time.Duration {
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return d
		}
	}
	return 30 * time.Second
}
