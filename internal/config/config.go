package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseURL string
	LogLevel    string
}

var instance *Config
var once sync.Once

// Get loads the planner configuration once. A missing .env file is fine;
// every key has a local-use default.
func Get() *Config {
	once.Do(func() {
		instance = &Config{}

		if err := godotenv.Load(); err != nil {
			logrus.Debugf("no .env file loaded: %s", err)
		}

		instance.DatabaseURL = getEnv("DATABASE_URL", "planner.db")
		instance.LogLevel = getEnv("LOG_LEVEL", "info")
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}
