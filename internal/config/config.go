package config

import "os"

// Config параметры процесса, читаются из переменных окружения
type Config struct {
	Port    string
	DataDir string
	Env     string
	IDMode  string
}

func Load() Config {
	return Config{
		Port:    getEnv("PORT", "8080"),
		DataDir: getEnv("DATA_DIR", "data"),
		Env:     getEnv("APP_ENV", "development"),
		IDMode:  getEnv("ID_MODE", "time"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
