package main

import "os"

type Config struct {
	Addr      string
	StaticDir string
}

func LoadConfig() *Config {
	return &Config{
		Addr:      getEnv("LISTEN_ADDR", ":8080"),
		StaticDir: getEnv("STATIC_DIR", "./static"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
