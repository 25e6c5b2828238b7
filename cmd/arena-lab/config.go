package main

import (
	"os"
	"strconv"
)

type Config struct {
	Matches     int
	Parallelism int
	Precision   bool
	Seed        int64
}

func LoadConfig() *Config {
	matches, _ := strconv.Atoi(getEnv("LAB_MATCHES", "100"))
	parallelism, _ := strconv.Atoi(getEnv("LAB_PARALLELISM", "4"))
	seed, _ := strconv.ParseInt(getEnv("LAB_SEED", "1"), 10, 64)

	return &Config{
		Matches:     matches,
		Parallelism: parallelism,
		Precision:   getEnv("LAB_PRECISION", "0") == "1",
		Seed:        seed,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
