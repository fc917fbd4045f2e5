package config

import "os"

type Config struct {
	Addr string
	// DataDir holds the JSON file store (products.json, ratings.json) used
	// when DatabaseURL is empty.
	DataDir     string
	DatabaseURL string
}

func Load() Config {
	return Config{
		Addr:        getenv("ADDR", ":8080"),
		DataDir:     getenv("DATA_DIR", "./data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
