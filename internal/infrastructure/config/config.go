package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTPAddr    string
	GRPCAddr    string
	LogLevel    string
	LogFormat   string
	CaptionText string
	CaptionSize int
	ModuleSize  int
}

func Load() *Config {
	return &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		GRPCAddr:    getEnv("GRPC_ADDR", ":50051"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CaptionText: getEnv("CAPTION_TEXT", "Giro-Code"),
		CaptionSize: getEnvInt("CAPTION_SIZE", 20),
		ModuleSize:  getEnvInt("MODULE_SIZE", 5),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
