package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Data    DataConfig
	Map     MapConfig
	Worker  WorkerConfig
	DB      DatabaseConfig
	API     APIConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DataConfig struct {
	Path string
}

// MapConfig is the initial viewport of the dashboard map.
type MapConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type DatabaseConfig struct {
	// Path is handed to the sqlite driver. The default keeps the route
	// table purely in memory; point it at a file only for debugging.
	Path string
}

type APIConfig struct {
	RateLimit int // requests per second, shared across all clients
}

type LoggingConfig struct {
	Level string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "localhost"),
			Port: getEnvInt("SERVER_PORT", 8080),
		},
		Data: DataConfig{
			Path: getEnv("DATA_PATH", "./data/updated_mobility_data.csv"),
		},
		Map: MapConfig{
			CenterLat: getEnvFloat("MAP_CENTER_LAT", 20.5937),
			CenterLon: getEnvFloat("MAP_CENTER_LON", 78.9629),
			Zoom:      getEnvInt("MAP_ZOOM", 8),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 20),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", ":memory:"),
		},
		API: APIConfig{
			RateLimit: getEnvInt("API_RATE_LIMIT", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	if c.Data.Path == "" {
		return fmt.Errorf("data path must not be empty")
	}
	if c.DB.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Worker.Count < 1 {
		return fmt.Errorf("worker count must be at least 1: %d", c.Worker.Count)
	}
	if c.Worker.BufferSize < 1 {
		return fmt.Errorf("worker buffer size must be at least 1: %d", c.Worker.BufferSize)
	}

	if c.Map.CenterLat < -90 || c.Map.CenterLat > 90 {
		return fmt.Errorf("invalid map center latitude: %v", c.Map.CenterLat)
	}
	if c.Map.CenterLon < -180 || c.Map.CenterLon > 180 {
		return fmt.Errorf("invalid map center longitude: %v", c.Map.CenterLon)
	}
	if c.Map.Zoom < 1 || c.Map.Zoom > 19 {
		return fmt.Errorf("invalid map zoom: %d", c.Map.Zoom)
	}

	if c.API.RateLimit < 1 {
		return fmt.Errorf("API rate limit must be at least 1 req/s: %d", c.API.RateLimit)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
