// Package config loads client configuration from an optional .env
// file plus the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	// ServerAddr is the websocket address of the lobby server.
	ServerAddr string
	// DiagAddr is the listen address of the diagnostics HTTP surface.
	DiagAddr string
	LogLevel zapcore.Level
}

func Load() Config {
	// Missing .env is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		ServerAddr: "wss://server.beyondallreason.info/tachyon/websocket",
		DiagAddr:   ":8091",
		LogLevel:   zapcore.InfoLevel,
	}
	if v := os.Getenv("LOBBY_SERVER_ADDR"); v != "" {
		cfg.ServerAddr = v
	}
	if v := os.Getenv("LOBBY_DIAG_ADDR"); v != "" {
		cfg.DiagAddr = v
	}
	if v := os.Getenv("LOBBY_LOG_LEVEL"); v != "" {
		if lvl, err := zapcore.ParseLevel(v); err == nil {
			cfg.LogLevel = lvl
		}
	}
	return cfg
}
