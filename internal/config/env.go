package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnv populates the process environment from a local .env file, or
// from ~/.adminshell.env when there is none. Variables that are already
// set are left alone.
func loadEnv() {
	if err := godotenv.Load(); err == nil {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(home, "."+appName+".env"))
}
