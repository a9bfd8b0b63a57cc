package main

import (
	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// config holds CLI configuration read from the environment. Flags take
// precedence over these values.
type config struct {
	// MasterKey is the default master key (ENVSEAL_MASTER_KEY).
	MasterKey string
	// Compression enables zstd-compressed v2 envelopes on encrypt.
	Compression bool
	// RotateWorkers bounds parallelism for batch rotation.
	RotateWorkers int
}

// loadConfig loads configuration from environment variables and an
// optional .env file in the working directory.
func loadConfig() *config {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	return &config{
		MasterKey:     env.GetString("ENVSEAL_MASTER_KEY", ""),
		Compression:   env.GetBool("ENVSEAL_COMPRESSION", false),
		RotateWorkers: env.GetInt("ENVSEAL_ROTATE_WORKERS", 4),
	}
}
