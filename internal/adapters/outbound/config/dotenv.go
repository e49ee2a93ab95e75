package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables already present in the environment win. A missing file is not an error.
func LoadDotEnv(path string) (bool, error) {
	if path == "" || path == "-" {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return true, nil
}

// InitDotEnv loads a .env file before the remaining initializers read their configuration.
type InitDotEnv struct {
	Path string `config:"DOTENV_PATH" default:".env"`
}

// Initialize loads the file.
func (i InitDotEnv) Initialize(ctx context.Context) (context.Context, error) {
	if _, err := LoadDotEnv(i.Path); err != nil {
		return ctx, err
	}
	return ctx, nil
}
