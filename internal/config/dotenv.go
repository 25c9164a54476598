package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	// envFileVariable names the variable holding an explicit .env path.
	envFileVariable = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// loadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set.
//
// The file named by ENV_FILE must exist; the default ".env" is optional.
func loadDotEnv() error {
	path := os.Getenv(envFileVariable)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
