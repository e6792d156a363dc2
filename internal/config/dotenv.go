package config

import (
	"os"

	"github.com/joho/godotenv"
)

// envFiles in priority order. godotenv never overwrites variables that
// are already set, so the process environment beats .env.local, which
// in turn beats .env.
var envFiles = [...]string{".env.local", ".env"}

// LoadDotEnv applies the env files present in the working directory and
// returns the names of the ones it loaded.
func LoadDotEnv() []string {
	var applied []string
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			continue
		}
		applied = append(applied, name)
	}
	return applied
}
