package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given key from .env / environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Error loading .env file")
	}
	return os.Getenv(key)
}
