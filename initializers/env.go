package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a .env file into the environment if one exists.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using existing environment")
	}
}
