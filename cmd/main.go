package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"aura_server/internal/cli"
)

var version = "1.0"

func main() {
	// .env must be loaded before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Println("Info: .env file not found, relying on system environment variables.")
		} else {
			log.Printf("WARN: error loading .env file: %v", err)
		}
	} else {
		log.Println("Info: loaded environment variables from .env file.")
	}

	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
