package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"campusAdmin/internal/cli"
)

func main() {
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cli.Execute()
}
