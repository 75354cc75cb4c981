package main

import (
	"os"

	"github.com/yungbote/restaurants-backend/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
