// Command dronesim runs the sword-cleaning and item-retrieval schedulers over
// input files.
package main

import (
	"os"

	"github.com/arloliu/go-drones/cmd/dronesim/command"
	"github.com/arloliu/go-drones/logger"
)

func main() {
	if err := command.NewCommand().Execute(); err != nil {
		logger.Error("dronesim failed", "error", err)
		os.Exit(1)
	}
}
