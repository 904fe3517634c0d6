package main

import (
	"os"

	"go.uber.org/zap"

	"go-forecast/pkg/log"
)

// main is the application entrypoint.
func main() {
	defer log.Sync()

	if err := newApp(newAppContext(os.Stdout)).Run(os.Args); err != nil {
		log.Fatal("failed to run cli", zap.Error(err))
	}
}
