package main

import (
	"os"

	"go.uber.org/zap"

	"linfit/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	if err := run(os.Args[1:], logger, os.Stdout); err != nil {
		logger.Fatal("fit", zap.Error(err))
	}
}
