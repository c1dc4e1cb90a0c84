package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger. Development environments get the
// human-readable console encoder, everything else the production JSON one.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	switch environment {
	case "development", "test":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
