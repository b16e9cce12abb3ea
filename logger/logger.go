// Package logger constructs the application's structured logger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a production zap logger, or a development one when dev is true.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
