// Package log builds the logger used by the vtp command line.
package log

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logger passed to commands.
type Logger = logrus.FieldLogger

// New returns a logger writing text records at or above level to w.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		QuoteEmptyFields: true,
	})
	return logger, nil
}
