package logging_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tbmobb813/ciwatch/pkg/utils/logging"
)

func TestConfigure(t *testing.T) {
	t.Run("configure with json format to stderr", func(t *testing.T) {
		err := logging.Configure("json", "info", "stderr")
		gt.NoError(t, err)
	})

	t.Run("configure with text format", func(t *testing.T) {
		err := logging.Configure("text", "debug", "stderr")
		gt.NoError(t, err)
	})

	t.Run("configure with invalid format returns error", func(t *testing.T) {
		err := logging.Configure("invalid", "info", "stderr")
		gt.Error(t, err)
	})

	t.Run("configure with invalid level returns error", func(t *testing.T) {
		err := logging.Configure("json", "invalid", "stderr")
		gt.Error(t, err)
	})
}

func TestDefault(t *testing.T) {
	// Test that Default() returns a functional logger
	logger := logging.Default()
	logger.Info("test message", "key", "value")
	// If this doesn't panic, the logger is functional
}
