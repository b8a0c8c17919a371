package testcommon

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/six78/crew-cli/internal/config"
)

// SetupConfigLogger installs a development logger as the global one.
// Only warnings are printed unless CREW_TEST_DEBUG is set.
func SetupConfigLogger(t *testing.T) *zap.Logger {
	t.Helper()

	c := zap.NewDevelopmentConfig()
	if os.Getenv("CREW_TEST_DEBUG") == "" {
		c.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := c.Build()
	require.NoError(t, err)

	config.Logger = logger
	return logger
}
