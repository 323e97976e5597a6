package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/isebuild/internal/config"
	"github.com/vk/isebuild/internal/testutil"
)

// SetupAppTest creates a new app instance for system testing, logging at
// debug level into the returned buffer.
func SetupAppTest(t *testing.T, cfg *Config, loader config.Loader) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp, err := NewApp(logBuffer, cfg, loader)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ISEBUILD_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
