package cmd

import (
	"testing"

	"github.com/apex/log"
	"github.com/mergington/activities/pkg/clog"
	"github.com/mergington/activities/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingSetsPackageLevel(t *testing.T) {
	pkgLogger, ok := log.Log.(*log.Logger)
	require.True(t, ok)
	savedPkg, savedGlobal := pkgLogger.Level, clog.Default().Level(clog.GlobalLoggerCtx)
	t.Cleanup(func() {
		log.SetLevel(savedPkg)
		clog.SetLevel(clog.GlobalLoggerCtx, savedGlobal)
	})

	require.NoError(t, setupLogging(config.NewMapConfig(map[string]string{config.LogLevelKey: "debug"})))
	assert.Equal(t, log.DebugLevel, pkgLogger.Level)
	assert.Equal(t, log.DebugLevel, clog.Default().Level(clog.GlobalLoggerCtx))

	assert.Error(t, setupLogging(config.NewMapConfig(map[string]string{config.LogLevelKey: "loud"})))
}
