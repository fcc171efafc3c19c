package clog

import (
	"bytes"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestHandlerSortsFields(t *testing.T) {
	var out bufferCloser
	l := NewContextLogger(&out)

	l.Global().WithFields(log.Fields{"email": "a@x.edu", "activity": "Chess Club"}).Info("signed up")

	line := out.String()
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "signed up")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("activity=")), bytes.Index(out.Bytes(), []byte("email=")))
	assert.Contains(t, line, "ctx=global")
}

func TestContextFallsBackToGlobal(t *testing.T) {
	var out bufferCloser
	l := NewContextLogger(&out)

	l.UsingCtx(RegistryCtx).Info("hello")
	assert.Contains(t, out.String(), "ctx=registry")
}

func TestContextLoggerLevels(t *testing.T) {
	var global, registry bufferCloser
	l := NewContextLogger(&global)
	l.AddLoggingContext(RegistryCtx, &registry)

	require.NoError(t, l.SetLevelFromString(RegistryCtx, "warn"))
	assert.Equal(t, log.WarnLevel, l.Level(RegistryCtx))
	assert.Equal(t, log.InfoLevel, l.Level(GlobalLoggerCtx))

	l.UsingCtx(RegistryCtx).Info("dropped")
	l.UsingCtx(RegistryCtx).Warn("kept")
	assert.NotContains(t, registry.String(), "dropped")
	assert.Contains(t, registry.String(), "kept")
	assert.Empty(t, global.String())

	assert.Error(t, l.SetLevelFromString(RegistryCtx, "loud"))
}

func TestRemoveLoggingContextClosesWriter(t *testing.T) {
	var global, httpOut bufferCloser
	l := NewContextLogger(&global)
	l.AddLoggingContext(HTTPCtx, &httpOut)

	l.RemoveLoggingContext(HTTPCtx)
	assert.True(t, httpOut.closed)
	assert.Error(t, l.SetOutput(HTTPCtx, &bufferCloser{}))
}

func TestSetOutputClosesPrevious(t *testing.T) {
	var first, second bufferCloser
	l := NewContextLogger(&first)

	require.NoError(t, l.SetOutput(GlobalLoggerCtx, &second))
	assert.True(t, first.closed)

	l.Global().Info("moved")
	assert.Contains(t, second.String(), "moved")
}

func TestSetLevelCreatesContextLogger(t *testing.T) {
	var global bufferCloser
	l := NewContextLogger(&global)

	l.SetLevel(RegistryCtx, log.DebugLevel)
	assert.Equal(t, log.DebugLevel, l.Level(RegistryCtx))
	assert.Equal(t, log.InfoLevel, l.Level(GlobalLoggerCtx))

	l.UsingCtx(RegistryCtx).Debug("registry detail")
	l.Global().Debug("global detail")
	assert.Contains(t, global.String(), "registry detail")
	assert.NotContains(t, global.String(), "global detail")

	l.RemoveLoggingContext(RegistryCtx)
	assert.False(t, global.closed)
}
