package sdlrpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewDefaultLogger(t *testing.T) {
	l, err := NewDefaultLogger()
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.False(t, l.Core().Enabled(zap.DebugLevel))

	LogLevel.SetLevel(zap.DebugLevel)
	defer LogLevel.SetLevel(zap.InfoLevel)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))
}
