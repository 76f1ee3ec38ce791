package logger

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCarriesPrefix(t *testing.T) {
	l := New("ipc")
	require.NotNil(t, l)
	assert.Equal(t, "ipc", l.GetPrefix())
}

func TestDefaultCarriesPrefix(t *testing.T) {
	l := Default("cli")
	require.NotNil(t, l)
	assert.Equal(t, "cli", l.GetPrefix())
}

func TestNewWithConfigAppliesOptions(t *testing.T) {
	l := NewWithConfig("ver", log.DebugLevel, false, false, log.TextFormatter)
	require.NotNil(t, l)
	assert.Equal(t, "ver", l.GetPrefix())
	assert.Equal(t, log.DebugLevel, l.GetLevel())
}
