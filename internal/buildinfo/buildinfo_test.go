package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultInfo(t *testing.T) {
	info := DefaultInfo()

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestNewInfo(t *testing.T) {
	info := NewInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "abc123", info.Commit)
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewInfo("v1.0.0", "2026-01-01", "abc123").Fprint(&buf))

	assert.Equal(t, "Build version: v1.0.0\nBuild date: 2026-01-01\nBuild commit: abc123\n", buf.String())
}

func TestFields(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range NewInfo("v1.0.0", "2026-01-01", "abc123").Fields() {
		f.AddTo(enc)
	}

	assert.Equal(t, map[string]interface{}{
		"version":    "v1.0.0",
		"build_date": "2026-01-01",
		"commit":     "abc123",
	}, enc.Fields)
}
