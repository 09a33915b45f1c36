package xlog

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLevelParsesKnownStrings(t *testing.T) {
	lvl, err := GetLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, lvl)
}

func TestGetLevelRejectsUnknown(t *testing.T) {
	_, err := GetLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestGetFormatDefaultsToLogfmt(t *testing.T) {
	f, err := GetFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatLogfmt, f)
}

func TestGetFormatRejectsUnknown(t *testing.T) {
	_, err := GetFormat("xml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNewLoggerFromStringsWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLoggerFromStrings(&buf, "debug", "json")
	require.NoError(t, err)

	logger.Info("hello")
	require.Contains(t, buf.String(), `"msg":"hello"`)
}
