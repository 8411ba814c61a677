package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedAdapter(level string) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestNewLogrusAdapter(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		adapter := NewLogrusAdapter("debug", "json")
		require.NotNil(t, adapter)
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		adapter := NewLogrusAdapter("very-loud", "text")
		require.NotNil(t, adapter)
	})
}

func TestLogrusAdapterFields(t *testing.T) {
	adapter, buf := newCapturedAdapter("debug")

	adapter.Info("reading input", F(FieldFile, "data.csv"), F(FieldDelimiter, ";"))

	out := buf.String()
	assert.Contains(t, out, "reading input")
	assert.Contains(t, out, "data.csv")
	assert.Contains(t, out, FieldFile)
}

func TestLogrusAdapterWithError(t *testing.T) {
	adapter, buf := newCapturedAdapter("debug")

	adapter.WithError(errors.New("boom")).Error("read failed")

	assert.Contains(t, buf.String(), "boom")
}

func TestLogrusAdapterWithFieldChaining(t *testing.T) {
	adapter, buf := newCapturedAdapter("debug")

	child := adapter.WithField(FieldColumn, "amount").WithFields(F(FieldValue, "x"))
	child.Warn("parse failed")

	out := buf.String()
	assert.Contains(t, out, "amount")
	assert.Contains(t, out, "parse failed")

	// The parent adapter must not have inherited the child's fields.
	buf.Reset()
	adapter.Info("clean")
	assert.NotContains(t, buf.String(), "amount")
}

func TestMockLogger(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("hello", F("k", "v"))
	mock.WithError(errors.New("boom")).Error("bad")

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "hello"))
	assert.True(t, mock.HasEntry("ERROR", "bad"))
	assert.False(t, mock.HasEntry("WARN", "hello"))
	assert.Equal(t, "boom", mock.Entries[1].Error.Error())

	mock.Reset()
	assert.Empty(t, mock.Entries)
}

func TestSetDefaultLogger(t *testing.T) {
	original := GetLogger()
	defer SetDefaultLogger(original)

	mock := &MockLogger{}
	SetDefaultLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	// nil must not replace the default
	SetDefaultLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger())
}
