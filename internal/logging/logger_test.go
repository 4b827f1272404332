package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"jpath/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"chatty", log.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.New(tt.level).GetLevel())
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, logging.ValidLevel("Warning"))
	assert.False(t, logging.ValidLevel("trace"))
}

func TestWriterAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "debug")
	logger.Debug("checked file", logging.FieldPath, "a.jsonpath", logging.FieldQueries, 3)

	out := buf.String()
	assert.Contains(t, out, "checked file")
	assert.Contains(t, out, "path=a.jsonpath")
	assert.Contains(t, out, "queries=3")
}

func TestContext(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))

	logger := logging.New("error")
	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}

func TestSetLevel(t *testing.T) {
	original := logging.Default()
	defer logging.SetDefault(original)

	logging.SetDefault(logging.New("info"))
	logging.SetLevel("debug")
	assert.Equal(t, log.DebugLevel, logging.Default().GetLevel())
}
