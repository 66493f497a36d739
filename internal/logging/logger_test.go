package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("KEYSCOPE_LOG_LEVEL", "debug")
	t.Setenv("KEYSCOPE_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestNewFromEnvDefaults(t *testing.T) {
	t.Setenv("KEYSCOPE_LOG_LEVEL", "")
	t.Setenv("KEYSCOPE_LOG_FORMAT", "")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	ctx := WithContext(context.Background(), logger)
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContextWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	FromContext(WithComponent(ctx, "engine")).Info().Msg("ready")

	assert.Contains(t, buf.String(), `"component":"engine"`)
}

func TestWithScope(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), zerolog.New(&buf))

	FromContext(WithScope(ctx, 3)).Info().Msg("bound")

	assert.Contains(t, buf.String(), `"scope":3`)
}
