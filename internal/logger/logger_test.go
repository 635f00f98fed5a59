package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	log := New(zerolog.InfoLevel)
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Msg("test message")

	assert.Contains(t, buf.String(), "test message")
}

func TestForRun(t *testing.T) {
	buf := &bytes.Buffer{}
	log := ForRun(NewWithWriter(buf), "px")

	log.Warn().Str("store", "Brickell").Msg("unknown store")

	out := buf.String()
	assert.Contains(t, out, `"run_id":"`)
	assert.Contains(t, out, `"pipeline":"px"`)
	assert.Contains(t, out, `"store":"Brickell"`)
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("test")

	assert.NotZero(t, buf.Len())
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}
