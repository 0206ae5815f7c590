package logger_test

import (
	"testing"

	"go-hrms/internal/config"
	"go-hrms/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	l, err := logger.New(config.LogConfig{Level: "warn", Format: "json"})

	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud"})

	assert.Error(t, err)
}
