package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	actions chan string
}

func (r *recordingAudit) Log(_ context.Context, entry AuditLog) {
	r.actions <- entry.Action
}

func TestRunHTTPServer_AuditsStartAndShutdown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := NewHTTPServer(gin.New(), config.ServerConfig{Port: 0, ReadTimeout: time.Second})
	server.Addr = "127.0.0.1:0"

	audit := &recordingAudit{actions: make(chan string, 2)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- RunHTTPServer(ctx, server, audit) }()

	assert.Equal(t, ActionServerStart, <-audit.actions)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, ActionServerShutdown, <-audit.actions)
}
