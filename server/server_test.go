package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/orderman/orderman-api/logging"
	"github.com/stretchr/testify/assert"
)

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, "127.0.0.1:0", http.NotFoundHandler(), logging.Discard())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunReportsListenErrors(t *testing.T) {
	err := Run(context.Background(), "not-an-address", http.NotFoundHandler(), logging.Discard())
	assert.Error(t, err)
}
