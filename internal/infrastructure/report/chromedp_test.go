package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nutrabene/backoffice/pkg/logger"
)

func TestRenderPDFHonorsCallerCancellation(t *testing.T) {
	r := NewChromedpRenderer("", logger.NewNopLogger())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		_, err := r.RenderPDF(ctx, "<html><body>relatório</body></html>")
		done <- err
	}()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("RenderPDF não retornou após o cancelamento do chamador")
	}
}
