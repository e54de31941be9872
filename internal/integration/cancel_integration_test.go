// internal/integration/cancel_integration_test.go
package integration

import (
	"context"
	"io"
	"testing"

	"ridehr/internal/app"
)

func TestCanceledContext_Exit130(t *testing.T) {
	path := writeRide(t, "cancel.tsv", 400, 900)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code := app.RunContext(ctx, []string{"--input", path}, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
