package server_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/pipeboard/pkg/controller/server"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// webhookContext builds a context like the one a GitHub webhook handler passes to a build monitor.
func webhookContext(t *testing.T) (context.Context, context.CancelFunc, types.RequestID) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	reqID, ctx := logging.CtxRequestID(ctx)
	ctx = logging.CtxWithDeliveryID(ctx, "delivery-42")
	ctx = logging.WithIdentity(ctx, "feature-login")
	ctx = logging.CtxWithTime(ctx, func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	})
	return ctx, cancel, reqID
}

func TestDetachContext(t *testing.T) {
	t.Run("monitor context outlives the request", func(t *testing.T) {
		reqCtx, cancel, _ := webhookContext(t)
		monitorCtx := server.DetachContext(reqCtx)

		cancel()
		gt.V(t, reqCtx.Err()).Equal(context.Canceled)
		gt.NoError(t, monitorCtx.Err())
	})

	t.Run("monitor context keeps the request logger", func(t *testing.T) {
		reqCtx, cancel, _ := webhookContext(t)
		defer cancel()

		monitorCtx := server.DetachContext(reqCtx)
		gt.V(t, logging.From(monitorCtx)).Equal(logging.From(reqCtx))
	})

	t.Run("monitor context keeps request and delivery IDs", func(t *testing.T) {
		reqCtx, cancel, reqID := webhookContext(t)
		defer cancel()

		monitorCtx := server.DetachContext(reqCtx)
		inherited, _ := logging.CtxRequestID(monitorCtx)
		gt.V(t, inherited).Equal(reqID)
		gt.V(t, logging.CtxDeliveryID(monitorCtx)).Equal(types.DeliveryID("delivery-42"))
	})

	t.Run("monitor context stamps board writes with the request clock", func(t *testing.T) {
		reqCtx, cancel, _ := webhookContext(t)
		defer cancel()

		monitorCtx := server.DetachContext(reqCtx)
		gt.V(t, logging.CtxTime(monitorCtx).Format("2006-01-02")).Equal("2024-03-15")
	})
}
