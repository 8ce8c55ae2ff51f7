package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	t.Run("handle error with context", func(t *testing.T) {
		ctx := context.Background()
		err := errors.New("test error")

		// Should not panic
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle goerr with values", func(t *testing.T) {
		err := goerr.Wrap(errors.New("board down"), "failed to update item", goerr.V("item_id", "123"))
		errutil.HandleError(context.Background(), "test message", err)
	})

	t.Run("handle nil error", func(t *testing.T) {
		ctx := context.Background()

		// Should not panic
		errutil.HandleError(ctx, "test message", nil)
	})
}

func TestWarn(t *testing.T) {
	errutil.Warn(context.Background(), "stage list unavailable", errors.New("404"))
	errutil.Warn(context.Background(), "nothing", nil)
}
