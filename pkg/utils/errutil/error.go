package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// HandleError logs the error and sends it to Sentry. Values attached by goerr are
// sent as extra fields.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "pipeboard")
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

// Warn logs a recoverable error without reporting it to Sentry.
func Warn(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	logging.From(ctx).Warn(msg, "error", err)
}
