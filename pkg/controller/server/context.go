package server

import (
	"context"

	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

// DetachContext returns a context that is not cancelled with the request but keeps
// its logger, request ID and time function. Build monitors started by a request
// run on it.
func DetachContext(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}
