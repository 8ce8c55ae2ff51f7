package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

type (
	ctxLoggerKey     struct{}
	ctxRequestIDKey  struct{}
	ctxDeliveryIDKey struct{}
	ctxIdentityKey   struct{}
	ctxTimeKey       struct{}
)

// TimeFunc returns the current time. Tests replace it to fix board timestamps.
type TimeFunc func() time.Time

func value[T any](ctx context.Context, key any) (T, bool) {
	v, ok := ctx.Value(key).(T)
	return v, ok
}

// With returns a new context with logger
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// From returns logger from context. If logger is not set, return default logger
func From(ctx context.Context) *slog.Logger {
	if l, ok := value[*slog.Logger](ctx, ctxLoggerKey{}); ok {
		return l
	}
	return defaultLogger
}

// WithAttrs adds attrs to the context logger.
func WithAttrs(ctx context.Context, attrs ...any) context.Context {
	return With(ctx, From(ctx).With(attrs...))
}

// WithIdentity tags the context logger with the tracking identity that board
// writes and build monitors act on. Tagging the same identity again is a no-op.
func WithIdentity(ctx context.Context, name string) context.Context {
	if current, ok := value[string](ctx, ctxIdentityKey{}); ok && current == name {
		return ctx
	}
	ctx = context.WithValue(ctx, ctxIdentityKey{}, name)
	return WithAttrs(ctx, slog.String("identity", name))
}

// CtxRequestID returns request ID from context. If request ID is not set, return
// new request ID and context with it
func CtxRequestID(ctx context.Context) (types.RequestID, context.Context) {
	if id, ok := value[types.RequestID](ctx, ctxRequestIDKey{}); ok {
		return id, ctx
	}

	newID := types.NewRequestID()
	return newID, context.WithValue(ctx, ctxRequestIDKey{}, newID)
}

// CtxWithRequestID stores a request ID received from the caller.
func CtxWithRequestID(ctx context.Context, id types.RequestID) context.Context {
	return context.WithValue(ctx, ctxRequestIDKey{}, id)
}

// CtxWithDeliveryID stores the webhook delivery ID and tags the context logger
// with it. An empty id leaves ctx unchanged.
func CtxWithDeliveryID(ctx context.Context, id types.DeliveryID) context.Context {
	if id == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, ctxDeliveryIDKey{}, id)
	return WithAttrs(ctx, slog.String("delivery_id", string(id)))
}

// CtxDeliveryID returns the delivery ID set by CtxWithDeliveryID, or "".
func CtxDeliveryID(ctx context.Context) types.DeliveryID {
	id, _ := value[types.DeliveryID](ctx, ctxDeliveryIDKey{})
	return id
}

// CtxTime returns the time of the context time function, or time.Now.
func CtxTime(ctx context.Context) time.Time {
	if f, ok := value[TimeFunc](ctx, ctxTimeKey{}); ok {
		return f()
	}
	return time.Now()
}

// CtxWithTime returns a new context with time function
func CtxWithTime(ctx context.Context, timeFunc TimeFunc) context.Context {
	return context.WithValue(ctx, ctxTimeKey{}, timeFunc)
}

// InheritContextValues copies the ID values, the identity tag and the time
// function from src to dst. The logger is not copied; use With for it.
func InheritContextValues(dst, src context.Context) context.Context {
	for _, key := range []any{ctxRequestIDKey{}, ctxDeliveryIDKey{}, ctxIdentityKey{}, ctxTimeKey{}} {
		if v := src.Value(key); v != nil {
			dst = context.WithValue(dst, key, v)
		}
	}
	return dst
}
