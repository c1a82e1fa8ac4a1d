// Package reqctx provides centralized request context management.
//
// All context keys are private unexported types to prevent collisions;
// access is provided through type-safe getter and setter functions.
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//
// RequestMeta is always set by HTTP middleware for all requests.
package reqctx
