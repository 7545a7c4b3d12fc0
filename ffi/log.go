package ffi

import (
	"context"
	"log"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID attaches a correlation UUID to ctx for logging
// through a chain of ffi calls; if the caller doesn't attach one, each
// call mints its own.
func WithCorrelationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

func correlationID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(correlationKey{}).(uuid.UUID); ok {
		return id
	}
	return uuid.New()
}

// logCall writes one line per boundary call: correlation id, operation
// name, and row/byte count, the teacher's plain stdlib log.Printf
// convention rather than a structured logger.
func logCall(ctx context.Context, op string, n int) {
	log.Printf("ffi[%s] %s n=%d", correlationID(ctx), op, n)
}
