package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "learnquest/internal/usecase"

var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a child span under an already-sampled request so
// background jobs without a parent stay untraced. Blank user ids are dropped
// from the attributes.
func startUsecaseSpan(ctx context.Context, name string, userID ...string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}

	attrs := make([]attribute.KeyValue, 0, 1)
	for _, id := range userID {
		if id = strings.TrimSpace(id); id != "" {
			attrs = append(attrs, attribute.String("learnquest.user_id", id))
			break
		}
	}
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(attrs...))
}
