package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Observability struct {
	recorder RequestRecorder
	tracer   trace.Tracer
}

func NewObservability(serviceName string, recorder RequestRecorder) *Observability {
	return &Observability{
		recorder: recorder,
		tracer:   otel.Tracer(serviceName),
	}
}

// Middleware records a span and the request metrics under route, which is the
// registered pattern rather than the raw path so ids do not explode label
// cardinality.
func (o *Observability) Middleware(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, span := o.tracer.Start(r.Context(), route, trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("request.id", requestID(r)),
			))
			defer span.End()

			recorder := newStatusRecorder(w)
			next.ServeHTTP(recorder, r.WithContext(ctx))

			span.SetAttributes(attribute.Int("http.status_code", recorder.status))
			if recorder.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(recorder.status))
			}
			o.recorder.ObserveRequest(route, r.Method, recorder.status, time.Since(start))
		})
	}
}
