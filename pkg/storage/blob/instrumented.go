package blob

import (
	"context"
	"io"
	"time"

	"github.com/fareltaza35/atscore/pkg/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedStore wraps a Store to add logging and tracing.
type InstrumentedStore struct {
	next   Store
	name   string
	tracer trace.Tracer
}

// NewInstrumentedStore wraps next with tracing and logging under the given
// component name.
func NewInstrumentedStore(next Store, name string) *InstrumentedStore {
	return &InstrumentedStore{
		next:   next,
		name:   name,
		tracer: otel.Tracer("pkg/storage/blob"),
	}
}

func (s *InstrumentedStore) Upload(ctx context.Context, key string, r io.Reader) error {
	ctx, span := s.tracer.Start(ctx, s.name+".Upload", trace.WithAttributes(
		attribute.String("blob.key", key),
	))
	defer span.End()

	start := time.Now()
	err := s.next.Upload(ctx, key, r)
	duration := time.Since(start)

	if err != nil {
		logger.L().ErrorContext(ctx, "blob upload failed", "key", key, "error", err, "duration_ms", duration.Milliseconds())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	logger.L().DebugContext(ctx, "blob uploaded", "key", key, "duration_ms", duration.Milliseconds())
	return nil
}

func (s *InstrumentedStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ctx, span := s.tracer.Start(ctx, s.name+".Download", trace.WithAttributes(
		attribute.String("blob.key", key),
	))
	defer span.End()

	rc, err := s.next.Download(ctx, key)
	if err != nil {
		logger.L().WarnContext(ctx, "blob download failed", "key", key, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return rc, nil
}

func (s *InstrumentedStore) Delete(ctx context.Context, key string) error {
	ctx, span := s.tracer.Start(ctx, s.name+".Delete", trace.WithAttributes(
		attribute.String("blob.key", key),
	))
	defer span.End()

	if err := s.next.Delete(ctx, key); err != nil {
		logger.L().WarnContext(ctx, "blob delete failed", "key", key, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	logger.L().DebugContext(ctx, "blob deleted", "key", key)
	return nil
}
