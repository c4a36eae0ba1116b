package database

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/fugu-chop/todo-db/internal/platform/logging"
	"github.com/fugu-chop/todo-db/internal/platform/telemetry"
)

// multiTracer fans pgx's single tracer slot out to several tracers.
// End callbacks run in reverse order so nested spans close correctly.
type multiTracer struct {
	tracers []pgx.QueryTracer
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, t := range mt.tracers {
		ctx = t.TraceQueryStart(ctx, conn, data)
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for i := len(mt.tracers) - 1; i >= 0; i-- {
		mt.tracers[i].TraceQueryEnd(ctx, conn, data)
	}
}

// NewQueryLogger returns a pgx tracer that logs every statement with its SQL
// text and bound arguments. The request-scoped logger from the context is
// preferred so statements carry the request id.
func NewQueryLogger(logger *slog.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		Logger: tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			l := logger
			if ctxLogger := logging.FromContext(ctx); ctxLogger != slog.Default() {
				l = ctxLogger
			}

			attrs := make([]slog.Attr, 0, len(data))
			for k, v := range data {
				attrs = append(attrs, slog.Any(k, v))
			}
			l.LogAttrs(ctx, slogLevel(level), msg, attrs...)
		}),
		LogLevel: tracelog.LogLevelInfo,
	}
}

func slogLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return slog.LevelDebug
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	case tracelog.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type queryStartKey struct{}

type queryStart struct {
	at        time.Time
	operation string
}

// QueryTracer records a span and the db.client metrics for each statement.
type QueryTracer struct {
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// NewQueryTracer uses the global tracer provider. metrics may be nil.
func NewQueryTracer(metrics *telemetry.Metrics) *QueryTracer {
	return &QueryTracer{
		tracer:  otel.GetTracerProvider().Tracer(telemetry.InstrumentationName),
		metrics: metrics,
	}
}

func (qt *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	op := operationName(data.SQL)
	ctx, _ = qt.tracer.Start(ctx, "db "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
			attribute.String("db.statement", data.SQL),
		),
	)
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: time.Now(), operation: op})
}

func (qt *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	result := "success"
	if data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows) {
		result = "error"
		span.RecordError(data.Err)
		span.SetStatus(codes.Error, data.Err.Error())
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))

	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok || qt.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(start.operation),
		telemetry.AttrResult.String(result),
	)
	qt.metrics.DBOperationDuration.Record(ctx, time.Since(start.at).Seconds(), attrs)
	qt.metrics.DBOperationTotal.Add(ctx, 1, attrs)
}

// operationName returns the leading SQL keyword, e.g. "SELECT".
func operationName(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
