package database

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const instrumentationName = "internal/pkg/database"

// GormTracingPlugin 实现 gorm.Plugin 接口, 为数据库操作生成 OpenTelemetry span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	return registerTracingCallbacks(p,
		db.Callback().Query(),
		db.Callback().Create(),
		db.Callback().Update(),
		db.Callback().Delete(),
		db.Callback().Raw(),
	)
}

// gorm 的 processor/callback 类型未导出, 无法用具名接口匹配, 只能靠类型参数约束方法集
func registerTracingCallbacks[C interface {
	Register(string, func(*gorm.DB)) error
}, P interface {
	Before(string) C
	After(string) C
}](p *GormTracingPlugin, query, create, update, del, raw P) error {
	ops := map[string]P{
		"query":  query,
		"create": create,
		"update": update,
		"delete": del,
		"raw":    raw,
	}
	for op, cb := range ops {
		op := op
		if err := cb.Before("gorm:" + op).Register("tracing:before_"+op, p.before(op)); err != nil {
			return err
		}
		if err := cb.After("gorm:" + op).Register("tracing:after_"+op, p.after); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		ctx := db.Statement.Context
		spanName := fmt.Sprintf("%s %s", db.Statement.Table, op)
		ctx, span := p.tracer.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set("tracing:span", span)
		db.Set("tracing:op", op)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	spanValue, exists := db.Get("tracing:span")
	if !exists {
		return
	}
	span, ok := spanValue.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("db.system", "mysql"),
	}
	if op, ok := db.Get("tracing:op"); ok {
		attrs = append(attrs, attribute.String("db.operation", fmt.Sprintf("%v", op)))
	}
	if db.Statement.Table != "" {
		attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	if db.Statement.RowsAffected > 0 {
		attrs = append(attrs, attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
	}
	span.SetAttributes(attrs...)

	if err := db.Error; err != nil && db.Error != gorm.ErrRecordNotFound {
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
