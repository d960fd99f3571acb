package tracing

import (
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/opentracing/opentracing-go/log"
)

const (
	SpanTagComponent = "component"
	SpanTagMessageId = "message-id"
	SpanTagFolderId  = "folder-id"
)

const (
	SpanTagComponentService = "service"
	SpanTagComponentAuth    = "auth"
)

func TagComponentService(span opentracing.Span) {
	span.SetTag(SpanTagComponent, SpanTagComponentService)
}

func TagComponentAuth(span opentracing.Span) {
	span.SetTag(SpanTagComponent, SpanTagComponentAuth)
}

func TagMessageId(span opentracing.Span, messageId string) {
	if messageId != "" {
		span.SetTag(SpanTagMessageId, messageId)
	}
}

func TagFolderId(span opentracing.Span, folderId string) {
	if folderId != "" {
		span.SetTag(SpanTagFolderId, folderId)
	}
}

func TraceErr(span opentracing.Span, err error, fields ...log.Field) {
	if span == nil || err == nil {
		return
	}
	// Log the error with the fields
	ext.LogError(span, err, fields...)
}
