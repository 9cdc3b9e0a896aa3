package metrics

import (
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// FilterAttributes drops attributes with empty values so exporters never see
// blank label dimensions.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Value.Type() == attribute.STRING && strings.TrimSpace(attr.Value.AsString()) == "" {
			continue
		}
		out = append(out, attr)
	}
	return out
}
