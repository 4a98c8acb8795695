package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// JSON defers marshaling v until the log line is written, so a disabled
// logger never pays for it. The result works with both %s and slog args.
func JSON(v any) any {
	if v == nil {
		return nil
	}
	if j, ok := v.(JSONValue); ok {
		return j
	}
	return JSONValue{Value: v}
}

type JSONValue struct {
	Value any
}

func (c JSONValue) String() string {
	b, err := json.Marshal(c.Value)
	if err != nil {
		return fmt.Sprintf("<json: %v>", err)
	}
	return string(b)
}

func (c JSONValue) LogValue() slog.Value {
	return slog.StringValue(c.String())
}
