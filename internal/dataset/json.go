package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// ParseJSON parses a JSON document into an ordered Value.
// Malformed input fails with a ParseError carrying the byte offset.
func ParseJSON(data string) (Value, error) {
	if err := json.Unmarshal([]byte(data), new(json.RawMessage)); err != nil {
		return Value{}, &toolerr.ParseError{Subject: "JSON", Detail: syntaxDetail(err)}
	}
	return fromResult(gjson.Parse(data)), nil
}

func syntaxDetail(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
	}
	return err.Error()
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.True:
		return NewBool(true)
	case gjson.False:
		return NewBool(false)
	case gjson.Number:
		return NewNumber(r.Raw)
	case gjson.String:
		return NewString(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			arr := Value{kind: Array, items: []Value{}}
			r.ForEach(func(_, item gjson.Result) bool {
				arr.items = append(arr.items, fromResult(item))
				return true
			})
			return arr
		}
		obj := Value{kind: Object}
		r.ForEach(func(key, member gjson.Result) bool {
			obj.set(key.Str, fromResult(member))
			return true
		})
		return obj
	default:
		return NewNull()
	}
}

// RenderJSON renders v with two-space indentation. Non-ASCII characters and
// HTML-significant characters are written literally. Rendering is a fixed
// point: ParseJSON(RenderJSON(v)) renders identically.
func RenderJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v, "  ", 0)
	return b.String()
}

// CompactJSON renders v on a single line.
func CompactJSON(v Value) string {
	var b strings.Builder
	writeJSON(&b, v, "", 0)
	return b.String()
}

func writeJSON(b *strings.Builder, v Value, indent string, depth int) {
	switch v.kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if v.boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(v.text)
	case String:
		b.WriteString(quote(v.text))
	case Array:
		if len(v.items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			writeJSON(b, item, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case Object:
		if len(v.members) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			b.WriteString(quote(m.Key))
			b.WriteByte(':')
			if indent != "" {
				b.WriteByte(' ')
			}
			writeJSON(b, m.Value, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte('}')
	}
}

func newline(b *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

// quote encodes s as a JSON string literal without HTML escaping.
func quote(s string) string {
	out, err := sonic.ConfigDefault.MarshalToString(s)
	if err != nil {
		// strings always encode; keep a valid literal regardless
		out, _ := json.Marshal(s)
		return string(out)
	}
	return out
}
