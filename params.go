package pagverde

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Param is one query-string parameter. The order of a []Param is preserved
// in the encoded query.
type Param struct {
	Name  string
	Value any
}

// Params is a request payload, mapping field names to values. Values may be
// scalars, nested maps (Params or map[string]any) for structured fields,
// slices for array-style fields, or Attachment for binary uploads.
type Params map[string]any

// Attachment is a binary file sent as a multipart file part.
type Attachment struct {
	Filename string
	Content  []byte
}

// AttachmentFromFile reads path and returns its contents as an Attachment
// named after the file.
func AttachmentFromFile(path string) (Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, err
	}
	return Attachment{Filename: filepath.Base(path), Content: content}, nil
}

// encodeQuery renders params as a "?"-prefixed query string, percent-encoded
// and joined in input order. A parameter is kept only when its name is
// non-empty and its value is a non-empty string or a number; numeric zero is
// a significant value and is kept. Returns "" when nothing survives
// filtering, so the caller appends nothing to the path.
func encodeQuery(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		value, ok := queryValue(p.Value)
		if p.Name == "" || !ok {
			continue
		}
		if b.Len() == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

// queryValue stringifies v and reports whether the parameter should be kept.
// Numbers are always kept, including zero; empty strings and nil are not.
func queryValue(v any) (string, bool) {
	switch value := v.(type) {
	case nil:
		return "", false
	case string:
		return value, value != ""
	case int:
		return strconv.Itoa(value), true
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(value), true
	case float32:
		return strconv.FormatFloat(float64(value), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	case fmt.Stringer:
		s := value.String()
		return s, s != ""
	default:
		s := fmt.Sprint(value)
		return s, s != ""
	}
}
