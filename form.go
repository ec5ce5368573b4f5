package pagverde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
)

// encodeJSON serializes the payload as-is. Nested structure is preserved;
// nothing is flattened in JSON mode.
func encodeJSON(params Params) ([]byte, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, &EncodingError{Err: err}
	}
	return data, nil
}

// flattenParams rewrites nested payload values into bracketed keys, the form
// multipart encoding needs: {"meta": {"title": "x"}} becomes
// {"meta[title]": "x"}, and array-style values use the element index as the
// child key. The pass repeats until no nested value remains, so arbitrarily
// deep payloads terminate after depth passes; a payload that is already flat
// comes back unchanged.
func flattenParams(params Params) Params {
	flat := make(Params, len(params))
	for key, value := range params {
		flat[key] = value
	}

	for {
		next := make(Params, len(flat))
		nested := false
		for key, value := range flat {
			switch v := value.(type) {
			case Params:
				flattenChildMap(next, key, v)
				nested = true
			case map[string]any:
				flattenChildMap(next, key, v)
				nested = true
			case map[string]string:
				for child, cv := range v {
					next[childKey(key, child)] = cv
				}
				nested = true
			case []any:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			case []string:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			case []Attachment:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			case []*Attachment:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			case []Params:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			case []map[string]any:
				for i, cv := range v {
					next[childKey(key, strconv.Itoa(i))] = cv
				}
				nested = true
			default:
				next[key] = value
			}
		}
		flat = next
		if !nested {
			return flat
		}
	}
}

func flattenChildMap(dst Params, parent string, children map[string]any) {
	for child, value := range children {
		dst[childKey(parent, child)] = value
	}
}

func childKey(parent, child string) string {
	return parent + "[" + child + "]"
}

// encodeMultipart flattens the payload and writes it as multipart/form-data,
// returning the body and the Content-Type value carrying the boundary.
// Attachments become file parts, every other value a text field. Fields are
// written in sorted key order so the encoded body is stable.
func encodeMultipart(params Params) ([]byte, string, error) {
	flat := flattenParams(params)

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, key := range keys {
		var err error
		switch v := flat[key].(type) {
		case Attachment:
			err = writeFilePart(writer, key, v)
		case *Attachment:
			if v != nil {
				err = writeFilePart(writer, key, *v)
			}
		default:
			err = writer.WriteField(key, formValue(v))
		}
		if err != nil {
			return nil, "", &EncodingError{Err: fmt.Errorf("write form field %s: %w", key, err)}
		}
	}
	if err := writer.Close(); err != nil {
		return nil, "", &EncodingError{Err: err}
	}
	return body.Bytes(), writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, key string, att Attachment) error {
	part, err := writer.CreateFormFile(key, att.Filename)
	if err != nil {
		return err
	}
	_, err = part.Write(att.Content)
	return err
}

// formValue stringifies a flattened field value for a text part. Unlike the
// query encoder nothing is dropped here; nil becomes an empty field.
func formValue(v any) string {
	s, _ := queryValue(v)
	return s
}
