package parsing

import (
	"fmt"
	"time"

	"github.com/jonathan/resumetex/internal/types"
)

const msgRequired = "field required"

// fields is a mapping read from the input together with its path in the document
type fields struct {
	path string
	m    map[string]any
}

func (f fields) child(key string) string {
	if f.path == "" {
		return key
	}
	return f.path + "." + key
}

// lookup returns the value stored at key. A key mapped to null counts as missing.
func (f fields) lookup(key string) (any, bool) {
	v, ok := f.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (f fields) requiredString(key string) (string, error) {
	v, ok := f.lookup(key)
	if !ok {
		return "", &ValidationError{Field: f.child(key), Message: msgRequired}
	}
	return asString(f.child(key), v)
}

func (f fields) optionalString(key string) (*string, error) {
	v, ok := f.lookup(key)
	if !ok {
		return nil, nil
	}
	s, err := asString(f.child(key), v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (f fields) requiredDate(key string) (types.Date, error) {
	v, ok := f.lookup(key)
	if !ok {
		return types.Date{}, &ValidationError{Field: f.child(key), Message: msgRequired}
	}
	return asDate(f.child(key), v)
}

func (f fields) optionalDate(key string) (*types.Date, error) {
	v, ok := f.lookup(key)
	if !ok {
		return nil, nil
	}
	d, err := asDate(f.child(key), v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// requiredStrings returns a non-nil slice, empty when the list has no items
func (f fields) requiredStrings(key string) ([]string, error) {
	v, ok := f.lookup(key)
	if !ok {
		return nil, &ValidationError{Field: f.child(key), Message: msgRequired}
	}
	return asStrings(f.child(key), v)
}

// optionalStrings returns nil when the key is absent
func (f fields) optionalStrings(key string) ([]string, error) {
	v, ok := f.lookup(key)
	if !ok {
		return nil, nil
	}
	return asStrings(f.child(key), v)
}

func (f fields) requiredObject(key string) (fields, error) {
	v, ok := f.lookup(key)
	if !ok {
		return fields{}, &ValidationError{Field: f.child(key), Message: msgRequired}
	}
	return asObject(f.child(key), v)
}

func (f fields) optionalObject(key string) (fields, bool, error) {
	v, ok := f.lookup(key)
	if !ok {
		return fields{}, false, nil
	}
	obj, err := asObject(f.child(key), v)
	if err != nil {
		return fields{}, false, err
	}
	return obj, true, nil
}

// optionalList parses each item of the list at key with parse. The result is nil
// when the key is absent and a non-nil slice otherwise.
func optionalList[T any](f fields, key string, parse func(fields) (T, error)) ([]T, error) {
	v, ok := f.lookup(key)
	if !ok {
		return nil, nil
	}
	path := f.child(key)
	items, ok := v.([]any)
	if !ok {
		return nil, typeError(path, "list", v)
	}

	result := make([]T, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		obj, err := asObject(itemPath, item)
		if err != nil {
			return nil, err
		}
		parsed, err := parse(obj)
		if err != nil {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", typeError(path, "string", v)
	}
	return s, nil
}

func asStrings(path string, v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, typeError(path, "list", v)
	}
	result := make([]string, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		if item == nil {
			return nil, &ValidationError{Field: itemPath, Message: msgRequired}
		}
		s, err := asString(itemPath, item)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func asDate(path string, v any) (types.Date, error) {
	switch d := v.(type) {
	case time.Time:
		return types.DateOf(d), nil
	case string:
		parsed, err := types.ParseDate(d)
		if err != nil {
			return types.Date{}, &ValidationError{
				Field:   path,
				Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", d),
			}
		}
		return parsed, nil
	default:
		return types.Date{}, typeError(path, "date", v)
	}
}

func asObject(path string, v any) (fields, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return fields{}, typeError(path, "mapping", v)
	}
	return fields{path: path, m: m}, nil
}

func typeError(path, want string, got any) error {
	return &ValidationError{
		Field:   path,
		Message: fmt.Sprintf("expected %s, got %s", want, kindOf(got)),
	}
}

// kindOf names the YAML kind of a decoded value for error messages
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case time.Time:
		return "timestamp"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
