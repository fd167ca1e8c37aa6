package homework

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse is returned when the payload shape is wrong.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrMalformedItem is returned when a homeworks element lacks required fields.
	ErrMalformedItem = errors.New("malformed homework item")
)

// ExtractHomeworks validates a decoded JSON payload and returns its homework
// items in source order.
//
// A payload that is not an object, has no "homeworks" key, or whose
// "homeworks" value is not an array fails with ErrMalformedResponse.
// Elements missing a name or status are reported through an error wrapping
// ErrMalformedItem; well-formed siblings are still returned with it.
func ExtractHomeworks(payload any) ([]Item, error) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: payload is %s, want object", ErrMalformedResponse, kindOf(payload))
	}

	raw, ok := obj["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: missing homeworks key", ErrMalformedResponse)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: homeworks is %s, want array", ErrMalformedResponse, kindOf(raw))
	}

	items := make([]Item, 0, len(list))
	var errs []error
	for i, el := range list {
		item, err := decodeItem(el)
		if err != nil {
			errs = append(errs, fmt.Errorf("homeworks[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	return items, errors.Join(errs...)
}

func decodeItem(el any) (Item, error) {
	obj, ok := el.(map[string]any)
	if !ok {
		return Item{}, fmt.Errorf("%w: element is %s, want object", ErrMalformedItem, kindOf(el))
	}

	name := stringField(obj, "homework_name")
	if name == "" {
		name = stringField(obj, "name")
	}
	if name == "" {
		return Item{}, fmt.Errorf("%w: missing homework_name", ErrMalformedItem)
	}

	status, ok := obj["status"].(string)
	if !ok {
		return Item{}, fmt.Errorf("%w: %q has no status", ErrMalformedItem, name)
	}

	return Item{
		Name:    name,
		Status:  Status(status),
		Lesson:  stringField(obj, "lesson_name"),
		Comment: stringField(obj, "reviewer_comment"),
	}, nil
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// kindOf names the JSON kind of a value decoded by encoding/json.
func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
