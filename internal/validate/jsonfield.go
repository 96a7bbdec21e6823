package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

type fieldState int

const (
	fieldOK fieldState = iota
	fieldMissing
	fieldNotString
)

// stringField reads obj[key] as a string. Absent, null, empty and
// whitespace-only values all count as missing.
func stringField(obj map[string]any, key string) (string, fieldState) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", fieldMissing
	}
	s, ok := raw.(string)
	if !ok {
		return "", fieldNotString
	}
	if strings.TrimSpace(s) == "" {
		return "", fieldMissing
	}
	return s, fieldOK
}

// has reports whether key is present with a non-null value.
func has(obj map[string]any, key string) bool {
	raw, ok := obj[key]
	return ok && raw != nil
}

// errNotObject marks a document that parsed but is not a JSON object.
var errNotObject = errors.New("top-level value is not a JSON object")

// readObject loads a JSON document that must be an object. Read failures
// come back as *fs.PathError, a non-object as errNotObject, anything else
// is a decode error.
func readObject(p string) (map[string]any, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errNotObject
	}
	return obj, nil
}

// describeLoadError turns a readObject failure into the tail of a message.
func describeLoadError(err error) string {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, errNotObject):
		return "must be a JSON object"
	case errors.As(err, &pathErr):
		return fmt.Sprintf("could not be read: %v", pathErr.Err)
	default:
		return fmt.Sprintf("is not valid JSON: %v", err)
	}
}
