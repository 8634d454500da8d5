package formdata

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Flatten converts parsed form values into a map keyed by field name.
// Uniquely-named fields map to their single string value; fields whose name
// repeats map to a []string holding every value in submission order.
func Flatten(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for name, vs := range values {
		switch len(vs) {
		case 0:
			// ParseForm never produces this, but a hand-built
			// url.Values can.
			out[name] = ""
		case 1:
			out[name] = vs[0]
		default:
			out[name] = append([]string(nil), vs...)
		}
	}
	return out
}

// Nested converts parsed form values into nested maps, interpreting "." in
// field names as a path: "one.a" and "one.b" become {"one": {"a": ..., "b":
// ...}}. Repeated leaf names become a []string at their path, as in Flatten.
// A scalar previously written at an intermediate path is replaced by a map.
func Nested(values url.Values) map[string]any {
	out := make(map[string]any)
	for name, vs := range values {
		setPath(out, strings.Split(name, "."), vs)
	}
	return out
}

func setPath(node map[string]any, path []string, vs []string) {
	leaf := path[len(path)-1]
	for _, segment := range path[:len(path)-1] {
		child, ok := node[segment].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[segment] = child
		}
		node = child
	}
	switch len(vs) {
	case 0:
		node[leaf] = ""
	case 1:
		node[leaf] = vs[0]
	default:
		node[leaf] = append([]string(nil), vs...)
	}
}

// ParseForm parses an incoming form submission and returns its flattened
// values. It accepts application/x-www-form-urlencoded and
// multipart/form-data bodies; anything else fails with
// ErrUnsupportedMediaType.
func ParseForm(r *http.Request) (map[string]any, error) {
	values, err := requestValues(r)
	if err != nil {
		return nil, err
	}
	return Flatten(values), nil
}

// ParseNestedForm parses an incoming form submission and returns its values
// nested by dot-separated field names, as in Nested.
func ParseNestedForm(r *http.Request) (map[string]any, error) {
	values, err := requestValues(r)
	if err != nil {
		return nil, err
	}
	return Nested(values), nil
}

// multipartMaxMemory bounds the in-memory portion of multipart parsing;
// larger file parts spill to disk per net/http semantics.
const multipartMaxMemory = 10 << 20

func requestValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected a form media type", ErrMissingContentType)
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil
	default:
		return nil, fmt.Errorf("%w: got %s, expected a form media type", ErrUnsupportedMediaType, mediaType)
	}
}
