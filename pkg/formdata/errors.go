package formdata

import "errors"

// Common form parsing errors.
var (
	ErrMissingContentType   = errors.New("formdata: missing content type")
	ErrUnsupportedMediaType = errors.New("formdata: unsupported media type")
	ErrInvalidForm          = errors.New("formdata: invalid form data")
)
