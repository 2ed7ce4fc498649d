package document

import "fmt"

// InvalidPathError reports a local path rejected by validation, before any
// filesystem access.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// UnsupportedTypeError reports a file whose signature is recognized but is
// neither a PDF nor an image.
type UnsupportedTypeError struct {
	Path     string
	Detected string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %s for %s: expected a PDF or an image", e.Detected, e.Path)
}

// UnrecognizedTypeError reports a file whose signature could not be
// determined at all.
type UnrecognizedTypeError struct {
	Path string
}

func (e *UnrecognizedTypeError) Error() string {
	return fmt.Sprintf("could not determine document type of %s from its content", e.Path)
}

// DownloadError reports a non-success status from the remote server.
type DownloadError struct {
	URL    string
	Status int
	Body   string
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s failed: status=%d, body=%s", e.URL, e.Status, e.Body)
}

// NetworkError reports a transport-level download failure.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnknownContentTypeError reports a response whose Content-Type is neither a
// PDF nor an image. Such bytes are rejected instead of being forwarded to the
// layout endpoint.
type UnknownContentTypeError struct {
	URL         string
	ContentType string
}

func (e *UnknownContentTypeError) Error() string {
	return fmt.Sprintf("unknown content type %q served by %s", e.ContentType, e.URL)
}
