package ocr

import "fmt"

// UpstreamError reports a non-success response from the layout endpoint.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("layout api error: status=%d, body=%s", e.Status, e.Body)
}

// MalformedResponseError reports a response body missing the expected result
// envelope.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed layout response: %s", e.Reason)
}
