package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"docscan/internal/document"
)

// Client issues layout-parsing requests against a remote OCR endpoint.
type Client struct {
	endpoint   string
	token      string
	opts       RequestOptions
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint. token may be empty, in
// which case no Authorization header is sent.
func NewClient(endpoint, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 300 * time.Second, // 5 minutes timeout
		}
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		opts:       DefaultRequestOptions(),
		httpClient: httpClient,
	}
}

// Invoke sends doc to the layout endpoint and returns the ordered list of
// parsed fragments. There are no retries: a transient failure surfaces
// immediately and the caller decides whether to re-invoke.
func (c *Client) Invoke(ctx context.Context, doc document.ResolvedDocument) ([]LayoutResult, error) {
	fileType := 1
	if doc.Kind == document.KindPDF {
		fileType = 0
	}
	payload := layoutRequest{
		File:                      doc.Payload,
		FileType:                  fileType,
		UseDocOrientationClassify: c.opts.UseDocOrientationClassify,
		UseDocUnwarping:           c.opts.UseDocUnwarping,
		UseLayoutDetection:        c.opts.UseLayoutDetection,
		UseChartRecognition:       c.opts.UseChartRecognition,
		PrettyMarkdown:            c.opts.PrettyMarkdown,
		MarkdownIgnoreLabels:      c.opts.MarkdownIgnoreLabels,
		Temperature:               c.opts.Temperature,
		TopP:                      c.opts.TopP,
		RepetitionPenalty:         c.opts.RepetitionPenalty,
		MinPixels:                 c.opts.MinPixels,
		MaxPixels:                 c.opts.MaxPixels,
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal layout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute layout request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read layout response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var parsed layoutResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error()}
	}
	if parsed.Result.LayoutParsingResults == nil {
		return nil, &MalformedResponseError{Reason: "missing result.layoutParsingResults"}
	}
	return parsed.Result.LayoutParsingResults, nil
}
