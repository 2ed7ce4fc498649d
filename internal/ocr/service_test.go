package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docscan/internal/document"
)

const resultEnvelope = `{
	"result": {
		"layoutParsingResults": [
			{"markdown": {"text": "# Page one", "images": {}}},
			{"markdown": {"text": "see [img1]", "images": {"[img1]": "https://x/y.png"}}}
		]
	}
}`

func TestInvokeBuildsFixedPayload(t *testing.T) {
	var (
		gotAuth        string
		gotContentType string
		gotBody        layoutRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(resultEnvelope))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", srv.Client())
	doc := document.ResolvedDocument{Payload: "cGRmIGJ5dGVz", Kind: document.KindPDF}

	results, err := client.Invoke(context.Background(), doc)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(results))
	}

	if gotAuth != "token secret" {
		t.Errorf("expected Authorization %q, got %q", "token secret", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %q", gotContentType)
	}
	if gotBody.File != doc.Payload {
		t.Errorf("payload not forwarded: %q", gotBody.File)
	}
	if gotBody.FileType != 0 {
		t.Errorf("expected fileType 0 for pdf, got %d", gotBody.FileType)
	}
	if !gotBody.UseLayoutDetection {
		t.Error("layout detection must be enabled")
	}
	if gotBody.UseDocOrientationClassify || gotBody.UseDocUnwarping || gotBody.UseChartRecognition {
		t.Error("orientation/unwarping/chart toggles must be off")
	}
	if gotBody.Temperature != 0 || gotBody.TopP != 1 || gotBody.RepetitionPenalty != 1 {
		t.Errorf("unexpected sampling parameters: %v %v %v",
			gotBody.Temperature, gotBody.TopP, gotBody.RepetitionPenalty)
	}
	found := false
	for _, label := range gotBody.MarkdownIgnoreLabels {
		if label == "header" {
			found = true
		}
	}
	if !found {
		t.Errorf("ignore labels missing %q: %v", "header", gotBody.MarkdownIgnoreLabels)
	}
}

func TestInvokeImageFileType(t *testing.T) {
	var gotBody layoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(resultEnvelope))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	doc := document.ResolvedDocument{Payload: "aW1n", Kind: document.KindImage}
	if _, err := client.Invoke(context.Background(), doc); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotBody.FileType != 1 {
		t.Errorf("expected fileType 1 for image, got %d", gotBody.FileType)
	}
}

func TestInvokeOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(resultEnvelope))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", srv.Client())
	doc := document.ResolvedDocument{Payload: "aW1n", Kind: document.KindImage}
	if _, err := client.Invoke(context.Background(), doc); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestInvokeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", srv.Client())
	doc := document.ResolvedDocument{Payload: "eA==", Kind: document.KindImage}

	_, err := client.Invoke(context.Background(), doc)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", upErr.Status)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "server error") {
		t.Errorf("error message must carry status and body, got %q", err.Error())
	}
}

func TestInvokeMalformedResponse(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "definitely not json"},
		{"missing envelope", `{"result": {}}`},
		{"wrong shape", `{"outputs": []}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "secret", srv.Client())
			doc := document.ResolvedDocument{Payload: "eA==", Kind: document.KindImage}

			_, err := client.Invoke(context.Background(), doc)
			var malErr *MalformedResponseError
			if !errors.As(err, &malErr) {
				t.Fatalf("expected *MalformedResponseError, got %v", err)
			}
		})
	}
}

func TestInvokeEmptyResultListIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": {"layoutParsingResults": []}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", srv.Client())
	doc := document.ResolvedDocument{Payload: "eA==", Kind: document.KindImage}

	results, err := client.Invoke(context.Background(), doc)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no fragments, got %d", len(results))
	}
}
