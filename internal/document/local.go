package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ResolveLocal validates a local file path, reads the file, and classifies it
// by magic-byte signature. The file extension never participates in
// classification: a JPEG named report.txt is still an image.
func ResolveLocal(rawPath string) (ResolvedDocument, error) {
	path := strings.TrimSpace(rawPath)
	if path == "" {
		return ResolvedDocument{}, &InvalidPathError{Path: rawPath, Reason: "empty path"}
	}
	// Reject before touching the filesystem: a NUL truncates paths in lower
	// layers.
	if strings.ContainsRune(path, 0) {
		return ResolvedDocument{}, &InvalidPathError{Path: rawPath, Reason: "path contains a null byte"}
	}
	// Canonicalize separators before cleaning so mixed-separator input
	// normalizes the same way everywhere.
	path = filepath.Clean(filepath.FromSlash(strings.ReplaceAll(path, "\\", "/")))
	if path == "." {
		return ResolvedDocument{}, &InvalidPathError{Path: rawPath, Reason: "path resolves to the current directory"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ResolvedDocument{}, fmt.Errorf("read %s: %w", path, err)
	}

	kind, err := sniffKind(path, data)
	if err != nil {
		return ResolvedDocument{}, err
	}

	doc := ResolvedDocument{
		Payload: base64.StdEncoding.EncodeToString(data),
		Kind:    kind,
	}
	if kind == KindPDF {
		doc.Pages = countPDFPages(data)
	}
	return doc, nil
}

// sniffKind classifies content by signature via the standard MIME sniffing
// rules.
func sniffKind(path string, data []byte) (Kind, error) {
	if len(data) == 0 {
		return 0, &UnrecognizedTypeError{Path: path}
	}
	ct := http.DetectContentType(data)
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch {
	case ct == "application/pdf":
		return KindPDF, nil
	case strings.HasPrefix(ct, "image/"):
		return KindImage, nil
	case ct == "application/octet-stream":
		// Sniffing fell through to the catch-all: no usable signature.
		return 0, &UnrecognizedTypeError{Path: path}
	default:
		return 0, &UnsupportedTypeError{Path: path, Detected: ct}
	}
}

// countPDFPages is best effort; a PDF the reader cannot parse still gets sent
// upstream, just without a page count.
func countPDFPages(data []byte) (n int) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if recover() != nil {
			n = 0
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0
	}
	return reader.NumPage()
}
