package tools

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"docscan/internal/document"
	"docscan/internal/ocr"
)

// Handler wires the document resolvers and the layout OCR client to MCP
// tools. Every pipeline error is converted into an error-flagged tool result
// so a failed call never tears down the protocol session.
type Handler struct {
	fetcher    *document.Fetcher
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewHandler creates a handler using endpoint/token as the default upstream
// credentials; session overrides from the context take precedence per call.
func NewHandler(fetcher *document.Fetcher, endpoint, token string, httpClient *http.Client) *Handler {
	return &Handler{
		fetcher:    fetcher,
		endpoint:   endpoint,
		token:      token,
		httpClient: httpClient,
	}
}

// client builds the OCR client for one call, applying any session override.
func (h *Handler) client(ctx context.Context) *ocr.Client {
	endpoint, token := h.endpoint, h.token
	if o, ok := OverrideFrom(ctx); ok {
		if o.Endpoint != "" {
			endpoint = o.Endpoint
		}
		if o.Token != "" {
			token = o.Token
		}
	}
	return ocr.NewClient(endpoint, token, h.httpClient)
}

// ParseDocumentURL handles the remote front end: fetch (through the cache),
// parse, flatten.
func (h *Handler) ParseDocumentURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileURL, err := req.RequireString("file_url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := h.fetcher.Resolve(ctx, document.URLReference(fileURL))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.parse(ctx, doc)
}

// ParseDocumentFile handles the local front end: validate and read the file,
// parse, flatten.
func (h *Handler) ParseDocumentFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := h.fetcher.Resolve(ctx, document.PathReference(path))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if doc.Pages > 0 {
		log.Printf("parsing %s: %s, %d pages", path, doc.Kind, doc.Pages)
	}
	return h.parse(ctx, doc)
}

func (h *Handler) parse(ctx context.Context, doc document.ResolvedDocument) (*mcp.CallToolResult, error) {
	results, err := h.client(ctx).Invoke(ctx, doc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	blocks := ocr.Flatten(results)
	content := make([]mcp.Content, 0, len(blocks))
	for _, block := range blocks {
		content = append(content, mcp.NewTextContent(block))
	}
	return &mcp.CallToolResult{Content: content}, nil
}

// ListDirectory lists regular files under a directory so callers can locate
// documents to parse.
func (h *Handler) ListDirectory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list %s: %v", dir, err)), nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name()+"/")
			continue
		}
		info, err := entry.Info()
		if err != nil {
			names = append(names, entry.Name())
			continue
		}
		names = append(names, fmt.Sprintf("%s (%d bytes)", entry.Name(), info.Size()))
	}
	sort.Strings(names)
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}
