package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "docscan"
	serverVersion = "1.0.0"
)

func newMCPServer() *server.MCPServer {
	return server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
}

// NewStdioServer registers the local-file front end: document parsing by path
// plus directory listing.
func NewStdioServer(h *Handler) *server.MCPServer {
	s := newMCPServer()

	parseTool := mcp.NewTool("parse_document_file",
		mcp.WithDescription("Run layout OCR on a local PDF or image file and return its content as markdown, one text block per page or region"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to a local PDF or image file")),
	)
	s.AddTool(parseTool, h.ParseDocumentFile)

	listTool := mcp.NewTool("list_directory",
		mcp.WithDescription("List the files in a local directory to locate documents to parse"),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path to a local directory")),
	)
	s.AddTool(listTool, h.ListDirectory)

	return s
}

// NewSSEServer registers the remote front end: document parsing by URL served
// over SSE sessions. The x-api-url and x-token headers of the session request
// override the configured endpoint and token for that session.
func NewSSEServer(h *Handler) *server.SSEServer {
	s := newMCPServer()

	urlTool := mcp.NewTool("parse_document_url",
		mcp.WithDescription("Run layout OCR on a remote PDF or image and return its content as markdown, one text block per page or region"),
		mcp.WithString("file_url", mcp.Required(), mcp.Description("URL of the PDF or image to parse")),
	)
	s.AddTool(urlTool, h.ParseDocumentURL)

	return server.NewSSEServer(s,
		server.WithSSEContextFunc(SSEContextFunc),
	)
}
