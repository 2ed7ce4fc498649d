package document

// Kind classifies a resolved document for the layout-parsing endpoint.
type Kind int

const (
	KindPDF Kind = iota
	KindImage
)

func (k Kind) String() string {
	if k == KindPDF {
		return "pdf"
	}
	return "image"
}

// ResolvedDocument is a document normalized for an OCR request: the raw file
// bytes base64-encoded plus the kind derived from a sniffed signature or a
// declared content type, never from a user-supplied extension alone.
type ResolvedDocument struct {
	Payload  string // base64-encoded file bytes
	Kind     Kind
	CacheKey string // sha256 of the source URL, set only for fetched documents
	Pages    int    // PDF page count, 0 when unknown
}

// Reference points at a document by exactly one of a remote URL or a local
// filesystem path.
type Reference struct {
	url  string
	path string
}

// URLReference makes a Reference to a remote document.
func URLReference(url string) Reference { return Reference{url: url} }

// PathReference makes a Reference to a local file.
func PathReference(path string) Reference { return Reference{path: path} }

// URL returns the remote URL, if this reference carries one.
func (r Reference) URL() (string, bool) { return r.url, r.url != "" }

// Path returns the local path, if this reference carries one.
func (r Reference) Path() (string, bool) { return r.path, r.path != "" }
