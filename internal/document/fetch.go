package document

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const cacheDirName = "docscan-cache"

// Fetcher downloads remote documents and keeps a content-addressed cache on
// disk, keyed by the SHA-256 of the source URL. Entries are never expired or
// invalidated; cleanup is external.
type Fetcher struct {
	client   *http.Client
	cacheDir string
}

// NewFetcher creates a fetcher backed by the shared cache directory under the
// OS temp root, creating it if absent.
func NewFetcher(client *http.Client) (*Fetcher, error) {
	return newFetcherAt(client, filepath.Join(os.TempDir(), cacheDirName))
}

func newFetcherAt(client *http.Client, dir string) (*Fetcher, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache dir %s: %w", dir, err)
	}
	return &Fetcher{client: client, cacheDir: dir}, nil
}

// CacheDir returns the directory holding cached downloads.
func (f *Fetcher) CacheDir() string { return f.cacheDir }

// Resolve dispatches a reference to Fetch or ResolveLocal depending on which
// side it carries.
func (f *Fetcher) Resolve(ctx context.Context, ref Reference) (ResolvedDocument, error) {
	if url, ok := ref.URL(); ok {
		return f.Fetch(ctx, url)
	}
	if path, ok := ref.Path(); ok {
		return ResolveLocal(path)
	}
	return ResolvedDocument{}, &InvalidPathError{Reason: "empty document reference"}
}

// Fetch returns the document at url, serving repeat requests for the same URL
// from the cache. A cache hit is always trusted; there is no freshness check.
func (f *Fetcher) Fetch(ctx context.Context, url string) (ResolvedDocument, error) {
	sum := sha256.Sum256([]byte(url))
	key := hex.EncodeToString(sum[:])

	doc, ok, err := f.fromCache(key)
	if err != nil {
		return ResolvedDocument{}, err
	}
	if ok {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ResolvedDocument{}, &NetworkError{URL: url, Err: err}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return ResolvedDocument{}, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ResolvedDocument{}, &NetworkError{URL: url, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ResolvedDocument{}, &DownloadError{URL: url, Status: resp.StatusCode, Body: string(body)}
	}

	kind, ext, err := kindFromContentType(url, resp.Header.Get("Content-Type"))
	if err != nil {
		return ResolvedDocument{}, err
	}

	if err := f.persist(key, ext, body); err != nil {
		return ResolvedDocument{}, err
	}

	return ResolvedDocument{
		Payload:  base64.StdEncoding.EncodeToString(body),
		Kind:     kind,
		CacheKey: key,
	}, nil
}

// fromCache scans the cache directory for an entry whose name is prefixed by
// key. The kind of a hit is taken from the cached file's extension, the one
// place an extension is consulted, because the fetcher chose it itself.
func (f *Fetcher) fromCache(key string) (ResolvedDocument, bool, error) {
	entries, err := os.ReadDir(f.cacheDir)
	if err != nil {
		return ResolvedDocument{}, false, fmt.Errorf("read cache dir %s: %w", f.cacheDir, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, key) || strings.HasSuffix(name, ".tmp") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(f.cacheDir, name))
		if err != nil {
			return ResolvedDocument{}, false, fmt.Errorf("read cache entry %s: %w", name, err)
		}
		kind := KindImage
		if strings.EqualFold(filepath.Ext(name), ".pdf") {
			kind = KindPDF
		}
		return ResolvedDocument{
			Payload:  base64.StdEncoding.EncodeToString(data),
			Kind:     kind,
			CacheKey: key,
		}, true, nil
	}
	return ResolvedDocument{}, false, nil
}

// persist writes to a temporary name first and renames into place, so a
// concurrent reader never observes a partially written entry. Racing writers
// of the same URL produce identical content; last rename wins.
func (f *Fetcher) persist(key, ext string, data []byte) error {
	final := filepath.Join(f.cacheDir, key+"."+ext)
	tmp := final + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// kindFromContentType maps the declared Content-Type to a document kind and a
// cache file extension.
func kindFromContentType(url, contentType string) (Kind, string, error) {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch {
	case strings.Contains(ct, "pdf"):
		return KindPDF, "pdf", nil
	case strings.HasPrefix(ct, "image/"):
		ext := strings.TrimPrefix(ct, "image/")
		if ext == "jpeg" {
			ext = "jpg"
		}
		return KindImage, ext, nil
	default:
		return 0, "", &UnknownContentTypeError{URL: url, ContentType: contentType}
	}
}
