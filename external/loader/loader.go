// Package loader reads an HSON body from a text file, optionally preceded by
// a YAML front matter block, and assigns it a UUID correlation id. It is the
// generalized "text file loading" collaborator: the core itself only ever
// parses an in-memory string (document.Parse) and knows nothing about files,
// front matter, or identity.
package loader

import (
	"fmt"
	"os"
	"regexp"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/hson-lang/hson/internal/document"
)

// FrontMatter is the optional metadata block a loaded file may carry above
// its HSON body.
type FrontMatter struct {
	Title   string `yaml:"title"`
	Created string `yaml:"created"`
	Updated string `yaml:"updated"`
}

// DocumentMeta wraps a parsed Document with the identity and optional
// metadata the core itself never tracks.
type DocumentMeta struct {
	ID             uuid.UUID
	FrontMatter    FrontMatter
	HasFrontMatter bool
	Doc            *document.Document
}

// frontMatterRE matches a complete YAML front matter block at the start of a
// file. The closing "---" must appear unindented (at column 0); "---" inside
// a YAML block scalar is always indented, so this is unambiguous without a
// full YAML-aware boundary scanner.
var frontMatterRE = regexp.MustCompile(`(?s)^---\n(.*?)\n---\n`)

// Reader abstracts the file I/O a Load needs, mirroring the teacher's
// ParseReader interface so callers can substitute a fake in tests.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// osReader implements Reader using the real filesystem.
type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// NewOSReader returns a Reader backed by os.ReadFile.
func NewOSReader() Reader { return osReader{} }

// Load reads path via r, splits off any leading front matter block, parses
// the remaining body as HSON, and assigns a fresh UUID correlation id to the
// result.
func Load(r Reader, path string) (*DocumentMeta, error) {
	content, err := r.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return LoadBytes(content)
}

// LoadBytes splits content the same way Load does, without touching the
// filesystem.
func LoadBytes(content []byte) (*DocumentMeta, error) {
	meta := &DocumentMeta{ID: uuid.New()}

	body := content
	if loc := frontMatterRE.FindIndex(content); loc != nil {
		var fm FrontMatter
		if err := yaml.Unmarshal(content[:loc[1]], &fm); err != nil {
			return nil, fmt.Errorf("loader: parsing front matter: %w", err)
		}
		meta.FrontMatter = fm
		meta.HasFrontMatter = true
		body = content[loc[1]:]
	}

	doc, err := document.Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("loader: parsing body: %w", err)
	}
	meta.Doc = doc
	return meta, nil
}
