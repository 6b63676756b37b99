package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agencysite/assets"

	"gopkg.in/yaml.v3"
)

var (
	ErrMalformed   = errors.New("malformed content document")
	ErrDuplicateID = errors.New("duplicate id")
	ErrMissingID   = errors.New("missing id")
	ErrInvalidDate = errors.New("invalid date")
)

// LoadError describes why a content document was rejected. Kind and ID are
// empty when the document as a whole could not be decoded.
type LoadError struct {
	Source string
	Kind   Kind
	ID     string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load content")
	if e.Source != "" {
		fmt.Fprintf(&b, " %s", e.Source)
	}
	if e.Kind != "" {
		fmt.Fprintf(&b, ": %s", e.Kind)
		if e.ID != "" {
			fmt.Fprintf(&b, " %q", e.ID)
		}
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// Format is the encoding of a content document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from a file extension; anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// document mirrors the top-level layout of the content file.
type document struct {
	Hero         Hero          `json:"hero" yaml:"hero"`
	About        About         `json:"about" yaml:"about"`
	Contact      Contact       `json:"contact" yaml:"contact"`
	Features     []Highlight   `json:"features" yaml:"features"`
	Services     []Service     `json:"services" yaml:"services"`
	Portfolio    []Project     `json:"portfolio" yaml:"portfolio"`
	Blog         []Article     `json:"blog" yaml:"blog"`
	Team         []TeamMember  `json:"team" yaml:"team"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
	FAQs         []FAQ         `json:"faqs" yaml:"faqs"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// Load decodes a content document and builds a Catalog. Loading is
// all-or-nothing: any error yields a nil Catalog and a *LoadError.
func Load(r io.Reader, format Format) (*Catalog, error) {
	return load(r, format, "")
}

// LoadFile loads the content document at path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return load(f, FormatFromPath(path), path)
}

// LoadFS loads the content document name from fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &LoadError{Source: name, Err: err}
	}
	return load(bytes.NewReader(raw), FormatFromPath(name), name)
}

// LoadDefault loads the content document embedded in the binary.
func LoadDefault() (*Catalog, error) {
	return LoadFS(assets.FS, assets.ContentFile)
}

func load(r io.Reader, format Format, source string) (*Catalog, error) {
	var doc document
	if err := decode(r, format, &doc); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}

	for i := range doc.FAQs {
		if doc.FAQs[i].ID == "" {
			doc.FAQs[i].ID = fmt.Sprintf("faq-%d", i+1)
		}
	}

	for i := range doc.Blog {
		published, err := parseDate(doc.Blog[i].Date)
		if err != nil {
			return nil, &LoadError{Source: source, Kind: KindArticle, ID: doc.Blog[i].ID, Err: err}
		}
		doc.Blog[i].published = published
	}

	checks := []struct {
		kind  Kind
		items []Record
	}{
		{KindService, records(doc.Services)},
		{KindProject, records(doc.Portfolio)},
		{KindArticle, records(doc.Blog)},
		{KindTeamMember, records(doc.Team)},
		{KindTestimonial, records(doc.Testimonials)},
		{KindFAQ, records(doc.FAQs)},
	}
	for _, c := range checks {
		if err := checkIDs(c.kind, c.items); err != nil {
			err.Source = source
			return nil, err
		}
	}

	return &Catalog{
		site: Site{
			Hero:     doc.Hero,
			About:    doc.About,
			Contact:  doc.Contact,
			Features: doc.Features,
		},
		services:     doc.Services,
		projects:     doc.Portfolio,
		articles:     doc.Blog,
		team:         doc.Team,
		testimonials: doc.Testimonials,
		faqs:         doc.FAQs,
	}, nil
}

func decode(r io.Reader, format Format, doc *document) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		if err := dec.Decode(doc); err != nil {
			return err
		}
		return nil
	default:
		dec := json.NewDecoder(r)
		if err := dec.Decode(doc); err != nil {
			return err
		}
		if dec.More() {
			return errors.New("trailing data after document")
		}
		return nil
	}
}

func checkIDs(kind Kind, items []Record) *LoadError {
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		id := item.RecordID()
		if id == "" {
			return &LoadError{Kind: kind, Err: fmt.Errorf("%w at position %d", ErrMissingID, i+1)}
		}
		if seen[id] {
			return &LoadError{Kind: kind, ID: id, Err: ErrDuplicateID}
		}
		seen[id] = true
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w %q", ErrInvalidDate, s)
}
