package content

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no record of a kind has the requested id.
	ErrNotFound = errors.New("content not found")
	// ErrUnknownKind is returned for a kind selector outside the catalog's collections.
	ErrUnknownKind = errors.New("unknown content kind")
)

// AllCategories is the category sentinel that disables filtering.
const AllCategories = "All"

// RelatedCount is how many related records a detail page shows.
const RelatedCount = 3

// Kind selects one of the catalog's record collections.
type Kind string

const (
	KindService     Kind = "services"
	KindProject     Kind = "portfolio"
	KindArticle     Kind = "blog"
	KindTeamMember  Kind = "team"
	KindTestimonial Kind = "testimonials"
	KindFAQ         Kind = "faqs"
)

// Kinds lists every collection kind in document order.
var Kinds = []Kind{KindService, KindProject, KindArticle, KindTeamMember, KindTestimonial, KindFAQ}

// ParseKind maps a URL segment to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// Record is a content entity addressable by id within its kind.
// Records without a category report the empty string.
type Record interface {
	RecordID() string
	RecordCategory() string
}

type Link struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link,omitempty" yaml:"link"`
}

type Hero struct {
	Title        string `json:"title" yaml:"title"`
	Subtitle     string `json:"subtitle" yaml:"subtitle"`
	Description  string `json:"description" yaml:"description"`
	CTA          Link   `json:"cta" yaml:"cta"`
	SecondaryCTA Link   `json:"secondaryCta" yaml:"secondaryCta"`
	BgImage      string `json:"bgImage" yaml:"bgImage"`
}

type Highlight struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}

type About struct {
	Heading  string      `json:"heading" yaml:"heading"`
	Content  string      `json:"content" yaml:"content"`
	Features []Highlight `json:"features" yaml:"features"`
}

type Contact struct {
	Description string `json:"description" yaml:"description"`
	Phone       string `json:"phone" yaml:"phone"`
	Email       string `json:"email" yaml:"email"`
	Address     string `json:"address" yaml:"address"`
}

// Site groups the singleton sections of the document.
type Site struct {
	Hero     Hero        `json:"hero"`
	About    About       `json:"about"`
	Contact  Contact     `json:"contact"`
	Features []Highlight `json:"features"`
}

type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Name        string   `json:"name,omitempty" yaml:"name"`
	Summary     string   `json:"summary" yaml:"summary"`
	Description string   `json:"description" yaml:"description"`
	Icon        string   `json:"icon" yaml:"icon"`
	Image       string   `json:"image" yaml:"image"`
	Features    []string `json:"features" yaml:"features"`
}

func (s Service) RecordID() string       { return s.ID }
func (s Service) RecordCategory() string { return "" }

// Project is a portfolio case study.
type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Client      string   `json:"client" yaml:"client"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Results     string   `json:"results" yaml:"results"`
	Tags        []string `json:"tags" yaml:"tags"`
}

func (p Project) RecordID() string       { return p.ID }
func (p Project) RecordCategory() string { return p.Category }

// Article is a blog post. Date keeps the document's text; the parsed value is
// available from PublishedAt once the article came through the loader.
type Article struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Excerpt  string   `json:"excerpt" yaml:"excerpt"`
	Content  string   `json:"content" yaml:"content"`
	Category string   `json:"category" yaml:"category"`
	Author   string   `json:"author" yaml:"author"`
	Date     string   `json:"date" yaml:"date"`
	Image    string   `json:"image" yaml:"image"`
	Tags     []string `json:"tags" yaml:"tags"`

	published time.Time
}

func (a Article) RecordID() string       { return a.ID }
func (a Article) RecordCategory() string { return a.Category }

// PublishedAt returns the parsed publish date.
func (a Article) PublishedAt() time.Time { return a.published }

// ReadTime returns the estimated reading time of the body in minutes.
func (a Article) ReadTime() int { return ReadTime(a.Content) }

type TeamMember struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Role      string `json:"role" yaml:"role"`
	Image     string `json:"image" yaml:"image"`
	Portfolio string `json:"portfolio,omitempty" yaml:"portfolio"`
}

func (m TeamMember) RecordID() string       { return m.ID }
func (m TeamMember) RecordCategory() string { return "" }

type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
	Image   string `json:"image" yaml:"image"`
	Rating  int    `json:"rating" yaml:"rating"`
}

func (t Testimonial) RecordID() string       { return t.ID }
func (t Testimonial) RecordCategory() string { return "" }

type FAQ struct {
	ID       string `json:"id" yaml:"id"`
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

func (f FAQ) RecordID() string       { return f.ID }
func (f FAQ) RecordCategory() string { return "" }
