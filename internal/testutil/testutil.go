package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"agencysite/internal/content"

	"github.com/PuerkitoBio/goquery"
)

// FixtureJSON is a small but complete content document. Its blog section is
// the b1..b4 layout where related articles for b1 are b2, b4 then b3.
const FixtureJSON = `{
  "hero": {
    "title": "Creative Digital Agency",
    "subtitle": "Websites, apps and growth",
    "description": "We design and build digital products.",
    "cta": {"text": "Start a Project", "link": "/contact"},
    "secondaryCta": {"text": "Our Work", "link": "/portfolio"},
    "bgImage": "https://images.example.com/hero.jpg"
  },
  "about": {
    "heading": "About CRE8DIGI",
    "content": "A small team shipping big results.",
    "features": [{"title": "Expert Team", "description": "Specialists in every discipline"}]
  },
  "features": [
    {"title": "Creative Design", "description": "Designs that stand out", "icon": "Palette"},
    {"title": "Fast Delivery", "description": "On time, every time"}
  ],
  "services": [
    {"id": "s1", "title": "Website Development", "summary": "Fast sites", "description": "Responsive websites.", "icon": "Globe", "features": ["Responsive", "CMS", "Hosting", "Support"]},
    {"id": "s2", "title": "App Development", "summary": "Native apps", "description": "iOS and Android.", "icon": "Smartphone", "features": ["iOS", "Android"]},
    {"id": "s3", "title": "SEO Optimization", "summary": "Rank higher", "description": "Search visibility.", "icon": "Search", "features": ["Audit"]},
    {"id": "s4", "title": "Brand Strategy", "summary": "Be memorable", "description": "Positioning.", "icon": "Rocket", "features": []}
  ],
  "portfolio": [
    {"id": "p1", "title": "Fashion Store", "category": "Web Development", "client": "Trendy", "description": "E-commerce site", "results": "+150% sales", "tags": ["React", "Node"]},
    {"id": "p2", "title": "Fitness App", "category": "App Development", "client": "FitLife", "description": "Workout tracker", "tags": ["Flutter"]},
    {"id": "p3", "title": "Clinic Website", "category": "Web Development", "client": "CarePlus", "description": "Booking site", "tags": []},
    {"id": "p4", "title": "Cafe Rebrand", "category": "Branding", "client": "Brew", "description": "New identity", "tags": ["Logo"]}
  ],
  "blog": [
    {"id": "b1", "title": "Local SEO Basics", "category": "SEO", "author": "Riya", "date": "2024-03-15", "excerpt": "Get found nearby", "content": "Local search matters.\nStart with your listing.", "tags": ["SEO"]},
    {"id": "b2", "title": "Keyword Research", "category": "SEO", "author": "Riya", "date": "2024-02-10", "excerpt": "Find the words", "content": "Keywords drive traffic."},
    {"id": "b3", "title": "Design Systems", "category": "Design", "author": "Kabir", "date": "2024-01-05", "excerpt": "Consistency wins", "content": "Tokens and components."},
    {"id": "b4", "title": "Technical SEO", "category": "SEO", "author": "Kabir", "date": "2023-12-20", "excerpt": "Crawl budget", "content": "Sitemaps and speed."}
  ],
  "team": [
    {"id": "t1", "name": "Riya Mehta", "role": "Founder", "portfolio": "https://example.com/riya"},
    {"id": "t2", "name": "Kabir Singh", "role": "Lead Developer"}
  ],
  "testimonials": [
    {"id": "r1", "author": "Anita", "role": "CEO, Trendy", "content": "Sales went up.", "rating": 5},
    {"id": "r2", "author": "Vikram", "role": "Founder, FitLife", "content": "Great app.", "rating": 4}
  ],
  "faqs": [
    {"question": "How long does a website take?", "answer": "Four to six weeks."},
    {"question": "Do you offer support?", "answer": "Yes."},
    {"question": "What does it cost?", "answer": "It depends on scope."},
    {"question": "Do you do SEO?", "answer": "Yes."},
    {"question": "Where are you based?", "answer": "Jodhpur."}
  ],
  "contact": {
    "description": "Let's build something together.",
    "phone": "+91 8239374563",
    "email": "support@cre8digi.com",
    "address": "21 Pratap Nagar, Jodhpur"
  }
}`

// Catalog loads FixtureJSON, failing the test on error.
func Catalog(t testing.TB) *content.Catalog {
	t.Helper()
	cat, err := content.Load(strings.NewReader(FixtureJSON), content.FormatJSON)
	if err != nil {
		t.Fatalf("load fixture catalog: %v", err)
	}
	return cat
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body any) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewFormRequest creates a url-encoded form POST.
func NewFormRequest(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes a JSON response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// Document parses an HTML response body.
func Document(t testing.TB, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// AssertResponseCode checks if the response code matches expected
func AssertResponseCode(t interface {
	Errorf(format string, args ...any)
}, got, want int) {
	if got != want {
		t.Errorf("got status code %d, want %d", got, want)
	}
}
