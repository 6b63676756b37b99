package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"agencysite/internal/contact"
	"agencysite/internal/httpx"
	"agencysite/internal/testutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router http.Handler
	pages  *Pages
	hook   *test.Hook
}

func newFixture(t *testing.T, limiter *httpx.RateLimitMiddleware) fixture {
	t.Helper()
	return newFixtureWith(t, limiter, Options{SiteName: "CRE8DIGI", Locale: "en-US"})
}

func newFixtureWith(t *testing.T, limiter *httpx.RateLimitMiddleware, opts Options) fixture {
	t.Helper()
	logger, hook := test.NewNullLogger()
	cat := testutil.Catalog(t)
	svc := contact.NewService(logger, ProjectOptions(cat.Services()))
	pages := NewPages(cat, svc, limiter, logger, prometheus.NewRegistry(), opts)

	r := chi.NewRouter()
	pages.Routes(r)
	return fixture{router: r, pages: pages, hook: hook}
}

func (f fixture) get(t *testing.T, path string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, path, nil))
	return w, testutil.Document(t, w)
}

func (f fixture) post(t *testing.T, form url.Values) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, testutil.NewFormRequest("/contact", form))
	return w, testutil.Document(t, w)
}

func dataIDs(sel *goquery.Selection) []string {
	ids := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		ids = append(ids, s.AttrOr("data-id", ""))
	})
	return ids
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Priya Sharma"},
		"email":   {"priya@example.com"},
		"phone":   {"+91 82393 74563"},
		"project": {"Website Development"},
		"subject": {"New storefront"},
		"message": {"We need a new storefront before the festive season."},
	}
}

func TestProjectOptions(t *testing.T) {
	opts := ProjectOptions(testutil.Catalog(t).Services())
	assert.Equal(t, []string{"Website Development", "App Development", "SEO Optimization", "Brand Strategy"}, opts)
}

func TestPages_StaticPages(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		path  string
		title string
	}{
		{"/", "CRE8DIGI"},
		{"/about", "About Us | CRE8DIGI"},
		{"/services", "Services | CRE8DIGI"},
		{"/portfolio", "Portfolio | CRE8DIGI"},
		{"/blog", "Blog | CRE8DIGI"},
		{"/contact", "Contact | CRE8DIGI"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w, doc := f.get(t, tt.path)
			testutil.AssertResponseCode(t, w.Code, http.StatusOK)
			assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.title, doc.Find("title").Text())
			assert.Equal(t, "+91 8239374563", doc.Find(".topbar-item").First().Text())
		})
	}
}

func TestPages_ServiceDetail(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("found", func(t *testing.T) {
		w, doc := f.get(t, "/services/s2")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "App Development | CRE8DIGI", doc.Find("title").Text())
		assert.Equal(t, []string{"s1", "s3", "s4"}, dataIDs(doc.Find("#related .service-card")))
	})

	t.Run("missing", func(t *testing.T) {
		w, doc := f.get(t, "/services/nope")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Service Not Found", doc.Find(".missing-state h1").Text())
		assert.Equal(t, "/services", doc.Find(".missing-state a").AttrOr("href", ""))
		assert.Equal(t, 1.0, promtest.ToFloat64(f.pages.missing.WithLabelValues("services")))
	})
}

func TestPages_Portfolio(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("all", func(t *testing.T) {
		_, doc := f.get(t, "/portfolio")
		assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, dataIDs(doc.Find(".project-card")))
		assert.Equal(t, "All", doc.Find(".chip.active").Text())
		assert.Equal(t, 4, doc.Find(".chip").Length())
	})

	t.Run("filtered", func(t *testing.T) {
		_, doc := f.get(t, "/portfolio?category="+url.QueryEscape("Web Development"))
		assert.Equal(t, []string{"p1", "p3"}, dataIDs(doc.Find(".project-card")))
		assert.Equal(t, "Web Development", doc.Find(".chip.active").Text())
	})

	t.Run("unknown category", func(t *testing.T) {
		w, doc := f.get(t, "/portfolio?category=Games")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, doc.Find(".project-card").Length())
		assert.Equal(t, 1, doc.Find(".empty-state").Length())
		assert.Equal(t, "Games", doc.Find(".chip.active").Text())
	})

	t.Run("detail related", func(t *testing.T) {
		_, doc := f.get(t, "/portfolio/p1")
		assert.Equal(t, []string{"p3", "p2", "p4"}, dataIDs(doc.Find("#related .project-card")))
	})

	t.Run("detail missing", func(t *testing.T) {
		w, doc := f.get(t, "/portfolio/p9")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "/portfolio", doc.Find(".missing-state a").AttrOr("href", ""))
	})
}

func TestPages_PortfolioPresetCategories(t *testing.T) {
	f := newFixtureWith(t, nil, Options{
		SiteName:          "CRE8DIGI",
		Locale:            "en-US",
		ProjectCategories: []string{"Web Development", "SEO"},
	})

	_, doc := f.get(t, "/portfolio")
	var chips []string
	doc.Find(".chip").Each(func(_ int, s *goquery.Selection) {
		chips = append(chips, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"All", "Web Development", "SEO", "App Development", "Branding"}, chips)

	// a preset nothing is filed under leads to the empty state
	w, doc := f.get(t, "/portfolio?category=SEO")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, doc.Find(".project-card").Length())
	assert.Equal(t, 1, doc.Find(".empty-state").Length())
	assert.Equal(t, 5, doc.Find(".chip").Length())
}

func TestPages_Blog(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("features newest", func(t *testing.T) {
		_, doc := f.get(t, "/blog")
		assert.Equal(t, "b1", doc.Find(".featured-article").AttrOr("data-id", ""))
		assert.Equal(t, []string{"b2", "b3", "b4"}, dataIDs(doc.Find(".article-grid .article-card")))
	})

	t.Run("filtered has no feature", func(t *testing.T) {
		_, doc := f.get(t, "/blog?category=SEO")
		assert.Equal(t, 0, doc.Find(".featured-article").Length())
		assert.Equal(t, []string{"b1", "b2", "b4"}, dataIDs(doc.Find(".article-grid .article-card")))
	})

	t.Run("article", func(t *testing.T) {
		w, doc := f.get(t, "/blog/b1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"b2", "b4", "b3"}, dataIDs(doc.Find("#related .article-card")))
		meta := doc.Find(".page-hero .article-meta")
		assert.Equal(t, "March 15, 2024", meta.Find("time").Text())
		assert.Equal(t, "1 min read", meta.Find(".read-time").Text())
		assert.Equal(t, 1, doc.Find(".prose").Length())
	})

	t.Run("article missing", func(t *testing.T) {
		w, doc := f.get(t, "/blog/b9")
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Article Not Found", doc.Find(".missing-state h1").Text())
		assert.Equal(t, 1.0, promtest.ToFloat64(f.pages.missing.WithLabelValues("blog")))
	})
}

func TestPages_SubmitContact(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := newFixture(t, nil)
		w, doc := f.post(t, validForm())
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, doc.Find(".thank-you strong").Text(), 36)
		assert.Equal(t, 0, doc.Find("form.contact-form").Length())
		assert.Equal(t, "contact inquiry received", f.hook.LastEntry().Message)
	})

	t.Run("invalid keeps values", func(t *testing.T) {
		f := newFixture(t, nil)
		form := validForm()
		form.Set("email", "not-an-email")
		w, doc := f.post(t, form)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, 1, doc.Find("#email-error").Length())
		assert.Equal(t, "Priya Sharma", doc.Find("#name").AttrOr("value", ""))
		assert.Equal(t, 0, doc.Find(".thank-you").Length())
	})

	t.Run("rate limited", func(t *testing.T) {
		limiter := httpx.NewRateLimitMiddleware(0.001, 1)
		t.Cleanup(limiter.Stop)
		f := newFixture(t, limiter)

		w, _ := f.post(t, validForm())
		require.Equal(t, http.StatusOK, w.Code)

		w, doc := f.post(t, validForm())
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, 1, doc.Find(".form-alert").Length())
		assert.Equal(t, "priya@example.com", doc.Find("#email").AttrOr("value", ""))
	})
}

func TestPages_NotFound(t *testing.T) {
	f := newFixture(t, nil)
	w, doc := f.get(t, "/does-not-exist")
	testutil.AssertResponseCode(t, w.Code, http.StatusNotFound)
	assert.Equal(t, "Page Not Found | CRE8DIGI", doc.Find("title").Text())
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "ok", resp.Body["status"])
}
