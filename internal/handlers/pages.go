package handlers

import (
	"errors"
	"net/http"
	"slices"

	"agencysite/internal/components"
	"agencysite/internal/contact"
	"agencysite/internal/content"
	"agencysite/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	g "maragu.dev/gomponents"
)

// Options carries the presentation settings of the page handlers.
type Options struct {
	SiteName string
	Locale   string

	// ProjectCategories lead the portfolio filter bar.
	ProjectCategories []string
}

// Pages serves the HTML site from a loaded catalog.
type Pages struct {
	catalog  *content.Catalog
	contact  *contact.Service
	limiter  *httpx.RateLimitMiddleware
	logger   logrus.FieldLogger
	locale   string
	chrome   components.Chrome
	projects []string
	presets  []string
	missing  *prometheus.CounterVec
}

// NewPages builds the page handlers. limiter may be nil, in which case
// contact submissions are never throttled.
func NewPages(
	catalog *content.Catalog,
	contactService *contact.Service,
	limiter *httpx.RateLimitMiddleware,
	logger logrus.FieldLogger,
	reg prometheus.Registerer,
	opts Options,
) *Pages {
	services := catalog.Services()
	return &Pages{
		catalog: catalog,
		contact: contactService,
		limiter: limiter,
		logger:  logger,
		locale:  opts.Locale,
		chrome: components.Chrome{
			SiteName: opts.SiteName,
			Contact:  catalog.Site().Contact,
			Services: services,
		},
		projects: ProjectOptions(services),
		presets:  opts.ProjectCategories,
		missing: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "site_content_missing_total",
			Help: "Detail pages requested for ids that are not in the catalog.",
		}, []string{"kind"}),
	}
}

// ProjectOptions lists the project types offered on the contact form.
func ProjectOptions(services []content.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		if s.Title != "" && !slices.Contains(out, s.Title) {
			out = append(out, s.Title)
		}
	}
	return out
}

// Routes mounts every page on r, including the not-found fallback.
func (p *Pages) Routes(r chi.Router) {
	r.Get("/", p.Home)
	r.Get("/about", p.About)
	r.Get("/services", p.Services)
	r.Get("/services/{id}", p.ServiceDetail)
	r.Get("/portfolio", p.Portfolio)
	r.Get("/portfolio/{id}", p.ProjectDetail)
	r.Get("/blog", p.Blog)
	r.Get("/blog/{id}", p.Article)
	r.Get("/contact", p.Contact)
	r.Post("/contact", p.SubmitContact)
	r.Get("/health", Health)
	r.NotFound(p.NotFound)
}

type page struct {
	title       string
	description string
	body        g.Node
}

func (p *Pages) render(w http.ResponseWriter, r *http.Request, status int, pg page) {
	doc := components.Layout(
		components.PageConfig{
			Title:       pg.title,
			Description: pg.description,
			Path:        r.URL.Path,
			Chrome:      p.chrome,
		},
		pg.body,
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := doc.Render(w); err != nil {
		p.logger.WithError(err).WithField("path", r.URL.Path).Error("render page")
	}
}

// renderMissing answers a detail request whose id did not resolve.
func (p *Pages) renderMissing(w http.ResponseWriter, r *http.Request, kind content.Kind, title, backHref, backLabel string) {
	p.missing.WithLabelValues(string(kind)).Inc()
	p.logger.WithFields(logrus.Fields{
		"kind":       kind,
		"id":         chi.URLParam(r, "id"),
		"request_id": httpx.RequestIDFrom(r),
	}).Debug("content not found")

	p.render(w, r, http.StatusNotFound, page{
		title: title,
		body:  components.MissingState(title, backHref, backLabel),
	})
}

// activeCategory reads ?category=, treating a missing value as All.
func activeCategory(r *http.Request) string {
	if c := r.URL.Query().Get("category"); c != "" {
		return c
	}
	return content.AllCategories
}

// withActive makes sure a requested category shows up in the filter bar even
// when nothing is filed under it.
func withActive(categories []string, active string) []string {
	if slices.Contains(categories, active) {
		return categories
	}
	return append(categories, active)
}

func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	site := p.catalog.Site()
	p.render(w, r, http.StatusOK, page{
		description: site.Hero.Description,
		body:        components.HomePage(site, p.catalog.Services(), p.catalog.Projects(), p.catalog.Testimonials()),
	})
}

func (p *Pages) About(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, page{
		title: "About Us",
		body:  components.AboutPage(p.catalog.Site(), p.catalog.Team()),
	})
}

func (p *Pages) Services(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusOK, page{
		title: "Services",
		body:  components.ServicesPage(p.catalog.Services(), p.catalog.FAQs()),
	})
}

func (p *Pages) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	s, err := p.catalog.Service(chi.URLParam(r, "id"))
	if err != nil {
		p.lookupFailed(w, r, err, content.KindService, "Service Not Found", "/services", "Back to Services")
		return
	}

	related := content.FindRelated(p.catalog.Services(), s.ID, s.RecordCategory(), content.RelatedCount)
	testimonials := p.catalog.Testimonials()
	testimonials = testimonials[:min(len(testimonials), content.RelatedCount)]
	p.render(w, r, http.StatusOK, page{
		title:       s.Title,
		description: s.Summary,
		body:        components.ServiceDetailPage(s, related, testimonials),
	})
}

func (p *Pages) Portfolio(w http.ResponseWriter, r *http.Request) {
	all := p.catalog.Projects()
	active := activeCategory(r)
	p.render(w, r, http.StatusOK, page{
		title: "Portfolio",
		body: components.PortfolioPage(
			withActive(content.MergeCategories(p.presets, content.Categories(all)), active),
			active,
			content.FilterByCategory(all, active),
		),
	})
}

func (p *Pages) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	project, err := p.catalog.Project(chi.URLParam(r, "id"))
	if err != nil {
		p.lookupFailed(w, r, err, content.KindProject, "Project Not Found", "/portfolio", "Back to Portfolio")
		return
	}

	related := content.FindRelated(p.catalog.Projects(), project.ID, project.Category, content.RelatedCount)
	p.render(w, r, http.StatusOK, page{
		title:       project.Title,
		description: project.Description,
		body:        components.ProjectDetailPage(project, related),
	})
}

func (p *Pages) Blog(w http.ResponseWriter, r *http.Request) {
	all := p.catalog.Articles()
	active := activeCategory(r)
	p.render(w, r, http.StatusOK, page{
		title: "Blog",
		body: components.BlogPage(
			content.FilterByCategory(all, active),
			withActive(content.Categories(all), active),
			active,
			p.locale,
		),
	})
}

func (p *Pages) Article(w http.ResponseWriter, r *http.Request) {
	a, err := p.catalog.Article(chi.URLParam(r, "id"))
	if err != nil {
		p.lookupFailed(w, r, err, content.KindArticle, "Article Not Found", "/blog", "Back to Blog")
		return
	}

	related := content.FindRelated(p.catalog.Articles(), a.ID, a.Category, content.RelatedCount)
	p.render(w, r, http.StatusOK, page{
		title:       a.Title,
		description: a.Excerpt,
		body:        components.ArticlePage(a, related, p.locale),
	})
}

func (p *Pages) lookupFailed(w http.ResponseWriter, r *http.Request, err error, kind content.Kind, title, backHref, backLabel string) {
	if errors.Is(err, content.ErrNotFound) {
		p.renderMissing(w, r, kind, title, backHref, backLabel)
		return
	}
	p.logger.WithError(err).WithField("kind", kind).Error("resolve content")
	p.render(w, r, http.StatusInternalServerError, page{
		title: "Something Went Wrong",
		body:  components.MissingState("Something Went Wrong", backHref, backLabel),
	})
}

func (p *Pages) contactPage(w http.ResponseWriter, r *http.Request, status int, form components.ContactForm) {
	p.render(w, r, status, page{
		title: "Contact",
		body:  components.ContactPage(p.catalog.Site().Contact, p.catalog.FAQs(), p.projects, form),
	})
}

func (p *Pages) Contact(w http.ResponseWriter, r *http.Request) {
	p.contactPage(w, r, http.StatusOK, components.ContactForm{})
}

// SubmitContact handles the HTML form post. The form is re-rendered with the
// submitted values on every outcome except success.
func (p *Pages) SubmitContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.logger.WithError(err).Warn("parse contact form")
		p.contactPage(w, r, http.StatusBadRequest, components.ContactForm{})
		return
	}

	in := contact.Inquiry{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Phone:   r.PostForm.Get("phone"),
		Project: r.PostForm.Get("project"),
		Subject: r.PostForm.Get("subject"),
		Message: r.PostForm.Get("message"),
	}

	if p.limiter != nil && !p.limiter.Allow(r) {
		p.contactPage(w, r, http.StatusTooManyRequests, components.ContactForm{Values: in, Limited: true})
		return
	}

	receipt, err := p.contact.Submit(r.Context(), in)
	if err != nil {
		var invalid contact.ValidationErrors
		if errors.As(err, &invalid) {
			p.contactPage(w, r, http.StatusUnprocessableEntity, components.ContactForm{Values: in, Errors: invalid})
			return
		}
		p.logger.WithError(err).Error("submit contact inquiry")
		p.contactPage(w, r, http.StatusInternalServerError, components.ContactForm{Values: in})
		return
	}

	p.contactPage(w, r, http.StatusOK, components.ContactForm{Reference: receipt.Reference})
}

func (p *Pages) NotFound(w http.ResponseWriter, r *http.Request) {
	p.render(w, r, http.StatusNotFound, page{
		title: "Page Not Found",
		body:  components.NotFoundPage(),
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
