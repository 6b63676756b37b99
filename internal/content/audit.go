package content

import "fmt"

// Finding is a content problem that does not stop the catalog from loading
// but will show up oddly on the site.
type Finding struct {
	Kind    Kind
	ID      string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %q: %s", f.Kind, f.ID, f.Message)
}

// Audit inspects a loaded catalog for soft problems. Findings come out in
// document order, grouped by kind.
func Audit(c *Catalog) []Finding {
	var out []Finding
	add := func(kind Kind, id, format string, args ...any) {
		out = append(out, Finding{Kind: kind, ID: id, Message: fmt.Sprintf(format, args...)})
	}

	for _, s := range c.services {
		if s.Title == "" {
			add(KindService, s.ID, "missing title")
		}
		if s.Icon != "" && IconFor(s.Icon) != Icon(s.Icon) {
			add(KindService, s.ID, "unknown icon %q, %s will be shown", s.Icon, DefaultIcon)
		}
	}
	for _, p := range c.projects {
		if p.Category == "" {
			add(KindProject, p.ID, "no category, only listed under %s", AllCategories)
		}
	}
	for _, a := range c.articles {
		if a.Category == "" {
			add(KindArticle, a.ID, "no category, only listed under %s", AllCategories)
		}
		if a.ReadTime() == 0 {
			add(KindArticle, a.ID, "empty body")
		}
	}
	for _, t := range c.testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			add(KindTestimonial, t.ID, "rating %d outside 1-5", t.Rating)
		}
	}
	return out
}
