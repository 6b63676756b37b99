package content

import (
	"fmt"
	"slices"
)

// Catalog is the read-only, in-memory content store built once by the loader.
// Accessors hand out copies so callers cannot change what other requests see.
type Catalog struct {
	site         Site
	services     []Service
	projects     []Project
	articles     []Article
	team         []TeamMember
	testimonials []Testimonial
	faqs         []FAQ
}

func (c *Catalog) Site() Site {
	s := c.site
	s.About.Features = slices.Clone(c.site.About.Features)
	s.Features = slices.Clone(c.site.Features)
	return s
}

func (c *Catalog) Services() []Service         { return cloneAll(c.services) }
func (c *Catalog) Projects() []Project         { return cloneAll(c.projects) }
func (c *Catalog) Articles() []Article         { return cloneAll(c.articles) }
func (c *Catalog) Team() []TeamMember          { return slices.Clone(c.team) }
func (c *Catalog) Testimonials() []Testimonial { return slices.Clone(c.testimonials) }
func (c *Catalog) FAQs() []FAQ                 { return slices.Clone(c.faqs) }

func (c *Catalog) Service(id string) (Service, error) {
	s, err := resolveKind(KindService, c.services, id)
	return s.clone(), err
}

func (c *Catalog) Project(id string) (Project, error) {
	p, err := resolveKind(KindProject, c.projects, id)
	return p.clone(), err
}

func (c *Catalog) Article(id string) (Article, error) {
	a, err := resolveKind(KindArticle, c.articles, id)
	return a.clone(), err
}

func (c *Catalog) TeamMember(id string) (TeamMember, error) {
	return resolveKind(KindTeamMember, c.team, id)
}

func (c *Catalog) Testimonial(id string) (Testimonial, error) {
	return resolveKind(KindTestimonial, c.testimonials, id)
}

func (c *Catalog) FAQ(id string) (FAQ, error) {
	return resolveKind(KindFAQ, c.faqs, id)
}

// Resolve looks a record up by kind and id.
func (c *Catalog) Resolve(kind Kind, id string) (Record, error) {
	items, err := c.collection(kind)
	if err != nil {
		return nil, err
	}
	return resolveKind(kind, items, id)
}

// FilterByCategory returns the kind's records in the given category.
// The error is non-nil only for an unknown kind.
func (c *Catalog) FilterByCategory(kind Kind, category string) ([]Record, error) {
	items, err := c.collection(kind)
	if err != nil {
		return nil, err
	}
	return FilterByCategory(items, category), nil
}

// FindRelated returns up to n records of kind related to the anchor category,
// never including excludeID.
func (c *Catalog) FindRelated(kind Kind, excludeID, category string, n int) ([]Record, error) {
	items, err := c.collection(kind)
	if err != nil {
		return nil, err
	}
	return FindRelated(items, excludeID, category, n), nil
}

// Categories lists the kind's categories for a filter bar.
func (c *Catalog) Categories(kind Kind) ([]string, error) {
	items, err := c.collection(kind)
	if err != nil {
		return nil, err
	}
	return Categories(items), nil
}

// Len reports the number of records of kind, or 0 for an unknown kind.
func (c *Catalog) Len(kind Kind) int {
	items, err := c.collection(kind)
	if err != nil {
		return 0
	}
	return len(items)
}

func (c *Catalog) collection(kind Kind) ([]Record, error) {
	switch kind {
	case KindService:
		return records(cloneAll(c.services)), nil
	case KindProject:
		return records(cloneAll(c.projects)), nil
	case KindArticle:
		return records(cloneAll(c.articles)), nil
	case KindTeamMember:
		return records(c.team), nil
	case KindTestimonial:
		return records(c.testimonials), nil
	case KindFAQ:
		return records(c.faqs), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func resolveKind[T Record](kind Kind, items []T, id string) (T, error) {
	item, err := Resolve(items, id)
	if err != nil {
		return item, fmt.Errorf("%s %q: %w", kind, id, err)
	}
	return item, nil
}

func (s Service) clone() Service {
	s.Features = slices.Clone(s.Features)
	return s
}

func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func (a Article) clone() Article {
	a.Tags = slices.Clone(a.Tags)
	return a
}

// cloneAll copies items along with the slices each record owns.
func cloneAll[T interface{ clone() T }](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.clone()
	}
	return out
}
