package content

// Pagination bounds for listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery defines the filter and window for a listing.
type ListQuery struct {
	Kind     Kind
	Category string
	Cursor   string
	Limit    int
}

// Lookup answers content queries over a Source.
type Lookup struct {
	src Source
}

// NewLookup creates a Lookup reading from src.
func NewLookup(src Source) *Lookup {
	return &Lookup{src: src}
}

// Get returns a single record by kind and id.
func (s *Lookup) Get(kind Kind, id string) (Record, error) {
	return s.src.Resolve(kind, id)
}

// List returns one page of the kind's records in the query's category.
// An empty category means all records.
func (s *Lookup) List(q ListQuery) (Page, error) {
	category := q.Category
	if category == "" {
		category = AllCategories
	}
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	cursor, err := DecodeCursor(q.Cursor)
	if err != nil {
		return Page{}, err
	}

	items, err := s.src.FilterByCategory(q.Kind, category)
	if err != nil {
		return Page{}, err
	}
	return paginate(items, cursor, limit)
}

// Related resolves the anchor record and returns up to n records related to
// it by category. It fails with ErrNotFound when the anchor does not exist.
func (s *Lookup) Related(kind Kind, id string, n int) ([]Record, error) {
	anchor, err := s.src.Resolve(kind, id)
	if err != nil {
		return nil, err
	}
	return s.src.FindRelated(kind, anchor.RecordID(), anchor.RecordCategory(), n)
}

// Categories lists the categories available for filtering a kind.
func (s *Lookup) Categories(kind Kind) ([]string, error) {
	return s.src.Categories(kind)
}

// Site returns the singleton sections.
func (s *Lookup) Site() Site {
	return s.src.Site()
}
