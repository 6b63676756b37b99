package content

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks agencysite/internal/content Source

// Source defines the read contract over the content catalog.
type Source interface {
	Resolve(kind Kind, id string) (Record, error)
	FilterByCategory(kind Kind, category string) ([]Record, error)
	FindRelated(kind Kind, excludeID, category string, n int) ([]Record, error)
	Categories(kind Kind) ([]string, error)
	Site() Site
}

var _ Source = (*Catalog)(nil)
