package service

// CatalogueServiceWrapper defines middleware composition for CatalogueService.
// Implementations wrap an existing CatalogueService to add behavior such as
// logging or validating.
type CatalogueServiceWrapper interface {
	Wrap(CatalogueService) CatalogueService // returns a decorated CatalogueService applying additional behavior
}
