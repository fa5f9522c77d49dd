package models

// CatalogEntry is a discipline in the catalog. Code is unique across the catalog.
type CatalogEntry struct {
	ID   CatalogID `json:"id"`
	Code string    `json:"code" example:"MAT101"`
	Name string    `json:"name" example:"Calculus I"`
}
