package models

// Offering binds a catalog discipline to a section with the professor teaching it.
// At most one offering exists per (SectionID, CatalogID).
type Offering struct {
	ID        OfferingID `json:"id"`
	SectionID SectionID  `json:"sectionId"`
	CatalogID CatalogID  `json:"catalogId"`
	Professor string     `json:"professor" example:"Dr. Lima"`
}
