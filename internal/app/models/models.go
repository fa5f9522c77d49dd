package models

// Identifiers are opaque tokens. Each entity gets its own type so a StudentID
// cannot be passed where an OfferingID is expected.
type (
	SectionID    string
	CatalogID    string
	StudentID    string
	OfferingID   string
	EnrollmentID string
)

// EntityType names one of the five ledger collections
type EntityType string

const (
	EntitySection    EntityType = "section"
	EntityCatalog    EntityType = "catalog"
	EntityStudent    EntityType = "student"
	EntityOffering   EntityType = "offering"
	EntityEnrollment EntityType = "enrollment"
)

// EntityTypes lists every collection in persistence order.
var EntityTypes = []EntityType{
	EntitySection,
	EntityCatalog,
	EntityStudent,
	EntityOffering,
	EntityEnrollment,
}
