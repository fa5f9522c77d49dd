package models

// Snapshot is the full ledger as loaded from a persistence provider.
// One snapshot belongs to one request and is discarded afterwards.
type Snapshot struct {
	Sections    Collection[SectionID, Section]
	Catalog     Collection[CatalogID, CatalogEntry]
	Students    Collection[StudentID, Student]
	Offerings   Collection[OfferingID, Offering]
	Enrollments Collection[EnrollmentID, Enrollment]
}

// NewSnapshot returns an empty ledger
func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Clone deep-copies the snapshot
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Sections:    s.Sections.Clone(),
		Catalog:     s.Catalog.Clone(),
		Students:    s.Students.Clone(),
		Offerings:   s.Offerings.Clone(),
		Enrollments: s.Enrollments.Clone(),
	}
}

// Count returns the number of records held for an entity type
func (s *Snapshot) Count(entity EntityType) int {
	switch entity {
	case EntitySection:
		return s.Sections.Len()
	case EntityCatalog:
		return s.Catalog.Len()
	case EntityStudent:
		return s.Students.Len()
	case EntityOffering:
		return s.Offerings.Len()
	case EntityEnrollment:
		return s.Enrollments.Len()
	}
	return 0
}

// IsEmpty reports whether no collection holds a record
func (s *Snapshot) IsEmpty() bool {
	for _, entity := range EntityTypes {
		if s.Count(entity) > 0 {
			return false
		}
	}
	return true
}
