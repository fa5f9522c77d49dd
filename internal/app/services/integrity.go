package services

import "github.com/yigit/turmas/internal/app/models"

// Integrity rules are pure checks over a freshly loaded snapshot. They run
// before any mutation and are never cached across operations.

// UniqueCode reports whether no catalog entry other than self uses code.
// Pass an empty self when creating.
func UniqueCode(s *models.Snapshot, self models.CatalogID, code string) bool {
	return !s.Catalog.Any(func(c models.CatalogEntry) bool {
		return c.Code == code && c.ID != self
	})
}

// UniqueRegistration reports whether no student other than self uses number
func UniqueRegistration(s *models.Snapshot, self models.StudentID, number string) bool {
	return !s.Students.Any(func(st models.Student) bool {
		return st.RegistrationNumber == number && st.ID != self
	})
}

// OfferingExists reports whether an offering other than except already binds
// the (section, catalog) pair
func OfferingExists(s *models.Snapshot, sectionID models.SectionID, catalogID models.CatalogID, except models.OfferingID) bool {
	return s.Offerings.Any(func(o models.Offering) bool {
		return o.SectionID == sectionID && o.CatalogID == catalogID && o.ID != except
	})
}

// EnrollmentExists reports whether an enrollment other than except already
// binds the (student, offering) pair
func EnrollmentExists(s *models.Snapshot, studentID models.StudentID, offeringID models.OfferingID, except models.EnrollmentID) bool {
	return s.Enrollments.Any(func(e models.Enrollment) bool {
		return e.StudentID == studentID && e.OfferingID == offeringID && e.ID != except
	})
}

// HasDependents reports whether deleting the record would orphan a child.
// Sections only look at offerings: an enrollment always hangs off an offering,
// so a section without offerings has no enrollments below it either.
func HasDependents(s *models.Snapshot, entity models.EntityType, id string) bool {
	switch entity {
	case models.EntitySection:
		sectionID := models.SectionID(id)
		return s.Offerings.Any(func(o models.Offering) bool { return o.SectionID == sectionID })
	case models.EntityCatalog:
		catalogID := models.CatalogID(id)
		return s.Offerings.Any(func(o models.Offering) bool { return o.CatalogID == catalogID })
	case models.EntityStudent:
		studentID := models.StudentID(id)
		return s.Enrollments.Any(func(e models.Enrollment) bool { return e.StudentID == studentID })
	case models.EntityOffering:
		offeringID := models.OfferingID(id)
		return s.Enrollments.Any(func(e models.Enrollment) bool { return e.OfferingID == offeringID })
	}
	return false
}
