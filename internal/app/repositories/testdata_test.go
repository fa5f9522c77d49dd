package repositories

import "github.com/yigit/turmas/internal/app/models"

// sampleSnapshot returns a small consistent ledger
func sampleSnapshot() *models.Snapshot {
	snap := models.NewSnapshot()
	snap.Sections.Set("s2", models.Section{ID: "s2", Name: "Beta"})
	snap.Sections.Set("s1", models.Section{ID: "s1", Name: "Alpha"})
	snap.Catalog.Set("c1", models.CatalogEntry{ID: "c1", Code: "MAT101", Name: "Calculus I"})
	snap.Students.Set("a1", models.Student{ID: "a1", RegistrationNumber: "2024001", Name: "Ana", Phone: "555-0101"})
	snap.Offerings.Set("o1", models.Offering{ID: "o1", SectionID: "s1", CatalogID: "c1", Professor: "Dr. Lima"})
	snap.Enrollments.Set("m1", models.Enrollment{ID: "m1", StudentID: "a1", OfferingID: "o1"})
	return snap
}
