package repositories

import (
	"context"
	"strings"

	"github.com/yigit/turmas/internal/app/models"
)

// SnapshotStore is the persistence provider of the ledger. Load returns the
// whole ledger; Save replaces every collection with the snapshot's content.
type SnapshotStore interface {
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snap *models.Snapshot) error
}

// fieldSeparator delimits fields inside a stored record line
const fieldSeparator = "|"

// recordTable describes how one collection is laid out in storage. Field order
// is fixed per entity and shared by the line files and the SQL tables.
type recordTable struct {
	entity  models.EntityType
	file    string
	table   string
	columns []string
	rows    func(s *models.Snapshot) [][]string
	put     func(s *models.Snapshot, fields []string)
}

var recordTables = []recordTable{
	{
		entity:  models.EntitySection,
		file:    "turmas.txt",
		table:   "sections",
		columns: []string{"id", "name"},
		rows: func(s *models.Snapshot) [][]string {
			out := make([][]string, 0, s.Sections.Len())
			for _, r := range s.Sections.Values() {
				out = append(out, []string{string(r.ID), r.Name})
			}
			return out
		},
		put: func(s *models.Snapshot, f []string) {
			id := models.SectionID(f[0])
			s.Sections.Set(id, models.Section{ID: id, Name: f[1]})
		},
	},
	{
		entity:  models.EntityCatalog,
		file:    "disciplinas.txt",
		table:   "disciplines",
		columns: []string{"id", "code", "name"},
		rows: func(s *models.Snapshot) [][]string {
			out := make([][]string, 0, s.Catalog.Len())
			for _, r := range s.Catalog.Values() {
				out = append(out, []string{string(r.ID), r.Code, r.Name})
			}
			return out
		},
		put: func(s *models.Snapshot, f []string) {
			id := models.CatalogID(f[0])
			s.Catalog.Set(id, models.CatalogEntry{ID: id, Code: f[1], Name: f[2]})
		},
	},
	{
		entity:  models.EntityStudent,
		file:    "alunos.txt",
		table:   "students",
		columns: []string{"id", "registration_number", "name", "phone"},
		rows: func(s *models.Snapshot) [][]string {
			out := make([][]string, 0, s.Students.Len())
			for _, r := range s.Students.Values() {
				out = append(out, []string{string(r.ID), r.RegistrationNumber, r.Name, r.Phone})
			}
			return out
		},
		put: func(s *models.Snapshot, f []string) {
			id := models.StudentID(f[0])
			s.Students.Set(id, models.Student{ID: id, RegistrationNumber: f[1], Name: f[2], Phone: f[3]})
		},
	},
	{
		entity:  models.EntityOffering,
		file:    "turma_disciplinas.txt",
		table:   "offerings",
		columns: []string{"id", "section_id", "catalog_id", "professor"},
		rows: func(s *models.Snapshot) [][]string {
			out := make([][]string, 0, s.Offerings.Len())
			for _, r := range s.Offerings.Values() {
				out = append(out, []string{string(r.ID), string(r.SectionID), string(r.CatalogID), r.Professor})
			}
			return out
		},
		put: func(s *models.Snapshot, f []string) {
			id := models.OfferingID(f[0])
			s.Offerings.Set(id, models.Offering{
				ID:        id,
				SectionID: models.SectionID(f[1]),
				CatalogID: models.CatalogID(f[2]),
				Professor: f[3],
			})
		},
	},
	{
		entity:  models.EntityEnrollment,
		file:    "matriculas.txt",
		table:   "enrollments",
		columns: []string{"id", "student_id", "offering_id"},
		rows: func(s *models.Snapshot) [][]string {
			out := make([][]string, 0, s.Enrollments.Len())
			for _, r := range s.Enrollments.Values() {
				out = append(out, []string{string(r.ID), string(r.StudentID), string(r.OfferingID)})
			}
			return out
		},
		put: func(s *models.Snapshot, f []string) {
			id := models.EnrollmentID(f[0])
			s.Enrollments.Set(id, models.Enrollment{
				ID:         id,
				StudentID:  models.StudentID(f[1]),
				OfferingID: models.OfferingID(f[2]),
			})
		},
	},
}

// encodeLine serializes one record's fields
func encodeLine(fields []string) string {
	return strings.Join(fields, fieldSeparator)
}

// decodeLine splits a stored line into exactly n fields. Lines with any other
// field count are rejected.
func decodeLine(line string, n int) ([]string, bool) {
	parts := strings.Split(strings.TrimSpace(line), fieldSeparator)
	if len(parts) != n {
		return nil, false
	}
	return parts, true
}
