package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/repositories"
	"github.com/yigit/turmas/internal/pkg/apperrors"
)

// ledgerSnapshot returns a consistent ledger with two sections, two
// disciplines offered in Alpha and one enrolled student
func ledgerSnapshot() *models.Snapshot {
	snap := models.NewSnapshot()
	snap.Sections.Set("s1", models.Section{ID: "s1", Name: "Alpha"})
	snap.Sections.Set("s2", models.Section{ID: "s2", Name: "Beta"})
	snap.Catalog.Set("c1", models.CatalogEntry{ID: "c1", Code: "MAT101", Name: "Calculus I"})
	snap.Catalog.Set("c2", models.CatalogEntry{ID: "c2", Code: "FIS101", Name: "Physics I"})
	snap.Students.Set("a1", models.Student{ID: "a1", RegistrationNumber: "2024001", Name: "Ana Souza", Phone: "555-0101"})
	snap.Students.Set("a2", models.Student{ID: "a2", RegistrationNumber: "2024002", Name: "Bruno Lima", Phone: "555-0102"})
	snap.Offerings.Set("o1", models.Offering{ID: "o1", SectionID: "s1", CatalogID: "c1", Professor: "Dr. Lima"})
	snap.Offerings.Set("o2", models.Offering{ID: "o2", SectionID: "s1", CatalogID: "c2", Professor: "Dr. Reis"})
	snap.Enrollments.Set("m1", models.Enrollment{ID: "m1", StudentID: "a1", OfferingID: "o1"})
	return snap
}

func newTestServices(snap *models.Snapshot) (*Services, *repositories.MemoryStore) {
	store := repositories.NewMemoryStoreWith(snap)
	return NewServices(store, &SequentialGenerator{Prefix: "id"}, zerolog.Nop(), nil), store
}

func requireKind(t *testing.T, err error, kind error) *apperrors.CustomError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	return custom
}

// failingStore loads normally but refuses to save
type failingStore struct {
	*repositories.MemoryStore
}

func (failingStore) Save(context.Context, *models.Snapshot) error {
	return errors.New("disk full")
}
