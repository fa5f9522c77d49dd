package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/repositories"
	"github.com/yigit/turmas/internal/app/services"
)

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := services.NewServices(store, &services.SequentialGenerator{Prefix: "id"}, zerolog.Nop(), nil)

	require.NoError(t, CreateDefaultData(ctx, store, svc, zerolog.Nop()))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Count(models.EntitySection))
	assert.Equal(t, 3, snap.Count(models.EntityCatalog))
	assert.Equal(t, 2, snap.Count(models.EntityStudent))
	assert.Equal(t, 3, snap.Count(models.EntityOffering))
	assert.Equal(t, 2, snap.Count(models.EntityEnrollment))

	view := services.BuildView(snap, dto.ViewFilters{})
	assert.Len(t, view.Enrollments, 2)
}

func TestCreateDefaultDataSkipsPopulatedLedger(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	svc := services.NewServices(store, &services.SequentialGenerator{Prefix: "id"}, zerolog.Nop(), nil)
	_, err := svc.Sections.CreateSection(ctx, &dto.SectionRequest{Name: "Existing"})
	require.NoError(t, err)

	require.NoError(t, CreateDefaultData(ctx, store, svc, zerolog.Nop()))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Count(models.EntitySection))
	assert.Equal(t, 0, snap.Count(models.EntityCatalog))
}
