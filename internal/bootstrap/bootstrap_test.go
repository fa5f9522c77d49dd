package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", driver)
	t.Setenv("STORAGE_DATA_DIR", t.TempDir())
	t.Setenv("STORAGE_SQLITE_PATH", filepath.Join(t.TempDir(), "turmas.db"))
	t.Setenv("SERVER_STATIC_DIR", "")
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	return cfg
}

func TestSetupStoreDrivers(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, driver)

			store, closeStore, err := SetupStore(ctx, cfg, zerolog.Nop())
			require.NoError(t, err)
			defer closeStore()

			snap := models.NewSnapshot()
			snap.Sections.Set("s1", models.Section{ID: "s1", Name: "Alpha"})
			require.NoError(t, store.Save(ctx, snap))

			loaded, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, []models.Section{{ID: "s1", Name: "Alpha"}}, loaded.Sections.Values())
		})
	}
}

func TestSetupStoreUnknownDriver(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.Storage.Driver = "etcd"

	_, _, err := SetupStore(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestRouterWiring(t *testing.T) {
	ctx := context.Background()
	t.Setenv("SEED_ENABLED", "true")
	cfg := testConfig(t, config.DriverMemory)

	store, closeStore, err := SetupStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeStore()

	deps, err := BuildDependencies(ctx, cfg, store, zerolog.Nop())
	require.NoError(t, err)
	router := SetupRouter(cfg, deps, zerolog.Nop())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/data", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MAT101", "demo data was seeded")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "turmas_records_written_total")
}
