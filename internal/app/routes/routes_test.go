package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/turmas/internal/app/controllers"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/repositories"
	"github.com/yigit/turmas/internal/app/services"
	"github.com/yigit/turmas/internal/middleware"
	"github.com/yigit/turmas/internal/pkg/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterJSONFieldNames()
}

type testAPI struct {
	router *gin.Engine
	store  *repositories.MemoryStore
}

func newTestAPI(t *testing.T, opts Options) *testAPI {
	t.Helper()
	store := repositories.NewMemoryStore()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := services.NewServices(store, &services.SequentialGenerator{Prefix: "id"}, zerolog.Nop(), m)

	router := gin.New()
	router.Use(middleware.Metrics(m))
	if opts.MetricsPath != "" {
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
	SetupRouter(router, &Controllers{
		Data:        controllers.NewDataController(svc.View, "memory"),
		Sections:    controllers.NewSectionController(svc.Sections),
		Catalog:     controllers.NewCatalogController(svc.Catalog),
		Students:    controllers.NewStudentController(svc.Students),
		Offerings:   controllers.NewOfferingController(svc.Offerings),
		Enrollments: controllers.NewEnrollmentController(svc.Enrollments),
	}, opts)
	return &testAPI{router: router, store: store}
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the new id
func (a *testAPI) create(t *testing.T, path string, body interface{}) string {
	t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.MutationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	return resp.Error
}

func (a *testAPI) view(t *testing.T, query string) dto.CompositeView {
	t.Helper()
	w := a.do(http.MethodGet, "/api/data"+query, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view dto.CompositeView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestSectionRoundTrip(t *testing.T) {
	api := newTestAPI(t, Options{})

	id := api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})

	view := api.view(t, "")
	require.Len(t, view.Sections, 1)
	assert.Equal(t, "A", view.Sections[0].Name)
	assert.Equal(t, id, string(view.Sections[0].ID))
	assert.NotNil(t, view.Sections[0].Disciplines)
}

func TestCreateValidation(t *testing.T) {
	api := newTestAPI(t, Options{})

	tests := []struct {
		name  string
		path  string
		body  interface{}
		code  dto.ErrorCode
		field string
	}{
		{"missing section name", "/api/sections", map[string]string{}, dto.ErrorCodeValidationFailed, "name"},
		{"blank section name", "/api/sections", dto.SectionRequest{Name: "   "}, dto.ErrorCodeValidationFailed, "name"},
		{"separator in name", "/api/sections", dto.SectionRequest{Name: "a|b"}, dto.ErrorCodeValidationFailed, "name"},
		{"missing code", "/api/catalog", map[string]string{"name": "Calculus"}, dto.ErrorCodeValidationFailed, "code"},
		{"missing phone", "/api/students", map[string]string{"registrationNumber": "1", "name": "Ana"}, dto.ErrorCodeValidationFailed, "phone"},
		{"missing professor", "/api/offerings", map[string]string{"sectionId": "s", "catalogId": "c"}, dto.ErrorCodeValidationFailed, "professor"},
		{"missing offering id", "/api/enrollments", map[string]string{"studentId": "a"}, dto.ErrorCodeValidationFailed, "offeringId"},
		{"malformed json", "/api/sections", "{not json", dto.ErrorCodeMalformedRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			detail := decodeError(t, w)
			assert.Equal(t, tt.code, detail.Code)
			assert.Equal(t, tt.field, detail.Field)
		})
	}
	assert.Equal(t, 0, api.store.Saves())
}

func TestCatalogCodeUniqueness(t *testing.T) {
	api := newTestAPI(t, Options{})

	api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})

	w := api.do(http.MethodPost, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Other"})
	require.Equal(t, http.StatusConflict, w.Code)
	detail := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeResourceConflict, detail.Code)
	assert.Equal(t, "code", detail.Field)

	api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT102", Name: "Calculus II"})
	assert.Len(t, api.view(t, "").Catalog, 2)
}

func TestOfferingReferences(t *testing.T) {
	api := newTestAPI(t, Options{})
	sectionID := api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})
	catalogID := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})

	w := api.do(http.MethodPost, "/api/offerings", dto.OfferingRequest{SectionID: "nope", CatalogID: catalogID, Professor: "P"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "sectionId", decodeError(t, w).Field)

	api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: sectionID, CatalogID: catalogID, Professor: "P"})

	w = api.do(http.MethodPost, "/api/offerings", dto.OfferingRequest{SectionID: sectionID, CatalogID: catalogID, Professor: "Q"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCascadeBlock(t *testing.T) {
	api := newTestAPI(t, Options{})
	sectionID := api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})
	catalogID := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})
	offeringID := api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: sectionID, CatalogID: catalogID, Professor: "P"})

	w := api.do(http.MethodDelete, "/api/sections/"+sectionID, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "has_dependents", decodeError(t, w).Reason)

	w = api.do(http.MethodDelete, "/api/offerings/"+offeringID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = api.do(http.MethodDelete, "/api/sections/"+sectionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodDelete, "/api/sections/"+sectionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnrollmentLifecycle(t *testing.T) {
	api := newTestAPI(t, Options{})
	sectionID := api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})
	catalogID := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})
	offeringID := api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: sectionID, CatalogID: catalogID, Professor: "P"})
	studentID := api.create(t, "/api/students", dto.StudentRequest{RegistrationNumber: "2024001", Name: "Ana", Phone: "555"})

	enrollmentID := api.create(t, "/api/enrollments", dto.EnrollmentRequest{StudentID: studentID, OfferingID: offeringID})

	w := api.do(http.MethodPost, "/api/enrollments", dto.EnrollmentRequest{StudentID: studentID, OfferingID: offeringID})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodDelete, "/api/students/"+studentID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = api.do(http.MethodDelete, "/api/offerings/"+offeringID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	view := api.view(t, "")
	require.Len(t, view.Enrollments, 1)
	assert.Equal(t, "Ana", view.Enrollments[0].StudentName)
	assert.Equal(t, "A", view.Enrollments[0].SectionName)

	w = api.do(http.MethodDelete, "/api/enrollments/"+enrollmentID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = api.do(http.MethodDelete, "/api/students/"+studentID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateEndpoints(t *testing.T) {
	api := newTestAPI(t, Options{})
	sectionID := api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})
	first := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})
	api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "FIS101", Name: "Physics I"})
	offeringID := api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: sectionID, CatalogID: first, Professor: "P"})

	w := api.do(http.MethodPut, "/api/sections/"+sectionID, dto.SectionRequest{Name: "A1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/catalog/"+first, dto.CatalogEntryRequest{Code: "FIS101", Name: "Calculus I"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, "/api/offerings/"+offeringID, map[string]string{"professor": "Dr. Costa"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, "/api/students/missing", dto.StudentRequest{RegistrationNumber: "1", Name: "X", Phone: "2"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	view := api.view(t, "")
	assert.Equal(t, "A1", view.Sections[0].Name)
	assert.Equal(t, "Dr. Costa", view.Offerings[0].Professor)
}

func TestDataFilters(t *testing.T) {
	api := newTestAPI(t, Options{})
	alpha := api.create(t, "/api/sections", dto.SectionRequest{Name: "Alpha"})
	api.create(t, "/api/sections", dto.SectionRequest{Name: "Beta"})
	mat := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "MAT101", Name: "Calculus I"})
	fis := api.create(t, "/api/catalog", dto.CatalogEntryRequest{Code: "FIS101", Name: "Physics I"})
	api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: alpha, CatalogID: mat, Professor: "P"})
	api.create(t, "/api/offerings", dto.OfferingRequest{SectionID: alpha, CatalogID: fis, Professor: "Q"})

	view := api.view(t, "?search_turma=Alpha")
	require.Len(t, view.Sections, 1)
	assert.Equal(t, "Alpha", view.Sections[0].Name)
	assert.Len(t, view.Sections[0].Disciplines, 2)

	view = api.view(t, "?search_disciplina=mat")
	require.Len(t, view.Sections, 2)
	assert.Len(t, view.Sections[0].Disciplines, 1)
	assert.Len(t, view.Catalog, 1)
	assert.Len(t, view.Offerings, 2)
}

func TestDataIsIdempotent(t *testing.T) {
	api := newTestAPI(t, Options{})
	api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})

	first := api.do(http.MethodGet, "/api/data", nil)
	second := api.do(http.MethodGet, "/api/data", nil)
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	api := newTestAPI(t, Options{MetricsPath: "/metrics"})

	w := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","storage":"memory"}`, w.Body.String())

	api.create(t, "/api/sections", dto.SectionRequest{Name: "A"})

	w = api.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `turmas_records_written_total{entity="section",op="create"} 1`)
	assert.Contains(t, w.Body.String(), `route="/api/sections"`)
}

func TestStaticIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>turmas</h1>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static", "app.js"), []byte("//"), 0o644))

	api := newTestAPI(t, Options{StaticDir: dir})

	w := api.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "turmas")

	w = api.do(http.MethodGet, "/static/app.js", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticDirMissing(t *testing.T) {
	api := newTestAPI(t, Options{StaticDir: filepath.Join(t.TempDir(), "none")})

	w := api.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
