package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/app/repositories"
)

// ViewService defines the interface for the read side of the ledger
type ViewService interface {
	GetView(ctx context.Context, filters dto.ViewFilters) (*dto.CompositeView, error)
}

type viewServiceImpl struct {
	store  repositories.SnapshotStore
	logger zerolog.Logger
}

// NewViewService creates a new view service
func NewViewService(store repositories.SnapshotStore, logger zerolog.Logger) ViewService {
	return &viewServiceImpl{store: store, logger: logger}
}

// GetView loads a fresh snapshot and builds the composite view from it
func (s *viewServiceImpl) GetView(ctx context.Context, filters dto.ViewFilters) (*dto.CompositeView, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load ledger for view")
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	return BuildView(snap, filters), nil
}

// Field selectors for the three filters
var (
	sectionFields    = []func(models.Section) string{func(s models.Section) string { return s.Name }}
	disciplineFields = []func(models.CatalogEntry) string{
		func(c models.CatalogEntry) string { return c.Code },
		func(c models.CatalogEntry) string { return c.Name },
	}
	studentFields = []func(models.Student) string{
		func(s models.Student) string { return s.Name },
		func(s models.Student) string { return s.RegistrationNumber },
	}
)

// BuildView joins the five collections into the shapes served to the UI.
// Each filter narrows only its own level: a section left without matching
// offerings is still listed, and the flat offering and enrollment lists
// ignore filters entirely. Records with dangling references are skipped.
func BuildView(snap *models.Snapshot, filters dto.ViewFilters) *dto.CompositeView {
	sectionMatch := NewMatcher(filters.Section, sectionFields...)
	disciplineMatch := NewMatcher(filters.Discipline, disciplineFields...)
	studentMatch := NewMatcher(filters.Student, studentFields...)

	// Group children under their parents once, keeping collection order.
	offeringsBySection := make(map[models.SectionID][]models.Offering)
	for _, o := range snap.Offerings.Values() {
		offeringsBySection[o.SectionID] = append(offeringsBySection[o.SectionID], o)
	}
	enrollmentsByOffering := make(map[models.OfferingID][]models.Enrollment)
	for _, e := range snap.Enrollments.Values() {
		enrollmentsByOffering[e.OfferingID] = append(enrollmentsByOffering[e.OfferingID], e)
	}

	view := &dto.CompositeView{
		Sections:    make([]dto.SectionView, 0),
		Catalog:     Filter(snap.Catalog.Values(), disciplineMatch),
		Students:    Filter(snap.Students.Values(), studentMatch),
		Offerings:   make([]dto.OfferingRow, 0, snap.Offerings.Len()),
		Enrollments: make([]dto.EnrollmentRow, 0, snap.Enrollments.Len()),
	}

	for _, section := range snap.Sections.Values() {
		if !sectionMatch.Match(section) {
			continue
		}
		sv := dto.SectionView{ID: section.ID, Name: section.Name, Disciplines: make([]dto.SectionOfferingView, 0)}
		for _, o := range offeringsBySection[section.ID] {
			entry, ok := snap.Catalog.Get(o.CatalogID)
			if !ok || !disciplineMatch.Match(entry) {
				continue
			}
			ov := dto.SectionOfferingView{
				OfferingID: o.ID,
				CatalogID:  entry.ID,
				Code:       entry.Code,
				Name:       entry.Name,
				Professor:  o.Professor,
				Students:   make([]dto.EnrolledStudentView, 0),
			}
			for _, e := range enrollmentsByOffering[o.ID] {
				st, ok := snap.Students.Get(e.StudentID)
				if !ok || !studentMatch.Match(st) {
					continue
				}
				ov.Students = append(ov.Students, dto.EnrolledStudentView{
					EnrollmentID:       e.ID,
					StudentID:          st.ID,
					RegistrationNumber: st.RegistrationNumber,
					Name:               st.Name,
					Phone:              st.Phone,
				})
			}
			sv.Disciplines = append(sv.Disciplines, ov)
		}
		view.Sections = append(view.Sections, sv)
	}

	for _, o := range snap.Offerings.Values() {
		if row, ok := offeringRow(snap, o); ok {
			view.Offerings = append(view.Offerings, row)
		}
	}

	for _, e := range snap.Enrollments.Values() {
		st, ok := snap.Students.Get(e.StudentID)
		if !ok {
			continue
		}
		o, ok := snap.Offerings.Get(e.OfferingID)
		if !ok {
			continue
		}
		row, ok := offeringRow(snap, o)
		if !ok {
			continue
		}
		view.Enrollments = append(view.Enrollments, dto.EnrollmentRow{
			ID:                  e.ID,
			StudentID:           st.ID,
			StudentRegistration: st.RegistrationNumber,
			StudentName:         st.Name,
			OfferingID:          o.ID,
			SectionName:         row.SectionName,
			DisciplineCode:      row.DisciplineCode,
			DisciplineName:      row.DisciplineName,
			Professor:           o.Professor,
		})
	}

	return view
}

// offeringRow resolves an offering against its section and discipline
func offeringRow(snap *models.Snapshot, o models.Offering) (dto.OfferingRow, bool) {
	section, ok := snap.Sections.Get(o.SectionID)
	if !ok {
		return dto.OfferingRow{}, false
	}
	entry, ok := snap.Catalog.Get(o.CatalogID)
	if !ok {
		return dto.OfferingRow{}, false
	}
	return dto.OfferingRow{
		ID:             o.ID,
		SectionID:      section.ID,
		SectionName:    section.Name,
		CatalogID:      entry.ID,
		DisciplineCode: entry.Code,
		DisciplineName: entry.Name,
		Professor:      o.Professor,
	}, true
}
