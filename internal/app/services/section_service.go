package services

import (
	"context"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/validation"
)

// SectionService defines the interface for section writes
type SectionService interface {
	CreateSection(ctx context.Context, req *dto.SectionRequest) (models.SectionID, error)
	UpdateSection(ctx context.Context, id models.SectionID, req *dto.SectionRequest) (models.SectionID, error)
	DeleteSection(ctx context.Context, id models.SectionID) error
}

type sectionServiceImpl struct {
	*Ledger
}

// NewSectionService creates a new section service
func NewSectionService(l *Ledger) SectionService {
	return &sectionServiceImpl{Ledger: l}
}

// CreateSection adds a section and returns its id
func (s *sectionServiceImpl) CreateSection(ctx context.Context, req *dto.SectionRequest) (models.SectionID, error) {
	name := clean(req.Name)
	if err := validation.NewStringValidation("name", name).Validate(); err != nil {
		s.reject(models.EntitySection, opCreate, err)
		return "", err
	}

	id, err := s.mutate(ctx, models.EntitySection, opCreate, func(snap *models.Snapshot) (string, error) {
		id := newID(s.Ledger, &snap.Sections)
		snap.Sections.Set(id, models.Section{ID: id, Name: name})
		return string(id), nil
	})
	return models.SectionID(id), err
}

// UpdateSection renames an existing section
func (s *sectionServiceImpl) UpdateSection(ctx context.Context, id models.SectionID, req *dto.SectionRequest) (models.SectionID, error) {
	name := clean(req.Name)
	if err := validation.NewStringValidation("name", name).Validate(); err != nil {
		s.reject(models.EntitySection, opUpdate, err)
		return "", err
	}

	_, err := s.mutate(ctx, models.EntitySection, opUpdate, func(snap *models.Snapshot) (string, error) {
		section, ok := snap.Sections.Get(id)
		if !ok {
			return "", notFound("section")
		}
		section.Name = name
		snap.Sections.Set(id, section)
		return string(id), nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteSection removes a section no offering refers to
func (s *sectionServiceImpl) DeleteSection(ctx context.Context, id models.SectionID) error {
	_, err := s.mutate(ctx, models.EntitySection, opDelete, func(snap *models.Snapshot) (string, error) {
		if !snap.Sections.Has(id) {
			return "", notFound("section")
		}
		if HasDependents(snap, models.EntitySection, string(id)) {
			return "", hasDependents("cannot delete section: disciplines are offered in it")
		}
		snap.Sections.Delete(id)
		return string(id), nil
	})
	return err
}
