package services

import (
	"context"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/validation"
)

// OfferingService defines the interface for offering writes
type OfferingService interface {
	CreateOffering(ctx context.Context, req *dto.OfferingRequest) (models.OfferingID, error)
	UpdateOffering(ctx context.Context, id models.OfferingID, req *dto.OfferingRequest) (models.OfferingID, error)
	DeleteOffering(ctx context.Context, id models.OfferingID) error
}

type offeringServiceImpl struct {
	*Ledger
}

// NewOfferingService creates a new offering service
func NewOfferingService(l *Ledger) OfferingService {
	return &offeringServiceImpl{Ledger: l}
}

// checkOffering verifies the references and the pair uniqueness for o.
// When prev is set only the references that differ from it are checked.
func checkOffering(snap *models.Snapshot, o models.Offering, prev *models.Offering) error {
	sectionChanged := prev == nil || prev.SectionID != o.SectionID
	catalogChanged := prev == nil || prev.CatalogID != o.CatalogID
	if sectionChanged && !snap.Sections.Has(o.SectionID) {
		return unknownRelation("sectionId", "section")
	}
	if catalogChanged && !snap.Catalog.Has(o.CatalogID) {
		return unknownRelation("catalogId", "discipline")
	}
	if (sectionChanged || catalogChanged) && OfferingExists(snap, o.SectionID, o.CatalogID, o.ID) {
		return duplicate("catalogId", "this discipline is already offered in this section")
	}
	return nil
}

// CreateOffering offers a catalog discipline in a section
func (s *offeringServiceImpl) CreateOffering(ctx context.Context, req *dto.OfferingRequest) (models.OfferingID, error) {
	o := models.Offering{
		SectionID: models.SectionID(clean(req.SectionID)),
		CatalogID: models.CatalogID(clean(req.CatalogID)),
		Professor: clean(req.Professor),
	}
	err := validation.First(
		validation.NewStringValidation("sectionId", string(o.SectionID)),
		validation.NewStringValidation("catalogId", string(o.CatalogID)),
		validation.NewStringValidation("professor", o.Professor),
	)
	if err != nil {
		s.reject(models.EntityOffering, opCreate, err)
		return "", err
	}

	id, err := s.mutate(ctx, models.EntityOffering, opCreate, func(snap *models.Snapshot) (string, error) {
		if err := checkOffering(snap, o, nil); err != nil {
			return "", err
		}
		o.ID = newID(s.Ledger, &snap.Offerings)
		snap.Offerings.Set(o.ID, o)
		return string(o.ID), nil
	})
	return models.OfferingID(id), err
}

// UpdateOffering changes the professor and, when given, the section or discipline
func (s *offeringServiceImpl) UpdateOffering(ctx context.Context, id models.OfferingID, req *dto.OfferingRequest) (models.OfferingID, error) {
	sectionID := clean(req.SectionID)
	catalogID := clean(req.CatalogID)
	professor := clean(req.Professor)
	err := validation.First(
		validation.NewStringValidation("sectionId", sectionID).WithRequired(false),
		validation.NewStringValidation("catalogId", catalogID).WithRequired(false),
		validation.NewStringValidation("professor", professor),
	)
	if err != nil {
		s.reject(models.EntityOffering, opUpdate, err)
		return "", err
	}

	_, err = s.mutate(ctx, models.EntityOffering, opUpdate, func(snap *models.Snapshot) (string, error) {
		o, ok := snap.Offerings.Get(id)
		if !ok {
			return "", notFound("offering")
		}
		prev := o
		if sectionID != "" {
			o.SectionID = models.SectionID(sectionID)
		}
		if catalogID != "" {
			o.CatalogID = models.CatalogID(catalogID)
		}
		o.Professor = professor
		if err := checkOffering(snap, o, &prev); err != nil {
			return "", err
		}
		snap.Offerings.Set(id, o)
		return string(id), nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteOffering removes an offering nobody is enrolled in
func (s *offeringServiceImpl) DeleteOffering(ctx context.Context, id models.OfferingID) error {
	_, err := s.mutate(ctx, models.EntityOffering, opDelete, func(snap *models.Snapshot) (string, error) {
		if !snap.Offerings.Has(id) {
			return "", notFound("offering")
		}
		if HasDependents(snap, models.EntityOffering, string(id)) {
			return "", hasDependents("cannot delete offering: students are enrolled in it")
		}
		snap.Offerings.Delete(id)
		return string(id), nil
	})
	return err
}
