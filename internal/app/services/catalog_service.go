package services

import (
	"context"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/validation"
)

// CatalogService defines the interface for discipline catalog writes
type CatalogService interface {
	CreateEntry(ctx context.Context, req *dto.CatalogEntryRequest) (models.CatalogID, error)
	UpdateEntry(ctx context.Context, id models.CatalogID, req *dto.CatalogEntryRequest) (models.CatalogID, error)
	DeleteEntry(ctx context.Context, id models.CatalogID) error
}

type catalogServiceImpl struct {
	*Ledger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(l *Ledger) CatalogService {
	return &catalogServiceImpl{Ledger: l}
}

func validateCatalogEntry(code, name string) error {
	return validation.First(
		validation.NewStringValidation("code", code),
		validation.NewStringValidation("name", name),
	)
}

// CreateEntry adds a discipline with a code no other discipline uses
func (s *catalogServiceImpl) CreateEntry(ctx context.Context, req *dto.CatalogEntryRequest) (models.CatalogID, error) {
	code, name := clean(req.Code), clean(req.Name)
	if err := validateCatalogEntry(code, name); err != nil {
		s.reject(models.EntityCatalog, opCreate, err)
		return "", err
	}

	id, err := s.mutate(ctx, models.EntityCatalog, opCreate, func(snap *models.Snapshot) (string, error) {
		if !UniqueCode(snap, "", code) {
			return "", duplicate("code", "a discipline with this code already exists")
		}
		id := newID(s.Ledger, &snap.Catalog)
		snap.Catalog.Set(id, models.CatalogEntry{ID: id, Code: code, Name: name})
		return string(id), nil
	})
	return models.CatalogID(id), err
}

// UpdateEntry changes code and name of an existing discipline
func (s *catalogServiceImpl) UpdateEntry(ctx context.Context, id models.CatalogID, req *dto.CatalogEntryRequest) (models.CatalogID, error) {
	code, name := clean(req.Code), clean(req.Name)
	if err := validateCatalogEntry(code, name); err != nil {
		s.reject(models.EntityCatalog, opUpdate, err)
		return "", err
	}

	_, err := s.mutate(ctx, models.EntityCatalog, opUpdate, func(snap *models.Snapshot) (string, error) {
		if !snap.Catalog.Has(id) {
			return "", notFound("discipline")
		}
		if !UniqueCode(snap, id, code) {
			return "", duplicate("code", "a discipline with this code already exists")
		}
		snap.Catalog.Set(id, models.CatalogEntry{ID: id, Code: code, Name: name})
		return string(id), nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteEntry removes a discipline that is not offered in any section
func (s *catalogServiceImpl) DeleteEntry(ctx context.Context, id models.CatalogID) error {
	_, err := s.mutate(ctx, models.EntityCatalog, opDelete, func(snap *models.Snapshot) (string, error) {
		if !snap.Catalog.Has(id) {
			return "", notFound("discipline")
		}
		if HasDependents(snap, models.EntityCatalog, string(id)) {
			return "", hasDependents("cannot delete discipline: it is offered in a section")
		}
		snap.Catalog.Delete(id)
		return string(id), nil
	})
	return err
}
