package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/repositories"
	"github.com/yigit/turmas/internal/pkg/apperrors"
	"github.com/yigit/turmas/internal/pkg/metrics"
)

// Write operations recorded in metrics and logs
const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Ledger runs the load, check, mutate, save cycle shared by every write.
// Each call works on its own snapshot; nothing is kept between calls.
type Ledger struct {
	store   repositories.SnapshotStore
	ids     IDGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// applyFunc checks the snapshot and mutates it. It must return before
// mutating when a rule fails; the snapshot is not saved on error anyway.
type applyFunc func(snap *models.Snapshot) (string, error)

// NewLedger wires a persistence provider, an id source and observability
// into the write cycle used by the CRUD services
func NewLedger(store repositories.SnapshotStore, ids IDGenerator, logger zerolog.Logger, m *metrics.Metrics) *Ledger {
	return &Ledger{store: store, ids: ids, logger: logger, metrics: m}
}

func (l *Ledger) mutate(ctx context.Context, entity models.EntityType, op string, apply applyFunc) (string, error) {
	snap, err := l.store.Load(ctx)
	if err != nil {
		l.logger.Error().Err(err).Str("entity", string(entity)).Msg("Failed to load ledger")
		return "", fmt.Errorf("failed to load ledger: %w", err)
	}

	id, err := apply(snap)
	if err != nil {
		l.reject(entity, op, err)
		return "", err
	}

	if err := l.store.Save(ctx, snap); err != nil {
		l.logger.Error().Err(err).Str("entity", string(entity)).Str("op", op).Msg("Failed to save ledger")
		return "", fmt.Errorf("failed to save ledger: %w", err)
	}

	l.metrics.IncrementWritten(string(entity), op)
	l.logger.Info().Str("entity", string(entity)).Str("op", op).Str("id", id).Msg("Ledger record written")
	return id, nil
}

// reject records a refused write. Validation failures before loading also pass through here.
func (l *Ledger) reject(entity models.EntityType, op string, err error) {
	kind := "unknown"
	switch apperrors.Kind(err) {
	case apperrors.ErrValidationFailed:
		kind = "validation"
	case apperrors.ErrResourceNotFound:
		kind = "not_found"
	case apperrors.ErrConflict:
		kind = "conflict"
	}
	l.metrics.IncrementRejected(string(entity), kind)
	l.logger.Debug().Err(err).Str("entity", string(entity)).Str("op", op).Str("kind", kind).Msg("Ledger write rejected")
}

// newID draws an identifier that no record of the collection uses
func newID[K ~string, V any](l *Ledger, c *models.Collection[K, V]) K {
	return K(freshID(l.ids, func(id string) bool { return c.Has(K(id)) }))
}

func clean(s string) string {
	return strings.TrimSpace(s)
}

func notFound(what string) error {
	return apperrors.NewResourceNotFoundError(what + " not found")
}

func unknownRelation(field, what string) error {
	return apperrors.NewResourceNotFoundError(what + " not found").
		WithCode(apperrors.CodeUnknownRelation).
		WithField(field)
}

func duplicate(field, message string) error {
	return apperrors.NewConflictError(message).WithField(field)
}

func hasDependents(message string) error {
	return apperrors.NewConflictError(message).WithCode(apperrors.CodeHasDependents)
}
