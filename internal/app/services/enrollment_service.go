package services

import (
	"context"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/validation"
)

// EnrollmentService defines the interface for enrollment writes
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, req *dto.EnrollmentRequest) (models.EnrollmentID, error)
	UpdateEnrollment(ctx context.Context, id models.EnrollmentID, req *dto.EnrollmentRequest) (models.EnrollmentID, error)
	DeleteEnrollment(ctx context.Context, id models.EnrollmentID) error
}

type enrollmentServiceImpl struct {
	*Ledger
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(l *Ledger) EnrollmentService {
	return &enrollmentServiceImpl{Ledger: l}
}

func enrollmentFromRequest(id models.EnrollmentID, req *dto.EnrollmentRequest) (models.Enrollment, error) {
	e := models.Enrollment{
		ID:         id,
		StudentID:  models.StudentID(clean(req.StudentID)),
		OfferingID: models.OfferingID(clean(req.OfferingID)),
	}
	err := validation.First(
		validation.NewStringValidation("studentId", string(e.StudentID)),
		validation.NewStringValidation("offeringId", string(e.OfferingID)),
	)
	return e, err
}

func checkEnrollment(snap *models.Snapshot, e models.Enrollment) error {
	if !snap.Students.Has(e.StudentID) {
		return unknownRelation("studentId", "student")
	}
	if !snap.Offerings.Has(e.OfferingID) {
		return unknownRelation("offeringId", "offering")
	}
	if EnrollmentExists(snap, e.StudentID, e.OfferingID, e.ID) {
		return duplicate("offeringId", "this student is already enrolled in this offering")
	}
	return nil
}

// CreateEnrollment enrolls a student into an offering
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req *dto.EnrollmentRequest) (models.EnrollmentID, error) {
	e, err := enrollmentFromRequest("", req)
	if err != nil {
		s.reject(models.EntityEnrollment, opCreate, err)
		return "", err
	}

	id, err := s.mutate(ctx, models.EntityEnrollment, opCreate, func(snap *models.Snapshot) (string, error) {
		if err := checkEnrollment(snap, e); err != nil {
			return "", err
		}
		e.ID = newID(s.Ledger, &snap.Enrollments)
		snap.Enrollments.Set(e.ID, e)
		return string(e.ID), nil
	})
	return models.EnrollmentID(id), err
}

// UpdateEnrollment moves an enrollment to another student or offering
func (s *enrollmentServiceImpl) UpdateEnrollment(ctx context.Context, id models.EnrollmentID, req *dto.EnrollmentRequest) (models.EnrollmentID, error) {
	e, err := enrollmentFromRequest(id, req)
	if err != nil {
		s.reject(models.EntityEnrollment, opUpdate, err)
		return "", err
	}

	_, err = s.mutate(ctx, models.EntityEnrollment, opUpdate, func(snap *models.Snapshot) (string, error) {
		if !snap.Enrollments.Has(id) {
			return "", notFound("enrollment")
		}
		if err := checkEnrollment(snap, e); err != nil {
			return "", err
		}
		snap.Enrollments.Set(id, e)
		return string(id), nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteEnrollment removes an enrollment. Nothing depends on enrollments.
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id models.EnrollmentID) error {
	_, err := s.mutate(ctx, models.EntityEnrollment, opDelete, func(snap *models.Snapshot) (string, error) {
		if !snap.Enrollments.Delete(id) {
			return "", notFound("enrollment")
		}
		return string(id), nil
	})
	return err
}
