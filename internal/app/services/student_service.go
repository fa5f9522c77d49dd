package services

import (
	"context"

	"github.com/yigit/turmas/internal/app/models"
	"github.com/yigit/turmas/internal/app/models/dto"
	"github.com/yigit/turmas/internal/pkg/validation"
)

// StudentService defines the interface for student writes
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.StudentRequest) (models.StudentID, error)
	UpdateStudent(ctx context.Context, id models.StudentID, req *dto.StudentRequest) (models.StudentID, error)
	DeleteStudent(ctx context.Context, id models.StudentID) error
}

type studentServiceImpl struct {
	*Ledger
}

// NewStudentService creates a new student service
func NewStudentService(l *Ledger) StudentService {
	return &studentServiceImpl{Ledger: l}
}

func studentFromRequest(id models.StudentID, req *dto.StudentRequest) (models.Student, error) {
	st := models.Student{
		ID:                 id,
		RegistrationNumber: clean(req.RegistrationNumber),
		Name:               clean(req.Name),
		Phone:              clean(req.Phone),
	}
	err := validation.First(
		validation.NewStringValidation("registrationNumber", st.RegistrationNumber),
		validation.NewStringValidation("name", st.Name),
		validation.NewStringValidation("phone", st.Phone),
	)
	return st, err
}

// CreateStudent adds a student with an unused registration number
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.StudentRequest) (models.StudentID, error) {
	st, err := studentFromRequest("", req)
	if err != nil {
		s.reject(models.EntityStudent, opCreate, err)
		return "", err
	}

	id, err := s.mutate(ctx, models.EntityStudent, opCreate, func(snap *models.Snapshot) (string, error) {
		if !UniqueRegistration(snap, "", st.RegistrationNumber) {
			return "", duplicate("registrationNumber", "a student with this registration number already exists")
		}
		st.ID = newID(s.Ledger, &snap.Students)
		snap.Students.Set(st.ID, st)
		return string(st.ID), nil
	})
	return models.StudentID(id), err
}

// UpdateStudent replaces the fields of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id models.StudentID, req *dto.StudentRequest) (models.StudentID, error) {
	st, err := studentFromRequest(id, req)
	if err != nil {
		s.reject(models.EntityStudent, opUpdate, err)
		return "", err
	}

	_, err = s.mutate(ctx, models.EntityStudent, opUpdate, func(snap *models.Snapshot) (string, error) {
		if !snap.Students.Has(id) {
			return "", notFound("student")
		}
		if !UniqueRegistration(snap, id, st.RegistrationNumber) {
			return "", duplicate("registrationNumber", "a student with this registration number already exists")
		}
		snap.Students.Set(id, st)
		return string(id), nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteStudent removes a student without enrollments
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id models.StudentID) error {
	_, err := s.mutate(ctx, models.EntityStudent, opDelete, func(snap *models.Snapshot) (string, error) {
		if !snap.Students.Has(id) {
			return "", notFound("student")
		}
		if HasDependents(snap, models.EntityStudent, string(id)) {
			return "", hasDependents("cannot delete student: the student is enrolled in a discipline")
		}
		snap.Students.Delete(id)
		return string(id), nil
	})
	return err
}
