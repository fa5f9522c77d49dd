package dto

import "github.com/yigit/turmas/internal/app/models"

// CompositeView is the read model served to the UI in one payload
type CompositeView struct {
	Sections    []SectionView         `json:"sections"`
	Catalog     []models.CatalogEntry `json:"catalog"`
	Students    []models.Student      `json:"students"`
	Offerings   []OfferingRow         `json:"offerings"`
	Enrollments []EnrollmentRow       `json:"enrollments"`
}

// SectionView is a section with its offered disciplines nested below it
type SectionView struct {
	ID          models.SectionID      `json:"id"`
	Name        string                `json:"name"`
	Disciplines []SectionOfferingView `json:"disciplines"`
}

// SectionOfferingView is one offering inside a section
type SectionOfferingView struct {
	OfferingID models.OfferingID     `json:"offeringId"`
	CatalogID  models.CatalogID      `json:"catalogId"`
	Code       string                `json:"code"`
	Name       string                `json:"name"`
	Professor  string                `json:"professor"`
	Students   []EnrolledStudentView `json:"students"`
}

// EnrolledStudentView is a student as listed under an offering
type EnrolledStudentView struct {
	EnrollmentID       models.EnrollmentID `json:"enrollmentId"`
	StudentID          models.StudentID    `json:"studentId"`
	RegistrationNumber string              `json:"registrationNumber"`
	Name               string              `json:"name"`
	Phone              string              `json:"phone"`
}

// OfferingRow is one offering resolved against its section and discipline
type OfferingRow struct {
	ID             models.OfferingID `json:"id"`
	SectionID      models.SectionID  `json:"sectionId"`
	SectionName    string            `json:"sectionName"`
	CatalogID      models.CatalogID  `json:"catalogId"`
	DisciplineCode string            `json:"disciplineCode"`
	DisciplineName string            `json:"disciplineName"`
	Professor      string            `json:"professor"`
}

// EnrollmentRow is one enrollment resolved down to student, section and discipline
type EnrollmentRow struct {
	ID                  models.EnrollmentID `json:"id"`
	StudentID           models.StudentID    `json:"studentId"`
	StudentRegistration string              `json:"studentRegistration"`
	StudentName         string              `json:"studentName"`
	OfferingID          models.OfferingID   `json:"offeringId"`
	SectionName         string              `json:"sectionName"`
	DisciplineCode      string              `json:"disciplineCode"`
	DisciplineName      string              `json:"disciplineName"`
	Professor           string              `json:"professor"`
}
