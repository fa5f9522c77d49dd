package dto

// SectionRequest creates or renames a section
type SectionRequest struct {
	Name string `json:"name" binding:"required" example:"Turma A"`
}

// CatalogEntryRequest creates or updates a catalog discipline
type CatalogEntryRequest struct {
	Code string `json:"code" binding:"required" example:"MAT101"`
	Name string `json:"name" binding:"required" example:"Cálculo I"`
}

// StudentRequest creates or updates a student
type StudentRequest struct {
	RegistrationNumber string `json:"registrationNumber" binding:"required" example:"2024001"`
	Name               string `json:"name" binding:"required" example:"Ana Souza"`
	Phone              string `json:"phone" binding:"required" example:"+55 11 99999-0000"`
}

// OfferingRequest creates an offering. On update SectionID and CatalogID
// may be left empty to keep the current binding.
type OfferingRequest struct {
	SectionID string `json:"sectionId" example:"4b1f..."`
	CatalogID string `json:"catalogId" example:"9c2e..."`
	Professor string `json:"professor" binding:"required" example:"Dr. Lima"`
}

// EnrollmentRequest creates or rebinds an enrollment
type EnrollmentRequest struct {
	StudentID  string `json:"studentId" binding:"required"`
	OfferingID string `json:"offeringId" binding:"required"`
}

// ViewFilters holds the optional free-text filters of the composite view
type ViewFilters struct {
	Section    string `form:"search_turma"`
	Discipline string `form:"search_disciplina"`
	Student    string `form:"search_aluno"`
}
