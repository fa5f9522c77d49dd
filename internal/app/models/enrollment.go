package models

// Enrollment places a student in an offering.
// At most one enrollment exists per (StudentID, OfferingID).
type Enrollment struct {
	ID         EnrollmentID `json:"id"`
	StudentID  StudentID    `json:"studentId"`
	OfferingID OfferingID   `json:"offeringId"`
}
