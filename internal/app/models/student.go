package models

// Student is an enrollable person. RegistrationNumber is unique across students.
type Student struct {
	ID                 StudentID `json:"id"`
	RegistrationNumber string    `json:"registrationNumber" example:"2024001"`
	Name               string    `json:"name" example:"Ana Souza"`
	Phone              string    `json:"phone" example:"+55 11 99999-0000"`
}
