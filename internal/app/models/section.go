package models

// Section is a class group (turma) that disciplines are offered in
type Section struct {
	ID   SectionID `json:"id" example:"3f1c..."`
	Name string    `json:"name" example:"1A - Morning"`
}
