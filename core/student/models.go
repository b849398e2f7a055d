package student

import "github.com/trezcool/matokeo/core"

type Student struct {
	AdmissionNumber string `json:"admission_number" db:"admission_number" boil:"admission_number"`
	Name            string `json:"name" db:"name" boil:"name"`
	Faculty         string `json:"faculty" db:"faculty" boil:"faculty"`
	Programme       string `json:"programme" db:"programme" boil:"programme"`
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	AdmissionNumber string `json:"admission_number" validate:"required,notblank,max=32"`
	Name            string `json:"name" validate:"required,notblank,max=128"`
	Faculty         string `json:"faculty" validate:"required,notblank,max=128"`
	Programme       string `json:"programme" validate:"required,notblank,max=128"`
}

func (ns *NewStudent) Clean() {
	ns.AdmissionNumber = core.CleanString(ns.AdmissionNumber)
	ns.Name = core.CleanString(ns.Name)
	ns.Faculty = core.CleanString(ns.Faculty)
	ns.Programme = core.CleanString(ns.Programme)
}
