package unit

import "github.com/trezcool/matokeo/core"

type Unit struct {
	Code    string `json:"unit_code" db:"unit_code" boil:"unit_code"`
	Name    string `json:"unit_name" db:"unit_name" boil:"unit_name"`
	Faculty string `json:"faculty" db:"faculty" boil:"faculty"`
}

// NewUnit contains information needed to create a new Unit.
type NewUnit struct {
	Code    string `json:"unit_code" validate:"required,max=16,code"`
	Name    string `json:"unit_name" validate:"required,notblank,max=128"`
	Faculty string `json:"faculty" validate:"required,notblank,max=128"`
}

func (nu *NewUnit) Clean() {
	nu.Code = core.CleanCode(nu.Code)
	nu.Name = core.CleanString(nu.Name)
	nu.Faculty = core.CleanString(nu.Faculty)
}
