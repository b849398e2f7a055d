package result

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/grade"
)

const (
	ComponentMax = 10
	ExamMax      = 50

	StatusComplete = "Complete"
	StatusMissing  = "Missing Marks"
)

// Field is one of the six scored fields of a Result.
type Field uint8

const (
	Assignment1 Field = iota
	Assignment2
	Assignment3
	CAT1
	CAT2
	Exam
)

// Fields lists the scored fields in entry order.
var Fields = []Field{Assignment1, Assignment2, Assignment3, CAT1, CAT2, Exam}

var fieldInfo = [...]struct {
	label  string
	column string
	max    int
}{
	Assignment1: {"Assignment 1", "assignment1", ComponentMax},
	Assignment2: {"Assignment 2", "assignment2", ComponentMax},
	Assignment3: {"Assignment 3", "assignment3", ComponentMax},
	CAT1:        {"CAT 1", "cat1", ComponentMax},
	CAT2:        {"CAT 2", "cat2", ComponentMax},
	Exam:        {"Exam", "exam", ExamMax},
}

func (f Field) Label() string  { return fieldInfo[f].label }
func (f Field) Column() string { return fieldInfo[f].column }
func (f Field) Max() int       { return fieldInfo[f].max }
func (f Field) String() string { return f.Label() }

// Marks holds the six optional scored fields. An invalid null.Int means "not yet entered".
type Marks struct {
	Assignment1 null.Int `json:"assignment1" db:"assignment1" boil:"assignment1" validate:"omitempty,min=0,max=10"`
	Assignment2 null.Int `json:"assignment2" db:"assignment2" boil:"assignment2" validate:"omitempty,min=0,max=10"`
	Assignment3 null.Int `json:"assignment3" db:"assignment3" boil:"assignment3" validate:"omitempty,min=0,max=10"`
	CAT1        null.Int `json:"cat1" db:"cat1" boil:"cat1" validate:"omitempty,min=0,max=10"`
	CAT2        null.Int `json:"cat2" db:"cat2" boil:"cat2" validate:"omitempty,min=0,max=10"`
	Exam        null.Int `json:"exam" db:"exam" boil:"exam" validate:"omitempty,min=0,max=50"`
}

func (m *Marks) field(f Field) *null.Int {
	switch f {
	case Assignment1:
		return &m.Assignment1
	case Assignment2:
		return &m.Assignment2
	case Assignment3:
		return &m.Assignment3
	case CAT1:
		return &m.CAT1
	case CAT2:
		return &m.CAT2
	default:
		return &m.Exam
	}
}

func (m Marks) Get(f Field) null.Int { return *m.field(f) }

func (m *Marks) Set(f Field, v null.Int) { *m.field(f) = v }

// Sum adds up the present marks; absent ones count as 0.
func (m Marks) Sum() int {
	var total int
	for _, f := range Fields {
		if v := m.Get(f); v.Valid {
			total += v.Int
		}
	}
	return total
}

// Missing returns the absent fields in entry order.
func (m Marks) Missing() []Field {
	var missing []Field
	for _, f := range Fields {
		if !m.Get(f).Valid {
			missing = append(missing, f)
		}
	}
	return missing
}

func (m Marks) Complete() bool { return len(m.Missing()) == 0 }

// CalculateGrade is a letter grade only when all six marks are present, grade.InProgress otherwise.
func (m Marks) CalculateGrade() string {
	if !m.Complete() {
		return grade.InProgress
	}
	return grade.For(m.Sum())
}

func (m Marks) Status() string {
	if m.Complete() {
		return StatusComplete
	}
	return StatusMissing
}

type Result struct {
	ID              int64     `json:"id" db:"id" boil:"id"`
	AdmissionNumber string    `json:"admission_number" db:"admission_number" boil:"admission_number"`
	UnitCode        string    `json:"unit_code" db:"unit_code" boil:"unit_code"`
	UnitName        string    `json:"unit_name" db:"unit_name" boil:"unit_name"` // read-only; joined from units
	Marks           `boil:",bind"`
	Total           int       `json:"total" db:"total" boil:"total"`
	Grade           string    `json:"grade" db:"grade" boil:"grade"`
	CreatedAt       time.Time `json:"created_at" db:"created_at" boil:"created_at"` // UTC
}

// Incomplete is a Result of one unit with at least one absent mark.
type Incomplete struct {
	AdmissionNumber string `json:"admission_number" db:"admission_number" boil:"admission_number"`
	StudentName     string `json:"name" db:"name" boil:"name"`
	Marks           `boil:",bind"`
}

// NewResult contains information needed to record a student's marks for a unit.
type NewResult struct {
	AdmissionNumber string `json:"admission_number" validate:"required,max=32"`
	UnitCode        string `json:"unit_code" validate:"required,max=16"`
	Marks
}

func (nr *NewResult) Clean() {
	nr.AdmissionNumber = core.CleanString(nr.AdmissionNumber)
	nr.UnitCode = core.CleanCode(nr.UnitCode)
}
