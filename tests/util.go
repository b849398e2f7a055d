package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
)

func CreateStudent(t *testing.T, repo student.Repository, adm, name, faculty, programme string) student.Student {
	t.Helper()
	st, err := repo.Create(context.Background(), student.Student{
		AdmissionNumber: adm,
		Name:            name,
		Faculty:         faculty,
		Programme:       programme,
	})
	if err != nil {
		t.Fatalf("CreateStudent() failed: %v", err)
	}
	return st
}

func CreateUnit(t *testing.T, repo unit.Repository, code, name, faculty string) unit.Unit {
	t.Helper()
	u, err := repo.Create(context.Background(), unit.Unit{Code: code, Name: name, Faculty: faculty})
	if err != nil {
		t.Fatalf("CreateUnit() failed: %v", err)
	}
	return u
}

// CreateResult stores `marks` as is, with the total & grade they imply.
func CreateResult(
	t *testing.T,
	repo result.Repository,
	adm, unitCode string,
	marks result.Marks,
	createdAt ...time.Time,
) result.Result {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	res, err := repo.Create(context.Background(), result.Result{
		AdmissionNumber: adm,
		UnitCode:        unitCode,
		Marks:           marks,
		Total:           marks.Sum(),
		Grade:           marks.CalculateGrade(),
		CreatedAt:       tstamp,
	})
	if err != nil {
		t.Fatalf("CreateResult() failed: %v", err)
	}
	return res
}

// Marks builds Marks from six optional values, in entry order. A nil value is absent.
func Marks(vals ...*int) result.Marks {
	var m result.Marks
	for i, f := range result.Fields {
		if i < len(vals) && vals[i] != nil {
			m.Set(f, null.IntFrom(*vals[i]))
		}
	}
	return m
}

func Int(i int) *int { return &i }
