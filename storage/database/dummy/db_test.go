package dummydb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
)

func TestResultRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := Open()
	students := NewStudentRepository(db)
	units := NewUnitRepository(db)
	results := NewResultRepository(db)

	_, err := students.Create(ctx, student.Student{AdmissionNumber: "S1", Name: "Alice"})
	require.NoError(t, err)
	_, err = units.Create(ctx, unit.Unit{Code: "U1", Name: "Intro"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		res      result.Result
		wantKind core.Kind
		wantID   int64
	}{
		{name: "missing student", res: result.Result{AdmissionNumber: "S9", UnitCode: "U1"}, wantKind: core.KindConstraintViolation},
		{name: "missing unit", res: result.Result{AdmissionNumber: "S1", UnitCode: "U9"}, wantKind: core.KindConstraintViolation},
		{name: "created", res: result.Result{AdmissionNumber: "S1", UnitCode: "U1", Grade: "IP"}, wantID: 1},
		{name: "duplicate", res: result.Result{AdmissionNumber: "S1", UnitCode: "U1"}, wantKind: core.KindDuplicateKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := results.Create(ctx, tt.res)
			assert.Equal(t, tt.wantKind, core.KindOf(err))
			assert.Equal(t, tt.wantID, got.ID)
			if err == nil {
				assert.Equal(t, "Intro", got.UnitName)
			}
		})
	}
}

func TestStudentAndUnitRepositories(t *testing.T) {
	ctx := context.Background()
	db := Open()
	students := NewStudentRepository(db)
	units := NewUnitRepository(db)

	_, err := students.Get(ctx, "S1")
	assert.ErrorIs(t, err, student.ErrNotFound)

	_, err = students.Create(ctx, student.Student{AdmissionNumber: "S1"})
	require.NoError(t, err)
	_, err = students.Create(ctx, student.Student{AdmissionNumber: "S1"})
	assert.ErrorIs(t, err, student.ErrExists)

	for _, code := range []string{"U3", "U1", "U2"} {
		_, err = units.Create(ctx, unit.Unit{Code: code})
		require.NoError(t, err)
	}
	_, err = units.Create(ctx, unit.Unit{Code: "U2"})
	assert.ErrorIs(t, err, unit.ErrExists)

	list, err := units.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []unit.Unit{{Code: "U1"}, {Code: "U2"}, {Code: "U3"}}, list)
}
