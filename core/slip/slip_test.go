package slip

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
)

var (
	alice = student.Student{AdmissionNumber: "19/0001", Name: "Alice", Faculty: "Science", Programme: "BSc"}
	now   = time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
)

func makeResults(n int) []result.Result {
	results := make([]result.Result, 0, n)
	for i := 1; i <= n; i++ {
		results = append(results, result.Result{
			UnitCode: fmt.Sprintf("U%d", i),
			UnitName: fmt.Sprintf("Unit %d", i),
			Grade:    "IP",
		})
	}
	return results
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		results   int
		wantFirst Row
		wantLast  Row
	}{
		{name: "no results", results: 0, wantFirst: emptyRow, wantLast: emptyRow},
		{
			name:      "three results",
			results:   3,
			wantFirst: Row{"U1", "Unit 1", "IP", result.StatusMissing},
			wantLast:  emptyRow,
		},
		{
			name:      "nine results",
			results:   9,
			wantFirst: Row{"U1", "Unit 1", "IP", result.StatusMissing},
			wantLast:  Row{"U7", "Unit 7", "IP", result.StatusMissing},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("KCA UNIVERSITY", alice, makeResults(tt.results), now)
			assert.Len(t, s.Rows, Rows)
			assert.Equal(t, tt.wantFirst, s.Rows[0])
			assert.Equal(t, tt.wantLast, s.Rows[Rows-1])
			assert.Equal(t, alice, s.Student)
			assert.Equal(t, now, s.GeneratedAt)
		})
	}
}

func TestNew_status(t *testing.T) {
	res := makeResults(1)
	for _, f := range result.Fields {
		res[0].Marks.Set(f, null.IntFrom(5))
	}
	s := New("T", alice, res, now)
	assert.Equal(t, result.StatusComplete, s.Rows[0].Status)
	assert.Equal(t, [4]string{"-", "-", "-", "-"}, s.Rows[1].Cells())
}

func TestFileName(t *testing.T) {
	tests := []struct {
		adm    string
		suffix string
		want   string
	}{
		{adm: "S1", want: "ResultSlip_S1_20240506_070809.pdf"},
		{adm: "19/0001", suffix: "a1b2c3d4", want: "ResultSlip_19_0001_20240506_070809_a1b2c3d4.pdf"},
		{adm: `A\B:C D`, want: "ResultSlip_A_B_C_D_20240506_070809.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.adm, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName(tt.adm, now, tt.suffix))
		})
	}
}
