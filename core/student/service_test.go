package student_test

import (
	"context"
	"errors"
	"testing"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/storage/database/dummy"
	"github.com/trezcool/matokeo/tests"
)

func TestService_Create(t *testing.T) {
	repo := dummydb.NewStudentRepository(dummydb.Open())
	svc := student.NewService(repo, core.NewValidator())
	testutil.CreateStudent(t, repo, "19/0001", "Alice", "Science", "BSc")

	tests := []struct {
		name     string
		ns       student.NewStudent
		want     student.Student
		wantKind core.Kind
		wantErr  error
	}{
		{
			name:     "missing admission number",
			ns:       student.NewStudent{Name: "Bob", Faculty: "Science", Programme: "BSc"},
			wantKind: core.KindInvalidInput,
		},
		{
			name:     "blank name",
			ns:       student.NewStudent{AdmissionNumber: "19/0002", Name: "   ", Faculty: "Science", Programme: "BSc"},
			wantKind: core.KindInvalidInput,
		},
		{
			name:     "admission number too long",
			ns:       student.NewStudent{AdmissionNumber: "KCA/2019/0000000000000000000000001", Name: "Bob", Faculty: "Science", Programme: "BSc"},
			wantKind: core.KindInvalidInput,
		},
		{
			name: "free-form admission number",
			ns:   student.NewStudent{AdmissionNumber: "KCA.19.001", Name: "Carol", Faculty: "Science", Programme: "BSc"},
			want: student.Student{AdmissionNumber: "KCA.19.001", Name: "Carol", Faculty: "Science", Programme: "BSc"},
		},
		{
			name: "admission number with symbols",
			ns:   student.NewStudent{AdmissionNumber: "19-0001#A_1", Name: "Dan", Faculty: "Science", Programme: "BSc"},
			want: student.Student{AdmissionNumber: "19-0001#A_1", Name: "Dan", Faculty: "Science", Programme: "BSc"},
		},
		{
			name:     "duplicate",
			ns:       student.NewStudent{AdmissionNumber: " 19/0001 ", Name: "Bob", Faculty: "Science", Programme: "BSc"},
			wantKind: core.KindDuplicateKey,
			wantErr:  student.ErrExists,
		},
		{
			name: "created",
			ns:   student.NewStudent{AdmissionNumber: " 19/0002", Name: "Bob  Kamau ", Faculty: "Science", Programme: "BSc"},
			want: student.Student{AdmissionNumber: "19/0002", Name: "Bob  Kamau", Faculty: "Science", Programme: "BSc"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Create(context.Background(), tt.ns)
			if kind := core.KindOf(err); kind != tt.wantKind {
				t.Fatalf("Create() error kind = %v, want %v (err: %v)", kind, tt.wantKind, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Create() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	repo := dummydb.NewStudentRepository(dummydb.Open())
	svc := student.NewService(repo, core.NewValidator())
	alice := testutil.CreateStudent(t, repo, "S1", "Alice", "Science", "BSc")

	got, err := svc.Get(context.Background(), " S1 ")
	if err != nil {
		t.Fatalf("Get() unexpected error = %v", err)
	}
	if got != alice {
		t.Errorf("Get() = %+v, want %+v", got, alice)
	}

	if _, err = svc.Get(context.Background(), "S2"); !errors.Is(err, student.ErrNotFound) {
		t.Errorf("Get() error = %v, wantErr %v", err, student.ErrNotFound)
	}

	exists, err := svc.Exists(context.Background(), "S1")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v; want true, nil", exists, err)
	}
}
