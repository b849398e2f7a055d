package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/storage/database"
)

const (
	studentExistsQuery = `SELECT EXISTS (SELECT 1 FROM students WHERE admission_number = $1)`
	studentInsertQuery = `INSERT INTO students (admission_number, name, faculty, programme) VALUES ($1, $2, $3, $4)`
	studentGetQuery    = `SELECT admission_number, name, faculty, programme FROM students WHERE admission_number = $1`
)

type studentRepository struct {
	db sqlx.ExtContext
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db sqlx.ExtContext) student.Repository {
	return &studentRepository{db: db}
}

func (repo studentRepository) Exists(ctx context.Context, admissionNumber string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, repo.db, &exists, studentExistsQuery, admissionNumber); err != nil {
		return false, database.TrapError(err, "checking student")
	}
	return exists, nil
}

func (repo studentRepository) Create(ctx context.Context, st student.Student) (student.Student, error) {
	_, err := repo.db.ExecContext(ctx, studentInsertQuery, st.AdmissionNumber, st.Name, st.Faculty, st.Programme)
	if err != nil {
		err = database.TrapError(err, "inserting student")
		if database.IsDuplicate(err) {
			return student.Student{}, student.ErrExists
		}
		return student.Student{}, err
	}
	return st, nil
}

func (repo studentRepository) Get(ctx context.Context, admissionNumber string) (student.Student, error) {
	var st student.Student
	if err := sqlx.GetContext(ctx, repo.db, &st, studentGetQuery, admissionNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return student.Student{}, student.ErrNotFound
		}
		return student.Student{}, database.TrapError(err, "getting student")
	}
	return st, nil
}
