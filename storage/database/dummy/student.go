package dummydb

import (
	"context"

	"github.com/trezcool/matokeo/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) Exists(_ context.Context, admissionNumber string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	_, ok := repo.db.students[admissionNumber]
	return ok, nil
}

func (repo *studentRepository) Create(_ context.Context, st student.Student) (student.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.students[st.AdmissionNumber]; ok {
		return student.Student{}, student.ErrExists
	}
	repo.db.students[st.AdmissionNumber] = st
	return st, nil
}

func (repo *studentRepository) Get(_ context.Context, admissionNumber string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if st, ok := repo.db.students[admissionNumber]; ok {
		return st, nil
	}
	return student.Student{}, student.ErrNotFound
}
