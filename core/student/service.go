package student

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

var (
	// errors
	ErrNotFound = core.NewError(core.KindNotFound, "student not found")
	ErrExists   = core.NewError(core.KindDuplicateKey, "a student with this admission number already exists")
)

type (
	Repository interface {
		Exists(ctx context.Context, admissionNumber string) (bool, error)
		Create(ctx context.Context, st Student) (Student, error)
		// Get returns ErrNotFound when there is no such Student.
		Get(ctx context.Context, admissionNumber string) (Student, error)
	}

	Service interface {
		Create(ctx context.Context, ns NewStudent) (Student, error)
		Exists(ctx context.Context, admissionNumber string) (bool, error)
		Get(ctx context.Context, admissionNumber string) (Student, error)
	}

	service struct {
		repo     Repository
		validate *core.Validator
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(repo Repository, validate *core.Validator) Service {
	return &service{repo: repo, validate: validate}
}

func (svc *service) Create(ctx context.Context, ns NewStudent) (Student, error) {
	ns.Clean()
	if err := svc.validate.Struct(ns); err != nil {
		return Student{}, err
	}
	exists, err := svc.repo.Exists(ctx, ns.AdmissionNumber)
	if err != nil {
		return Student{}, errors.Wrap(err, "checking student")
	}
	if exists {
		return Student{}, ErrExists
	}
	return svc.repo.Create(ctx, Student(ns))
}

func (svc *service) Exists(ctx context.Context, admissionNumber string) (bool, error) {
	return svc.repo.Exists(ctx, core.CleanString(admissionNumber))
}

func (svc *service) Get(ctx context.Context, admissionNumber string) (Student, error) {
	return svc.repo.Get(ctx, core.CleanString(admissionNumber))
}
