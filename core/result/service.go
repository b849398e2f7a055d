package result

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrExists = core.NewError(core.KindDuplicateKey, "marks already exist for this unit; updating marks is not supported")
)

type (
	Repository interface {
		Exists(ctx context.Context, admissionNumber, unitCode string) (bool, error)
		Create(ctx context.Context, res Result) (Result, error)
		// QueryByStudent returns the Student's Results joined with their unit names, in insertion order.
		// A `limit` <= 0 returns all of them.
		QueryByStudent(ctx context.Context, admissionNumber string, limit int) ([]Result, error)
		// QueryIncomplete returns the Results of the unit with at least one absent mark.
		QueryIncomplete(ctx context.Context, unitCode string) ([]Incomplete, error)
	}

	Service interface {
		// Record creates the one and only Result of a Student for a Unit.
		Record(ctx context.Context, nr NewResult) (Result, error)
		Exists(ctx context.Context, admissionNumber, unitCode string) (bool, error)
		ForStudent(ctx context.Context, admissionNumber string, limit int) ([]Result, error)
		Incomplete(ctx context.Context, unitCode string) ([]Incomplete, error)
	}

	service struct {
		repo     Repository
		students student.Repository
		units    unit.Repository
		validate *core.Validator
	}
)

var _ Service = (*service)(nil) // interface compliance check

func NewService(repo Repository, students student.Repository, units unit.Repository, validate *core.Validator) Service {
	return &service{
		repo:     repo,
		students: students,
		units:    units,
		validate: validate,
	}
}

func (svc *service) Record(ctx context.Context, nr NewResult) (Result, error) {
	nr.Clean()
	if err := svc.validate.Struct(nr); err != nil {
		return Result{}, err
	}

	if exists, err := svc.students.Exists(ctx, nr.AdmissionNumber); err != nil {
		return Result{}, errors.Wrap(err, "checking student")
	} else if !exists {
		return Result{}, student.ErrNotFound
	}
	if exists, err := svc.units.Exists(ctx, nr.UnitCode); err != nil {
		return Result{}, errors.Wrap(err, "checking unit")
	} else if !exists {
		return Result{}, unit.ErrNotFound
	}
	if exists, err := svc.repo.Exists(ctx, nr.AdmissionNumber, nr.UnitCode); err != nil {
		return Result{}, errors.Wrap(err, "checking result")
	} else if exists {
		return Result{}, ErrExists
	}

	res := Result{
		AdmissionNumber: nr.AdmissionNumber,
		UnitCode:        nr.UnitCode,
		Marks:           nr.Marks,
		Total:           nr.Marks.Sum(),
		Grade:           nr.Marks.CalculateGrade(),
		CreatedAt:       NowFunc().UTC(),
	}
	return svc.repo.Create(ctx, res)
}

func (svc *service) Exists(ctx context.Context, admissionNumber, unitCode string) (bool, error) {
	return svc.repo.Exists(ctx, core.CleanString(admissionNumber), core.CleanCode(unitCode))
}

func (svc *service) ForStudent(ctx context.Context, admissionNumber string, limit int) ([]Result, error) {
	admissionNumber = core.CleanString(admissionNumber)
	if exists, err := svc.students.Exists(ctx, admissionNumber); err != nil {
		return nil, errors.Wrap(err, "checking student")
	} else if !exists {
		return nil, student.ErrNotFound
	}
	return svc.repo.QueryByStudent(ctx, admissionNumber, limit)
}

func (svc *service) Incomplete(ctx context.Context, unitCode string) ([]Incomplete, error) {
	unitCode = core.CleanCode(unitCode)
	if exists, err := svc.units.Exists(ctx, unitCode); err != nil {
		return nil, errors.Wrap(err, "checking unit")
	} else if !exists {
		return nil, unit.ErrNotFound
	}
	return svc.repo.QueryIncomplete(ctx, unitCode)
}
