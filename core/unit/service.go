package unit

import (
	"context"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/matokeo/core"
)

var (
	// errors
	ErrNotFound = core.NewError(core.KindNotFound, "unit not found")
	ErrExists   = core.NewError(core.KindDuplicateKey, "a unit with this code already exists")

	suggestMinRatio = .6
)

type (
	Repository interface {
		Exists(ctx context.Context, code string) (bool, error)
		Create(ctx context.Context, u Unit) (Unit, error)
		// List returns all Units ordered by code.
		List(ctx context.Context) ([]Unit, error)
	}

	Service interface {
		Create(ctx context.Context, nu NewUnit) (Unit, error)
		Exists(ctx context.Context, code string) (bool, error)
		List(ctx context.Context) ([]Unit, error)
		// Suggest returns up to `n` unit codes that look like `code`, closest first.
		Suggest(ctx context.Context, code string, n int) ([]string, error)
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

func (svc *service) Create(ctx context.Context, nu NewUnit) (Unit, error) {
	nu.Clean()
	if err := svc.validate.Struct(nu); err != nil {
		return Unit{}, err
	}
	exists, err := svc.repo.Exists(ctx, nu.Code)
	if err != nil {
		return Unit{}, errors.Wrap(err, "checking unit")
	}
	if exists {
		return Unit{}, ErrExists
	}
	return svc.repo.Create(ctx, Unit(nu))
}

func (svc *service) Exists(ctx context.Context, code string) (bool, error) {
	return svc.repo.Exists(ctx, core.CleanCode(code))
}

func (svc *service) List(ctx context.Context) ([]Unit, error) {
	return svc.repo.List(ctx)
}

func (svc *service) Suggest(ctx context.Context, code string, n int) ([]string, error) {
	code = core.CleanCode(code)
	if code == "" || n <= 0 {
		return nil, nil
	}
	units, err := svc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	type match struct {
		code  string
		ratio float64
	}
	matches := make([]match, 0, len(units))
	for _, u := range units {
		ratio := difflib.NewMatcher(strings.Split(code, ""), strings.Split(u.Code, "")).Ratio()
		if ratio >= suggestMinRatio {
			matches = append(matches, match{code: u.Code, ratio: ratio})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].ratio > matches[j].ratio })

	if len(matches) > n {
		matches = matches[:n]
	}
	codes := make([]string, 0, len(matches))
	for _, m := range matches {
		codes = append(codes, m.code)
	}
	return codes, nil
}
