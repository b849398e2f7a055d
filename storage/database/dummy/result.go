package dummydb

import (
	"context"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
)

var errMissingReference = core.NewError(core.KindConstraintViolation, "result references a missing student or unit")

type resultRepository struct {
	db *DB
}

var _ result.Repository = (*resultRepository)(nil) // interface compliance check

func NewResultRepository(db *DB) result.Repository {
	return &resultRepository{db: db}
}

func (repo *resultRepository) exists(admissionNumber, unitCode string) bool {
	for _, res := range repo.db.results {
		if res.AdmissionNumber == admissionNumber && res.UnitCode == unitCode {
			return true
		}
	}
	return false
}

func (repo *resultRepository) Exists(_ context.Context, admissionNumber, unitCode string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.exists(admissionNumber, unitCode), nil
}

func (repo *resultRepository) Create(_ context.Context, res result.Result) (result.Result, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// same rules as the foreign keys & unique constraint of the SQL schema
	_, stOk := repo.db.students[res.AdmissionNumber]
	u, unitOk := repo.db.units[res.UnitCode]
	if !stOk || !unitOk {
		return result.Result{}, errMissingReference
	}
	if repo.exists(res.AdmissionNumber, res.UnitCode) {
		return result.Result{}, result.ErrExists
	}

	repo.db.pkCount++
	res.ID = repo.db.pkCount
	res.UnitName = u.Name
	repo.db.results = append(repo.db.results, res)
	return res, nil
}

func (repo *resultRepository) QueryByStudent(_ context.Context, admissionNumber string, limit int) ([]result.Result, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	results := make([]result.Result, 0)
	for _, res := range repo.db.results {
		if limit > 0 && len(results) == limit {
			break
		}
		if res.AdmissionNumber == admissionNumber {
			res.UnitName = repo.db.units[res.UnitCode].Name
			results = append(results, res)
		}
	}
	return results, nil
}

func (repo *resultRepository) QueryIncomplete(_ context.Context, unitCode string) ([]result.Incomplete, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	incomplete := make([]result.Incomplete, 0)
	for _, res := range repo.db.results {
		if res.UnitCode != unitCode || res.Marks.Complete() {
			continue
		}
		incomplete = append(incomplete, result.Incomplete{
			AdmissionNumber: res.AdmissionNumber,
			StudentName:     repo.db.students[res.AdmissionNumber].Name,
			Marks:           res.Marks,
		})
	}
	return incomplete, nil
}
