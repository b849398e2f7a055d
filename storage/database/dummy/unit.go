package dummydb

import (
	"context"
	"sort"

	"github.com/trezcool/matokeo/core/unit"
)

type unitRepository struct {
	db *DB
}

var _ unit.Repository = (*unitRepository)(nil) // interface compliance check

func NewUnitRepository(db *DB) unit.Repository {
	return &unitRepository{db: db}
}

func (repo *unitRepository) Exists(_ context.Context, code string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	_, ok := repo.db.units[code]
	return ok, nil
}

func (repo *unitRepository) Create(_ context.Context, u unit.Unit) (unit.Unit, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.units[u.Code]; ok {
		return unit.Unit{}, unit.ErrExists
	}
	repo.db.units[u.Code] = u
	return u, nil
}

func (repo *unitRepository) List(_ context.Context) ([]unit.Unit, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	units := make([]unit.Unit, 0, len(repo.db.units))
	for _, u := range repo.db.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool { return units[i].Code < units[j].Code })
	return units, nil
}
