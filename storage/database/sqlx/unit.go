package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/matokeo/core/unit"
	"github.com/trezcool/matokeo/storage/database"
)

const (
	unitExistsQuery = `SELECT EXISTS (SELECT 1 FROM units WHERE unit_code = $1)`
	unitInsertQuery = `INSERT INTO units (unit_code, unit_name, faculty) VALUES ($1, $2, $3)`
	unitListQuery   = `SELECT unit_code, unit_name, faculty FROM units ORDER BY unit_code`
)

type unitRepository struct {
	db sqlx.ExtContext
}

var _ unit.Repository = (*unitRepository)(nil) // interface compliance check

func NewUnitRepository(db sqlx.ExtContext) unit.Repository {
	return &unitRepository{db: db}
}

func (repo unitRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, repo.db, &exists, unitExistsQuery, code); err != nil {
		return false, database.TrapError(err, "checking unit")
	}
	return exists, nil
}

func (repo unitRepository) Create(ctx context.Context, u unit.Unit) (unit.Unit, error) {
	if _, err := repo.db.ExecContext(ctx, unitInsertQuery, u.Code, u.Name, u.Faculty); err != nil {
		err = database.TrapError(err, "inserting unit")
		if database.IsDuplicate(err) {
			return unit.Unit{}, unit.ErrExists
		}
		return unit.Unit{}, err
	}
	return u, nil
}

func (repo unitRepository) List(ctx context.Context) ([]unit.Unit, error) {
	units := make([]unit.Unit, 0)
	if err := sqlx.SelectContext(ctx, repo.db, &units, unitListQuery); err != nil {
		return nil, database.TrapError(err, "listing units")
	}
	return units, nil
}
