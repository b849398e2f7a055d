package boiledrepos

import (
	"context"
	"time"

	"github.com/volatiletech/sqlboiler/v4/queries"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/storage/database"
)

const (
	resultExistsQuery = `SELECT EXISTS (SELECT 1 FROM results WHERE admission_number = $1 AND unit_code = $2) AS "exists"`

	resultInsertQuery = `WITH ins AS (
	INSERT INTO results (admission_number, unit_code, assignment1, assignment2, assignment3, cat1, cat2, exam, total, grade, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, unit_code, created_at
)
SELECT ins.id, ins.created_at, u.unit_name FROM ins JOIN units u ON u.unit_code = ins.unit_code`

	// LIMIT NULL is no limit
	resultsByStudentQuery = `SELECT r.id, r.admission_number, r.unit_code, u.unit_name,
	r.assignment1, r.assignment2, r.assignment3, r.cat1, r.cat2, r.exam, r.total, r.grade, r.created_at
FROM results r
JOIN units u ON u.unit_code = r.unit_code
WHERE r.admission_number = $1
ORDER BY r.id
LIMIT $2`

	incompleteResultsQuery = `SELECT s.admission_number, s.name,
	r.assignment1, r.assignment2, r.assignment3, r.cat1, r.cat2, r.exam
FROM results r
JOIN students s ON s.admission_number = r.admission_number
WHERE r.unit_code = $1
	AND (r.assignment1 IS NULL OR r.assignment2 IS NULL OR r.assignment3 IS NULL
		OR r.cat1 IS NULL OR r.cat2 IS NULL OR r.exam IS NULL)
ORDER BY r.id`
)

type resultRepository struct {
	exec core.DBExecutor
}

var _ result.Repository = (*resultRepository)(nil) // interface compliance check

func NewResultRepository(exec core.DBExecutor) result.Repository {
	return &resultRepository{exec: exec}
}

func (repo resultRepository) Exists(ctx context.Context, admissionNumber, unitCode string) (bool, error) {
	var row struct {
		Exists bool `boil:"exists"`
	}
	if err := queries.Raw(resultExistsQuery, admissionNumber, unitCode).Bind(ctx, repo.exec, &row); err != nil {
		return false, database.TrapError(err, "checking result")
	}
	return row.Exists, nil
}

func (repo resultRepository) Create(ctx context.Context, res result.Result) (result.Result, error) {
	var row struct {
		ID        int64     `boil:"id"`
		CreatedAt time.Time `boil:"created_at"`
		UnitName  string    `boil:"unit_name"`
	}
	m := res.Marks
	q := queries.Raw(resultInsertQuery,
		res.AdmissionNumber, res.UnitCode,
		m.Assignment1, m.Assignment2, m.Assignment3, m.CAT1, m.CAT2, m.Exam,
		res.Total, res.Grade, res.CreatedAt.UTC(),
	)
	if err := q.Bind(ctx, repo.exec, &row); err != nil {
		err = database.TrapError(err, "inserting result")
		if database.IsDuplicate(err) {
			return result.Result{}, result.ErrExists
		}
		return result.Result{}, err
	}
	res.ID = row.ID
	res.CreatedAt = row.CreatedAt
	res.UnitName = row.UnitName
	return res, nil
}

func (repo resultRepository) QueryByStudent(ctx context.Context, admissionNumber string, limit int) ([]result.Result, error) {
	var lim interface{}
	if limit > 0 {
		lim = limit
	}
	results := make([]result.Result, 0)
	if err := queries.Raw(resultsByStudentQuery, admissionNumber, lim).Bind(ctx, repo.exec, &results); err != nil {
		return nil, database.TrapError(err, "querying results")
	}
	return results, nil
}

func (repo resultRepository) QueryIncomplete(ctx context.Context, unitCode string) ([]result.Incomplete, error) {
	incomplete := make([]result.Incomplete, 0)
	if err := queries.Raw(incompleteResultsQuery, unitCode).Bind(ctx, repo.exec, &incomplete); err != nil {
		return nil, database.TrapError(err, "querying incomplete results")
	}
	return incomplete, nil
}
