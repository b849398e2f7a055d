package dummydb

import (
	"sync"

	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
)

type (
	// DB is an in-memory store with the same key & reference rules as the SQL schema.
	DB struct {
		sync.RWMutex
		students map[string]student.Student
		units    map[string]unit.Unit
		results  []result.Result // insertion order
		pkCount  int64
	}
)

func Open() *DB {
	return &DB{
		students: make(map[string]student.Student),
		units:    make(map[string]unit.Unit),
	}
}
