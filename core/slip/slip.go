// Package slip builds and renders student result slips.
package slip

import (
	"fmt"
	"strings"
	"time"

	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/student"
)

// Rows is the fixed number of data rows of a slip's table.
const Rows = 7

// Placeholder fills the cells of unused rows.
const Placeholder = "-"

var Headers = [4]string{"Unit Code", "Unit Name", "Grade", "Status"}

type Row struct {
	UnitCode string
	UnitName string
	Grade    string
	Status   string
}

func (r Row) Cells() [4]string {
	return [4]string{r.UnitCode, r.UnitName, r.Grade, r.Status}
}

var emptyRow = Row{Placeholder, Placeholder, Placeholder, Placeholder}

type Slip struct {
	Title       string
	Student     student.Student
	Rows        [Rows]Row
	GeneratedAt time.Time
}

// New builds a Slip from the first Rows results; missing rows are filled with Placeholder.
func New(title string, st student.Student, results []result.Result, now time.Time) Slip {
	s := Slip{
		Title:       title,
		Student:     st,
		GeneratedAt: now,
	}
	for i := range s.Rows {
		if i >= len(results) {
			s.Rows[i] = emptyRow
			continue
		}
		res := results[i]
		s.Rows[i] = Row{
			UnitCode: res.UnitCode,
			UnitName: res.UnitName,
			Grade:    res.Grade,
			Status:   res.Marks.Status(),
		}
	}
	return s
}

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_", ":", "_", " ", "_")

// FileName returns the slip's file name for the admission number, generation time and suffix.
func FileName(admissionNumber string, now time.Time, suffix string) string {
	name := fmt.Sprintf("ResultSlip_%s_%s", fileNameReplacer.Replace(admissionNumber), now.Format("20060102_150405"))
	if suffix != "" {
		name += "_" + suffix
	}
	return name + ".pdf"
}
