package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/slip"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
	"github.com/trezcool/matokeo/services/viewer"
)

const (
	maxSuggestions = 3
	clearScreen    = "\033[H\033[2J"
)

var menuOptions = []string{
	"1. Enter Student Marks",
	"2. Generate Result Slip",
	"3. View Students with Missing Marks",
	"4. Add New Unit",
	"5. Exit",
}

// app holds everything an operation needs. Operations share no state between runs.
type app struct {
	appName  string
	students student.Service
	units    unit.Service
	results  result.Service
	slips    *slip.Service
	viewer   *viewer.Viewer
	logger   core.Logger
	prompt   *prompter
	out      io.Writer
	terminal bool // pause & clear the screen between operations
}

func (a *app) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// menu runs the console loop until Exit is chosen or the input is closed.
func (a *app) menu(ctx context.Context) error {
	for {
		a.printf("Welcome to the %s Student Result Management System\n", a.appName)
		for _, opt := range menuOptions {
			a.println(opt)
		}
		choice, err := a.prompt.line("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case "1":
			err = a.enterMarks(ctx)
		case "2":
			err = a.generateSlip(ctx)
		case "3":
			err = a.viewMissingMarks(ctx)
		case "4":
			err = a.addUnit(ctx)
		case "5":
			return nil
		default:
			a.println("Invalid choice.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			a.report(err)
		}
		if err = a.pause(); err != nil {
			return ignoreEOF(err)
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// report prints an operation failure the menu did not handle itself.
func (a *app) report(err error) {
	kind := core.KindOf(err)
	a.logger.Error("operation failed", map[string]interface{}{"kind": kind.String(), "error": err})

	switch kind {
	case core.KindStoreUnavailable, core.KindConstraintViolation:
		a.printf("Database error: %v\n", err)
	case core.KindFileSystem:
		a.printf("\nError generating PDF: %v\n", err)
	case core.KindInvalidInput, core.KindNotFound, core.KindDuplicateKey:
		a.printf("Error: %v\n", err)
	default:
		a.printf("An error occurred: %v\n", err)
	}
}

func (a *app) pause() error {
	if !a.terminal {
		a.println()
		return nil
	}
	if _, err := a.prompt.line("\nPress Enter to continue..."); err != nil {
		return err
	}
	fmt.Fprint(a.out, clearScreen)
	return nil
}

func (a *app) enterMarks(ctx context.Context) error {
	adm, err := a.prompt.line("Enter Admission Number: ")
	if err != nil {
		return err
	}
	if adm == "" {
		a.println("Admission number is required.")
		return nil
	}

	exists, err := a.students.Exists(ctx, adm)
	if err != nil {
		return err
	}
	if !exists {
		add, err := a.prompt.confirm("Student not found! Would you like to add them? (yes/no): ")
		if err != nil || !add {
			return err
		}
		if added, err := a.addStudent(ctx, adm); err != nil || !added {
			return err
		}
	}

	units, err := a.units.List(ctx)
	if err != nil {
		return err
	}
	a.println("\nAvailable Units:")
	if len(units) == 0 {
		a.println("No units found in the system!")
		return nil
	}
	for _, u := range units {
		a.printf("%s - %s\n", u.Code, u.Name)
	}

	code, err := a.prompt.line("\nEnter Unit Code: ")
	if err != nil {
		return err
	}
	code = core.CleanCode(code)
	if exists, err = a.units.Exists(ctx, code); err != nil {
		return err
	} else if !exists {
		a.unitNotFound(ctx, code)
		return nil
	}

	if exists, err = a.results.Exists(ctx, adm, code); err != nil {
		return err
	} else if exists {
		a.println("Marks already exist for this unit. Updating marks is not supported.")
		return nil
	}

	nr := result.NewResult{AdmissionNumber: adm, UnitCode: code}
	for _, f := range result.Fields {
		v, err := a.prompt.mark(f.Label(), f.Max())
		if err != nil {
			return err
		}
		nr.Marks.Set(f, v)
	}
	res, err := a.results.Record(ctx, nr)
	if err != nil {
		if errors.Is(err, result.ErrExists) {
			a.println("Marks already exist for this unit. Updating marks is not supported.")
			return nil
		}
		return err
	}

	a.println("\nMarks entered successfully!")
	a.println("\nMarks Summary:")
	a.printf("Student: %s\n", res.AdmissionNumber)
	a.printf("Unit: %s\n", res.UnitCode)
	for _, f := range result.Fields {
		a.printf("%s: %s\n", f.Label(), markText(res.Marks.Get(f).Ptr()))
	}
	a.printf("Total: %d\n", res.Total)
	a.printf("Grade: %s\n", res.Grade)
	return nil
}

func markText(v *int) string {
	if v == nil {
		return "Not entered"
	}
	return fmt.Sprint(*v)
}

// addStudent collects the rest of a new Student's details. It reports false when the Student was not created.
func (a *app) addStudent(ctx context.Context, adm string) (bool, error) {
	ns := student.NewStudent{AdmissionNumber: adm}
	var err error
	if ns.Name, err = a.prompt.line("Enter Student Name: "); err != nil {
		return false, err
	}
	if ns.Faculty, err = a.prompt.line("Enter Faculty: "); err != nil {
		return false, err
	}
	if ns.Programme, err = a.prompt.line("Enter Programme: "); err != nil {
		return false, err
	}

	if _, err = a.students.Create(ctx, ns); err != nil {
		if core.KindOf(err) == core.KindStoreUnavailable {
			return false, err
		}
		a.printf("Error adding student: %v\n", err)
		return false, nil
	}
	a.println("Student added successfully!")
	return true, nil
}

func (a *app) unitNotFound(ctx context.Context, code string) {
	a.println("Unit not found!")
	codes, err := a.units.Suggest(ctx, code, maxSuggestions)
	if err != nil {
		a.logger.Warn("suggesting unit codes", err)
		return
	}
	if len(codes) > 0 {
		a.printf("Did you mean: %s?\n", strings.Join(codes, ", "))
	}
}

func (a *app) generateSlip(ctx context.Context) error {
	adm, err := a.prompt.line("Enter Admission Number: ")
	if err != nil {
		return err
	}
	if err = a.writeSlip(ctx, adm); errors.Is(err, student.ErrNotFound) {
		a.println("Student not found!")
		return nil
	}
	return err
}

// writeSlip generates the Student's result slip and tries to open it.
func (a *app) writeSlip(ctx context.Context, adm string) error {
	path, err := a.slips.Generate(ctx, adm)
	if err != nil {
		return err
	}
	a.println("\nPDF generated successfully!")
	a.printf("Location: %s\n", path)

	if err = a.viewer.Open(path); err != nil {
		a.logger.Warn("opening result slip", err)
		a.printf("\nCould not automatically open the PDF: %v\n", err)
		a.printf("Please manually open the file at: %s\n", path)
	}
	return nil
}

func (a *app) viewMissingMarks(ctx context.Context) error {
	code, err := a.prompt.line("Enter Unit Code: ")
	if err != nil {
		return err
	}
	if err = a.printMissing(ctx, code); errors.Is(err, unit.ErrNotFound) {
		a.unitNotFound(ctx, core.CleanCode(code))
		return nil
	}
	return err
}

func (a *app) printMissing(ctx context.Context, code string) error {
	incomplete, err := a.results.Incomplete(ctx, code)
	if err != nil {
		return err
	}
	if len(incomplete) == 0 {
		a.println("No students found with missing marks for this unit.")
		return nil
	}

	a.println("\nStudents with Missing Marks:")
	a.println("----------------------------")
	for _, inc := range incomplete {
		a.printf("\nStudent: %s (%s)\n", inc.StudentName, inc.AdmissionNumber)
		for _, f := range inc.Marks.Missing() {
			a.printf("- Missing %s\n", f.Label())
		}
	}
	return nil
}

func (a *app) addUnit(ctx context.Context) error {
	var (
		nu  unit.NewUnit
		err error
	)
	if nu.Code, err = a.prompt.line("Enter Unit Code: "); err != nil {
		return err
	}
	if nu.Name, err = a.prompt.line("Enter Unit Name: "); err != nil {
		return err
	}
	if nu.Faculty, err = a.prompt.line("Enter Faculty: "); err != nil {
		return err
	}
	if err = a.createUnit(ctx, nu); err != nil {
		a.logger.Warn("adding unit", err)
		a.printf("Error adding unit: %v\n", err)
	}
	return nil
}

func (a *app) createUnit(ctx context.Context, nu unit.NewUnit) error {
	if _, err := a.units.Create(ctx, nu); err != nil {
		return err
	}
	a.println("Unit added successfully!")
	return nil
}
