package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/matokeo/core/unit"
	"github.com/trezcool/matokeo/storage/database"
)

var (
	gooseRunFunc = database.RunMigration // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db  *sql.DB
	app *app
	out io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  (no command)                              - start the interactive menu")
	fmt.Fprintln(cli.out, "  menu                                      - start the interactive menu")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS]                    - run a migration command (up, down, status, version, redo, reset, up-to N, down-to N)")
	fmt.Fprintln(cli.out, "  slip -admission ADM                       - generate a student's result slip")
	fmt.Fprintln(cli.out, "  missing -unit CODE                        - list students with missing marks for a unit")
	fmt.Fprintln(cli.out, "  addunit -code CODE -name NAME -faculty F  - add a new unit")
}

func (cli *commandLine) run(args []string) error {
	ctx := context.Background()
	if len(args) < 2 {
		return cli.app.menu(ctx)
	}

	slipCmd := flag.NewFlagSet("slip", flag.ContinueOnError)
	slipCmd.SetOutput(cli.out)
	slipAdm := slipCmd.String("admission", "", "The student's admission number.")

	missingCmd := flag.NewFlagSet("missing", flag.ContinueOnError)
	missingCmd.SetOutput(cli.out)
	missingUnit := missingCmd.String("unit", "", "The unit code.")

	addUnitCmd := flag.NewFlagSet("addunit", flag.ContinueOnError)
	addUnitCmd.SetOutput(cli.out)
	addUnitCode := addUnitCmd.String("code", "", "The unit code (upper-cased).")
	addUnitName := addUnitCmd.String("name", "", "The unit name.")
	addUnitFaculty := addUnitCmd.String("faculty", "", "The faculty offering the unit.")

	switch args[1] {
	case "menu":
		return cli.app.menu(ctx)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "slip":
		if err := parse(slipCmd, args[2:]); err != nil {
			return err
		}
		if *slipAdm == "" {
			slipCmd.Usage()
			return errHelp
		}
		return cli.app.writeSlip(ctx, *slipAdm)
	case "missing":
		if err := parse(missingCmd, args[2:]); err != nil {
			return err
		}
		if *missingUnit == "" {
			missingCmd.Usage()
			return errHelp
		}
		return cli.app.printMissing(ctx, *missingUnit)
	case "addunit":
		if err := parse(addUnitCmd, args[2:]); err != nil {
			return err
		}
		if *addUnitCode == "" || *addUnitName == "" || *addUnitFaculty == "" {
			addUnitCmd.Usage()
			return errHelp
		}
		return cli.app.createUnit(ctx, unit.NewUnit{Code: *addUnitCode, Name: *addUnitName, Faculty: *addUnitFaculty})
	default:
		cli.printUsage()
		return errHelp
	}
}

// startsMenu reports whether args run the interactive menu.
func startsMenu(args []string) bool {
	return len(args) < 2 || args[1] == "menu"
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(cli.db, args[0], arguments...)
}
