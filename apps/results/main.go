package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/result"
	"github.com/trezcool/matokeo/core/slip"
	"github.com/trezcool/matokeo/core/student"
	"github.com/trezcool/matokeo/core/unit"
	"github.com/trezcool/matokeo/services/logger"
	"github.com/trezcool/matokeo/services/viewer"
	"github.com/trezcool/matokeo/storage/database"
	"github.com/trezcool/matokeo/storage/database/sqlboiler"
	"github.com/trezcool/matokeo/storage/database/sqlx"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	logger := logsvc.New(os.Stderr, conf)

	code := 0
	if err := run(conf, logger); err != nil {
		if err != errHelp {
			logger.Error("results", err)
		}
		code = 1
	}
	// flush pending rollbar reports
	if closer, ok := logger.(interface{ Close() }); ok {
		closer.Close()
	}
	os.Exit(code)
}

func run(conf *core.Config, logger core.Logger) error {
	// set up DB
	if err := database.CreateIfNotExist(conf); err != nil {
		return err
	}
	db, err := database.Open(conf)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if conf.Database.AutoMigrate {
		if err = database.Migrate(db.DB); err != nil {
			return err
		}
	}

	// set up repos & services
	validate := core.NewValidator()
	studentRepo := sqlxrepos.NewStudentRepository(db)
	unitRepo := sqlxrepos.NewUnitRepository(db)
	resultRepo := boiledrepos.NewResultRepository(db)

	studentSvc := student.NewService(studentRepo, validate)
	unitSvc := unit.NewService(unitRepo, validate)
	resultSvc := result.NewService(resultRepo, studentRepo, unitRepo, validate)

	view := viewer.New(conf.Slip.OpenViewer)
	if conf.Slip.ShowLogoOnStart && startsMenu(os.Args) {
		if _, err := os.Stat(conf.Slip.LogoPath); err == nil {
			if err := view.Open(conf.Slip.LogoPath); err != nil {
				logger.Debug("opening logo", err)
			}
		}
	}

	// start CLI
	cli := commandLine{
		db:  db.DB,
		out: os.Stdout,
		app: &app{
			appName:  conf.AppName,
			students: studentSvc,
			units:    unitSvc,
			results:  resultSvc,
			slips:    slip.NewService(conf.Slip, studentSvc, resultSvc),
			viewer:   view,
			logger:   logger,
			prompt:   newPrompter(os.Stdin, os.Stdout),
			out:      os.Stdout,
			terminal: term.IsTerminal(int(os.Stdin.Fd())),
		},
	}
	return cli.run(os.Args)
}
