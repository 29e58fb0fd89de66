package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/cli"
	"github.com/alexanderramin/groundwork/internal/db"
	"github.com/alexanderramin/groundwork/internal/repository"
	"github.com/alexanderramin/groundwork/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.groundwork/groundwork.db
	dbPath := os.Getenv("GROUNDWORK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".groundwork", "groundwork.db")
	}

	// Resolve the content bundle: a catalog file when one is configured,
	// the shipped default otherwise. Only the engine content rows persist
	// in the database; evidence specs and assessment questions ride along
	// in the bundle for the life of the process.
	bundle := catalog.Default()
	if path := os.Getenv("GROUNDWORK_CATALOG"); path != "" {
		loaded, warnings, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", path, err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "catalog warning: %s\n", w)
		}
		bundle = loaded
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	intakeRepo := repository.NewSQLiteIntakeRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	memoRepo := repository.NewSQLiteMemoRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)
	evidenceRepo := repository.NewSQLiteEvidenceRepo(database)
	offerRepo := repository.NewSQLiteOfferRepo(database)
	cadenceRepo := repository.NewSQLiteCadenceRepo(database)
	sopRepo := repository.NewSQLiteSOPRepo(database)
	splitRepo := repository.NewSQLiteMoneySplitRepo(database)
	assessmentRepo := repository.NewSQLiteAssessmentRepo(database)

	// Wire unit of work for transactional catalog swaps
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case telemetry on stderr
	var observers []service.UseCaseObserver
	if os.Getenv("GROUNDWORK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	catalogSvc := service.NewCatalogService(catalogRepo, uow, bundle, observers...)
	if _, err := catalogSvc.SeedDefault(context.Background()); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	app := &cli.App{
		UserID: os.Getenv("GROUNDWORK_USER"),

		Intakes:     service.NewIntakeService(intakeRepo, observers...),
		Profiles:    service.NewProfileService(intakeRepo, catalogRepo, evidenceRepo, profileRepo, observers...),
		Memos:       service.NewMemoService(intakeRepo, catalogRepo, evidenceRepo, memoRepo, observers...),
		Catalogs:    catalogSvc,
		Evidence:    service.NewEvidenceService(evidenceRepo, bundle.Evidence),
		Offers:      service.NewOfferService(offerRepo),
		Cadence:     service.NewCadenceService(cadenceRepo),
		SOPs:        service.NewSOPService(sopRepo),
		Splits:      service.NewMoneySplitService(splitRepo),
		Assessments: service.NewAssessmentService(assessmentRepo, bundle.Assessment, observers...),
	}

	// Detect interactive terminal for the wizard-driven commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
