package main

import (
	"arena-route-planner/internal/adapters/repositories"
	"arena-route-planner/internal/config"
	"arena-route-planner/internal/layout"
	"arena-route-planner/internal/platform/db"
	"arena-route-planner/internal/ports"
	"arena-route-planner/internal/services"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/peterbourgon/ff"
)

// options are the dbtool command-line settings.
type options struct {
	databaseURL string
	dbPath      string
	importPath  string
	name        string
	exportName  string
	outPath     string
	list        bool
	reportPath  string
}

// parseFlags reads the dbtool flags. Each flag may also be set through a
// DBTOOL_ prefixed environment variable (DBTOOL_IMPORT, DBTOOL_NAME, ...);
// DATABASE_URL and DB_PATH supply the connection defaults.
func parseFlags(args []string) (options, error) {
	var o options

	fs := flag.NewFlagSet("dbtool", flag.ContinueOnError)
	fs.StringVar(&o.databaseURL, "database-url", config.Get("DATABASE_URL", ""), "postgres connection URL (takes precedence over -db-path)")
	fs.StringVar(&o.dbPath, "db-path", config.Get("DB_PATH", "data/layouts.db"), "sqlite database path")
	fs.StringVar(&o.importPath, "import", "", "layout file to store in the database")
	fs.StringVar(&o.name, "name", "", "layout name for -import (default: file base name)")
	fs.StringVar(&o.exportName, "export", "", "stored layout to write to -out")
	fs.StringVar(&o.outPath, "out", "", "destination file for -export, or - for stdout")
	fs.BoolVar(&o.list, "list", false, "list stored layouts")
	fs.StringVar(&o.reportPath, "report", "", "print the segment report of a layout file and exit")

	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("DBTOOL")); err != nil {
		return options{}, err
	}
	return o, nil
}

// dbtool initializes layout databases and moves layout documents between
// files and the database.
//
//	dbtool -db-path data/layouts.db -import arena.json
//	dbtool -database-url postgres://... -export arena -out arena.json
//	dbtool -export arena -out -
//	dbtool -report arena.json
func main() {
	if !config.LoadDotEnv() {
		log.Println("No .env file found (using environment variables)")
	}

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if opts.reportPath != "" {
		if err := report(opts.reportPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx := context.Background()
	sqlDB, repo, err := open(ctx, opts.databaseURL, opts.dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()
	log.Println("Schema ready.")

	if opts.importPath != "" {
		rec, err := repositories.SeedFromJSON(ctx, repo, opts.importPath, opts.name)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}
		log.Printf("Imported layout name=%s id=%s", rec.Name, rec.ID)
	}

	if opts.exportName != "" {
		if err := export(ctx, repo, opts.exportName, opts.outPath); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		log.Printf("Exported layout name=%s path=%s", opts.exportName, opts.outPath)
	}

	if opts.list {
		recs, err := repo.ListLayouts(ctx)
		if err != nil {
			log.Fatalf("list failed: %v", err)
		}
		for _, rec := range recs {
			fmt.Printf("%s\t%s\t%s\n", rec.Name, rec.ID, rec.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"))
		}
	}
}

// export writes a stored layout to outPath; "-" writes it to stdout.
func export(ctx context.Context, repo ports.LayoutRepository, name, outPath string) error {
	if strings.TrimSpace(outPath) == "" {
		return errors.New("-out is required with -export")
	}

	m, err := repo.LoadLayout(ctx, name)
	if err != nil {
		return err
	}
	if outPath == "-" {
		return layout.Encode(os.Stdout, m)
	}
	return layout.SaveFile(outPath, m)
}

func open(ctx context.Context, databaseURL, dbPath string) (*sql.DB, ports.LayoutRepository, error) {
	if strings.TrimSpace(databaseURL) != "" {
		sqlDB, err := db.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		log.Println("Initializing postgres schema...")
		if err := repositories.InitPostgresSchema(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("schema initialization failed: %w", err)
		}
		return sqlDB, repositories.NewSQLLayoutRepository(sqlDB), nil
	}

	sqlDB, err := db.OpenSqlite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	log.Println("Initializing sqlite schema...")
	if err := repositories.InitSchema(sqlDB); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("schema initialization failed: %w", err)
	}
	return sqlDB, repositories.NewSqliteLayoutRepository(sqlDB), nil
}

func report(path string) error {
	m, err := layout.LoadFile(path)
	if err != nil {
		return err
	}
	a, err := services.AnalyzeSegments(m)
	if err != nil {
		return err
	}
	fmt.Println(services.FormatInfoPanel(a))
	return nil
}
