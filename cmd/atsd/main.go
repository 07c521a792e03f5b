// Command atsd boots the applicant-ranking HTTP service: it loads config,
// connects to the applicant store, builds the résumé corpus once at
// startup, and serves query requests against it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fareltaza35/atscore/internal/handler"
	"github.com/fareltaza35/atscore/pkg/ats"
	"github.com/fareltaza35/atscore/pkg/config"
	"github.com/fareltaza35/atscore/pkg/database"
	atsdb "github.com/fareltaza35/atscore/pkg/database/sql"
	"github.com/fareltaza35/atscore/pkg/database/sql/adapters/mysql"
	"github.com/fareltaza35/atscore/pkg/database/sql/adapters/postgres"
	"github.com/fareltaza35/atscore/pkg/database/sql/adapters/sqlite"
	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/fareltaza35/atscore/pkg/logger"
	"github.com/fareltaza35/atscore/pkg/server"
	"github.com/fareltaza35/atscore/pkg/storage/blob"
	"github.com/fareltaza35/atscore/pkg/storage/blob/adapters/local"
)

type appConfig struct {
	Server server.Config
	Log    logger.Config
	SQL    atsdb.Config
	Blob   blob.Config
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.Log)
	ctx := context.Background()

	db, err := connectSQL(cfg.SQL)
	if err != nil {
		log.Error("failed to connect to sql store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store, err := local.New(cfg.Blob)
	if err != nil {
		log.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}
	instrumentedStore := blob.NewInstrumentedStore(store, "résumé-blobs")

	applicantStore := ats.NewSQLApplicantStore(atsdb.NewInstrumentedSQL(db))
	extractor := ats.NewPDFTextExtractor(instrumentedStore)

	corpus, err := ats.Load(ctx, applicantStore, extractor)
	if err != nil {
		log.Error("failed to load résumé corpus", "error", err)
		os.Exit(1)
	}
	if corpus.Len() == 0 {
		log.Error("corpus loaded with zero résumés, refusing to start", "error", errors.CorpusUnavailable("", nil))
		os.Exit(1)
	}
	log.Info("résumé corpus loaded", "count", corpus.Len())

	executor := ats.NewExecutor(corpus)
	h := handler.New(executor, extractor)

	srv := server.New(cfg.Server, log)
	h.Register(srv.Echo())

	if err := srv.Start(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// connectSQL dials the configured driver and wraps the resulting connection
// as a atsdb.SQL, since the postgres/mysql/sqlite adapter constructors each
// hand back a raw *gorm.DB rather than implementing the interface directly.
func connectSQL(cfg atsdb.Config) (atsdb.SQL, error) {
	switch cfg.Driver {
	case database.DriverPostgres:
		db, err := postgres.New(cfg)
		if err != nil {
			return nil, err
		}
		return atsdb.NewSingle(db), nil
	case database.DriverMySQL:
		db, err := mysql.New(cfg)
		if err != nil {
			return nil, err
		}
		return atsdb.NewSingle(db), nil
	case database.DriverSQLite:
		db, err := sqlite.New(cfg)
		if err != nil {
			return nil, err
		}
		return atsdb.NewSingle(db), nil
	default:
		return nil, errors.InvalidArgument("unsupported sql driver: "+cfg.Driver, nil)
	}
}
