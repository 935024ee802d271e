package main

import (
	"context"
	"os"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/walletcore/billetera/internal/accountrepo"
	"github.com/walletcore/billetera/internal/accountservice"
	"github.com/walletcore/billetera/internal/dbstats"
	"github.com/walletcore/billetera/internal/menu"
	"github.com/walletcore/billetera/internal/transactionrepo"
	"github.com/walletcore/billetera/internal/transactionservice"
	"github.com/walletcore/billetera/internal/userrepo"
	"github.com/walletcore/billetera/internal/userservice"
	"github.com/walletcore/billetera/migrations"
	"github.com/walletcore/billetera/pkg/configpkg"
	"github.com/walletcore/billetera/pkg/dbpkg"
	"github.com/walletcore/billetera/pkg/logpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := logpkg.New(config)

	conn, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Error().Err(err).Msg("cannot close db connection")
		}
	}()

	if config.MigrateOnStart {
		if err := dbpkg.Migrate(conn, migrations.Migrations); err != nil {
			logger.Fatal().Err(err).Msg("cannot run migrations")
		}
	}

	ctx := logger.WithContext(context.Background())

	reporter := dbstats.New(conn)
	if !reporter.CheckHealth(ctx) {
		logger.Fatal().Msg("database is not healthy")
	}

	logger.Info().Fields(map[string]interface{}{"stats": reporter.Stats(ctx)}).Msg("database ready")

	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	userService := userservice.New(userRepo)
	accountService := accountservice.New(accountRepo)
	transactionService := transactionservice.New(transactionRepo, config.DefaultCurrency)

	m := menu.New(os.Stdin, os.Stdout, logger, userService, accountService, transactionService)
	m.Run()
}
