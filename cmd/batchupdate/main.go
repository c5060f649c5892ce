package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/judgehub-2025.net/internal/adapter/postgres/contestrepository"
	"gitlab.com/judgehub-2025.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/judgehub-2025.net/internal/adapter/redis/synclockport"
	"gitlab.com/judgehub-2025.net/internal/config"
	"gitlab.com/judgehub-2025.net/internal/core/services/update"
	"gitlab.com/judgehub-2025.net/internal/domain"
	logger2 "gitlab.com/judgehub-2025.net/internal/global/logger"
	"gitlab.com/judgehub-2025.net/internal/judge/factory"
)

// batchupdate runs the sync cycle either once (-oneshot) or on a
// ticker. It shares the Redis lock with the API server's manual
// trigger, so running both is safe.
func main() {
	oneshot := flag.Bool("oneshot", false, "run a single sync cycle and exit")
	platformFlag := flag.String("platform", "", "sync only this platform")
	flag.Parse()

	InitReader()
	logger2.Info("Starting judge sync batch updater")
	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := sqlx.Open("postgres", sysCfg.PostgresConfig.Url)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	problemRepo := problemrepository.NewProblemRepository(db, logger)
	contestRepo := contestrepository.NewContestRepository(db, logger)
	syncLock := synclockport.NewSyncLockRepository(redisClient, logger)
	clientFactory := factory.NewClientFactory(logger)

	updateSvc := update.NewUpdateService(clientFactory, problemRepo, contestRepo, syncLock, logger, sysCfg.SyncSvcCfg)

	runOnce := func(ctx context.Context) {
		var err error
		if *platformFlag != "" {
			platform := domain.ParsePlatform(*platformFlag)
			if !platform.IsKnown() {
				log.Fatalf("Unknown platform %q", *platformFlag)
			}
			err = updateSvc.SyncPlatform(ctx, platform)
		} else {
			err = updateSvc.SyncAll(ctx)
		}
		if err != nil {
			logger.Error("Sync cycle finished with errors", "error", err)
		} else {
			logger.Info("Sync cycle finished")
		}
	}

	ctx := context.Background()
	if *oneshot {
		runOnce(ctx)
		return
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	interval := sysCfg.SyncSvcCfg.SyncInterval
	logger.Info("Scheduling sync cycles", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce(ctx)
	for {
		select {
		case <-ticker.C:
			runOnce(ctx)
		case <-quit:
			logger.Info("Shutting down batch updater")
			return
		}
	}
}

func InitReader() {
	environment := ""
	if len(flag.Args()) < 1 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = flag.Args()[0]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
