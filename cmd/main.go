package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/judgehub-2025.net/internal/adapter/crypto"
	"gitlab.com/judgehub-2025.net/internal/adapter/postgres/contestrepository"
	"gitlab.com/judgehub-2025.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/judgehub-2025.net/internal/adapter/postgres/userrepository"
	"gitlab.com/judgehub-2025.net/internal/adapter/redis/synclockport"
	"gitlab.com/judgehub-2025.net/internal/config"
	auth2 "gitlab.com/judgehub-2025.net/internal/core/services/auth"
	"gitlab.com/judgehub-2025.net/internal/core/services/contest"
	"gitlab.com/judgehub-2025.net/internal/core/services/problem"
	"gitlab.com/judgehub-2025.net/internal/core/services/submission"
	"gitlab.com/judgehub-2025.net/internal/core/services/update"
	logger2 "gitlab.com/judgehub-2025.net/internal/global/logger"
	http2 "gitlab.com/judgehub-2025.net/internal/http"
	"gitlab.com/judgehub-2025.net/internal/judge/factory"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge sync service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	problemRepo := problemrepository.NewProblemRepository(db, logger)
	contestRepo := contestrepository.NewContestRepository(db, logger)
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	syncLock := synclockport.NewSyncLockRepository(redisClient, logger)
	clientFactory := factory.NewClientFactory(logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	problemSvc := problem.NewProblemService(problemRepo, logger)
	contestSvc := contest.NewContestService(contestRepo, logger)
	submissionSvc := submission.NewSubmissionService(clientFactory, logger)
	updateSvc := update.NewUpdateService(clientFactory, problemRepo, contestRepo, syncLock, logger, sysCfg.SyncSvcCfg)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(problemSvc, contestSvc, submissionSvc, updateSvc, ggAuth, localAuth)

	// server
	httServer := http2.NewServer(8082, "judgeSync", *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	_, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop()

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(sysCfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", sysCfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
