package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/judgehub-2025.net/internal/core/ports/primary"
	auth2 "gitlab.com/judgehub-2025.net/internal/core/services/auth"
	"gitlab.com/judgehub-2025.net/internal/core/services/contest"
	"gitlab.com/judgehub-2025.net/internal/core/services/problem"
	"gitlab.com/judgehub-2025.net/internal/core/services/submission"
	"gitlab.com/judgehub-2025.net/internal/core/services/update"
	"gitlab.com/judgehub-2025.net/internal/handlers"
	"gitlab.com/judgehub-2025.net/internal/handlers/auth"
	"gitlab.com/judgehub-2025.net/internal/handlers/contests"
	"gitlab.com/judgehub-2025.net/internal/handlers/problems"
	"gitlab.com/judgehub-2025.net/internal/handlers/submissions"
	synchandler "gitlab.com/judgehub-2025.net/internal/handlers/sync"
)

type ServiceProvider struct {
	problemService    problem.IProblemService
	contestService    contest.IContestService
	submissionService submission.ISubmissionService
	updateService     update.IUpdateService

	ggAuth    auth2.IAuthService
	localAuth auth2.IAuthService
}

func NewServiceProvider(
	problemService problem.IProblemService,
	contestService contest.IContestService,
	submissionService submission.ISubmissionService,
	updateService update.IUpdateService,
	ggAuth auth2.IAuthService,
	localAuth auth2.IAuthService,
) *ServiceProvider {
	return &ServiceProvider{
		problemService:    problemService,
		contestService:    contestService,
		submissionService: submissionService,
		updateService:     updateService,
		ggAuth:            ggAuth,
		localAuth:         localAuth,
	}
}

type Server struct {
	router          *mux.Router
	srv             *http.Server
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	logger          primary.Logger
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()
	middleware := handlers.New()

	problems.NewProblemHandler(s.ServiceProvider.problemService, s.logger).RegisterRoutes(r)
	contests.NewContestHandler(s.ServiceProvider.contestService, s.logger).RegisterRoutes(r)
	submissions.NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).RegisterRoutes(r)
	synchandler.NewSyncHandler(s.ServiceProvider.updateService, s.logger).
		RegisterRoutes(r, middleware.JWTMiddleware)
	auth.NewHandler().RegisterRoutes(r, &auth.ServiceDependencies{
		GGAuthService:    s.ServiceProvider.ggAuth,
		LocalAuthService: s.ServiceProvider.localAuth,
	})

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods("GET")

	s.router = r
	return nil
}

func (s *Server) Start(ctx context.Context) {
	// Set up server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	s.srv = srv

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

}

func (s *Server) Stop() {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
	}
}
