package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.elastic.co/apm/module/apmgin"

	contentController "github.com/duelboard/duelboard/internal/api/controllers/content"
	contestController "github.com/duelboard/duelboard/internal/api/controllers/contest"
	rankingController "github.com/duelboard/duelboard/internal/api/controllers/ranking"
	stackController "github.com/duelboard/duelboard/internal/api/controllers/stack"
	voteController "github.com/duelboard/duelboard/internal/api/controllers/vote"
	"github.com/duelboard/duelboard/internal/config"
	"github.com/duelboard/duelboard/internal/domain/ranking"
	"github.com/duelboard/duelboard/internal/domain/stack"
	"github.com/duelboard/duelboard/internal/domain/vote"
	apmTracing "github.com/duelboard/duelboard/internal/infra/apm/tracing"
	cronVote "github.com/duelboard/duelboard/internal/infra/cron/vote"
	"github.com/duelboard/duelboard/internal/infra/elasticsearch/common"
	esContest "github.com/duelboard/duelboard/internal/infra/elasticsearch/contest"
	esContent "github.com/duelboard/duelboard/internal/infra/elasticsearch/content"
	esUser "github.com/duelboard/duelboard/internal/infra/elasticsearch/user"
	esVote "github.com/duelboard/duelboard/internal/infra/elasticsearch/vote"
	"github.com/duelboard/duelboard/internal/infra/server/binding/validation"
	"github.com/duelboard/duelboard/internal/infra/server/routing"
)

// Components holds the fully-wired application: the gin engine with all
// routes registered and the background jobs, ready to Run.
type Components struct {
	appConfig  *config.App
	ginEngine  *gin.Engine
	archiveJob *cronVote.ArchiveJob
}

func NewComponents(appConfig *config.App) (*Components, error) {
	esClient, err := common.NewClient(appConfig.Elasticsearch)
	if err != nil {
		return nil, err
	}

	if err := NewSetup(esClient).Check(context.Background()); err != nil {
		return nil, err
	}

	tracer := apmTracing.NewTracer()

	contentsService := esContent.NewService(esClient, appConfig.Rankings)
	usersService := esUser.NewService(esClient)
	contestsService := esContest.NewService(esClient)
	votesService := vote.NewService(contentsService, usersService, appConfig.Votes.Defaults)
	rankingsService := ranking.NewService(contentsService)
	stackService := stack.NewService(contentsService, appConfig.Stack)

	var archiveJob *cronVote.ArchiveJob
	if appConfig.Votes.Archive.Enabled {
		archiveJob = cronVote.NewArchiveJob(esVote.NewArchiver(esClient), appConfig.Votes.Archive, tracer)
	}

	validation.SetUpValidators()

	ginEngine := gin.New()
	ginEngine.Use(logger.SetLogger(), gin.Recovery())
	ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))
	ginEngine.Use(apmgin.Middleware(ginEngine))

	ginEngine.NoRoute(routing.NoRoute)
	ginEngine.NoMethod(routing.NoMethod)
	ginEngine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routesHandlers := []interface {
		RegisterRoutes(ginEngine *gin.Engine)
	}{
		&routing.ContentRoutesHandler{
			AuthSettings: appConfig.Auth,
			Controller:   contentController.New(contentsService, contestsService, usersService),
		},
		&routing.VotesRoutesHandler{
			AuthSettings: appConfig.Auth,
			Controller:   voteController.New(votesService),
		},
		&routing.RankingsRoutesHandler{
			AuthSettings: appConfig.Auth,
			Controller:   rankingController.New(rankingsService),
		},
		&routing.StackRoutesHandler{
			AuthSettings: appConfig.Auth,
			Controller:   stackController.New(stackService, usersService),
		},
		&routing.ContestRoutesHandler{
			AuthSettings: appConfig.Auth,
			Controller:   contestController.New(contestsService),
		},
	}
	for _, handler := range routesHandlers {
		handler.RegisterRoutes(ginEngine)
	}

	return &Components{
		appConfig:  appConfig,
		ginEngine:  ginEngine,
		archiveJob: archiveJob,
	}, nil
}

// Run serves the API, blocking until SIGINT or SIGTERM, then drains
// in-flight requests for at most ShutdownTimeout.
func (c *Components) Run() {
	if c.archiveJob != nil {
		if err := c.archiveJob.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start the vote event archive job")
		}
	}

	srv := &http.Server{
		Addr:    c.appConfig.BindAddress,
		Handler: c.ginEngine,
	}

	go func() {
		log.Info().Str("address", c.appConfig.BindAddress).Msg("Serving the API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down")

	if c.archiveJob != nil {
		c.archiveJob.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.appConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Forced to shut down")
	}
	log.Info().Msg("Bye")
}
