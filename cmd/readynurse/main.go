package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/readynurse/internal/cli"
	"github.com/alexanderramin/readynurse/internal/config"
	"github.com/alexanderramin/readynurse/internal/content"
	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/llm"
	"github.com/alexanderramin/readynurse/internal/logging"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/alexanderramin/readynurse/internal/service"
	"github.com/alexanderramin/readynurse/internal/storage"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Env, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	profileRepo := repository.NewSQLiteProfileRepo(database)
	deckRepo := repository.NewSQLiteDeckRepo(database)
	quizRepo := repository.NewSQLiteQuizRepo(database)
	resultRepo := repository.NewSQLiteResultRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)

	var leaderboardRepo repository.LeaderboardRepo = repository.NewSQLiteLeaderboardRepo(database)
	if cfg.Leaderboard.Backend == config.BackendRedis {
		client, err := repository.NewRedisClient(cfg.Leaderboard.RedisAddr, cfg.Leaderboard.RedisPassword, cfg.Leaderboard.RedisDB)
		if err != nil {
			return err
		}
		defer client.Close()
		leaderboardRepo = repository.NewRedisLeaderboardRepo(client, cfg.Leaderboard.KeyPrefix)
		log.Info("leaderboard backend: redis", zap.String("addr", cfg.Leaderboard.RedisAddr))
	}

	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewZapUseCaseObserver(log)

	// Content generation (only when the model is enabled)
	var (
		generator service.ContentGenerator
		games     cli.GameSources
	)
	if llmCfg := cfg.LLMConfig(); llmCfg.Enabled {
		var llmObserver llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			llmObserver = llm.NewZapObserver(log)
		}
		gen := content.NewGenerator(llm.NewOllamaClient(llmCfg, llmObserver), log)
		generator, games = gen, gen
	}

	// Avatar storage (only when an endpoint is configured)
	var avatars service.AvatarStore
	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3Client(cfg.Storage)
		if err != nil {
			return err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Warn("avatar bucket unavailable", zap.Error(err))
		} else {
			avatars = s3
		}
	}

	app := &cli.App{
		Profiles:    service.NewProfileService(profileRepo, avatars, observer),
		Shop:        service.NewShopService(profileRepo, uow, observer),
		Decks:       service.NewDeckService(deckRepo, uow, generator, observer),
		Quizzes:     service.NewQuizService(quizRepo, resultRepo, uow, generator, observer),
		Leaderboard: service.NewLeaderboardService(leaderboardRepo),
		Goals:       service.NewGoalService(goalRepo),
		Games:       games,
		Rewards:     service.NewRewardReporter(profileRepo, leaderboardRepo, log),
		UserID:      cfg.UserID,
		Log:         log,
	}

	// Detect interactive terminal for full-screen views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
