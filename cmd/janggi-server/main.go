package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2889", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	enginePath := flag.String("engine", "", "path to UCI engine binary (empty disables ai endpoints)")
	movetime := flag.Int("movetime", 3, "default engine time budget in seconds")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	mgr := game.NewManager(logger)
	h := httpserver.NewHandler(mgr, httpserver.Config{
		EnginePath:  *enginePath,
		MoveTimeSec: *movetime,
	}, logger)

	app := fiber.New()
	h.Register(app)
	app.Static("/", *webDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", *addr), zap.String("web", *webDir))
		return app.Listen(*addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		if err := mgr.CloseAll(); err != nil {
			logger.Warn("close sessions", zap.Error(err))
		}
		return app.Shutdown()
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
