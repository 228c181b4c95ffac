package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
	resultfeed "github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/ui"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the interactive game until the player quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, stdout io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := notifyContext(log)
	defer cancel()

	engine, err := tictactoe.NewEngine(conf.GridSize)
	if err != nil {
		return fmt.Errorf("could not create game engine: %w", err)
	}

	var session *usecase.GameSession
	if conf.Redis.Enabled {
		redisStorage, err := openRedis(ctx, conf)
		if err != nil {
			return err
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		feed, err := resultfeed.New(redisStorage.Connection, conf.Redis.Channel, conf.Redis.PublishTimeout)
		if err != nil {
			return fmt.Errorf("could not create result feed: %w", err)
		}

		log.Info("Publishing round results", "channel", conf.Redis.Channel)
		session = usecase.NewGameSession(logger, engine, feed)
	} else {
		session = usecase.NewGameSession(logger, engine, nil)
	}

	app := tview.NewApplication()
	gameUI := ui.New(ctx, logger, app, session)

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	log.Info("Starting game", "sessionID", session.ID(), "gridSize", conf.GridSize)

	if err = app.SetRoot(gameUI.Root(), true).Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	snapshot := session.Snapshot()
	log.Info("Game closed", "rounds", snapshot.Round, "score", snapshot.Score)

	ui.NewPrinter(termenv.NewOutput(stdout)).Summary(snapshot)

	return nil
}

// RunWatch - prints round results from the Redis feed until a signal arrives.
func RunWatch(logger *slog.Logger, conf *config.Config, stdout io.Writer) error {
	log := logger.With("component", "watch")

	ctx, cancel := notifyContext(log)
	defer cancel()

	redisStorage, err := openRedis(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	feed, err := resultfeed.New(redisStorage.Connection, conf.Redis.Channel, conf.Redis.PublishTimeout)
	if err != nil {
		return fmt.Errorf("could not create result feed: %w", err)
	}

	sub := feed.Subscribe(ctx)
	defer sub.Close()

	if _, err = sub.Receive(ctx); err != nil {
		return fmt.Errorf("could not subscribe to %s: %w", conf.Redis.Channel, err)
	}

	log.Info("Watching round results", "channel", conf.Redis.Channel)
	printer := ui.NewPrinter(termenv.NewOutput(stdout))
	messages := sub.Channel()

	for {
		select {
		case <-ctx.Done():
			log.Info("Watch context canceled, shutting down")
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			result, err := resultfeed.DecodeResult(msg)
			if err != nil {
				log.Error("skipping malformed result", "error", err)
				continue
			}

			printer.Result(result)
		}
	}
}

func openRedis(ctx context.Context, conf *config.Config) (*storage.RedisStorage, error) {
	redisAddrString := conf.Redis.GetRedisAddr()
	if conf.Redis.Host == "" {
		return nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return redisStorage, nil
}

// notifyContext - returns a context canceled on SIGINT or SIGTERM.
func notifyContext(log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigs)
	}()

	return ctx, cancel
}
