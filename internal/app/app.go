package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/inline-bot-layout/internal/avatar"
	"github.com/orgball2608/inline-bot-layout/internal/layout"
	"github.com/orgball2608/inline-bot-layout/internal/media"
	"github.com/orgball2608/inline-bot-layout/internal/parser"
	"github.com/orgball2608/inline-bot-layout/internal/parser/parserimpl"
	"github.com/orgball2608/inline-bot-layout/internal/ratelimit"
	"github.com/orgball2608/inline-bot-layout/internal/telegram"
	"github.com/orgball2608/inline-bot-layout/internal/telegram/telegramimpl"
	"github.com/orgball2608/inline-bot-layout/internal/ui"
	"github.com/orgball2608/inline-bot-layout/pkg/config"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			ui.NewLoop,
			fx.As(fx.Self()),
			fx.As(new(media.Dispatcher)),
		),
		ui.NewFrameScheduler,
		ui.NewLogOpener,
		newPalette,
		newFactory,
		newList,
		fx.Annotate(
			newBroadcaster,
			fx.As(new(media.Notifier)),
		),
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		newLimiter,
		media.NewLoader,
		newStore,
		fx.Annotate(
			parserimpl.New,
			fx.As(new(parser.Client)),
		),
	),
	fx.Invoke(run),
)

func newPalette(cfg *config.Config) (*avatar.Palette, error) {
	return avatar.New(cfg.Avatar.CacheSize)
}

func newFactory(frames *ui.FrameScheduler, opener *ui.LogOpener, palette *avatar.Palette) *layout.Factory {
	return layout.NewFactory(layout.Opts{
		Repainter: frames,
		Opener:    opener,
		Userpics:  palette,
	})
}

func newList(factory *layout.Factory, cfg *config.Config, log logger.Logger) *ui.List {
	return ui.NewList(factory, cfg.Results.ForceThumb, log)
}

func newBroadcaster(factory *layout.Factory, list *ui.List, log logger.Logger) *ui.Broadcaster {
	return ui.NewBroadcaster(factory.Registry(), list, log)
}

func newLimiter(cfg *config.Config) ratelimit.Limiter {
	return ratelimit.NewInMemoryLimiter(cfg.Loader.RequestsPerSecond, time.Second, cfg.Loader.Burst)
}

func newStore(loader *media.Loader) *media.Store {
	return media.NewStore(loader)
}

type runParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Logger    logger.Logger
	Config    *config.Config
	Loop      *ui.Loop
	Frames    *ui.FrameScheduler
	Factory   *layout.Factory
	List      *ui.List
	Parser    parser.Client
	Loader    *media.Loader
}

func run(p runParams) {
	var (
		cancel    context.CancelFunc
		scheduler gocron.Scheduler
		server    *http.Server
	)
	diag := &diagnostics{
		logger:  p.Logger.WithComponent("http"),
		loop:    p.Loop,
		factory: p.Factory,
		list:    p.List,
		frames:  p.Frames,
		parser:  p.Parser,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var loopCtx context.Context
			loopCtx, cancel = context.WithCancel(context.Background())

			p.Frames.OnFrame(func(f ui.Frame) {
				p.Logger.Debug("Repainted items", "frame", f.Seq, "items", len(f.Items))
			})
			go p.Loop.Run(loopCtx)

			if err := loadFeed(ctx, p); err != nil {
				p.Logger.Error("Failed to load results feed", "Error", err)
				return err
			}

			var err error
			scheduler, err = startAudit(p.Config, p.Logger, diag)
			if err != nil {
				return err
			}

			server = &http.Server{
				Addr:              fmt.Sprintf(":%d", p.Config.App.Port),
				Handler:           diag.routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			go startHttpServer(p.Logger, server)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := p.Loop.Call(ctx, p.List.Clear); err != nil {
				p.Logger.Warn("Failed to clear result list", "Error", err)
			}
			if scheduler != nil {
				if err := scheduler.Shutdown(); err != nil {
					p.Logger.Error("Failed to shut down audit scheduler", "Error", err)
				}
			}
			if server != nil {
				if err := server.Shutdown(ctx); err != nil {
					p.Logger.Error("Failed to shut down http server", "Error", err)
				}
			}
			if cancel != nil {
				cancel()
			}
			p.Loop.Stop()
			p.Loader.Close()
			return nil
		},
	})
}

// loadFeed shows the configured results file. A missing file starts the
// service with an empty list.
func loadFeed(ctx context.Context, p runParams) error {
	data, err := os.ReadFile(p.Config.Results.FeedPath)
	if errors.Is(err, os.ErrNotExist) {
		p.Logger.Warn("Results feed not found, starting empty", "path", p.Config.Results.FeedPath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read results feed: %w", err)
	}

	shown, err := replaceResults(ctx, p.Loop, p.Parser, p.List, data)
	if err != nil {
		return err
	}
	p.Logger.Info("Results feed loaded", "path", p.Config.Results.FeedPath, "items", shown)
	return nil
}

// replaceResults parses data and swaps the list contents on the loop.
func replaceResults(ctx context.Context, loop *ui.Loop, pc parser.Client, list *ui.List, data []byte) (int, error) {
	var (
		shown    int
		parseErr error
	)
	err := loop.Call(ctx, func() {
		results, err := pc.ParseResults(data)
		if err != nil {
			parseErr = err
			return
		}
		shown = list.Replace(results)
	})
	if err != nil {
		return 0, err
	}
	return shown, parseErr
}

func startHttpServer(log logger.Logger, server *http.Server) {
	log.Info(fmt.Sprintf("Starting server on %s", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Server failed to start", "Error", err)
	}
}
