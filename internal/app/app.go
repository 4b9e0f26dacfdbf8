package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/calendar"
	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/config"
	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/store"
	"github.com/yuldashevrozali/Ramazon-taqvimi/internal/telegram"
)

type App struct {
	cfg     config.Config
	log     *zap.Logger
	bot     *tgbotapi.BotAPI
	httpSrv *http.Server
	router  *telegram.Router
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}
	bot.Debug = false

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return &App{cfg: cfg, log: log, bot: bot, httpSrv: srv}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting ramazon-taqvimi bot",
		zap.String("calendar", a.cfg.CalendarPath),
		zap.String("users", a.cfg.UsersPath),
		zap.String("http", a.cfg.HTTPAddr),
	)

	// The calendar is required; the bot cannot run without it.
	cal, err := calendar.Load(a.cfg.CalendarPath)
	if err != nil {
		a.log.Error("load calendar failed", zap.Error(err))
		return err
	}
	a.log.Info("calendar ready")

	repo := store.NewJSONRepo(a.cfg.UsersPath)
	a.router = telegram.NewRouter(a.bot, a.log, repo, cal, a.cfg.AdminID)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", zap.Error(err))
		}
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("shutdown signal received")
			a.bot.StopReceivingUpdates()

			shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err := a.httpSrv.Shutdown(shCtx)
			cancel()

			if err != nil {
				a.log.Warn("http server shutdown error", zap.Error(err))
			}
			return nil

		case upd := <-updCh:
			a.router.HandleUpdate(upd)
		}
	}
}
