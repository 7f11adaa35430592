package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/davarch/hw-watcher/internal/application"
	"github.com/davarch/hw-watcher/internal/infrastructure/config"
	"github.com/davarch/hw-watcher/internal/infrastructure/logging"
	"github.com/davarch/hw-watcher/internal/infrastructure/practicum_http"
	"github.com/davarch/hw-watcher/internal/infrastructure/telegram_bot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Poll review statuses and notify on change",
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer func() { _ = log.Sync() }()

		cfg, err := config.Load(cfgPath, envPath)
		if err != nil {
			log.Fatal("config", zap.Error(err))
		}

		api := practicum_http.New(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)
		bot, err := telegram_bot.New(cfg.Telegram.Token, cfg.Telegram.APIURL)
		if err != nil {
			log.Fatal("telegram", zap.Error(err))
		}

		from := time.Now().Add(-cfg.Poll.Lookback).Unix()
		uc := application.NewPollUseCase(api, bot, cfg.Telegram.ChatID, from)
		sched := application.NewScheduler(log, uc, backoff.NewConstantBackOff(cfg.Poll.Interval), cfg.Poll.PauseFile)

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		log.Info("start",
			zap.String("version", version),
			zap.String("endpoint", cfg.Practicum.Endpoint),
			zap.Int64("from_date", from),
			zap.Duration("every", cfg.Poll.Interval),
			zap.Duration("request_timeout", cfg.Practicum.Timeout),
			zap.String("pause_file", cfg.Poll.PauseFile),
		)
		sched.Run(ctx)
		log.Info("stopped")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
