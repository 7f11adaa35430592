package cli

import (
	"fmt"
	"time"

	"github.com/davarch/hw-watcher/internal/application"
	"github.com/davarch/hw-watcher/internal/infrastructure/config"
	"github.com/davarch/hw-watcher/internal/infrastructure/practicum_http"
	"github.com/davarch/hw-watcher/internal/infrastructure/telegram_bot"
	"github.com/spf13/cobra"
)

var (
	statusSince time.Duration
	statusSend  bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the latest review status once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg config.Config
			err error
		)
		if statusSend {
			cfg, err = config.Load(cfgPath, envPath)
		} else {
			cfg, err = loadForQuery()
		}
		if err != nil {
			return err
		}

		api := practicum_http.New(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)
		from := time.Now().Add(-statusSince).Unix()

		if statusSend {
			bot, err := telegram_bot.New(cfg.Telegram.Token, cfg.Telegram.APIURL)
			if err != nil {
				return err
			}
			uc := application.NewPollUseCase(api, bot, cfg.Telegram.ChatID, from)
			if err := uc.PollOnce(cmd.Context()); err != nil {
				return err
			}
			if uc.LastMessage() == "" {
				fmt.Println("nothing to report")
				return nil
			}
			fmt.Printf("sent: %s\n", uc.LastMessage())
			return nil
		}

		raw, err := api.HomeworkStatuses(cmd.Context(), from)
		if err != nil {
			return err
		}
		text, err := application.LatestMessage(raw)
		if err != nil {
			return err
		}
		if text == "" {
			fmt.Println("nothing to report")
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	statusCmd.Flags().DurationVar(&statusSince, "since", 30*24*time.Hour, "how far back to look")
	statusCmd.Flags().BoolVar(&statusSend, "send", false, "also deliver the message to the Telegram chat")

	rootCmd.AddCommand(statusCmd)
}
