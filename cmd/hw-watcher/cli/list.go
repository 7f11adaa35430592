package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/davarch/hw-watcher/internal/application"
	"github.com/davarch/hw-watcher/internal/domain"
	"github.com/davarch/hw-watcher/internal/infrastructure/config"
	"github.com/davarch/hw-watcher/internal/infrastructure/practicum_http"
	"github.com/spf13/cobra"
)

var (
	listSince time.Duration
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List homeworks reviewed within --since",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadForQuery()
		if err != nil {
			return err
		}

		api := practicum_http.New(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)
		raw, err := api.HomeworkStatuses(cmd.Context(), time.Now().Add(-listSince).Unix())
		if err != nil {
			return err
		}

		items, err := application.DecodeHomeworks(raw)
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "NAME\tSTATUS\tUPDATED\tLESSON")
		for _, h := range items {
			name := h.Name
			if name == "" {
				name = "(unnamed)"
			}
			st := string(h.Status)
			if !h.Status.Known() {
				st += " (?)"
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, st, h.DateUpdated, h.LessonName)
		}
		_ = w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().DurationVar(&listSince, "since", 30*24*time.Hour, "how far back to look")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print JSON")

	listCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if listSince < 0 {
			return fmt.Errorf("--since must not be negative")
		}
		return nil
	}

	rootCmd.AddCommand(listCmd)
}

// loadForQuery accepts a config without Telegram credentials: read-only
// commands only talk to the review API.
func loadForQuery() (config.Config, error) {
	cfg, err := config.Load(cfgPath, envPath)

	var ce *domain.ConfigError
	if errors.As(err, &ce) && cfg.Practicum.Token != "" {
		return cfg, nil
	}
	return cfg, err
}
