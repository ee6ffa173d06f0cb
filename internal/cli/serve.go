package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/frenchie/internal/notify"
	"github.com/example/frenchie/internal/scheduler"
	"github.com/example/frenchie/internal/storage"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the reminder daemon",
	Long: `Checks every hour for learners with due cards and sends each of them a
Telegram reminder once a day, within the configured notification hours.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		cfg := a.Config
		if !cfg.RemindersEnabled() {
			return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
		}
		if a.DB == nil {
			return fmt.Errorf("reminders need a database, not --memory")
		}

		notifier, err := notify.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		source := scheduler.NewDatabaseSource(a.DB, a.Catalog, storage.Options{
			LoadTimeout: cfg.LoadTimeout,
			SaveTimeout: cfg.SaveTimeout,
		})
		s := scheduler.New(notifier, source, scheduler.Settings{
			ReminderHour:          cfg.ReminderHour,
			NotificationStartHour: cfg.NotificationStartHour,
			NotificationEndHour:   cfg.NotificationEndHour,
			Location:              loc,
		})
		if err := s.Start(); err != nil {
			return fmt.Errorf("starting scheduler: %w", err)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		log.Println("Reminder daemon started. Press Ctrl+C to stop.")
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		s.Stop()
		log.Println("Reminder daemon stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
