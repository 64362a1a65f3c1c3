package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"courselookup/pkg/catalog"
	"courselookup/pkg/config"
	"courselookup/pkg/logger"
	"courselookup/pkg/session"
	"courselookup/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var appCfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "courselookup",
	Short: "Look up a course's room, instructor and meeting time",
	Long: `courselookup prompts for course codes such as CSC101 or NET110 and prints
where and when the course meets and who teaches it. Press ENTER on an empty
prompt to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return appCfg.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cat := catalog.Default()
		log.Debug("catalog loaded", zap.Strings("codes", cat.Codes()))

		s := session.New(cat, cmd.InOrStdin(), cmd.OutOrStdout(),
			session.WithTheme(tui.NewTheme(appCfg)),
			session.WithLogger(log),
		)
		return s.Run(ctx)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	log, err := logger.New(appCfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("could not set up logging: %w", err)
	}
	return log, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&appCfg.AccentColor, "accent", config.DefaultAccentColor, "Accent color (ANSI 0-255 or #RRGGBB)")
	rootCmd.PersistentFlags().BoolVar(&appCfg.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&appCfg.Debug, "debug", false, "Log lookups to stderr")
}
