package cmd

import (
	"errors"
	"fmt"

	"courselookup/pkg/catalog"
	"courselookup/pkg/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showCmd = &cobra.Command{
	Use:   "show CODE...",
	Short: "Look up one or more courses without prompting",
	Long:  `Print the record for each course code given. Exits non-zero if any code is unknown.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		cat := catalog.Default()
		theme := tui.NewTheme(appCfg)
		out := cmd.OutOrStdout()

		missing := 0
		for _, arg := range args {
			course, err := cat.Lookup(arg)

			var nf *catalog.NotFoundError
			if errors.As(err, &nf) {
				log.Debug("course not found", zap.String("input", arg))
				fmt.Fprintln(out, theme.Error(cat.NotFoundMessage(nf)))
				missing++
				continue
			}
			if err != nil {
				return err
			}

			fmt.Fprint(out, catalog.Render(course))
		}

		if missing > 0 {
			return fmt.Errorf("%d of %d course(s) not found", missing, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
