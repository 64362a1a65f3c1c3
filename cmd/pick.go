package cmd

import (
	"errors"
	"fmt"

	"courselookup/pkg/catalog"
	"courselookup/pkg/session"
	"courselookup/pkg/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a course from an interactive list",
	Long:  `Open a filterable menu of all courses and print the one you select.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := tui.NewTheme(appCfg)
		out := cmd.OutOrStdout()

		course, err := tui.PickCourse(catalog.Default(), theme)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, "\n"+theme.Accent(session.Interrupted))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprint(out, catalog.Render(course))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
