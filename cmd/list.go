package cmd

import (
	"fmt"
	"io"

	"courselookup/pkg/catalog"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every known course",
	Long:  `Print all courses ordered by code, either as a table or as CSV.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return writeCourseList(cmd.OutOrStdout(), catalog.Default().Courses(), format)
	},
}

func writeCourseList(w io.Writer, courses []catalog.Course, format string) error {
	switch format {
	case "table":
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Course", "Room", "Instructor", "Meeting"})
		for _, c := range courses {
			table.Append([]string{c.Code, c.Room, c.Instructor, c.Time})
		}
		table.Render()
		return nil

	case "csv":
		data, err := gocsv.MarshalString(&courses)
		if err != nil {
			return fmt.Errorf("failed to encode courses as CSV: %w", err)
		}
		_, err = io.WriteString(w, data)
		return err

	default:
		return fmt.Errorf("unknown format %q (want table or csv)", format)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("format", "f", "table", "Output format: table or csv")
}
