package tui

import (
	"fmt"

	"courselookup/pkg/catalog"

	"github.com/charmbracelet/huh"
)

// PickCourse shows a select of every course and returns the
// one chosen. Aborting the form returns huh.ErrUserAborted.
func PickCourse(cat *catalog.Catalog, theme Theme) (catalog.Course, error) {
	var code string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which course are you looking for?").
				Description("Press / to filter, Enter to confirm.").
				Options(courseOptions(cat)...).
				Value(&code),
		),
	).WithTheme(theme.Form())

	if err := form.Run(); err != nil {
		return catalog.Course{}, err
	}

	return cat.Lookup(code)
}

func courseOptions(cat *catalog.Catalog) []huh.Option[string] {
	courses := cat.Courses()
	options := make([]huh.Option[string], 0, len(courses))
	for _, c := range courses {
		label := fmt.Sprintf("%s  %s, %s (room %s)", c.Code, c.Instructor, c.Time, c.Room)
		options = append(options, huh.NewOption(label, c.Code))
	}
	return options
}
