package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is an immutable, validated set of course records.
type Catalog struct {
	courses map[string]Course
	codes   []string // sorted
}

// Normalize trims surrounding whitespace and upper-cases raw into the
// canonical course code form. Empty input yields "".
func Normalize(raw string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(raw))
}

// New builds a Catalog from three parallel tables keyed by course code.
// The tables must have identical key sets and every key must already be
// in canonical form.
func New(rooms, instructors, times map[string]string) (*Catalog, error) {
	var problems []string
	problems = append(problems, missingKeys("instructors", rooms, instructors)...)
	problems = append(problems, missingKeys("times", rooms, times)...)
	problems = append(problems, missingKeys("rooms", instructors, rooms)...)
	problems = append(problems, missingKeys("rooms", times, rooms)...)

	for code := range rooms {
		if Normalize(code) != code {
			problems = append(problems, fmt.Sprintf("code %q is not canonical", code))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("invalid course tables: %s", strings.Join(dedupe(problems), "; "))
	}

	cat := &Catalog{
		courses: make(map[string]Course, len(rooms)),
		codes:   make([]string, 0, len(rooms)),
	}
	for code, room := range rooms {
		cat.courses[code] = Course{
			Code:       code,
			Room:       room,
			Instructor: instructors[code],
			Time:       times[code],
		}
		cat.codes = append(cat.codes, code)
	}
	sort.Strings(cat.codes)

	return cat, nil
}

// Default returns the catalog built from the compiled-in reference tables.
// It panics if those tables disagree, since that can only be a source edit gone wrong.
func Default() *Catalog {
	cat, err := New(courseRooms, courseInstructors, courseTimes)
	if err != nil {
		panic(err)
	}
	return cat
}

// Lookup normalizes raw and returns the matching course, or a
// *NotFoundError carrying raw unchanged.
func (c *Catalog) Lookup(raw string) (Course, error) {
	course, ok := c.courses[Normalize(raw)]
	if !ok {
		return Course{}, &NotFoundError{Input: raw}
	}
	return course, nil
}

// Codes returns every valid course code in ascending order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Courses returns every record ordered by code.
func (c *Catalog) Courses() []Course {
	out := make([]Course, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, c.courses[code])
	}
	return out
}

// Suggestions is the comma-joined list of valid codes shown after a miss.
func (c *Catalog) Suggestions() string {
	return strings.Join(c.codes, ", ")
}

// NotFoundMessage is the corrective line shown to the user after a miss.
func (c *Catalog) NotFoundMessage(nf *NotFoundError) string {
	return fmt.Sprintf("%s. Please try one of: %s", nf.Error(), c.Suggestions())
}

// missingKeys reports codes present in from but absent in to.
func missingKeys(name string, from, to map[string]string) []string {
	var out []string
	for code := range from {
		if _, ok := to[code]; !ok {
			out = append(out, fmt.Sprintf("%s missing %s", name, code))
		}
	}
	return out
}

func dedupe(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for i, s := range sorted {
		if i > 0 && s == sorted[i-1] {
			continue
		}
		out = append(out, s)
	}
	return out
}
