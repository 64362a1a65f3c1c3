package catalog

import (
	"fmt"
	"strings"
)

// labelWidth is the column at which every value starts.
const labelWidth = len("Instructor:  ")

// Render returns the multi-line block printed for a resolved course.
func Render(c Course) string {
	var b strings.Builder
	b.WriteString("\n")
	writeField(&b, "Course:", c.Code)
	writeField(&b, "Room:", c.Room)
	writeField(&b, "Instructor:", c.Instructor)
	writeField(&b, "Meeting:", c.Time)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label, value)
}
