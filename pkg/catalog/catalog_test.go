package catalog

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" csc101 ", "CSC101"},
		{"net110", "NET110"},
		{"\tCom241\n", "COM241"},
		{"", ""},
		{"   ", ""},
		{"a b", "A B"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", " ", "csc101", "  Net110  ", "straße", "ﬁx", "İstanbul", " x ", "zzz999"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestLookupHit(t *testing.T) {
	cat := Default()

	got, err := cat.Lookup("CSC101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Course{Code: "CSC101", Room: "3004", Instructor: "Haynes", Time: "8:00 a.m."}
	if got != want {
		t.Errorf("Lookup(CSC101) = %+v, want %+v", got, want)
	}

	// Case and surrounding whitespace do not matter
	got, err = cat.Lookup("  com241 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Code != "COM241" || got.Instructor != "Lee" || got.Time != "1:00 p.m." {
		t.Errorf("unexpected record for com241: %+v", got)
	}
}

func TestLookupMiss(t *testing.T) {
	cat := Default()

	_, err := cat.Lookup("zzz999")
	if err == nil {
		t.Fatal("expected an error for unknown course, got nil")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.Input != "zzz999" {
		t.Errorf("expected original input %q, got %q", "zzz999", nf.Input)
	}
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("expected errors.Is(err, ErrCourseNotFound) to hold")
	}
	if err.Error() != "Unknown course: 'zzz999'" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	// The raw input is kept as typed, not normalized
	_, err = cat.Lookup(" abc ")
	if !errors.As(err, &nf) || nf.Input != " abc " {
		t.Errorf("expected raw input ' abc ' to be preserved, got %v", err)
	}
}

func TestRender(t *testing.T) {
	cat := Default()
	course, err := cat.Lookup("NET110")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := Render(course)
	for _, want := range []string{"Burke", "11:00 a.m.", "1244", "NET110"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered block to contain %q, got:\n%s", want, out)
		}
	}

	expected := "\n" +
		"Course:      NET110\n" +
		"Room:        1244\n" +
		"Instructor:  Burke\n" +
		"Meeting:     11:00 a.m.\n"
	if out != expected {
		t.Errorf("unexpected layout.\nGot: %q\nExpected: %q", out, expected)
	}
}

func TestCodesAndSuggestions(t *testing.T) {
	cat := Default()

	want := []string{"COM241", "CSC101", "CSC102", "CSC103", "NET110"}
	if got := cat.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
	if got := cat.Suggestions(); got != "COM241, CSC101, CSC102, CSC103, NET110" {
		t.Errorf("Suggestions() = %q", got)
	}

	// Callers must not be able to reorder the catalog
	codes := cat.Codes()
	codes[0] = "XXX000"
	if cat.Codes()[0] != "COM241" {
		t.Errorf("Codes() leaked internal slice")
	}

	courses := cat.Courses()
	if len(courses) != len(want) {
		t.Fatalf("expected %d courses, got %d", len(want), len(courses))
	}
	for i, c := range courses {
		if c.Code != want[i] {
			t.Errorf("Courses()[%d].Code = %s, want %s", i, c.Code, want[i])
		}
	}
}

func TestBuiltInTablesShareKeys(t *testing.T) {
	if _, err := New(courseRooms, courseInstructors, courseTimes); err != nil {
		t.Fatalf("built-in tables are inconsistent: %v", err)
	}
}

func TestNewRejectsMismatchedTables(t *testing.T) {
	rooms := map[string]string{"CSC101": "3004", "NET110": "1244"}
	instructors := map[string]string{"CSC101": "Haynes"}
	times := map[string]string{"CSC101": "8:00 a.m.", "NET110": "11:00 a.m.", "COM241": "1:00 p.m."}

	cat, err := New(rooms, instructors, times)
	if err == nil {
		t.Fatalf("expected error for mismatched tables, got catalog %+v", cat)
	}

	msg := err.Error()
	for _, want := range []string{"instructors missing NET110", "rooms missing COM241"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %s", want, msg)
		}
	}
}

func TestNewRejectsNonCanonicalKeys(t *testing.T) {
	rooms := map[string]string{"csc101": "3004"}
	instructors := map[string]string{"csc101": "Haynes"}
	times := map[string]string{"csc101": "8:00 a.m."}

	if _, err := New(rooms, instructors, times); err == nil {
		t.Fatal("expected error for lower-case key, got nil")
	}
}

func TestNotFoundMessage(t *testing.T) {
	cat := Default()
	msg := cat.NotFoundMessage(&NotFoundError{Input: "zzz999"})

	want := "Unknown course: 'zzz999'. Please try one of: COM241, CSC101, CSC102, CSC103, NET110"
	if msg != want {
		t.Errorf("NotFoundMessage() = %q, want %q", msg, want)
	}
}
