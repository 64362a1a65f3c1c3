package catalog

// Course is one row of the reference table, keyed by its canonical code.
type Course struct {
	Code       string `csv:"course"`
	Room       string `csv:"room"`
	Instructor string `csv:"instructor"`
	Time       string `csv:"meeting"` // "8:00 a.m."
}
