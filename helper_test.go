package finbook

// day is a test helper to build a Date from its standard representation.
func day(s string) Date { return MustParseDate(s) }
