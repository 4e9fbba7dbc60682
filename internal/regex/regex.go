package regex

import "regexp"

var (
	// Ticket identifier patterns
	TicketID = regexp.MustCompile(`^[0-9]{8}$`)

	// Coordinator extraction: name followed by a parenthesized identifier
	ParenContent = regexp.MustCompile(`\(([^)]*)\)`)

	// Reviewer signature compression
	LowercaseRun = regexp.MustCompile(`[a-z]\S*`)
	InitialSlash = regexp.MustCompile(`\b([A-Z])/\S*`)

	// Summary tokens
	DateCompleted = regexp.MustCompile(`Date:\s(\S+)`)
)
