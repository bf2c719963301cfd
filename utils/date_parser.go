package utils

import (
	"regexp"
	"strings"
	"time"
)

// dateShapes are the recognized date shapes, scanned in this fixed order.
// Candidates accumulate shape by shape, left to right within a shape.
var dateShapes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{4}\b`),        // D/M/YYYY or M/D/YYYY
	regexp.MustCompile(`\b\d{4}[/-]\d{1,2}[/-]\d{1,2}\b`),        // YYYY/M/D
	regexp.MustCompile(`\b\d{1,2}\s+[A-Za-z]{3}\s+\d{4}\b`),      // D MMM YYYY
}

// dateLayouts are the format interpretations tried against each candidate,
// in order; the first layout that parses wins, so an ambiguous numeric date
// like 01/02/2024 always resolves day-first.
var dateLayouts = []string{
	"2/1/2006",
	"1/2/2006",
	"2006/1/2",
	"2 Jan 2006",
	"2 January 2006",
}

// labeledDateLine marks lines whose dates belong to a labeled field
// (date of birth, expiry) rather than to the travel itinerary.
var labeledDateLine = regexp.MustCompile(`(?i)\b(?:DATE OF BIRTH|DOB|BIRTH|BORN|EXPIRY|EXPIRES|VALID UNTIL|EXP)\b`)

// ExtractTravelDates scans raw text for date-like substrings and resolves
// them to calendar dates. The first successfully parsed candidate becomes
// the departure date and the second the arrival date; a candidate that
// parses under none of the layouts is dropped without consuming a slot.
// The assignment is positional, not semantic.
func ExtractTravelDates(text string) (departure, arrival *time.Time) {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if labeledDateLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	scanText := strings.Join(kept, "\n")

	var candidates []string
	for _, re := range dateShapes {
		candidates = append(candidates, re.FindAllString(scanText, -1)...)
	}

	var resolved []time.Time
	for _, candidate := range candidates {
		if len(resolved) == 2 {
			break
		}
		if t, ok := parseDateCandidate(candidate); ok {
			resolved = append(resolved, t)
		}
	}

	if len(resolved) >= 1 {
		departure = &resolved[0]
	}
	if len(resolved) >= 2 {
		arrival = &resolved[1]
	}
	return departure, arrival
}

func parseDateCandidate(candidate string) (time.Time, bool) {
	normalized := strings.ReplaceAll(candidate, "-", "/")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
