package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/visamate/visa-helper-backend/dto"
)

const maxAddressLength = 200

// knownCountries is the closed set of recognized country names. Captures
// for nationality and destination are only accepted when they contain one
// of these values.
var knownCountries = []string{
	"UNITED STATES", "CANADA", "UNITED KINGDOM", "FRANCE", "GERMANY",
	"ITALY", "SPAIN", "JAPAN", "CHINA", "INDIA", "AUSTRALIA", "BRAZIL",
	"MEXICO", "RUSSIA", "SOUTH AFRICA", "NIGERIA", "EGYPT", "THAILAND",
	"SINGAPORE", "MALAYSIA", "PHILIPPINES", "INDONESIA", "VIETNAM",
}

// knownPurposes is the closed set of recognized travel purposes.
var knownPurposes = []string{
	"TOURISM", "BUSINESS", "EDUCATION", "MEDICAL", "FAMILY", "TRANSIT",
}

// fieldPatterns is an ordered candidate list for one field. Patterns are
// evaluated in priority order against the upper-cased text; the order is
// part of the behavior and must not be reshuffled. A non-nil vocab turns
// the field into a closed-vocabulary one: the capture is cross-referenced
// by substring containment and only a known value is accepted.
type fieldPatterns struct {
	patterns []*regexp.Regexp
	vocab    []string
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

const (
	dateValue     = `([0-9]{1,4}[/\-.][0-9]{1,2}[/\-.][0-9]{1,4})`
	passportValue = `([A-Z]{0,2}[0-9]{4,12})`
)

var (
	nationalityField = fieldPatterns{
		patterns: compilePatterns(
			`NATIONALITY[:\s]+([A-Z\s]+)`,
			`COUNTRY[:\s]+([A-Z\s]+)`,
			`ISSUED BY[:\s]+([A-Z\s]+)`,
		),
		vocab: knownCountries,
	}

	destinationField = fieldPatterns{
		patterns: compilePatterns(
			`DESTINATION[:\s]+([A-Z\s]+)`,
			`VISITING[:\s]+([A-Z\s]+)`,
			`TRAVEL TO[:\s]+([A-Z\s]+)`,
		),
		vocab: knownCountries,
	}

	purposeField = fieldPatterns{
		patterns: compilePatterns(
			`PURPOSE[:\s]+([A-Z\s]+)`,
			`REASON[:\s]+([A-Z\s]+)`,
			`TYPE OF VISIT[:\s]+([A-Z\s]+)`,
		),
		vocab: knownPurposes,
	}

	// The bare NAME label is deliberately first: it is the broadest and
	// wins over the more specific labels when both appear.
	fullNameField = fieldPatterns{
		patterns: compilePatterns(
			`\bNAME[:\s]+([A-Z][A-Z ]*)`,
			`\bFULL NAME[:\s]+([A-Z][A-Z ]*)`,
			`\bGIVEN NAME[:\s]+([A-Z][A-Z ]*)`,
			`\bSURNAME[:\s]+([A-Z][A-Z ]*)`,
		),
	}

	passportField = fieldPatterns{
		patterns: compilePatterns(
			`\bPASSPORT[:\s]+`+passportValue,
			`\bPASSPORT NO\.?[:\s]*`+passportValue,
			`\bDOCUMENT NO\.?[:\s]*`+passportValue,
			`\bPASSPORT NUMBER[:\s]*`+passportValue,
		),
	}

	// Birth and expiry values are kept as raw strings, not calendar-validated.
	dateOfBirthField = fieldPatterns{
		patterns: compilePatterns(
			`\bDATE OF BIRTH[:\s]+`+dateValue,
			`\bDOB[:\s]+`+dateValue,
			`\bBIRTH[:\s]+`+dateValue,
			`\bBORN[:\s]+`+dateValue,
		),
	}

	expiryField = fieldPatterns{
		patterns: compilePatterns(
			`\bEXPIRY[:\s]+`+dateValue,
			`\bEXPIRES[:\s]+`+dateValue,
			`\bVALID UNTIL[:\s]+`+dateValue,
			`\bEXP\.?[:\s]+`+dateValue,
		),
	}

	addressField = fieldPatterns{
		patterns: compilePatterns(
			`\bADDRESS[:\s]+([^\n]+)`,
			`\bRESIDENCE[:\s]+([^\n]+)`,
			`\bHOME ADDRESS[:\s]+([^\n]+)`,
		),
	}

	balancePatterns = compilePatterns(
		`\bBALANCE[^0-9\n]*HKD[\s:$]*([0-9][0-9,]*)`,
		`\bHKD[\s:$]*([0-9][0-9,]*)`,
		`([0-9][0-9,]*)\s*HKD`,
		`\bCURRENT BALANCE[^0-9\n]*([0-9][0-9,]*)`,
		`\bACCOUNT BALANCE[^0-9\n]*([0-9][0-9,]*)`,
	)

	mrzLineRegex = regexp.MustCompile(`^[A-Z0-9<]{44}$`)
)

// ParseDocumentText recovers structured trip fields from raw extracted
// text. Parsing is best effort and pure: unmatched fields keep their zero
// values, unknown text is ignored, and the same input always yields the
// same output. Total absence of every field is a valid result.
func ParseDocumentText(text string) *dto.ParsedFields {
	upper := strings.ToUpper(text)

	fields := &dto.ParsedFields{
		Nationality:    matchClosedVocab(upper, nationalityField),
		Destination:    matchClosedVocab(upper, destinationField),
		Purpose:        matchClosedVocab(upper, purposeField),
		FullName:       matchFreeText(upper, fullNameField),
		PassportNumber: matchFreeText(upper, passportField),
		DateOfBirth:    matchFreeText(upper, dateOfBirthField),
		Expiry:         matchFreeText(upper, expiryField),
		Address:        truncate(matchFreeText(upper, addressField), maxAddressLength),
		BankBalanceHKD: extractBankBalance(upper),
		MRZ:            extractMRZ(upper),
	}

	fields.DepartureDate, fields.ArrivalDate = ExtractTravelDates(text)
	return fields
}

// matchClosedVocab tries the patterns in priority order. A pattern match
// alone does not set the field: the capture must contain a known vocab
// value. On a vocab miss the remaining patterns are still tried.
func matchClosedVocab(upper string, f fieldPatterns) string {
	for _, re := range f.patterns {
		m := re.FindStringSubmatch(upper)
		if len(m) < 2 {
			continue
		}
		captured := strings.TrimSpace(m[1])
		for _, known := range f.vocab {
			if strings.Contains(captured, known) {
				return known
			}
		}
	}
	return ""
}

// matchFreeText returns the trimmed capture of the first matching pattern.
func matchFreeText(upper string, f fieldPatterns) string {
	for _, re := range f.patterns {
		if m := re.FindStringSubmatch(upper); len(m) > 1 {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractBankBalance parses the first matching balance capture with
// thousands separators stripped. An unparseable capture is silently
// dropped, leaving the default 0.
func extractBankBalance(upper string) int64 {
	for _, re := range balancePatterns {
		m := re.FindStringSubmatch(upper)
		if len(m) < 2 {
			continue
		}
		amountStr := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseInt(amountStr, 10, 64)
		if err != nil {
			return 0
		}
		return amount
	}
	return 0
}

// extractMRZ collects up to the first two 44-character machine-readable-zone
// lines in document order, joined with a line break. A TD3 passport MRZ is
// exactly two such lines; anything past the second is ignored.
func extractMRZ(upper string) string {
	var lines []string
	for _, line := range strings.Split(upper, "\n") {
		line = strings.TrimSpace(line)
		if !mrzLineRegex.MatchString(line) {
			continue
		}
		lines = append(lines, line)
		if len(lines) == 2 {
			break
		}
	}
	return strings.Join(lines, "\n")
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
