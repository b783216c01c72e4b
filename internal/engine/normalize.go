// Package engine implements the generic semi-structured record extraction
// engine. One Config per record kind (see internal/records) parameterizes a
// shared scan: labeled scalar fields are located by synonym + positional
// strategy, tabular blocks are detected and mapped by keyword scoring, and
// fallback chains fill whatever direct scanning could not resolve.
//
// Everything in this package is pure with respect to shared state: a Config
// is built once at startup and is safe to share across goroutines.
package engine

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Normalizer cleans one raw cell value into a typed value. The boolean is
// false when the value is absent or fails validation; callers never see a
// partially-cleaned result.
type Normalizer func(raw string) (string, bool)

var (
	reDate     = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)
	rePhoneLoc = regexp.MustCompile(`\b09\d{9}\b`)
	rePhoneIntl = regexp.MustCompile(`\+63\s?\d{10}\b`)
	reEmail    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	reCourse   = regexp.MustCompile(`\b[A-Z]{4,6}\b`)
	reDecimal  = regexp.MustCompile(`\d+(?:\.\d+)?`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reNameJunk = regexp.MustCompile(`[^A-Za-z .,'\-]`)
	reDigits   = regexp.MustCompile(`[0-9]`)
)

// govIDNoise are label words that show up inside ID cells ("SSS NO. 34-...").
var govIDNoise = []string{"SSS", "PHILHEALTH", "PHIC", "GSIS", "PAGIBIG", "PAG-IBIG", "NUMBER", "NO"}

// programCodes maps full program names to their short codes. Longest name
// wins so "…INFORMATION TECHNOLOGY" is never shadowed by a shorter entry.
var programCodes = map[string]string{
	"BACHELOR OF SCIENCE IN COMPUTER SCIENCE":          "BSCS",
	"BACHELOR OF SCIENCE IN INFORMATION TECHNOLOGY":    "BSIT",
	"BACHELOR OF SCIENCE IN INFORMATION SYSTEMS":       "BSIS",
	"BACHELOR OF SCIENCE IN OFFICE ADMINISTRATION":     "BSOA",
	"BACHELOR OF SCIENCE IN BUSINESS ADMINISTRATION":   "BSBA",
	"BACHELOR OF SCIENCE IN ACCOUNTANCY":               "BSA",
	"BACHELOR OF SCIENCE IN HOSPITALITY MANAGEMENT":    "BSHM",
	"BACHELOR OF SCIENCE IN TOURISM MANAGEMENT":        "BSTM",
	"BACHELOR OF SCIENCE IN CRIMINOLOGY":               "BSCRIM",
	"BACHELOR OF ELEMENTARY EDUCATION":                 "BEED",
	"BACHELOR OF SECONDARY EDUCATION":                  "BSED",
	"COMPUTER SCIENCE":                                 "BSCS",
	"INFORMATION TECHNOLOGY":                           "BSIT",
}

// programNamesByLength is programCodes' keys, longest first, so lookup is
// deterministic and the most specific name always wins.
var programNamesByLength = func() []string {
	names := make([]string, 0, len(programCodes))
	for name := range programCodes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}()

// NormalizeName keeps letters, spaces and name punctuation, collapses runs
// of whitespace, and title-cases the result. Results shorter than two
// characters are rejected.
func NormalizeName(raw string) (string, bool) {
	cleaned := reNameJunk.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(reSpaces.ReplaceAllString(cleaned, " "))
	cleaned = titleCase(cleaned)
	if len(cleaned) < 2 {
		return "", false
	}
	return cleaned, true
}

// NormalizeDate extracts the first D/M/Y-shaped substring, any of the three
// common separators, two- or four-digit year.
func NormalizeDate(raw string) (string, bool) {
	m := reDate.FindString(raw)
	if m == "" {
		return "", false
	}
	return m, true
}

// NormalizePhone extracts the first local 09XXXXXXXXX or +63-prefixed
// number; spaces inside the +63 form are dropped. Forms often hyphenate
// ("0917-123-4567"), so when neither pattern matches verbatim the digits
// alone are checked against the two shapes.
func NormalizePhone(raw string) (string, bool) {
	if m := rePhoneLoc.FindString(raw); m != "" {
		return m, true
	}
	if m := rePhoneIntl.FindString(raw); m != "" {
		return strings.ReplaceAll(m, " ", ""), true
	}
	digits := strings.Join(reDigits.FindAllString(raw, -1), "")
	if len(digits) == 11 && strings.HasPrefix(digits, "09") {
		return digits, true
	}
	if len(digits) == 12 && strings.HasPrefix(digits, "639") {
		return "+63" + digits[2:], true
	}
	return "", false
}

// NormalizeEmail extracts the first user@domain.tld substring, lowercased.
func NormalizeEmail(raw string) (string, bool) {
	m := reEmail.FindString(raw)
	if m == "" {
		return "", false
	}
	return strings.ToLower(m), true
}

// NormalizeGovID strips label noise and separators, then re-inserts the
// fixed separators when the digit count matches a known scheme: 10 digits
// for SSS (XX-XXXXXXX-X), 12 for PhilHealth (XX-XXXXXXXXX-X). Any other
// count of three or more digits is returned unformatted so a near-miss is
// still stored rather than silently dropped.
func NormalizeGovID(raw string) (string, bool) {
	upper := strings.ToUpper(raw)
	for _, w := range govIDNoise {
		upper = strings.ReplaceAll(upper, w, "")
	}
	digits := strings.Join(reDigits.FindAllString(upper, -1), "")
	switch len(digits) {
	case 10, 12:
		return fmt.Sprintf("%s-%s-%s", digits[:2], digits[2:len(digits)-1], digits[len(digits)-1:]), true
	default:
		if len(digits) >= 3 {
			return digits, true
		}
		return "", false
	}
}

// NormalizeProgram resolves a program cell to its short code: the known
// full-name dictionary first (most specific match wins), then a bare code
// pattern, then the cleaned text verbatim so later inference can still work
// on free text such as a department name.
func NormalizeProgram(raw string) (string, bool) {
	cleaned := strings.TrimSpace(reSpaces.ReplaceAllString(raw, " "))
	if cleaned == "" {
		return "", false
	}
	upper := strings.ToUpper(cleaned)
	for _, name := range programNamesByLength {
		if strings.Contains(upper, name) {
			return programCodes[name], true
		}
	}
	if m := reCourse.FindString(upper); m != "" {
		return m, true
	}
	return cleaned, true
}

// NormalizeYearLevel extracts the first digit 1-4.
func NormalizeYearLevel(raw string) (string, bool) {
	for _, r := range raw {
		if r >= '1' && r <= '4' {
			return string(r), true
		}
	}
	return "", false
}

// NormalizeSection prefers a standalone single-letter token ("2 - A" does
// the right thing); otherwise the first character of the cleaned text,
// uppercased. Best-effort by design: "2A" yields "2".
func NormalizeSection(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}
	for _, tok := range strings.FieldsFunc(cleaned, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(tok) == 1 && tok[0] >= 'A' && tok[0] <= 'Z' {
			return tok, true
		}
	}
	return strings.ToUpper(cleaned[:1]), true
}

// NormalizeTime passes clock text through untouched and converts bare
// decimals as Excel fraction-of-a-day serials into 12-hour clock text.
func NormalizeTime(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	if strings.Contains(trimmed, ":") {
		return trimmed, true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || f < 0 || f >= 1 {
		return "", false
	}
	return clockFromMinutes(int(math.Round(f * 24 * 60))), true
}

// NormalizeText collapses whitespace and rejects empty values. Used for
// free-text fields (address, position, semester, school year).
func NormalizeText(raw string) (string, bool) {
	cleaned := strings.TrimSpace(reSpaces.ReplaceAllString(raw, " "))
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// NormalizeDecimal extracts the first unsigned decimal number (units,
// grade values).
func NormalizeDecimal(raw string) (string, bool) {
	m := reDecimal.FindString(raw)
	if m == "" {
		return "", false
	}
	return m, true
}

// clockFromMinutes renders minutes-since-midnight as H:MM AM/PM.
func clockFromMinutes(minutes int) string {
	minutes %= 24 * 60
	h := minutes / 60
	m := minutes % 60
	suffix := "AM"
	switch {
	case h == 0:
		h = 12
	case h == 12:
		suffix = "PM"
	case h > 12:
		h -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, m, suffix)
}

// titleCase uppercases the first letter of every word-ish run and lowercases
// the rest, preserving punctuation ("MA. TERESA DELA CRUZ-SANTOS" becomes
// "Ma. Teresa Dela Cruz-Santos").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
