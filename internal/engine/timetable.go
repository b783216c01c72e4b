package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// Role names used in timetable rows.
const (
	RoleDay       = "day"
	RoleTimeStart = "time_start"
	RoleTimeEnd   = "time_end"
	RoleSubject   = "subject"
	RoleSection   = "section"
)

// DaySpec maps one weekday to the header spellings that identify its column.
type DaySpec struct {
	Name     string
	Synonyms []string
}

// DefaultDays covers Monday through Saturday. Single-letter abbreviations
// are deliberately absent: day headers are matched exactly, and a bare "T"
// cannot distinguish Tuesday from Thursday.
func DefaultDays() []DaySpec {
	return []DaySpec{
		{Name: "Monday", Synonyms: []string{"MONDAY", "MON"}},
		{Name: "Tuesday", Synonyms: []string{"TUESDAY", "TUES", "TUE"}},
		{Name: "Wednesday", Synonyms: []string{"WEDNESDAY", "WED"}},
		{Name: "Thursday", Synonyms: []string{"THURSDAY", "THURS", "THU", "TH"}},
		{Name: "Friday", Synonyms: []string{"FRIDAY", "FRI"}},
		{Name: "Saturday", Synonyms: []string{"SATURDAY", "SAT"}},
	}
}

// TimetableConfig parameterizes the two-pass weekly-grid extractor.
type TimetableConfig struct {
	// TimeCol is the column holding the slot's time label (default 0).
	TimeCol int
	// Days lists the weekday columns to look for (default Monday-Saturday).
	Days []DaySpec
	// MinDayHits is how many day headers qualify a row as the grid header
	// (default 2).
	MinDayHits int
	// ScanRows bounds the header search (default 100).
	ScanRows int
	// ScanCols bounds the per-row header search (default 20).
	ScanCols int
	// MaxRows caps the body walk (default 500).
	MaxRows int
	// SubjectPattern spots subject codes during the first pass.
	SubjectPattern *regexp.Regexp
	// SectionPattern optionally filters day-cell tokens; a non-matching
	// cell is ignored rather than emitted.
	SectionPattern *regexp.Regexp
}

func (c *TimetableConfig) days() []DaySpec {
	if len(c.Days) > 0 {
		return c.Days
	}
	return DefaultDays()
}

func (c *TimetableConfig) minDayHits() int {
	if c.MinDayHits > 0 {
		return c.MinDayHits
	}
	return 2
}

func (c *TimetableConfig) scanRows() int {
	if c.ScanRows > 0 {
		return c.ScanRows
	}
	return 100
}

func (c *TimetableConfig) scanCols() int {
	if c.ScanCols > 0 {
		return c.ScanCols
	}
	return 20
}

func (c *TimetableConfig) maxRows() int {
	if c.MaxRows > 0 {
		return c.MaxRows
	}
	return 500
}

var (
	reClockLabel = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?$`)
	reRangeSep   = regexp.MustCompile(`\s*(?:-|–|—|\bTO\b)\s*`)
)

// parseClockLabel canonicalizes a single clock reading to "H:MM AM/PM".
// Labels without an explicit marker are disambiguated by the school-day
// heuristic: hours 1 through 6 read as afternoon, since no class in these
// sheets starts before 7:00 AM. A genuine 6:00 AM label would be misread;
// callers log timetable output as heuristic for this reason. Spreadsheet
// serial fractions (0.5 = noon) are accepted too.
func parseClockLabel(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if f >= 0 && f < 1 {
			return clockFromMinutes(int(f*24*60 + 0.5)), true
		}
		// A decimal point outside the serial range is noise, but a bare
		// integer like "7" still reads as an hour below.
		if strings.Contains(trimmed, ".") {
			return "", false
		}
	}

	s := strings.ToUpper(trimmed)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))

	m := reClockLabel.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 23 || minute > 59 {
		return "", false
	}
	switch m[3] {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 12 {
			hour += 12
		}
	default:
		if hour >= 1 && hour <= 6 {
			hour += 12
		}
	}
	return clockFromMinutes(hour*60 + minute), true
}

// parseTimeRange splits "7:30 - 9:00" style labels into canonical start and
// end readings. A lone reading yields an empty end.
func parseTimeRange(raw string) (start, end string, ok bool) {
	parts := reRangeSep.Split(strings.ToUpper(strings.TrimSpace(raw)), -1)
	if len(parts) == 0 {
		return "", "", false
	}
	start, ok = parseClockLabel(parts[0])
	if !ok {
		return "", "", false
	}
	if len(parts) > 1 {
		if e, eok := parseClockLabel(parts[1]); eok {
			end = e
		}
	}
	return start, end, true
}

// BuildSubjectIndex is the first timetable pass: every row that carries
// both a parsable time label and a subject-code token contributes a
// start-time to subject mapping. First sighting wins.
func BuildSubjectIndex(g *grid.Grid, cfg *TimetableConfig) map[string]string {
	index := make(map[string]string)
	if cfg.SubjectPattern == nil {
		return index
	}
	limit := min(g.RowCount(), cfg.scanRows()+cfg.maxRows())
	for r := 0; r < limit; r++ {
		start, _, ok := parseTimeRange(g.Cell(r, cfg.TimeCol))
		if !ok {
			continue
		}
		if _, seen := index[start]; seen {
			continue
		}
		for c := 0; c < g.ColCount(r); c++ {
			if c == cfg.TimeCol {
				continue
			}
			token := normalizeAnchor(g.Cell(r, c))
			if token != "" && cfg.SubjectPattern.MatchString(token) {
				index[start] = token
				break
			}
		}
	}
	return index
}

// findDayHeader locates the weekly grid's header row by exact day-name
// matches and returns each found day's column.
func findDayHeader(g *grid.Grid, cfg *TimetableConfig) (int, map[string]int, bool) {
	days := cfg.days()
	limit := min(g.RowCount(), cfg.scanRows())
	for r := 0; r < limit; r++ {
		cols := make(map[string]int, len(days))
		colLimit := min(g.ColCount(r), cfg.scanCols())
		for c := 0; c < colLimit; c++ {
			cell := strings.TrimSuffix(normalizeAnchor(g.Cell(r, c)), ".")
			if cell == "" {
				continue
			}
			for _, day := range days {
				if _, seen := cols[day.Name]; seen {
					continue
				}
				for _, syn := range day.Synonyms {
					if cell == syn {
						cols[day.Name] = c
						break
					}
				}
			}
		}
		if len(cols) >= cfg.minDayHits() {
			return r, cols, true
		}
	}
	return 0, nil, false
}

// ExtractTimetable is the second pass: below the day-header row, each
// non-empty day cell becomes one slot row carrying the day, the slot's
// time range, the occupying token and the subject looked up from the first
// pass. An unmatched slot gets a TBA placeholder naming its start time so
// the gap stays visible downstream.
func ExtractTimetable(g *grid.Grid, cfg *TimetableConfig) []Row {
	headerRow, dayCols, ok := findDayHeader(g, cfg)
	if !ok {
		return nil
	}
	index := BuildSubjectIndex(g, cfg)
	days := cfg.days()

	var rows []Row
	end := min(g.RowCount(), headerRow+1+cfg.maxRows())
	for r := headerRow + 1; r < end; r++ {
		label := g.Cell(r, cfg.TimeCol)
		if label == "" {
			break
		}
		start, stop, ok := parseTimeRange(label)
		if !ok {
			continue
		}
		for _, day := range days {
			col, mapped := dayCols[day.Name]
			if !mapped {
				continue
			}
			cell := g.Cell(r, col)
			if cell == "" {
				continue
			}
			token, valid := NormalizeText(cell)
			if !valid {
				continue
			}
			if cfg.SectionPattern != nil && !cfg.SectionPattern.MatchString(strings.ToUpper(token)) {
				continue
			}
			subject, found := index[start]
			if !found {
				subject = "TBA-" + start
			}
			rows = append(rows, Row{
				RoleDay:       day.Name,
				RoleTimeStart: start,
				RoleTimeEnd:   stop,
				RoleSubject:   subject,
				RoleSection:   token,
			})
		}
	}
	return rows
}
