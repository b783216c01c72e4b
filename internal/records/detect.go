package records

import (
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/constants"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/grid"
)

// kindSignature scores one record kind against a sheet: distinct content
// keywords count double, filename hints triple, and any exclude marker
// zeroes the kind outright.
type kindSignature struct {
	kind     constants.RecordKind
	keywords []string
	filename []string
	excludes []string
}

const (
	contentHitScore  = 2
	filenameHitScore = 3
	minDetectScore   = 2
)

// signatures is ordered: on a score tie the earlier kind wins.
var signatures = []kindSignature{
	{
		kind:     constants.KindSchedule,
		keywords: []string{"CERTIFICATE OF REGISTRATION", "REGISTRATION", "SCHEDULE OF CLASSES", "ROOM", "TIME"},
		filename: []string{"COR", "REGISTRATION", "SCHED"},
		excludes: []string{"FACULTY", "TEACHING LOAD"},
	},
	{
		kind:     constants.KindGrades,
		keywords: []string{"REPORT OF GRADES", "GRADES", "GWA", "REMARKS", "RATING", "FINAL GRADE"},
		filename: []string{"GRADE"},
	},
	{
		kind:     constants.KindPersonnelSchedule,
		keywords: []string{"TEACHING LOAD", "FACULTY SCHEDULE", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY"},
		filename: []string{"LOAD", "TIMETABLE"},
	},
	{
		kind:     constants.KindNonTeaching,
		keywords: []string{"NON-TEACHING", "NON TEACHING", "STAFF", "OFFICE"},
		filename: []string{"STAFF", "NONTEACHING", "NON-TEACHING"},
	},
	{
		kind:     constants.KindTeaching,
		keywords: []string{"TEACHING PERSONNEL", "FACULTY PROFILE", "ACADEMIC RANK", "EMPLOYMENT STATUS", "FACULTY"},
		filename: []string{"FACULTY", "TEACHING"},
		excludes: []string{"NON-TEACHING", "NON TEACHING"},
	},
}

// DetectKind picks which extraction configuration a sheet should run by
// scoring keyword signatures over the sheet's top rows and the source
// filename. Reports false when no kind reaches the minimum score, which
// routes the file to a skipped status rather than a wrong extraction.
func DetectKind(g *grid.Grid, filename string) (constants.RecordKind, bool) {
	hay := sheetHaystack(g)
	fname := strings.ToUpper(filename)

	best := constants.RecordKind("")
	bestScore := 0
	for _, sig := range signatures {
		score := sig.score(hay, fname)
		if score > bestScore {
			best = sig.kind
			bestScore = score
		}
	}
	if bestScore < minDetectScore {
		return "", false
	}
	return best, true
}

func (s *kindSignature) score(hay, fname string) int {
	for _, ex := range s.excludes {
		if strings.Contains(hay, ex) || strings.Contains(fname, ex) {
			return 0
		}
	}
	score := 0
	for _, kw := range s.keywords {
		if strings.Contains(hay, kw) {
			score += contentHitScore
		}
	}
	for _, hint := range s.filename {
		if strings.Contains(fname, hint) {
			score += filenameHitScore
		}
	}
	return score
}

// sheetHaystack joins the scan window's cells into one uppercase string.
func sheetHaystack(g *grid.Grid) string {
	var b strings.Builder
	rows := min(g.RowCount(), 30)
	for r := 0; r < rows; r++ {
		cols := min(g.ColCount(r), 15)
		for c := 0; c < cols; c++ {
			if cell := g.Cell(r, c); cell != "" {
				b.WriteString(strings.ToUpper(cell))
				b.WriteString(" ")
			}
		}
	}
	return b.String()
}
