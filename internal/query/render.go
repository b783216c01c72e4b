package query

import (
	"strings"
	"unicode/utf8"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

// Fallback renderers for rows whose stored record text is empty, in the
// same banner-and-pipe layout the extraction output uses so replies look
// the same either way.

const bannerWidth = 44

func renderStudent(s *entity.Student) string {
	var b strings.Builder
	banner(&b, "STUDENT RECORD")
	labeled(&b, [][2]string{
		{"Student No.", s.StudentNo},
		{"Name", s.Name},
		{"Program", s.Program},
		{"Year Level", s.YearLevel},
		{"Section", s.Section},
		{"Semester", s.Semester},
		{"School Year", s.SchoolYear},
		{"Adviser", s.Adviser},
	})
	return b.String()
}

func renderSchedule(s *entity.Student, rows []*entity.SubjectEntry) string {
	var b strings.Builder
	banner(&b, "CERTIFICATE OF REGISTRATION")
	labeled(&b, [][2]string{
		{"Student No.", s.StudentNo},
		{"Name", s.Name},
		{"Program", s.Program},
		{"Year Level", s.YearLevel},
		{"Section", s.Section},
	})
	rule(&b, "SUBJECTS")
	if len(rows) == 0 {
		b.WriteString("N/A\n")
	}
	for _, r := range rows {
		cells := []string{r.Code, r.Title, orNA(utils.FloatString(r.Units)), r.Day, r.TimeStart, r.TimeEnd, r.Room}
		writePipeRow(&b, cells)
	}
	return b.String()
}

func renderGradeReport(s *entity.Student, rep *entity.GradeReport, entries []*entity.GradeEntry) string {
	var b strings.Builder
	banner(&b, "REPORT OF GRADES")
	labeled(&b, [][2]string{
		{"Student No.", s.StudentNo},
		{"Name", s.Name},
		{"Semester", rep.Semester},
		{"School Year", rep.SchoolYear},
	})
	rule(&b, "GRADES")
	if len(entries) == 0 {
		b.WriteString("N/A\n")
	}
	for _, e := range entries {
		cells := []string{e.Code, e.Title, orNA(utils.FloatString(e.Units)), e.FinalGrade, e.Remarks}
		writePipeRow(&b, cells)
	}
	if rep.GWA != nil {
		b.WriteString(strings.Repeat("-", bannerWidth) + "\n")
		labeled(&b, [][2]string{{"GWA", utils.GradeString(rep.GWA)}})
	}
	return b.String()
}

func renderPersonnel(p *entity.Personnel) string {
	var b strings.Builder
	banner(&b, "PERSONNEL RECORD")
	labeled(&b, [][2]string{
		{"Name", p.Name},
		{"Classification", p.Variant},
		{"Position", p.Position},
		{"Department", p.Department},
		{"Email", p.Email},
		{"Phone", p.Phone},
		{"Employment", p.Employment},
	})
	return b.String()
}

func renderLoads(p *entity.Personnel, slots []*entity.LoadEntry) string {
	var b strings.Builder
	banner(&b, "FACULTY SCHEDULE")
	labeled(&b, [][2]string{
		{"Name", p.Name},
		{"Department", p.Department},
	})
	rule(&b, "LOAD")
	if len(slots) == 0 {
		b.WriteString("N/A\n")
	}
	for _, sl := range slots {
		cells := []string{sl.Day, sl.TimeStart, sl.TimeEnd, sl.Subject, sl.Section}
		writePipeRow(&b, cells)
	}
	return b.String()
}

func banner(b *strings.Builder, title string) {
	line := strings.Repeat("=", bannerWidth)
	b.WriteString(line + "\n")
	b.WriteString(" " + title + "\n")
	b.WriteString(line + "\n")
}

func rule(b *strings.Builder, heading string) {
	line := strings.Repeat("-", bannerWidth)
	b.WriteString(line + "\n " + heading + "\n" + line + "\n")
}

func labeled(b *strings.Builder, items [][2]string) {
	width := 0
	for _, it := range items {
		if n := utf8.RuneCountInString(it[0]); n > width {
			width = n
		}
	}
	for _, it := range items {
		b.WriteString(it[0])
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(it[0])))
		b.WriteString(" : ")
		b.WriteString(orNA(it[1]))
		b.WriteString("\n")
	}
}

func writePipeRow(b *strings.Builder, cells []string) {
	for i, c := range cells {
		cells[i] = orNA(c)
	}
	b.WriteString(strings.Join(cells, " | ") + "\n")
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
