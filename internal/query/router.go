package query

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
)

// Intent is the record family a question is routed to.
type Intent string

const (
	IntentSchedule  Intent = "schedule"
	IntentGrades    Intent = "grades"
	IntentPersonnel Intent = "personnel"
	IntentUnknown   Intent = "unknown"
)

// Answer is the router's reply to one question.
type Answer struct {
	Intent  Intent
	Subject string
	Text    string
	Matched bool
}

// Router answers free-form questions by keyword matching: an intent
// keyword set picks the record family, the leftover tokens (or a
// student-number token) pick the person, and the stored rendered
// record is the reply. No language model is involved.
type Router struct {
	students  repository.StudentRepository
	personnel repository.PersonnelRepository
	grades    repository.GradeRepository
	logger    *slog.Logger
}

func NewRouter(students repository.StudentRepository, personnel repository.PersonnelRepository, grades repository.GradeRepository, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{students: students, personnel: personnel, grades: grades, logger: logger}
}

var intentKeywords = map[Intent][]string{
	IntentGrades:    {"grade", "grades", "gwa", "average", "rating", "remarks", "passed", "failed"},
	IntentSchedule:  {"schedule", "subject", "subjects", "class", "classes", "cor", "timetable", "room", "section"},
	IntentPersonnel: {"teacher", "faculty", "staff", "personnel", "professor", "instructor", "employee", "load", "department", "position", "email", "contact"},
}

// stopwords are dropped before the leftover tokens become the name query.
var stopwords = map[string]bool{
	"what": true, "whats": true, "who": true, "whos": true, "is": true,
	"are": true, "the": true, "of": true, "for": true, "show": true,
	"me": true, "my": true, "a": true, "an": true, "please": true,
	"give": true, "get": true, "find": true, "lookup": true, "look": true,
	"up": true, "in": true, "at": true, "do": true, "does": true,
	"have": true, "has": true, "tell": true, "about": true, "and": true,
	"his": true, "her": true, "their": true, "this": true, "that": true,
	"student": true, "record": true, "records": true, "info": true,
	"information": true, "sir": true, "maam": true, "mr": true, "ms": true,
	"mrs": true, "prof": true, "dr": true,
}

var studentNoRegex = regexp.MustCompile(`\b(\d{4}-\d{3,6}|\d{6,10})\b`)

// DetectIntent scores each intent's keyword hits in the question and
// returns the best one. Ties and zero hits fall back in the order
// grades, schedule, personnel, unknown.
func DetectIntent(question string) Intent {
	tokens := tokenize(question)
	best, bestScore := IntentUnknown, 0
	for _, intent := range []Intent{IntentGrades, IntentSchedule, IntentPersonnel} {
		score := 0
		for _, kw := range intentKeywords[intent] {
			for _, tok := range tokens {
				if tok == kw {
					score++
				}
			}
		}
		if score > bestScore {
			best, bestScore = intent, score
		}
	}
	return best
}

// ExtractSubject pulls the person the question is about: a student
// number when one appears, otherwise the tokens left after stripping
// stopwords and intent keywords.
func ExtractSubject(question string) (subject string, isStudentNo bool) {
	if m := studentNoRegex.FindString(question); m != "" {
		return m, true
	}

	var kept []string
	for _, tok := range tokenize(question) {
		if stopwords[tok] || isIntentKeyword(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " "), false
}

func isIntentKeyword(tok string) bool {
	for _, kws := range intentKeywords {
		for _, kw := range kws {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

var tokenRegex = regexp.MustCompile(`[a-z0-9][a-z0-9-]*`)

func tokenize(question string) []string {
	return tokenRegex.FindAllString(strings.ToLower(question), -1)
}

// Ask routes one question and renders a reply from stored records.
func (r *Router) Ask(ctx context.Context, question string) (*Answer, error) {
	intent := DetectIntent(question)
	subject, isNo := ExtractSubject(question)
	ans := &Answer{Intent: intent, Subject: subject}

	if subject == "" {
		ans.Text = "Please name the student or staff member the question is about."
		return ans, nil
	}

	r.logger.Debug("routing question", "intent", string(intent), "subject", subject, "student_no", isNo)

	switch intent {
	case IntentGrades:
		return r.answerGrades(ctx, ans, subject, isNo)
	case IntentSchedule:
		return r.answerSchedule(ctx, ans, subject, isNo)
	case IntentPersonnel:
		return r.answerPersonnel(ctx, ans, subject, question)
	default:
		// No intent keyword. Try the student first, then personnel.
		if student, err := r.findStudent(ctx, subject, isNo); err != nil {
			return nil, err
		} else if student != nil {
			ans.Matched = true
			ans.Text = renderStudent(student)
			return ans, nil
		}
		return r.answerPersonnel(ctx, ans, subject, question)
	}
}

func (r *Router) answerSchedule(ctx context.Context, ans *Answer, subject string, isNo bool) (*Answer, error) {
	student, err := r.findStudent(ctx, subject, isNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		ans.Text = fmt.Sprintf("No student record found for %q.", subject)
		return ans, nil
	}
	ans.Matched = true

	if student.RecordText != "" {
		ans.Text = student.RecordText
		return ans, nil
	}
	rows, err := r.students.SubjectsFor(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("subjects for %s: %w", student.ID, err)
	}
	ans.Text = renderSchedule(student, rows)
	return ans, nil
}

func (r *Router) answerGrades(ctx context.Context, ans *Answer, subject string, isNo bool) (*Answer, error) {
	student, err := r.findStudent(ctx, subject, isNo)
	if err != nil {
		return nil, err
	}
	if student == nil {
		ans.Text = fmt.Sprintf("No student record found for %q.", subject)
		return ans, nil
	}

	reports, err := r.grades.ReportsFor(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("reports for %s: %w", student.ID, err)
	}
	if len(reports) == 0 {
		ans.Text = fmt.Sprintf("No grades on file for %s.", student.Name)
		return ans, nil
	}
	ans.Matched = true

	var b strings.Builder
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if rep.RecordText != "" {
			b.WriteString(rep.RecordText)
			continue
		}
		entries, err := r.grades.EntriesFor(ctx, rep.ID)
		if err != nil {
			return nil, fmt.Errorf("entries for %s: %w", rep.ID, err)
		}
		b.WriteString(renderGradeReport(student, rep, entries))
	}
	ans.Text = b.String()
	return ans, nil
}

func (r *Router) answerPersonnel(ctx context.Context, ans *Answer, subject, question string) (*Answer, error) {
	person, err := r.findPersonnel(ctx, subject)
	if err != nil {
		return nil, err
	}
	if person == nil {
		ans.Text = fmt.Sprintf("No personnel record found for %q.", subject)
		return ans, nil
	}
	ans.Matched = true

	// Load questions get the timetable, everything else the profile.
	if wantsLoads(question) {
		slots, err := r.personnel.LoadsFor(ctx, person.ID)
		if err != nil {
			return nil, fmt.Errorf("loads for %s: %w", person.ID, err)
		}
		if len(slots) > 0 {
			ans.Text = renderLoads(person, slots)
			return ans, nil
		}
	}
	if person.RecordText != "" {
		ans.Text = person.RecordText
		return ans, nil
	}
	ans.Text = renderPersonnel(person)
	return ans, nil
}

func wantsLoads(question string) bool {
	for _, tok := range tokenize(question) {
		switch tok {
		case "load", "loads", "schedule", "timetable", "class", "classes":
			return true
		}
	}
	return false
}

// findStudent resolves a student by number or fuzzy name; nil means no match.
func (r *Router) findStudent(ctx context.Context, subject string, isNo bool) (*entity.Student, error) {
	if isNo {
		s, err := r.students.FindByStudentNo(ctx, subject)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, fmt.Errorf("find student by number: %w", err)
		}
		return s, nil
	}

	// Questions put the given name first while rows store surname first,
	// so the whole subject usually misses; retry token by token.
	for _, q := range subjectQueries(subject) {
		matches, err := r.students.SearchByName(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("search students: %w", err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return nil, nil
}

func (r *Router) findPersonnel(ctx context.Context, subject string) (*entity.Personnel, error) {
	for _, q := range subjectQueries(subject) {
		matches, err := r.personnel.SearchByName(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("search personnel: %w", err)
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return nil, nil
}

// subjectQueries lists the name queries to try in order: the full subject,
// then each token long enough to be selective.
func subjectQueries(subject string) []string {
	out := []string{subject}
	fields := strings.Fields(subject)
	if len(fields) < 2 {
		return out
	}
	for _, f := range fields {
		if len(f) >= 3 {
			out = append(out, f)
		}
	}
	return out
}
