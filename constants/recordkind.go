package constants

// RecordKind names one of the spreadsheet record families the extraction
// engine knows how to read.
type RecordKind string

// Stable values (store these exact strings in DB).
const (
	KindSchedule          RecordKind = "SCHEDULE"           // student COR / class schedule
	KindGrades            RecordKind = "GRADES"             // grade sheet
	KindTeaching          RecordKind = "TEACHING"           // teaching personnel profile
	KindNonTeaching       RecordKind = "NON_TEACHING"       // non-teaching personnel profile
	KindPersonnelSchedule RecordKind = "PERSONNEL_SCHEDULE" // faculty timetable
)

var allKinds = []RecordKind{
	KindSchedule,
	KindGrades,
	KindTeaching,
	KindNonTeaching,
	KindPersonnelSchedule,
}

func RecordKindNames() []string {
	result := make([]string, len(allKinds))
	for i, k := range allKinds {
		result[i] = string(k)
	}
	return result
}
