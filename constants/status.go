package constants

// JobStatus is the canonical status for rows in extract_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtracted JobStatus = "EXTRACT_OK" // engine produced a record
	JobStatusPersisted JobStatus = "PERSIST_OK" // record stored
	JobStatusSkipped   JobStatus = "SKIPPED"    // no record produced (no identity resolved)
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

func JobStatusNames() []string {
	return []string{
		string(JobStatusQueued),
		string(JobStatusRunning),
		string(JobStatusExtracted),
		string(JobStatusPersisted),
		string(JobStatusSkipped),
		string(JobStatusFailed),
	}
}
