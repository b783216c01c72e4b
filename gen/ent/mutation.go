// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/extractjob"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradeentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/gradereport"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/predicate"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/sourcefile"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/student"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/subjectentry"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob   = "ExtractJob"
	TypeGradeEntry   = "GradeEntry"
	TypeGradeReport  = "GradeReport"
	TypeLoadEntry    = "LoadEntry"
	TypePersonnel    = "Personnel"
	TypeSourceFile   = "SourceFile"
	TypeStudent      = "Student"
	TypeSubjectEntry = "SubjectEntry"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	format               *string
	sheet_name           *string
	record_kind          *string
	status               *string
	started_at           *time.Time
	finished_at          *time.Time
	error_message        *string
	extracted_json       *json.RawMessage
	appendextracted_json json.RawMessage
	record_text          *string
	clearedFields        map[string]struct{}
	file                 *uuid.UUID
	clearedfile          bool
	done                 bool
	oldValue             func(context.Context) (*ExtractJob, error)
	predicates           []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetSheetName sets the "sheet_name" field.
func (m *ExtractJobMutation) SetSheetName(s string) {
	m.sheet_name = &s
}

// SheetName returns the value of the "sheet_name" field in the mutation.
func (m *ExtractJobMutation) SheetName() (r string, exists bool) {
	v := m.sheet_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSheetName returns the old "sheet_name" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldSheetName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSheetName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSheetName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSheetName: %w", err)
	}
	return oldValue.SheetName, nil
}

// ClearSheetName clears the value of the "sheet_name" field.
func (m *ExtractJobMutation) ClearSheetName() {
	m.sheet_name = nil
	m.clearedFields[extractjob.FieldSheetName] = struct{}{}
}

// SheetNameCleared returns if the "sheet_name" field was cleared in this mutation.
func (m *ExtractJobMutation) SheetNameCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldSheetName]
	return ok
}

// ResetSheetName resets all changes to the "sheet_name" field.
func (m *ExtractJobMutation) ResetSheetName() {
	m.sheet_name = nil
	delete(m.clearedFields, extractjob.FieldSheetName)
}

// SetRecordKind sets the "record_kind" field.
func (m *ExtractJobMutation) SetRecordKind(s string) {
	m.record_kind = &s
}

// RecordKind returns the value of the "record_kind" field in the mutation.
func (m *ExtractJobMutation) RecordKind() (r string, exists bool) {
	v := m.record_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordKind returns the old "record_kind" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRecordKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordKind: %w", err)
	}
	return oldValue.RecordKind, nil
}

// ClearRecordKind clears the value of the "record_kind" field.
func (m *ExtractJobMutation) ClearRecordKind() {
	m.record_kind = nil
	m.clearedFields[extractjob.FieldRecordKind] = struct{}{}
}

// RecordKindCleared returns if the "record_kind" field was cleared in this mutation.
func (m *ExtractJobMutation) RecordKindCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRecordKind]
	return ok
}

// ResetRecordKind resets all changes to the "record_kind" field.
func (m *ExtractJobMutation) ResetRecordKind() {
	m.record_kind = nil
	delete(m.clearedFields, extractjob.FieldRecordKind)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetRecordText sets the "record_text" field.
func (m *ExtractJobMutation) SetRecordText(s string) {
	m.record_text = &s
}

// RecordText returns the value of the "record_text" field in the mutation.
func (m *ExtractJobMutation) RecordText() (r string, exists bool) {
	v := m.record_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordText returns the old "record_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRecordText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordText: %w", err)
	}
	return oldValue.RecordText, nil
}

// ClearRecordText clears the value of the "record_text" field.
func (m *ExtractJobMutation) ClearRecordText() {
	m.record_text = nil
	m.clearedFields[extractjob.FieldRecordText] = struct{}{}
}

// RecordTextCleared returns if the "record_text" field was cleared in this mutation.
func (m *ExtractJobMutation) RecordTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRecordText]
	return ok
}

// ResetRecordText resets all changes to the "record_text" field.
func (m *ExtractJobMutation) ResetRecordText() {
	m.record_text = nil
	delete(m.clearedFields, extractjob.FieldRecordText)
}

// ClearFile clears the "file" edge to the SourceFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the SourceFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.sheet_name != nil {
		fields = append(fields, extractjob.FieldSheetName)
	}
	if m.record_kind != nil {
		fields = append(fields, extractjob.FieldRecordKind)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.record_text != nil {
		fields = append(fields, extractjob.FieldRecordText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldSheetName:
		return m.SheetName()
	case extractjob.FieldRecordKind:
		return m.RecordKind()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldRecordText:
		return m.RecordText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldSheetName:
		return m.OldSheetName(ctx)
	case extractjob.FieldRecordKind:
		return m.OldRecordKind(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldRecordText:
		return m.OldRecordText(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldSheetName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSheetName(v)
		return nil
	case extractjob.FieldRecordKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordKind(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldRecordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordText(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldSheetName) {
		fields = append(fields, extractjob.FieldSheetName)
	}
	if m.FieldCleared(extractjob.FieldRecordKind) {
		fields = append(fields, extractjob.FieldRecordKind)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldRecordText) {
		fields = append(fields, extractjob.FieldRecordText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldSheetName:
		m.ClearSheetName()
		return nil
	case extractjob.FieldRecordKind:
		m.ClearRecordKind()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldRecordText:
		m.ClearRecordText()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldSheetName:
		m.ResetSheetName()
		return nil
	case extractjob.FieldRecordKind:
		m.ResetRecordKind()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldRecordText:
		m.ResetRecordText()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// GradeEntryMutation represents an operation that mutates the GradeEntry nodes in the graph.
type GradeEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	code          *string
	title         *string
	units         *float64
	addunits      *float64
	final_grade   *string
	remarks       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	report        *uuid.UUID
	clearedreport bool
	done          bool
	oldValue      func(context.Context) (*GradeEntry, error)
	predicates    []predicate.GradeEntry
}

var _ ent.Mutation = (*GradeEntryMutation)(nil)

// gradeentryOption allows management of the mutation configuration using functional options.
type gradeentryOption func(*GradeEntryMutation)

// newGradeEntryMutation creates new mutation for the GradeEntry entity.
func newGradeEntryMutation(c config, op Op, opts ...gradeentryOption) *GradeEntryMutation {
	m := &GradeEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeGradeEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradeEntryID sets the ID field of the mutation.
func withGradeEntryID(id uuid.UUID) gradeentryOption {
	return func(m *GradeEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *GradeEntry
		)
		m.oldValue = func(ctx context.Context) (*GradeEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradeEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradeEntry sets the old GradeEntry of the mutation.
func withGradeEntry(node *GradeEntry) gradeentryOption {
	return func(m *GradeEntryMutation) {
		m.oldValue = func(context.Context) (*GradeEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradeEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradeEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GradeEntry entities.
func (m *GradeEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradeEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradeEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradeEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *GradeEntryMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *GradeEntryMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *GradeEntryMutation) ResetReportID() {
	m.report = nil
}

// SetCode sets the "code" field.
func (m *GradeEntryMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *GradeEntryMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *GradeEntryMutation) ResetCode() {
	m.code = nil
}

// SetTitle sets the "title" field.
func (m *GradeEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GradeEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *GradeEntryMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[gradeentry.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *GradeEntryMutation) TitleCleared() bool {
	_, ok := m.clearedFields[gradeentry.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *GradeEntryMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, gradeentry.FieldTitle)
}

// SetUnits sets the "units" field.
func (m *GradeEntryMutation) SetUnits(f float64) {
	m.units = &f
	m.addunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *GradeEntryMutation) Units() (r float64, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldUnits(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AddUnits adds f to the "units" field.
func (m *GradeEntryMutation) AddUnits(f float64) {
	if m.addunits != nil {
		*m.addunits += f
	} else {
		m.addunits = &f
	}
}

// AddedUnits returns the value that was added to the "units" field in this mutation.
func (m *GradeEntryMutation) AddedUnits() (r float64, exists bool) {
	v := m.addunits
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnits clears the value of the "units" field.
func (m *GradeEntryMutation) ClearUnits() {
	m.units = nil
	m.addunits = nil
	m.clearedFields[gradeentry.FieldUnits] = struct{}{}
}

// UnitsCleared returns if the "units" field was cleared in this mutation.
func (m *GradeEntryMutation) UnitsCleared() bool {
	_, ok := m.clearedFields[gradeentry.FieldUnits]
	return ok
}

// ResetUnits resets all changes to the "units" field.
func (m *GradeEntryMutation) ResetUnits() {
	m.units = nil
	m.addunits = nil
	delete(m.clearedFields, gradeentry.FieldUnits)
}

// SetFinalGrade sets the "final_grade" field.
func (m *GradeEntryMutation) SetFinalGrade(s string) {
	m.final_grade = &s
}

// FinalGrade returns the value of the "final_grade" field in the mutation.
func (m *GradeEntryMutation) FinalGrade() (r string, exists bool) {
	v := m.final_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalGrade returns the old "final_grade" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldFinalGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalGrade: %w", err)
	}
	return oldValue.FinalGrade, nil
}

// ClearFinalGrade clears the value of the "final_grade" field.
func (m *GradeEntryMutation) ClearFinalGrade() {
	m.final_grade = nil
	m.clearedFields[gradeentry.FieldFinalGrade] = struct{}{}
}

// FinalGradeCleared returns if the "final_grade" field was cleared in this mutation.
func (m *GradeEntryMutation) FinalGradeCleared() bool {
	_, ok := m.clearedFields[gradeentry.FieldFinalGrade]
	return ok
}

// ResetFinalGrade resets all changes to the "final_grade" field.
func (m *GradeEntryMutation) ResetFinalGrade() {
	m.final_grade = nil
	delete(m.clearedFields, gradeentry.FieldFinalGrade)
}

// SetRemarks sets the "remarks" field.
func (m *GradeEntryMutation) SetRemarks(s string) {
	m.remarks = &s
}

// Remarks returns the value of the "remarks" field in the mutation.
func (m *GradeEntryMutation) Remarks() (r string, exists bool) {
	v := m.remarks
	if v == nil {
		return
	}
	return *v, true
}

// OldRemarks returns the old "remarks" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldRemarks(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemarks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemarks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemarks: %w", err)
	}
	return oldValue.Remarks, nil
}

// ClearRemarks clears the value of the "remarks" field.
func (m *GradeEntryMutation) ClearRemarks() {
	m.remarks = nil
	m.clearedFields[gradeentry.FieldRemarks] = struct{}{}
}

// RemarksCleared returns if the "remarks" field was cleared in this mutation.
func (m *GradeEntryMutation) RemarksCleared() bool {
	_, ok := m.clearedFields[gradeentry.FieldRemarks]
	return ok
}

// ResetRemarks resets all changes to the "remarks" field.
func (m *GradeEntryMutation) ResetRemarks() {
	m.remarks = nil
	delete(m.clearedFields, gradeentry.FieldRemarks)
}

// SetCreatedAt sets the "created_at" field.
func (m *GradeEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GradeEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GradeEntry entity.
// If the GradeEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GradeEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the GradeReport entity.
func (m *GradeEntryMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[gradeentry.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the GradeReport entity was cleared.
func (m *GradeEntryMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *GradeEntryMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *GradeEntryMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the GradeEntryMutation builder.
func (m *GradeEntryMutation) Where(ps ...predicate.GradeEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradeEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradeEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradeEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradeEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradeEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradeEntry).
func (m *GradeEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradeEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.report != nil {
		fields = append(fields, gradeentry.FieldReportID)
	}
	if m.code != nil {
		fields = append(fields, gradeentry.FieldCode)
	}
	if m.title != nil {
		fields = append(fields, gradeentry.FieldTitle)
	}
	if m.units != nil {
		fields = append(fields, gradeentry.FieldUnits)
	}
	if m.final_grade != nil {
		fields = append(fields, gradeentry.FieldFinalGrade)
	}
	if m.remarks != nil {
		fields = append(fields, gradeentry.FieldRemarks)
	}
	if m.created_at != nil {
		fields = append(fields, gradeentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradeEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gradeentry.FieldReportID:
		return m.ReportID()
	case gradeentry.FieldCode:
		return m.Code()
	case gradeentry.FieldTitle:
		return m.Title()
	case gradeentry.FieldUnits:
		return m.Units()
	case gradeentry.FieldFinalGrade:
		return m.FinalGrade()
	case gradeentry.FieldRemarks:
		return m.Remarks()
	case gradeentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradeEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gradeentry.FieldReportID:
		return m.OldReportID(ctx)
	case gradeentry.FieldCode:
		return m.OldCode(ctx)
	case gradeentry.FieldTitle:
		return m.OldTitle(ctx)
	case gradeentry.FieldUnits:
		return m.OldUnits(ctx)
	case gradeentry.FieldFinalGrade:
		return m.OldFinalGrade(ctx)
	case gradeentry.FieldRemarks:
		return m.OldRemarks(ctx)
	case gradeentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradeEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gradeentry.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case gradeentry.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case gradeentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case gradeentry.FieldUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case gradeentry.FieldFinalGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalGrade(v)
		return nil
	case gradeentry.FieldRemarks:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemarks(v)
		return nil
	case gradeentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradeEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradeEntryMutation) AddedFields() []string {
	var fields []string
	if m.addunits != nil {
		fields = append(fields, gradeentry.FieldUnits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradeEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gradeentry.FieldUnits:
		return m.AddedUnits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gradeentry.FieldUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnits(v)
		return nil
	}
	return fmt.Errorf("unknown GradeEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradeEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gradeentry.FieldTitle) {
		fields = append(fields, gradeentry.FieldTitle)
	}
	if m.FieldCleared(gradeentry.FieldUnits) {
		fields = append(fields, gradeentry.FieldUnits)
	}
	if m.FieldCleared(gradeentry.FieldFinalGrade) {
		fields = append(fields, gradeentry.FieldFinalGrade)
	}
	if m.FieldCleared(gradeentry.FieldRemarks) {
		fields = append(fields, gradeentry.FieldRemarks)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradeEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradeEntryMutation) ClearField(name string) error {
	switch name {
	case gradeentry.FieldTitle:
		m.ClearTitle()
		return nil
	case gradeentry.FieldUnits:
		m.ClearUnits()
		return nil
	case gradeentry.FieldFinalGrade:
		m.ClearFinalGrade()
		return nil
	case gradeentry.FieldRemarks:
		m.ClearRemarks()
		return nil
	}
	return fmt.Errorf("unknown GradeEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradeEntryMutation) ResetField(name string) error {
	switch name {
	case gradeentry.FieldReportID:
		m.ResetReportID()
		return nil
	case gradeentry.FieldCode:
		m.ResetCode()
		return nil
	case gradeentry.FieldTitle:
		m.ResetTitle()
		return nil
	case gradeentry.FieldUnits:
		m.ResetUnits()
		return nil
	case gradeentry.FieldFinalGrade:
		m.ResetFinalGrade()
		return nil
	case gradeentry.FieldRemarks:
		m.ResetRemarks()
		return nil
	case gradeentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GradeEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradeEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, gradeentry.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradeEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gradeentry.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradeEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradeEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradeEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, gradeentry.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradeEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case gradeentry.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradeEntryMutation) ClearEdge(name string) error {
	switch name {
	case gradeentry.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown GradeEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradeEntryMutation) ResetEdge(name string) error {
	switch name {
	case gradeentry.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown GradeEntry edge %s", name)
}

// GradeReportMutation represents an operation that mutates the GradeReport nodes in the graph.
type GradeReportMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	semester       *string
	school_year    *string
	gwa            *float64
	addgwa         *float64
	record_text    *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	student        *uuid.UUID
	clearedstudent bool
	entries        map[uuid.UUID]struct{}
	removedentries map[uuid.UUID]struct{}
	clearedentries bool
	done           bool
	oldValue       func(context.Context) (*GradeReport, error)
	predicates     []predicate.GradeReport
}

var _ ent.Mutation = (*GradeReportMutation)(nil)

// gradereportOption allows management of the mutation configuration using functional options.
type gradereportOption func(*GradeReportMutation)

// newGradeReportMutation creates new mutation for the GradeReport entity.
func newGradeReportMutation(c config, op Op, opts ...gradereportOption) *GradeReportMutation {
	m := &GradeReportMutation{
		config:        c,
		op:            op,
		typ:           TypeGradeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradeReportID sets the ID field of the mutation.
func withGradeReportID(id uuid.UUID) gradereportOption {
	return func(m *GradeReportMutation) {
		var (
			err   error
			once  sync.Once
			value *GradeReport
		)
		m.oldValue = func(ctx context.Context) (*GradeReport, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GradeReport.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGradeReport sets the old GradeReport of the mutation.
func withGradeReport(node *GradeReport) gradereportOption {
	return func(m *GradeReportMutation) {
		m.oldValue = func(context.Context) (*GradeReport, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradeReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradeReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GradeReport entities.
func (m *GradeReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradeReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradeReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GradeReport.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *GradeReportMutation) SetStudentID(u uuid.UUID) {
	m.student = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *GradeReportMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *GradeReportMutation) ResetStudentID() {
	m.student = nil
}

// SetSemester sets the "semester" field.
func (m *GradeReportMutation) SetSemester(s string) {
	m.semester = &s
}

// Semester returns the value of the "semester" field in the mutation.
func (m *GradeReportMutation) Semester() (r string, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldSemester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// ClearSemester clears the value of the "semester" field.
func (m *GradeReportMutation) ClearSemester() {
	m.semester = nil
	m.clearedFields[gradereport.FieldSemester] = struct{}{}
}

// SemesterCleared returns if the "semester" field was cleared in this mutation.
func (m *GradeReportMutation) SemesterCleared() bool {
	_, ok := m.clearedFields[gradereport.FieldSemester]
	return ok
}

// ResetSemester resets all changes to the "semester" field.
func (m *GradeReportMutation) ResetSemester() {
	m.semester = nil
	delete(m.clearedFields, gradereport.FieldSemester)
}

// SetSchoolYear sets the "school_year" field.
func (m *GradeReportMutation) SetSchoolYear(s string) {
	m.school_year = &s
}

// SchoolYear returns the value of the "school_year" field in the mutation.
func (m *GradeReportMutation) SchoolYear() (r string, exists bool) {
	v := m.school_year
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolYear returns the old "school_year" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldSchoolYear(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolYear: %w", err)
	}
	return oldValue.SchoolYear, nil
}

// ClearSchoolYear clears the value of the "school_year" field.
func (m *GradeReportMutation) ClearSchoolYear() {
	m.school_year = nil
	m.clearedFields[gradereport.FieldSchoolYear] = struct{}{}
}

// SchoolYearCleared returns if the "school_year" field was cleared in this mutation.
func (m *GradeReportMutation) SchoolYearCleared() bool {
	_, ok := m.clearedFields[gradereport.FieldSchoolYear]
	return ok
}

// ResetSchoolYear resets all changes to the "school_year" field.
func (m *GradeReportMutation) ResetSchoolYear() {
	m.school_year = nil
	delete(m.clearedFields, gradereport.FieldSchoolYear)
}

// SetGwa sets the "gwa" field.
func (m *GradeReportMutation) SetGwa(f float64) {
	m.gwa = &f
	m.addgwa = nil
}

// Gwa returns the value of the "gwa" field in the mutation.
func (m *GradeReportMutation) Gwa() (r float64, exists bool) {
	v := m.gwa
	if v == nil {
		return
	}
	return *v, true
}

// OldGwa returns the old "gwa" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldGwa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGwa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGwa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGwa: %w", err)
	}
	return oldValue.Gwa, nil
}

// AddGwa adds f to the "gwa" field.
func (m *GradeReportMutation) AddGwa(f float64) {
	if m.addgwa != nil {
		*m.addgwa += f
	} else {
		m.addgwa = &f
	}
}

// AddedGwa returns the value that was added to the "gwa" field in this mutation.
func (m *GradeReportMutation) AddedGwa() (r float64, exists bool) {
	v := m.addgwa
	if v == nil {
		return
	}
	return *v, true
}

// ClearGwa clears the value of the "gwa" field.
func (m *GradeReportMutation) ClearGwa() {
	m.gwa = nil
	m.addgwa = nil
	m.clearedFields[gradereport.FieldGwa] = struct{}{}
}

// GwaCleared returns if the "gwa" field was cleared in this mutation.
func (m *GradeReportMutation) GwaCleared() bool {
	_, ok := m.clearedFields[gradereport.FieldGwa]
	return ok
}

// ResetGwa resets all changes to the "gwa" field.
func (m *GradeReportMutation) ResetGwa() {
	m.gwa = nil
	m.addgwa = nil
	delete(m.clearedFields, gradereport.FieldGwa)
}

// SetRecordText sets the "record_text" field.
func (m *GradeReportMutation) SetRecordText(s string) {
	m.record_text = &s
}

// RecordText returns the value of the "record_text" field in the mutation.
func (m *GradeReportMutation) RecordText() (r string, exists bool) {
	v := m.record_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordText returns the old "record_text" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldRecordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordText: %w", err)
	}
	return oldValue.RecordText, nil
}

// ClearRecordText clears the value of the "record_text" field.
func (m *GradeReportMutation) ClearRecordText() {
	m.record_text = nil
	m.clearedFields[gradereport.FieldRecordText] = struct{}{}
}

// RecordTextCleared returns if the "record_text" field was cleared in this mutation.
func (m *GradeReportMutation) RecordTextCleared() bool {
	_, ok := m.clearedFields[gradereport.FieldRecordText]
	return ok
}

// ResetRecordText resets all changes to the "record_text" field.
func (m *GradeReportMutation) ResetRecordText() {
	m.record_text = nil
	delete(m.clearedFields, gradereport.FieldRecordText)
}

// SetCreatedAt sets the "created_at" field.
func (m *GradeReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GradeReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GradeReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GradeReportMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GradeReportMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GradeReport entity.
// If the GradeReport object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeReportMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GradeReportMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStudent clears the "student" edge to the Student entity.
func (m *GradeReportMutation) ClearStudent() {
	m.clearedstudent = true
	m.clearedFields[gradereport.FieldStudentID] = struct{}{}
}

// StudentCleared reports if the "student" edge to the Student entity was cleared.
func (m *GradeReportMutation) StudentCleared() bool {
	return m.clearedstudent
}

// StudentIDs returns the "student" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudentID instead. It exists only for internal usage by the builders.
func (m *GradeReportMutation) StudentIDs() (ids []uuid.UUID) {
	if id := m.student; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudent resets all changes to the "student" edge.
func (m *GradeReportMutation) ResetStudent() {
	m.student = nil
	m.clearedstudent = false
}

// AddEntryIDs adds the "entries" edge to the GradeEntry entity by ids.
func (m *GradeReportMutation) AddEntryIDs(ids ...uuid.UUID) {
	if m.entries == nil {
		m.entries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the GradeEntry entity.
func (m *GradeReportMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the GradeEntry entity was cleared.
func (m *GradeReportMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the GradeEntry entity by IDs.
func (m *GradeReportMutation) RemoveEntryIDs(ids ...uuid.UUID) {
	if m.removedentries == nil {
		m.removedentries = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the GradeEntry entity.
func (m *GradeReportMutation) RemovedEntriesIDs() (ids []uuid.UUID) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *GradeReportMutation) EntriesIDs() (ids []uuid.UUID) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *GradeReportMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the GradeReportMutation builder.
func (m *GradeReportMutation) Where(ps ...predicate.GradeReport) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradeReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradeReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GradeReport, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradeReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradeReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GradeReport).
func (m *GradeReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradeReportMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.student != nil {
		fields = append(fields, gradereport.FieldStudentID)
	}
	if m.semester != nil {
		fields = append(fields, gradereport.FieldSemester)
	}
	if m.school_year != nil {
		fields = append(fields, gradereport.FieldSchoolYear)
	}
	if m.gwa != nil {
		fields = append(fields, gradereport.FieldGwa)
	}
	if m.record_text != nil {
		fields = append(fields, gradereport.FieldRecordText)
	}
	if m.created_at != nil {
		fields = append(fields, gradereport.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gradereport.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradeReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gradereport.FieldStudentID:
		return m.StudentID()
	case gradereport.FieldSemester:
		return m.Semester()
	case gradereport.FieldSchoolYear:
		return m.SchoolYear()
	case gradereport.FieldGwa:
		return m.Gwa()
	case gradereport.FieldRecordText:
		return m.RecordText()
	case gradereport.FieldCreatedAt:
		return m.CreatedAt()
	case gradereport.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradeReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gradereport.FieldStudentID:
		return m.OldStudentID(ctx)
	case gradereport.FieldSemester:
		return m.OldSemester(ctx)
	case gradereport.FieldSchoolYear:
		return m.OldSchoolYear(ctx)
	case gradereport.FieldGwa:
		return m.OldGwa(ctx)
	case gradereport.FieldRecordText:
		return m.OldRecordText(ctx)
	case gradereport.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gradereport.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GradeReport field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gradereport.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case gradereport.FieldSemester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case gradereport.FieldSchoolYear:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolYear(v)
		return nil
	case gradereport.FieldGwa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGwa(v)
		return nil
	case gradereport.FieldRecordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordText(v)
		return nil
	case gradereport.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gradereport.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GradeReport field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradeReportMutation) AddedFields() []string {
	var fields []string
	if m.addgwa != nil {
		fields = append(fields, gradereport.FieldGwa)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradeReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gradereport.FieldGwa:
		return m.AddedGwa()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gradereport.FieldGwa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGwa(v)
		return nil
	}
	return fmt.Errorf("unknown GradeReport numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradeReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gradereport.FieldSemester) {
		fields = append(fields, gradereport.FieldSemester)
	}
	if m.FieldCleared(gradereport.FieldSchoolYear) {
		fields = append(fields, gradereport.FieldSchoolYear)
	}
	if m.FieldCleared(gradereport.FieldGwa) {
		fields = append(fields, gradereport.FieldGwa)
	}
	if m.FieldCleared(gradereport.FieldRecordText) {
		fields = append(fields, gradereport.FieldRecordText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradeReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradeReportMutation) ClearField(name string) error {
	switch name {
	case gradereport.FieldSemester:
		m.ClearSemester()
		return nil
	case gradereport.FieldSchoolYear:
		m.ClearSchoolYear()
		return nil
	case gradereport.FieldGwa:
		m.ClearGwa()
		return nil
	case gradereport.FieldRecordText:
		m.ClearRecordText()
		return nil
	}
	return fmt.Errorf("unknown GradeReport nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradeReportMutation) ResetField(name string) error {
	switch name {
	case gradereport.FieldStudentID:
		m.ResetStudentID()
		return nil
	case gradereport.FieldSemester:
		m.ResetSemester()
		return nil
	case gradereport.FieldSchoolYear:
		m.ResetSchoolYear()
		return nil
	case gradereport.FieldGwa:
		m.ResetGwa()
		return nil
	case gradereport.FieldRecordText:
		m.ResetRecordText()
		return nil
	case gradereport.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gradereport.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GradeReport field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradeReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.student != nil {
		edges = append(edges, gradereport.EdgeStudent)
	}
	if m.entries != nil {
		edges = append(edges, gradereport.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradeReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gradereport.EdgeStudent:
		if id := m.student; id != nil {
			return []ent.Value{*id}
		}
	case gradereport.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradeReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentries != nil {
		edges = append(edges, gradereport.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradeReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case gradereport.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradeReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudent {
		edges = append(edges, gradereport.EdgeStudent)
	}
	if m.clearedentries {
		edges = append(edges, gradereport.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradeReportMutation) EdgeCleared(name string) bool {
	switch name {
	case gradereport.EdgeStudent:
		return m.clearedstudent
	case gradereport.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradeReportMutation) ClearEdge(name string) error {
	switch name {
	case gradereport.EdgeStudent:
		m.ClearStudent()
		return nil
	}
	return fmt.Errorf("unknown GradeReport unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradeReportMutation) ResetEdge(name string) error {
	switch name {
	case gradereport.EdgeStudent:
		m.ResetStudent()
		return nil
	case gradereport.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown GradeReport edge %s", name)
}

// LoadEntryMutation represents an operation that mutates the LoadEntry nodes in the graph.
type LoadEntryMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	day              *string
	time_start       *string
	time_end         *string
	subject          *string
	section          *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	personnel        *uuid.UUID
	clearedpersonnel bool
	done             bool
	oldValue         func(context.Context) (*LoadEntry, error)
	predicates       []predicate.LoadEntry
}

var _ ent.Mutation = (*LoadEntryMutation)(nil)

// loadentryOption allows management of the mutation configuration using functional options.
type loadentryOption func(*LoadEntryMutation)

// newLoadEntryMutation creates new mutation for the LoadEntry entity.
func newLoadEntryMutation(c config, op Op, opts ...loadentryOption) *LoadEntryMutation {
	m := &LoadEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLoadEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLoadEntryID sets the ID field of the mutation.
func withLoadEntryID(id uuid.UUID) loadentryOption {
	return func(m *LoadEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LoadEntry
		)
		m.oldValue = func(ctx context.Context) (*LoadEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LoadEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLoadEntry sets the old LoadEntry of the mutation.
func withLoadEntry(node *LoadEntry) loadentryOption {
	return func(m *LoadEntryMutation) {
		m.oldValue = func(context.Context) (*LoadEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LoadEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LoadEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LoadEntry entities.
func (m *LoadEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LoadEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LoadEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LoadEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPersonnelID sets the "personnel_id" field.
func (m *LoadEntryMutation) SetPersonnelID(u uuid.UUID) {
	m.personnel = &u
}

// PersonnelID returns the value of the "personnel_id" field in the mutation.
func (m *LoadEntryMutation) PersonnelID() (r uuid.UUID, exists bool) {
	v := m.personnel
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonnelID returns the old "personnel_id" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldPersonnelID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonnelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonnelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonnelID: %w", err)
	}
	return oldValue.PersonnelID, nil
}

// ResetPersonnelID resets all changes to the "personnel_id" field.
func (m *LoadEntryMutation) ResetPersonnelID() {
	m.personnel = nil
}

// SetDay sets the "day" field.
func (m *LoadEntryMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *LoadEntryMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *LoadEntryMutation) ResetDay() {
	m.day = nil
}

// SetTimeStart sets the "time_start" field.
func (m *LoadEntryMutation) SetTimeStart(s string) {
	m.time_start = &s
}

// TimeStart returns the value of the "time_start" field in the mutation.
func (m *LoadEntryMutation) TimeStart() (r string, exists bool) {
	v := m.time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeStart returns the old "time_start" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldTimeStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeStart: %w", err)
	}
	return oldValue.TimeStart, nil
}

// ResetTimeStart resets all changes to the "time_start" field.
func (m *LoadEntryMutation) ResetTimeStart() {
	m.time_start = nil
}

// SetTimeEnd sets the "time_end" field.
func (m *LoadEntryMutation) SetTimeEnd(s string) {
	m.time_end = &s
}

// TimeEnd returns the value of the "time_end" field in the mutation.
func (m *LoadEntryMutation) TimeEnd() (r string, exists bool) {
	v := m.time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeEnd returns the old "time_end" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldTimeEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeEnd: %w", err)
	}
	return oldValue.TimeEnd, nil
}

// ClearTimeEnd clears the value of the "time_end" field.
func (m *LoadEntryMutation) ClearTimeEnd() {
	m.time_end = nil
	m.clearedFields[loadentry.FieldTimeEnd] = struct{}{}
}

// TimeEndCleared returns if the "time_end" field was cleared in this mutation.
func (m *LoadEntryMutation) TimeEndCleared() bool {
	_, ok := m.clearedFields[loadentry.FieldTimeEnd]
	return ok
}

// ResetTimeEnd resets all changes to the "time_end" field.
func (m *LoadEntryMutation) ResetTimeEnd() {
	m.time_end = nil
	delete(m.clearedFields, loadentry.FieldTimeEnd)
}

// SetSubject sets the "subject" field.
func (m *LoadEntryMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *LoadEntryMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *LoadEntryMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[loadentry.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *LoadEntryMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[loadentry.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *LoadEntryMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, loadentry.FieldSubject)
}

// SetSection sets the "section" field.
func (m *LoadEntryMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *LoadEntryMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ClearSection clears the value of the "section" field.
func (m *LoadEntryMutation) ClearSection() {
	m.section = nil
	m.clearedFields[loadentry.FieldSection] = struct{}{}
}

// SectionCleared returns if the "section" field was cleared in this mutation.
func (m *LoadEntryMutation) SectionCleared() bool {
	_, ok := m.clearedFields[loadentry.FieldSection]
	return ok
}

// ResetSection resets all changes to the "section" field.
func (m *LoadEntryMutation) ResetSection() {
	m.section = nil
	delete(m.clearedFields, loadentry.FieldSection)
}

// SetCreatedAt sets the "created_at" field.
func (m *LoadEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LoadEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LoadEntry entity.
// If the LoadEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LoadEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LoadEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPersonnel clears the "personnel" edge to the Personnel entity.
func (m *LoadEntryMutation) ClearPersonnel() {
	m.clearedpersonnel = true
	m.clearedFields[loadentry.FieldPersonnelID] = struct{}{}
}

// PersonnelCleared reports if the "personnel" edge to the Personnel entity was cleared.
func (m *LoadEntryMutation) PersonnelCleared() bool {
	return m.clearedpersonnel
}

// PersonnelIDs returns the "personnel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonnelID instead. It exists only for internal usage by the builders.
func (m *LoadEntryMutation) PersonnelIDs() (ids []uuid.UUID) {
	if id := m.personnel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPersonnel resets all changes to the "personnel" edge.
func (m *LoadEntryMutation) ResetPersonnel() {
	m.personnel = nil
	m.clearedpersonnel = false
}

// Where appends a list predicates to the LoadEntryMutation builder.
func (m *LoadEntryMutation) Where(ps ...predicate.LoadEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LoadEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LoadEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LoadEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LoadEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LoadEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LoadEntry).
func (m *LoadEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LoadEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.personnel != nil {
		fields = append(fields, loadentry.FieldPersonnelID)
	}
	if m.day != nil {
		fields = append(fields, loadentry.FieldDay)
	}
	if m.time_start != nil {
		fields = append(fields, loadentry.FieldTimeStart)
	}
	if m.time_end != nil {
		fields = append(fields, loadentry.FieldTimeEnd)
	}
	if m.subject != nil {
		fields = append(fields, loadentry.FieldSubject)
	}
	if m.section != nil {
		fields = append(fields, loadentry.FieldSection)
	}
	if m.created_at != nil {
		fields = append(fields, loadentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LoadEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case loadentry.FieldPersonnelID:
		return m.PersonnelID()
	case loadentry.FieldDay:
		return m.Day()
	case loadentry.FieldTimeStart:
		return m.TimeStart()
	case loadentry.FieldTimeEnd:
		return m.TimeEnd()
	case loadentry.FieldSubject:
		return m.Subject()
	case loadentry.FieldSection:
		return m.Section()
	case loadentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LoadEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case loadentry.FieldPersonnelID:
		return m.OldPersonnelID(ctx)
	case loadentry.FieldDay:
		return m.OldDay(ctx)
	case loadentry.FieldTimeStart:
		return m.OldTimeStart(ctx)
	case loadentry.FieldTimeEnd:
		return m.OldTimeEnd(ctx)
	case loadentry.FieldSubject:
		return m.OldSubject(ctx)
	case loadentry.FieldSection:
		return m.OldSection(ctx)
	case loadentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LoadEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case loadentry.FieldPersonnelID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonnelID(v)
		return nil
	case loadentry.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case loadentry.FieldTimeStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeStart(v)
		return nil
	case loadentry.FieldTimeEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeEnd(v)
		return nil
	case loadentry.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case loadentry.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case loadentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LoadEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LoadEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LoadEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LoadEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LoadEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LoadEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(loadentry.FieldTimeEnd) {
		fields = append(fields, loadentry.FieldTimeEnd)
	}
	if m.FieldCleared(loadentry.FieldSubject) {
		fields = append(fields, loadentry.FieldSubject)
	}
	if m.FieldCleared(loadentry.FieldSection) {
		fields = append(fields, loadentry.FieldSection)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LoadEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LoadEntryMutation) ClearField(name string) error {
	switch name {
	case loadentry.FieldTimeEnd:
		m.ClearTimeEnd()
		return nil
	case loadentry.FieldSubject:
		m.ClearSubject()
		return nil
	case loadentry.FieldSection:
		m.ClearSection()
		return nil
	}
	return fmt.Errorf("unknown LoadEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LoadEntryMutation) ResetField(name string) error {
	switch name {
	case loadentry.FieldPersonnelID:
		m.ResetPersonnelID()
		return nil
	case loadentry.FieldDay:
		m.ResetDay()
		return nil
	case loadentry.FieldTimeStart:
		m.ResetTimeStart()
		return nil
	case loadentry.FieldTimeEnd:
		m.ResetTimeEnd()
		return nil
	case loadentry.FieldSubject:
		m.ResetSubject()
		return nil
	case loadentry.FieldSection:
		m.ResetSection()
		return nil
	case loadentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LoadEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LoadEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.personnel != nil {
		edges = append(edges, loadentry.EdgePersonnel)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LoadEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case loadentry.EdgePersonnel:
		if id := m.personnel; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LoadEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LoadEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LoadEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpersonnel {
		edges = append(edges, loadentry.EdgePersonnel)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LoadEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case loadentry.EdgePersonnel:
		return m.clearedpersonnel
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LoadEntryMutation) ClearEdge(name string) error {
	switch name {
	case loadentry.EdgePersonnel:
		m.ClearPersonnel()
		return nil
	}
	return fmt.Errorf("unknown LoadEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LoadEntryMutation) ResetEdge(name string) error {
	switch name {
	case loadentry.EdgePersonnel:
		m.ResetPersonnel()
		return nil
	}
	return fmt.Errorf("unknown LoadEntry edge %s", name)
}

// PersonnelMutation represents an operation that mutates the Personnel nodes in the graph.
type PersonnelMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	variant       *string
	position      *string
	department    *string
	email         *string
	phone         *string
	sss_no        *string
	philhealth_no *string
	birthdate     *string
	address       *string
	employment    *string
	record_text   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	loads         map[uuid.UUID]struct{}
	removedloads  map[uuid.UUID]struct{}
	clearedloads  bool
	done          bool
	oldValue      func(context.Context) (*Personnel, error)
	predicates    []predicate.Personnel
}

var _ ent.Mutation = (*PersonnelMutation)(nil)

// personnelOption allows management of the mutation configuration using functional options.
type personnelOption func(*PersonnelMutation)

// newPersonnelMutation creates new mutation for the Personnel entity.
func newPersonnelMutation(c config, op Op, opts ...personnelOption) *PersonnelMutation {
	m := &PersonnelMutation{
		config:        c,
		op:            op,
		typ:           TypePersonnel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonnelID sets the ID field of the mutation.
func withPersonnelID(id uuid.UUID) personnelOption {
	return func(m *PersonnelMutation) {
		var (
			err   error
			once  sync.Once
			value *Personnel
		)
		m.oldValue = func(ctx context.Context) (*Personnel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Personnel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersonnel sets the old Personnel of the mutation.
func withPersonnel(node *Personnel) personnelOption {
	return func(m *PersonnelMutation) {
		m.oldValue = func(context.Context) (*Personnel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonnelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonnelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Personnel entities.
func (m *PersonnelMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonnelMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonnelMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Personnel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PersonnelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PersonnelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PersonnelMutation) ResetName() {
	m.name = nil
}

// SetVariant sets the "variant" field.
func (m *PersonnelMutation) SetVariant(s string) {
	m.variant = &s
}

// Variant returns the value of the "variant" field in the mutation.
func (m *PersonnelMutation) Variant() (r string, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariant returns the old "variant" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldVariant(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariant is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariant requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariant: %w", err)
	}
	return oldValue.Variant, nil
}

// ResetVariant resets all changes to the "variant" field.
func (m *PersonnelMutation) ResetVariant() {
	m.variant = nil
}

// SetPosition sets the "position" field.
func (m *PersonnelMutation) SetPosition(s string) {
	m.position = &s
}

// Position returns the value of the "position" field in the mutation.
func (m *PersonnelMutation) Position() (r string, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldPosition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// ClearPosition clears the value of the "position" field.
func (m *PersonnelMutation) ClearPosition() {
	m.position = nil
	m.clearedFields[personnel.FieldPosition] = struct{}{}
}

// PositionCleared returns if the "position" field was cleared in this mutation.
func (m *PersonnelMutation) PositionCleared() bool {
	_, ok := m.clearedFields[personnel.FieldPosition]
	return ok
}

// ResetPosition resets all changes to the "position" field.
func (m *PersonnelMutation) ResetPosition() {
	m.position = nil
	delete(m.clearedFields, personnel.FieldPosition)
}

// SetDepartment sets the "department" field.
func (m *PersonnelMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *PersonnelMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *PersonnelMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[personnel.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *PersonnelMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[personnel.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *PersonnelMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, personnel.FieldDepartment)
}

// SetEmail sets the "email" field.
func (m *PersonnelMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *PersonnelMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *PersonnelMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[personnel.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *PersonnelMutation) EmailCleared() bool {
	_, ok := m.clearedFields[personnel.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *PersonnelMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, personnel.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *PersonnelMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *PersonnelMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *PersonnelMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[personnel.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *PersonnelMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[personnel.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *PersonnelMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, personnel.FieldPhone)
}

// SetSssNo sets the "sss_no" field.
func (m *PersonnelMutation) SetSssNo(s string) {
	m.sss_no = &s
}

// SssNo returns the value of the "sss_no" field in the mutation.
func (m *PersonnelMutation) SssNo() (r string, exists bool) {
	v := m.sss_no
	if v == nil {
		return
	}
	return *v, true
}

// OldSssNo returns the old "sss_no" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldSssNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSssNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSssNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSssNo: %w", err)
	}
	return oldValue.SssNo, nil
}

// ClearSssNo clears the value of the "sss_no" field.
func (m *PersonnelMutation) ClearSssNo() {
	m.sss_no = nil
	m.clearedFields[personnel.FieldSssNo] = struct{}{}
}

// SssNoCleared returns if the "sss_no" field was cleared in this mutation.
func (m *PersonnelMutation) SssNoCleared() bool {
	_, ok := m.clearedFields[personnel.FieldSssNo]
	return ok
}

// ResetSssNo resets all changes to the "sss_no" field.
func (m *PersonnelMutation) ResetSssNo() {
	m.sss_no = nil
	delete(m.clearedFields, personnel.FieldSssNo)
}

// SetPhilhealthNo sets the "philhealth_no" field.
func (m *PersonnelMutation) SetPhilhealthNo(s string) {
	m.philhealth_no = &s
}

// PhilhealthNo returns the value of the "philhealth_no" field in the mutation.
func (m *PersonnelMutation) PhilhealthNo() (r string, exists bool) {
	v := m.philhealth_no
	if v == nil {
		return
	}
	return *v, true
}

// OldPhilhealthNo returns the old "philhealth_no" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldPhilhealthNo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhilhealthNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhilhealthNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhilhealthNo: %w", err)
	}
	return oldValue.PhilhealthNo, nil
}

// ClearPhilhealthNo clears the value of the "philhealth_no" field.
func (m *PersonnelMutation) ClearPhilhealthNo() {
	m.philhealth_no = nil
	m.clearedFields[personnel.FieldPhilhealthNo] = struct{}{}
}

// PhilhealthNoCleared returns if the "philhealth_no" field was cleared in this mutation.
func (m *PersonnelMutation) PhilhealthNoCleared() bool {
	_, ok := m.clearedFields[personnel.FieldPhilhealthNo]
	return ok
}

// ResetPhilhealthNo resets all changes to the "philhealth_no" field.
func (m *PersonnelMutation) ResetPhilhealthNo() {
	m.philhealth_no = nil
	delete(m.clearedFields, personnel.FieldPhilhealthNo)
}

// SetBirthdate sets the "birthdate" field.
func (m *PersonnelMutation) SetBirthdate(s string) {
	m.birthdate = &s
}

// Birthdate returns the value of the "birthdate" field in the mutation.
func (m *PersonnelMutation) Birthdate() (r string, exists bool) {
	v := m.birthdate
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthdate returns the old "birthdate" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldBirthdate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthdate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthdate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthdate: %w", err)
	}
	return oldValue.Birthdate, nil
}

// ClearBirthdate clears the value of the "birthdate" field.
func (m *PersonnelMutation) ClearBirthdate() {
	m.birthdate = nil
	m.clearedFields[personnel.FieldBirthdate] = struct{}{}
}

// BirthdateCleared returns if the "birthdate" field was cleared in this mutation.
func (m *PersonnelMutation) BirthdateCleared() bool {
	_, ok := m.clearedFields[personnel.FieldBirthdate]
	return ok
}

// ResetBirthdate resets all changes to the "birthdate" field.
func (m *PersonnelMutation) ResetBirthdate() {
	m.birthdate = nil
	delete(m.clearedFields, personnel.FieldBirthdate)
}

// SetAddress sets the "address" field.
func (m *PersonnelMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *PersonnelMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *PersonnelMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[personnel.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *PersonnelMutation) AddressCleared() bool {
	_, ok := m.clearedFields[personnel.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *PersonnelMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, personnel.FieldAddress)
}

// SetEmployment sets the "employment" field.
func (m *PersonnelMutation) SetEmployment(s string) {
	m.employment = &s
}

// Employment returns the value of the "employment" field in the mutation.
func (m *PersonnelMutation) Employment() (r string, exists bool) {
	v := m.employment
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployment returns the old "employment" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldEmployment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployment: %w", err)
	}
	return oldValue.Employment, nil
}

// ClearEmployment clears the value of the "employment" field.
func (m *PersonnelMutation) ClearEmployment() {
	m.employment = nil
	m.clearedFields[personnel.FieldEmployment] = struct{}{}
}

// EmploymentCleared returns if the "employment" field was cleared in this mutation.
func (m *PersonnelMutation) EmploymentCleared() bool {
	_, ok := m.clearedFields[personnel.FieldEmployment]
	return ok
}

// ResetEmployment resets all changes to the "employment" field.
func (m *PersonnelMutation) ResetEmployment() {
	m.employment = nil
	delete(m.clearedFields, personnel.FieldEmployment)
}

// SetRecordText sets the "record_text" field.
func (m *PersonnelMutation) SetRecordText(s string) {
	m.record_text = &s
}

// RecordText returns the value of the "record_text" field in the mutation.
func (m *PersonnelMutation) RecordText() (r string, exists bool) {
	v := m.record_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordText returns the old "record_text" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldRecordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordText: %w", err)
	}
	return oldValue.RecordText, nil
}

// ClearRecordText clears the value of the "record_text" field.
func (m *PersonnelMutation) ClearRecordText() {
	m.record_text = nil
	m.clearedFields[personnel.FieldRecordText] = struct{}{}
}

// RecordTextCleared returns if the "record_text" field was cleared in this mutation.
func (m *PersonnelMutation) RecordTextCleared() bool {
	_, ok := m.clearedFields[personnel.FieldRecordText]
	return ok
}

// ResetRecordText resets all changes to the "record_text" field.
func (m *PersonnelMutation) ResetRecordText() {
	m.record_text = nil
	delete(m.clearedFields, personnel.FieldRecordText)
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonnelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonnelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonnelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PersonnelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PersonnelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Personnel entity.
// If the Personnel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonnelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PersonnelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddLoadIDs adds the "loads" edge to the LoadEntry entity by ids.
func (m *PersonnelMutation) AddLoadIDs(ids ...uuid.UUID) {
	if m.loads == nil {
		m.loads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.loads[ids[i]] = struct{}{}
	}
}

// ClearLoads clears the "loads" edge to the LoadEntry entity.
func (m *PersonnelMutation) ClearLoads() {
	m.clearedloads = true
}

// LoadsCleared reports if the "loads" edge to the LoadEntry entity was cleared.
func (m *PersonnelMutation) LoadsCleared() bool {
	return m.clearedloads
}

// RemoveLoadIDs removes the "loads" edge to the LoadEntry entity by IDs.
func (m *PersonnelMutation) RemoveLoadIDs(ids ...uuid.UUID) {
	if m.removedloads == nil {
		m.removedloads = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.loads, ids[i])
		m.removedloads[ids[i]] = struct{}{}
	}
}

// RemovedLoads returns the removed IDs of the "loads" edge to the LoadEntry entity.
func (m *PersonnelMutation) RemovedLoadsIDs() (ids []uuid.UUID) {
	for id := range m.removedloads {
		ids = append(ids, id)
	}
	return
}

// LoadsIDs returns the "loads" edge IDs in the mutation.
func (m *PersonnelMutation) LoadsIDs() (ids []uuid.UUID) {
	for id := range m.loads {
		ids = append(ids, id)
	}
	return
}

// ResetLoads resets all changes to the "loads" edge.
func (m *PersonnelMutation) ResetLoads() {
	m.loads = nil
	m.clearedloads = false
	m.removedloads = nil
}

// Where appends a list predicates to the PersonnelMutation builder.
func (m *PersonnelMutation) Where(ps ...predicate.Personnel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonnelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonnelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Personnel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonnelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonnelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Personnel).
func (m *PersonnelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonnelMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.name != nil {
		fields = append(fields, personnel.FieldName)
	}
	if m.variant != nil {
		fields = append(fields, personnel.FieldVariant)
	}
	if m.position != nil {
		fields = append(fields, personnel.FieldPosition)
	}
	if m.department != nil {
		fields = append(fields, personnel.FieldDepartment)
	}
	if m.email != nil {
		fields = append(fields, personnel.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, personnel.FieldPhone)
	}
	if m.sss_no != nil {
		fields = append(fields, personnel.FieldSssNo)
	}
	if m.philhealth_no != nil {
		fields = append(fields, personnel.FieldPhilhealthNo)
	}
	if m.birthdate != nil {
		fields = append(fields, personnel.FieldBirthdate)
	}
	if m.address != nil {
		fields = append(fields, personnel.FieldAddress)
	}
	if m.employment != nil {
		fields = append(fields, personnel.FieldEmployment)
	}
	if m.record_text != nil {
		fields = append(fields, personnel.FieldRecordText)
	}
	if m.created_at != nil {
		fields = append(fields, personnel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, personnel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonnelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case personnel.FieldName:
		return m.Name()
	case personnel.FieldVariant:
		return m.Variant()
	case personnel.FieldPosition:
		return m.Position()
	case personnel.FieldDepartment:
		return m.Department()
	case personnel.FieldEmail:
		return m.Email()
	case personnel.FieldPhone:
		return m.Phone()
	case personnel.FieldSssNo:
		return m.SssNo()
	case personnel.FieldPhilhealthNo:
		return m.PhilhealthNo()
	case personnel.FieldBirthdate:
		return m.Birthdate()
	case personnel.FieldAddress:
		return m.Address()
	case personnel.FieldEmployment:
		return m.Employment()
	case personnel.FieldRecordText:
		return m.RecordText()
	case personnel.FieldCreatedAt:
		return m.CreatedAt()
	case personnel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonnelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case personnel.FieldName:
		return m.OldName(ctx)
	case personnel.FieldVariant:
		return m.OldVariant(ctx)
	case personnel.FieldPosition:
		return m.OldPosition(ctx)
	case personnel.FieldDepartment:
		return m.OldDepartment(ctx)
	case personnel.FieldEmail:
		return m.OldEmail(ctx)
	case personnel.FieldPhone:
		return m.OldPhone(ctx)
	case personnel.FieldSssNo:
		return m.OldSssNo(ctx)
	case personnel.FieldPhilhealthNo:
		return m.OldPhilhealthNo(ctx)
	case personnel.FieldBirthdate:
		return m.OldBirthdate(ctx)
	case personnel.FieldAddress:
		return m.OldAddress(ctx)
	case personnel.FieldEmployment:
		return m.OldEmployment(ctx)
	case personnel.FieldRecordText:
		return m.OldRecordText(ctx)
	case personnel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case personnel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Personnel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonnelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case personnel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case personnel.FieldVariant:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariant(v)
		return nil
	case personnel.FieldPosition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case personnel.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case personnel.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case personnel.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case personnel.FieldSssNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSssNo(v)
		return nil
	case personnel.FieldPhilhealthNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhilhealthNo(v)
		return nil
	case personnel.FieldBirthdate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthdate(v)
		return nil
	case personnel.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case personnel.FieldEmployment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployment(v)
		return nil
	case personnel.FieldRecordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordText(v)
		return nil
	case personnel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case personnel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Personnel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonnelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonnelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonnelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Personnel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonnelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(personnel.FieldPosition) {
		fields = append(fields, personnel.FieldPosition)
	}
	if m.FieldCleared(personnel.FieldDepartment) {
		fields = append(fields, personnel.FieldDepartment)
	}
	if m.FieldCleared(personnel.FieldEmail) {
		fields = append(fields, personnel.FieldEmail)
	}
	if m.FieldCleared(personnel.FieldPhone) {
		fields = append(fields, personnel.FieldPhone)
	}
	if m.FieldCleared(personnel.FieldSssNo) {
		fields = append(fields, personnel.FieldSssNo)
	}
	if m.FieldCleared(personnel.FieldPhilhealthNo) {
		fields = append(fields, personnel.FieldPhilhealthNo)
	}
	if m.FieldCleared(personnel.FieldBirthdate) {
		fields = append(fields, personnel.FieldBirthdate)
	}
	if m.FieldCleared(personnel.FieldAddress) {
		fields = append(fields, personnel.FieldAddress)
	}
	if m.FieldCleared(personnel.FieldEmployment) {
		fields = append(fields, personnel.FieldEmployment)
	}
	if m.FieldCleared(personnel.FieldRecordText) {
		fields = append(fields, personnel.FieldRecordText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonnelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonnelMutation) ClearField(name string) error {
	switch name {
	case personnel.FieldPosition:
		m.ClearPosition()
		return nil
	case personnel.FieldDepartment:
		m.ClearDepartment()
		return nil
	case personnel.FieldEmail:
		m.ClearEmail()
		return nil
	case personnel.FieldPhone:
		m.ClearPhone()
		return nil
	case personnel.FieldSssNo:
		m.ClearSssNo()
		return nil
	case personnel.FieldPhilhealthNo:
		m.ClearPhilhealthNo()
		return nil
	case personnel.FieldBirthdate:
		m.ClearBirthdate()
		return nil
	case personnel.FieldAddress:
		m.ClearAddress()
		return nil
	case personnel.FieldEmployment:
		m.ClearEmployment()
		return nil
	case personnel.FieldRecordText:
		m.ClearRecordText()
		return nil
	}
	return fmt.Errorf("unknown Personnel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonnelMutation) ResetField(name string) error {
	switch name {
	case personnel.FieldName:
		m.ResetName()
		return nil
	case personnel.FieldVariant:
		m.ResetVariant()
		return nil
	case personnel.FieldPosition:
		m.ResetPosition()
		return nil
	case personnel.FieldDepartment:
		m.ResetDepartment()
		return nil
	case personnel.FieldEmail:
		m.ResetEmail()
		return nil
	case personnel.FieldPhone:
		m.ResetPhone()
		return nil
	case personnel.FieldSssNo:
		m.ResetSssNo()
		return nil
	case personnel.FieldPhilhealthNo:
		m.ResetPhilhealthNo()
		return nil
	case personnel.FieldBirthdate:
		m.ResetBirthdate()
		return nil
	case personnel.FieldAddress:
		m.ResetAddress()
		return nil
	case personnel.FieldEmployment:
		m.ResetEmployment()
		return nil
	case personnel.FieldRecordText:
		m.ResetRecordText()
		return nil
	case personnel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case personnel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Personnel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonnelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.loads != nil {
		edges = append(edges, personnel.EdgeLoads)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonnelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case personnel.EdgeLoads:
		ids := make([]ent.Value, 0, len(m.loads))
		for id := range m.loads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonnelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedloads != nil {
		edges = append(edges, personnel.EdgeLoads)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonnelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case personnel.EdgeLoads:
		ids := make([]ent.Value, 0, len(m.removedloads))
		for id := range m.removedloads {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonnelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedloads {
		edges = append(edges, personnel.EdgeLoads)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonnelMutation) EdgeCleared(name string) bool {
	switch name {
	case personnel.EdgeLoads:
		return m.clearedloads
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonnelMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Personnel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonnelMutation) ResetEdge(name string) error {
	switch name {
	case personnel.EdgeLoads:
		m.ResetLoads()
		return nil
	}
	return fmt.Errorf("unknown Personnel edge %s", name)
}

// SourceFileMutation represents an operation that mutates the SourceFile nodes in the graph.
type SourceFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *[]byte
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*SourceFile, error)
	predicates    []predicate.SourceFile
}

var _ ent.Mutation = (*SourceFileMutation)(nil)

// sourcefileOption allows management of the mutation configuration using functional options.
type sourcefileOption func(*SourceFileMutation)

// newSourceFileMutation creates new mutation for the SourceFile entity.
func newSourceFileMutation(c config, op Op, opts ...sourcefileOption) *SourceFileMutation {
	m := &SourceFileMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceFileID sets the ID field of the mutation.
func withSourceFileID(id uuid.UUID) sourcefileOption {
	return func(m *SourceFileMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceFile
		)
		m.oldValue = func(ctx context.Context) (*SourceFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceFile sets the old SourceFile of the mutation.
func withSourceFile(node *SourceFile) sourcefileOption {
	return func(m *SourceFileMutation) {
		m.oldValue = func(context.Context) (*SourceFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceFile entities.
func (m *SourceFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *SourceFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *SourceFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *SourceFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *SourceFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *SourceFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *SourceFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *SourceFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *SourceFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *SourceFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *SourceFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *SourceFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *SourceFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *SourceFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *SourceFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *SourceFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *SourceFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the SourceFile entity.
// If the SourceFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *SourceFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *SourceFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *SourceFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *SourceFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *SourceFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *SourceFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *SourceFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *SourceFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the SourceFileMutation builder.
func (m *SourceFileMutation) Where(ps ...predicate.SourceFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceFile).
func (m *SourceFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceFileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, sourcefile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, sourcefile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, sourcefile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, sourcefile.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, sourcefile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldSourcePath:
		return m.SourcePath()
	case sourcefile.FieldContentHash:
		return m.ContentHash()
	case sourcefile.FieldFilename:
		return m.Filename()
	case sourcefile.FieldFileExt:
		return m.FileExt()
	case sourcefile.FieldFileSize:
		return m.FileSize()
	case sourcefile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcefile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case sourcefile.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourcefile.FieldFilename:
		return m.OldFilename(ctx)
	case sourcefile.FieldFileExt:
		return m.OldFileExt(ctx)
	case sourcefile.FieldFileSize:
		return m.OldFileSize(ctx)
	case sourcefile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case sourcefile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourcefile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case sourcefile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case sourcefile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, sourcefile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcefile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcefile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown SourceFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceFileMutation) ResetField(name string) error {
	switch name {
	case sourcefile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case sourcefile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourcefile.FieldFilename:
		m.ResetFilename()
		return nil
	case sourcefile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case sourcefile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case sourcefile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourcefile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, sourcefile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceFileMutation) EdgeCleared(name string) bool {
	switch name {
	case sourcefile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceFileMutation) ResetEdge(name string) error {
	switch name {
	case sourcefile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown SourceFile edge %s", name)
}

// StudentMutation represents an operation that mutates the Student nodes in the graph.
type StudentMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	student_no      *string
	name            *string
	program         *string
	year_level      *string
	section         *string
	semester        *string
	school_year     *string
	adviser         *string
	record_text     *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	subjects        map[uuid.UUID]struct{}
	removedsubjects map[uuid.UUID]struct{}
	clearedsubjects bool
	grades          map[uuid.UUID]struct{}
	removedgrades   map[uuid.UUID]struct{}
	clearedgrades   bool
	done            bool
	oldValue        func(context.Context) (*Student, error)
	predicates      []predicate.Student
}

var _ ent.Mutation = (*StudentMutation)(nil)

// studentOption allows management of the mutation configuration using functional options.
type studentOption func(*StudentMutation)

// newStudentMutation creates new mutation for the Student entity.
func newStudentMutation(c config, op Op, opts ...studentOption) *StudentMutation {
	m := &StudentMutation{
		config:        c,
		op:            op,
		typ:           TypeStudent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentID sets the ID field of the mutation.
func withStudentID(id uuid.UUID) studentOption {
	return func(m *StudentMutation) {
		var (
			err   error
			once  sync.Once
			value *Student
		)
		m.oldValue = func(ctx context.Context) (*Student, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Student.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudent sets the old Student of the mutation.
func withStudent(node *Student) studentOption {
	return func(m *StudentMutation) {
		m.oldValue = func(context.Context) (*Student, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Student entities.
func (m *StudentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Student.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentNo sets the "student_no" field.
func (m *StudentMutation) SetStudentNo(s string) {
	m.student_no = &s
}

// StudentNo returns the value of the "student_no" field in the mutation.
func (m *StudentMutation) StudentNo() (r string, exists bool) {
	v := m.student_no
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentNo returns the old "student_no" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldStudentNo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentNo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentNo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentNo: %w", err)
	}
	return oldValue.StudentNo, nil
}

// ClearStudentNo clears the value of the "student_no" field.
func (m *StudentMutation) ClearStudentNo() {
	m.student_no = nil
	m.clearedFields[student.FieldStudentNo] = struct{}{}
}

// StudentNoCleared returns if the "student_no" field was cleared in this mutation.
func (m *StudentMutation) StudentNoCleared() bool {
	_, ok := m.clearedFields[student.FieldStudentNo]
	return ok
}

// ResetStudentNo resets all changes to the "student_no" field.
func (m *StudentMutation) ResetStudentNo() {
	m.student_no = nil
	delete(m.clearedFields, student.FieldStudentNo)
}

// SetName sets the "name" field.
func (m *StudentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StudentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StudentMutation) ResetName() {
	m.name = nil
}

// SetProgram sets the "program" field.
func (m *StudentMutation) SetProgram(s string) {
	m.program = &s
}

// Program returns the value of the "program" field in the mutation.
func (m *StudentMutation) Program() (r string, exists bool) {
	v := m.program
	if v == nil {
		return
	}
	return *v, true
}

// OldProgram returns the old "program" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldProgram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgram: %w", err)
	}
	return oldValue.Program, nil
}

// ClearProgram clears the value of the "program" field.
func (m *StudentMutation) ClearProgram() {
	m.program = nil
	m.clearedFields[student.FieldProgram] = struct{}{}
}

// ProgramCleared returns if the "program" field was cleared in this mutation.
func (m *StudentMutation) ProgramCleared() bool {
	_, ok := m.clearedFields[student.FieldProgram]
	return ok
}

// ResetProgram resets all changes to the "program" field.
func (m *StudentMutation) ResetProgram() {
	m.program = nil
	delete(m.clearedFields, student.FieldProgram)
}

// SetYearLevel sets the "year_level" field.
func (m *StudentMutation) SetYearLevel(s string) {
	m.year_level = &s
}

// YearLevel returns the value of the "year_level" field in the mutation.
func (m *StudentMutation) YearLevel() (r string, exists bool) {
	v := m.year_level
	if v == nil {
		return
	}
	return *v, true
}

// OldYearLevel returns the old "year_level" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldYearLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearLevel: %w", err)
	}
	return oldValue.YearLevel, nil
}

// ClearYearLevel clears the value of the "year_level" field.
func (m *StudentMutation) ClearYearLevel() {
	m.year_level = nil
	m.clearedFields[student.FieldYearLevel] = struct{}{}
}

// YearLevelCleared returns if the "year_level" field was cleared in this mutation.
func (m *StudentMutation) YearLevelCleared() bool {
	_, ok := m.clearedFields[student.FieldYearLevel]
	return ok
}

// ResetYearLevel resets all changes to the "year_level" field.
func (m *StudentMutation) ResetYearLevel() {
	m.year_level = nil
	delete(m.clearedFields, student.FieldYearLevel)
}

// SetSection sets the "section" field.
func (m *StudentMutation) SetSection(s string) {
	m.section = &s
}

// Section returns the value of the "section" field in the mutation.
func (m *StudentMutation) Section() (r string, exists bool) {
	v := m.section
	if v == nil {
		return
	}
	return *v, true
}

// OldSection returns the old "section" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldSection(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSection: %w", err)
	}
	return oldValue.Section, nil
}

// ClearSection clears the value of the "section" field.
func (m *StudentMutation) ClearSection() {
	m.section = nil
	m.clearedFields[student.FieldSection] = struct{}{}
}

// SectionCleared returns if the "section" field was cleared in this mutation.
func (m *StudentMutation) SectionCleared() bool {
	_, ok := m.clearedFields[student.FieldSection]
	return ok
}

// ResetSection resets all changes to the "section" field.
func (m *StudentMutation) ResetSection() {
	m.section = nil
	delete(m.clearedFields, student.FieldSection)
}

// SetSemester sets the "semester" field.
func (m *StudentMutation) SetSemester(s string) {
	m.semester = &s
}

// Semester returns the value of the "semester" field in the mutation.
func (m *StudentMutation) Semester() (r string, exists bool) {
	v := m.semester
	if v == nil {
		return
	}
	return *v, true
}

// OldSemester returns the old "semester" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldSemester(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSemester is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSemester requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSemester: %w", err)
	}
	return oldValue.Semester, nil
}

// ClearSemester clears the value of the "semester" field.
func (m *StudentMutation) ClearSemester() {
	m.semester = nil
	m.clearedFields[student.FieldSemester] = struct{}{}
}

// SemesterCleared returns if the "semester" field was cleared in this mutation.
func (m *StudentMutation) SemesterCleared() bool {
	_, ok := m.clearedFields[student.FieldSemester]
	return ok
}

// ResetSemester resets all changes to the "semester" field.
func (m *StudentMutation) ResetSemester() {
	m.semester = nil
	delete(m.clearedFields, student.FieldSemester)
}

// SetSchoolYear sets the "school_year" field.
func (m *StudentMutation) SetSchoolYear(s string) {
	m.school_year = &s
}

// SchoolYear returns the value of the "school_year" field in the mutation.
func (m *StudentMutation) SchoolYear() (r string, exists bool) {
	v := m.school_year
	if v == nil {
		return
	}
	return *v, true
}

// OldSchoolYear returns the old "school_year" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldSchoolYear(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchoolYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchoolYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchoolYear: %w", err)
	}
	return oldValue.SchoolYear, nil
}

// ClearSchoolYear clears the value of the "school_year" field.
func (m *StudentMutation) ClearSchoolYear() {
	m.school_year = nil
	m.clearedFields[student.FieldSchoolYear] = struct{}{}
}

// SchoolYearCleared returns if the "school_year" field was cleared in this mutation.
func (m *StudentMutation) SchoolYearCleared() bool {
	_, ok := m.clearedFields[student.FieldSchoolYear]
	return ok
}

// ResetSchoolYear resets all changes to the "school_year" field.
func (m *StudentMutation) ResetSchoolYear() {
	m.school_year = nil
	delete(m.clearedFields, student.FieldSchoolYear)
}

// SetAdviser sets the "adviser" field.
func (m *StudentMutation) SetAdviser(s string) {
	m.adviser = &s
}

// Adviser returns the value of the "adviser" field in the mutation.
func (m *StudentMutation) Adviser() (r string, exists bool) {
	v := m.adviser
	if v == nil {
		return
	}
	return *v, true
}

// OldAdviser returns the old "adviser" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldAdviser(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdviser is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdviser requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdviser: %w", err)
	}
	return oldValue.Adviser, nil
}

// ClearAdviser clears the value of the "adviser" field.
func (m *StudentMutation) ClearAdviser() {
	m.adviser = nil
	m.clearedFields[student.FieldAdviser] = struct{}{}
}

// AdviserCleared returns if the "adviser" field was cleared in this mutation.
func (m *StudentMutation) AdviserCleared() bool {
	_, ok := m.clearedFields[student.FieldAdviser]
	return ok
}

// ResetAdviser resets all changes to the "adviser" field.
func (m *StudentMutation) ResetAdviser() {
	m.adviser = nil
	delete(m.clearedFields, student.FieldAdviser)
}

// SetRecordText sets the "record_text" field.
func (m *StudentMutation) SetRecordText(s string) {
	m.record_text = &s
}

// RecordText returns the value of the "record_text" field in the mutation.
func (m *StudentMutation) RecordText() (r string, exists bool) {
	v := m.record_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordText returns the old "record_text" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldRecordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordText: %w", err)
	}
	return oldValue.RecordText, nil
}

// ClearRecordText clears the value of the "record_text" field.
func (m *StudentMutation) ClearRecordText() {
	m.record_text = nil
	m.clearedFields[student.FieldRecordText] = struct{}{}
}

// RecordTextCleared returns if the "record_text" field was cleared in this mutation.
func (m *StudentMutation) RecordTextCleared() bool {
	_, ok := m.clearedFields[student.FieldRecordText]
	return ok
}

// ResetRecordText resets all changes to the "record_text" field.
func (m *StudentMutation) ResetRecordText() {
	m.record_text = nil
	delete(m.clearedFields, student.FieldRecordText)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Student entity.
// If the Student object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSubjectIDs adds the "subjects" edge to the SubjectEntry entity by ids.
func (m *StudentMutation) AddSubjectIDs(ids ...uuid.UUID) {
	if m.subjects == nil {
		m.subjects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.subjects[ids[i]] = struct{}{}
	}
}

// ClearSubjects clears the "subjects" edge to the SubjectEntry entity.
func (m *StudentMutation) ClearSubjects() {
	m.clearedsubjects = true
}

// SubjectsCleared reports if the "subjects" edge to the SubjectEntry entity was cleared.
func (m *StudentMutation) SubjectsCleared() bool {
	return m.clearedsubjects
}

// RemoveSubjectIDs removes the "subjects" edge to the SubjectEntry entity by IDs.
func (m *StudentMutation) RemoveSubjectIDs(ids ...uuid.UUID) {
	if m.removedsubjects == nil {
		m.removedsubjects = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.subjects, ids[i])
		m.removedsubjects[ids[i]] = struct{}{}
	}
}

// RemovedSubjects returns the removed IDs of the "subjects" edge to the SubjectEntry entity.
func (m *StudentMutation) RemovedSubjectsIDs() (ids []uuid.UUID) {
	for id := range m.removedsubjects {
		ids = append(ids, id)
	}
	return
}

// SubjectsIDs returns the "subjects" edge IDs in the mutation.
func (m *StudentMutation) SubjectsIDs() (ids []uuid.UUID) {
	for id := range m.subjects {
		ids = append(ids, id)
	}
	return
}

// ResetSubjects resets all changes to the "subjects" edge.
func (m *StudentMutation) ResetSubjects() {
	m.subjects = nil
	m.clearedsubjects = false
	m.removedsubjects = nil
}

// AddGradeIDs adds the "grades" edge to the GradeReport entity by ids.
func (m *StudentMutation) AddGradeIDs(ids ...uuid.UUID) {
	if m.grades == nil {
		m.grades = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.grades[ids[i]] = struct{}{}
	}
}

// ClearGrades clears the "grades" edge to the GradeReport entity.
func (m *StudentMutation) ClearGrades() {
	m.clearedgrades = true
}

// GradesCleared reports if the "grades" edge to the GradeReport entity was cleared.
func (m *StudentMutation) GradesCleared() bool {
	return m.clearedgrades
}

// RemoveGradeIDs removes the "grades" edge to the GradeReport entity by IDs.
func (m *StudentMutation) RemoveGradeIDs(ids ...uuid.UUID) {
	if m.removedgrades == nil {
		m.removedgrades = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.grades, ids[i])
		m.removedgrades[ids[i]] = struct{}{}
	}
}

// RemovedGrades returns the removed IDs of the "grades" edge to the GradeReport entity.
func (m *StudentMutation) RemovedGradesIDs() (ids []uuid.UUID) {
	for id := range m.removedgrades {
		ids = append(ids, id)
	}
	return
}

// GradesIDs returns the "grades" edge IDs in the mutation.
func (m *StudentMutation) GradesIDs() (ids []uuid.UUID) {
	for id := range m.grades {
		ids = append(ids, id)
	}
	return
}

// ResetGrades resets all changes to the "grades" edge.
func (m *StudentMutation) ResetGrades() {
	m.grades = nil
	m.clearedgrades = false
	m.removedgrades = nil
}

// Where appends a list predicates to the StudentMutation builder.
func (m *StudentMutation) Where(ps ...predicate.Student) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Student, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Student).
func (m *StudentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.student_no != nil {
		fields = append(fields, student.FieldStudentNo)
	}
	if m.name != nil {
		fields = append(fields, student.FieldName)
	}
	if m.program != nil {
		fields = append(fields, student.FieldProgram)
	}
	if m.year_level != nil {
		fields = append(fields, student.FieldYearLevel)
	}
	if m.section != nil {
		fields = append(fields, student.FieldSection)
	}
	if m.semester != nil {
		fields = append(fields, student.FieldSemester)
	}
	if m.school_year != nil {
		fields = append(fields, student.FieldSchoolYear)
	}
	if m.adviser != nil {
		fields = append(fields, student.FieldAdviser)
	}
	if m.record_text != nil {
		fields = append(fields, student.FieldRecordText)
	}
	if m.created_at != nil {
		fields = append(fields, student.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, student.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case student.FieldStudentNo:
		return m.StudentNo()
	case student.FieldName:
		return m.Name()
	case student.FieldProgram:
		return m.Program()
	case student.FieldYearLevel:
		return m.YearLevel()
	case student.FieldSection:
		return m.Section()
	case student.FieldSemester:
		return m.Semester()
	case student.FieldSchoolYear:
		return m.SchoolYear()
	case student.FieldAdviser:
		return m.Adviser()
	case student.FieldRecordText:
		return m.RecordText()
	case student.FieldCreatedAt:
		return m.CreatedAt()
	case student.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case student.FieldStudentNo:
		return m.OldStudentNo(ctx)
	case student.FieldName:
		return m.OldName(ctx)
	case student.FieldProgram:
		return m.OldProgram(ctx)
	case student.FieldYearLevel:
		return m.OldYearLevel(ctx)
	case student.FieldSection:
		return m.OldSection(ctx)
	case student.FieldSemester:
		return m.OldSemester(ctx)
	case student.FieldSchoolYear:
		return m.OldSchoolYear(ctx)
	case student.FieldAdviser:
		return m.OldAdviser(ctx)
	case student.FieldRecordText:
		return m.OldRecordText(ctx)
	case student.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case student.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Student field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case student.FieldStudentNo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentNo(v)
		return nil
	case student.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case student.FieldProgram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgram(v)
		return nil
	case student.FieldYearLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearLevel(v)
		return nil
	case student.FieldSection:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSection(v)
		return nil
	case student.FieldSemester:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSemester(v)
		return nil
	case student.FieldSchoolYear:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchoolYear(v)
		return nil
	case student.FieldAdviser:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdviser(v)
		return nil
	case student.FieldRecordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordText(v)
		return nil
	case student.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case student.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Student numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(student.FieldStudentNo) {
		fields = append(fields, student.FieldStudentNo)
	}
	if m.FieldCleared(student.FieldProgram) {
		fields = append(fields, student.FieldProgram)
	}
	if m.FieldCleared(student.FieldYearLevel) {
		fields = append(fields, student.FieldYearLevel)
	}
	if m.FieldCleared(student.FieldSection) {
		fields = append(fields, student.FieldSection)
	}
	if m.FieldCleared(student.FieldSemester) {
		fields = append(fields, student.FieldSemester)
	}
	if m.FieldCleared(student.FieldSchoolYear) {
		fields = append(fields, student.FieldSchoolYear)
	}
	if m.FieldCleared(student.FieldAdviser) {
		fields = append(fields, student.FieldAdviser)
	}
	if m.FieldCleared(student.FieldRecordText) {
		fields = append(fields, student.FieldRecordText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentMutation) ClearField(name string) error {
	switch name {
	case student.FieldStudentNo:
		m.ClearStudentNo()
		return nil
	case student.FieldProgram:
		m.ClearProgram()
		return nil
	case student.FieldYearLevel:
		m.ClearYearLevel()
		return nil
	case student.FieldSection:
		m.ClearSection()
		return nil
	case student.FieldSemester:
		m.ClearSemester()
		return nil
	case student.FieldSchoolYear:
		m.ClearSchoolYear()
		return nil
	case student.FieldAdviser:
		m.ClearAdviser()
		return nil
	case student.FieldRecordText:
		m.ClearRecordText()
		return nil
	}
	return fmt.Errorf("unknown Student nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentMutation) ResetField(name string) error {
	switch name {
	case student.FieldStudentNo:
		m.ResetStudentNo()
		return nil
	case student.FieldName:
		m.ResetName()
		return nil
	case student.FieldProgram:
		m.ResetProgram()
		return nil
	case student.FieldYearLevel:
		m.ResetYearLevel()
		return nil
	case student.FieldSection:
		m.ResetSection()
		return nil
	case student.FieldSemester:
		m.ResetSemester()
		return nil
	case student.FieldSchoolYear:
		m.ResetSchoolYear()
		return nil
	case student.FieldAdviser:
		m.ResetAdviser()
		return nil
	case student.FieldRecordText:
		m.ResetRecordText()
		return nil
	case student.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case student.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Student field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.subjects != nil {
		edges = append(edges, student.EdgeSubjects)
	}
	if m.grades != nil {
		edges = append(edges, student.EdgeGrades)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case student.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.subjects))
		for id := range m.subjects {
			ids = append(ids, id)
		}
		return ids
	case student.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.grades))
		for id := range m.grades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsubjects != nil {
		edges = append(edges, student.EdgeSubjects)
	}
	if m.removedgrades != nil {
		edges = append(edges, student.EdgeGrades)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case student.EdgeSubjects:
		ids := make([]ent.Value, 0, len(m.removedsubjects))
		for id := range m.removedsubjects {
			ids = append(ids, id)
		}
		return ids
	case student.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.removedgrades))
		for id := range m.removedgrades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsubjects {
		edges = append(edges, student.EdgeSubjects)
	}
	if m.clearedgrades {
		edges = append(edges, student.EdgeGrades)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentMutation) EdgeCleared(name string) bool {
	switch name {
	case student.EdgeSubjects:
		return m.clearedsubjects
	case student.EdgeGrades:
		return m.clearedgrades
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Student unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentMutation) ResetEdge(name string) error {
	switch name {
	case student.EdgeSubjects:
		m.ResetSubjects()
		return nil
	case student.EdgeGrades:
		m.ResetGrades()
		return nil
	}
	return fmt.Errorf("unknown Student edge %s", name)
}

// SubjectEntryMutation represents an operation that mutates the SubjectEntry nodes in the graph.
type SubjectEntryMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	code           *string
	title          *string
	units          *float64
	addunits       *float64
	room           *string
	day            *string
	time_start     *string
	time_end       *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	student        *uuid.UUID
	clearedstudent bool
	done           bool
	oldValue       func(context.Context) (*SubjectEntry, error)
	predicates     []predicate.SubjectEntry
}

var _ ent.Mutation = (*SubjectEntryMutation)(nil)

// subjectentryOption allows management of the mutation configuration using functional options.
type subjectentryOption func(*SubjectEntryMutation)

// newSubjectEntryMutation creates new mutation for the SubjectEntry entity.
func newSubjectEntryMutation(c config, op Op, opts ...subjectentryOption) *SubjectEntryMutation {
	m := &SubjectEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectEntryID sets the ID field of the mutation.
func withSubjectEntryID(id uuid.UUID) subjectentryOption {
	return func(m *SubjectEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectEntry
		)
		m.oldValue = func(ctx context.Context) (*SubjectEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectEntry sets the old SubjectEntry of the mutation.
func withSubjectEntry(node *SubjectEntry) subjectentryOption {
	return func(m *SubjectEntryMutation) {
		m.oldValue = func(context.Context) (*SubjectEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubjectEntry entities.
func (m *SubjectEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *SubjectEntryMutation) SetStudentID(u uuid.UUID) {
	m.student = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *SubjectEntryMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *SubjectEntryMutation) ResetStudentID() {
	m.student = nil
}

// SetCode sets the "code" field.
func (m *SubjectEntryMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *SubjectEntryMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *SubjectEntryMutation) ResetCode() {
	m.code = nil
}

// SetTitle sets the "title" field.
func (m *SubjectEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubjectEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *SubjectEntryMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[subjectentry.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SubjectEntryMutation) TitleCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SubjectEntryMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, subjectentry.FieldTitle)
}

// SetUnits sets the "units" field.
func (m *SubjectEntryMutation) SetUnits(f float64) {
	m.units = &f
	m.addunits = nil
}

// Units returns the value of the "units" field in the mutation.
func (m *SubjectEntryMutation) Units() (r float64, exists bool) {
	v := m.units
	if v == nil {
		return
	}
	return *v, true
}

// OldUnits returns the old "units" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldUnits(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnits: %w", err)
	}
	return oldValue.Units, nil
}

// AddUnits adds f to the "units" field.
func (m *SubjectEntryMutation) AddUnits(f float64) {
	if m.addunits != nil {
		*m.addunits += f
	} else {
		m.addunits = &f
	}
}

// AddedUnits returns the value that was added to the "units" field in this mutation.
func (m *SubjectEntryMutation) AddedUnits() (r float64, exists bool) {
	v := m.addunits
	if v == nil {
		return
	}
	return *v, true
}

// ClearUnits clears the value of the "units" field.
func (m *SubjectEntryMutation) ClearUnits() {
	m.units = nil
	m.addunits = nil
	m.clearedFields[subjectentry.FieldUnits] = struct{}{}
}

// UnitsCleared returns if the "units" field was cleared in this mutation.
func (m *SubjectEntryMutation) UnitsCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldUnits]
	return ok
}

// ResetUnits resets all changes to the "units" field.
func (m *SubjectEntryMutation) ResetUnits() {
	m.units = nil
	m.addunits = nil
	delete(m.clearedFields, subjectentry.FieldUnits)
}

// SetRoom sets the "room" field.
func (m *SubjectEntryMutation) SetRoom(s string) {
	m.room = &s
}

// Room returns the value of the "room" field in the mutation.
func (m *SubjectEntryMutation) Room() (r string, exists bool) {
	v := m.room
	if v == nil {
		return
	}
	return *v, true
}

// OldRoom returns the old "room" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldRoom(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoom: %w", err)
	}
	return oldValue.Room, nil
}

// ClearRoom clears the value of the "room" field.
func (m *SubjectEntryMutation) ClearRoom() {
	m.room = nil
	m.clearedFields[subjectentry.FieldRoom] = struct{}{}
}

// RoomCleared returns if the "room" field was cleared in this mutation.
func (m *SubjectEntryMutation) RoomCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldRoom]
	return ok
}

// ResetRoom resets all changes to the "room" field.
func (m *SubjectEntryMutation) ResetRoom() {
	m.room = nil
	delete(m.clearedFields, subjectentry.FieldRoom)
}

// SetDay sets the "day" field.
func (m *SubjectEntryMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *SubjectEntryMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ClearDay clears the value of the "day" field.
func (m *SubjectEntryMutation) ClearDay() {
	m.day = nil
	m.clearedFields[subjectentry.FieldDay] = struct{}{}
}

// DayCleared returns if the "day" field was cleared in this mutation.
func (m *SubjectEntryMutation) DayCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldDay]
	return ok
}

// ResetDay resets all changes to the "day" field.
func (m *SubjectEntryMutation) ResetDay() {
	m.day = nil
	delete(m.clearedFields, subjectentry.FieldDay)
}

// SetTimeStart sets the "time_start" field.
func (m *SubjectEntryMutation) SetTimeStart(s string) {
	m.time_start = &s
}

// TimeStart returns the value of the "time_start" field in the mutation.
func (m *SubjectEntryMutation) TimeStart() (r string, exists bool) {
	v := m.time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeStart returns the old "time_start" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldTimeStart(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeStart: %w", err)
	}
	return oldValue.TimeStart, nil
}

// ClearTimeStart clears the value of the "time_start" field.
func (m *SubjectEntryMutation) ClearTimeStart() {
	m.time_start = nil
	m.clearedFields[subjectentry.FieldTimeStart] = struct{}{}
}

// TimeStartCleared returns if the "time_start" field was cleared in this mutation.
func (m *SubjectEntryMutation) TimeStartCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldTimeStart]
	return ok
}

// ResetTimeStart resets all changes to the "time_start" field.
func (m *SubjectEntryMutation) ResetTimeStart() {
	m.time_start = nil
	delete(m.clearedFields, subjectentry.FieldTimeStart)
}

// SetTimeEnd sets the "time_end" field.
func (m *SubjectEntryMutation) SetTimeEnd(s string) {
	m.time_end = &s
}

// TimeEnd returns the value of the "time_end" field in the mutation.
func (m *SubjectEntryMutation) TimeEnd() (r string, exists bool) {
	v := m.time_end
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeEnd returns the old "time_end" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldTimeEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeEnd: %w", err)
	}
	return oldValue.TimeEnd, nil
}

// ClearTimeEnd clears the value of the "time_end" field.
func (m *SubjectEntryMutation) ClearTimeEnd() {
	m.time_end = nil
	m.clearedFields[subjectentry.FieldTimeEnd] = struct{}{}
}

// TimeEndCleared returns if the "time_end" field was cleared in this mutation.
func (m *SubjectEntryMutation) TimeEndCleared() bool {
	_, ok := m.clearedFields[subjectentry.FieldTimeEnd]
	return ok
}

// ResetTimeEnd resets all changes to the "time_end" field.
func (m *SubjectEntryMutation) ResetTimeEnd() {
	m.time_end = nil
	delete(m.clearedFields, subjectentry.FieldTimeEnd)
}

// SetCreatedAt sets the "created_at" field.
func (m *SubjectEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubjectEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubjectEntry entity.
// If the SubjectEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubjectEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudent clears the "student" edge to the Student entity.
func (m *SubjectEntryMutation) ClearStudent() {
	m.clearedstudent = true
	m.clearedFields[subjectentry.FieldStudentID] = struct{}{}
}

// StudentCleared reports if the "student" edge to the Student entity was cleared.
func (m *SubjectEntryMutation) StudentCleared() bool {
	return m.clearedstudent
}

// StudentIDs returns the "student" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudentID instead. It exists only for internal usage by the builders.
func (m *SubjectEntryMutation) StudentIDs() (ids []uuid.UUID) {
	if id := m.student; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudent resets all changes to the "student" edge.
func (m *SubjectEntryMutation) ResetStudent() {
	m.student = nil
	m.clearedstudent = false
}

// Where appends a list predicates to the SubjectEntryMutation builder.
func (m *SubjectEntryMutation) Where(ps ...predicate.SubjectEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectEntry).
func (m *SubjectEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.student != nil {
		fields = append(fields, subjectentry.FieldStudentID)
	}
	if m.code != nil {
		fields = append(fields, subjectentry.FieldCode)
	}
	if m.title != nil {
		fields = append(fields, subjectentry.FieldTitle)
	}
	if m.units != nil {
		fields = append(fields, subjectentry.FieldUnits)
	}
	if m.room != nil {
		fields = append(fields, subjectentry.FieldRoom)
	}
	if m.day != nil {
		fields = append(fields, subjectentry.FieldDay)
	}
	if m.time_start != nil {
		fields = append(fields, subjectentry.FieldTimeStart)
	}
	if m.time_end != nil {
		fields = append(fields, subjectentry.FieldTimeEnd)
	}
	if m.created_at != nil {
		fields = append(fields, subjectentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectentry.FieldStudentID:
		return m.StudentID()
	case subjectentry.FieldCode:
		return m.Code()
	case subjectentry.FieldTitle:
		return m.Title()
	case subjectentry.FieldUnits:
		return m.Units()
	case subjectentry.FieldRoom:
		return m.Room()
	case subjectentry.FieldDay:
		return m.Day()
	case subjectentry.FieldTimeStart:
		return m.TimeStart()
	case subjectentry.FieldTimeEnd:
		return m.TimeEnd()
	case subjectentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectentry.FieldStudentID:
		return m.OldStudentID(ctx)
	case subjectentry.FieldCode:
		return m.OldCode(ctx)
	case subjectentry.FieldTitle:
		return m.OldTitle(ctx)
	case subjectentry.FieldUnits:
		return m.OldUnits(ctx)
	case subjectentry.FieldRoom:
		return m.OldRoom(ctx)
	case subjectentry.FieldDay:
		return m.OldDay(ctx)
	case subjectentry.FieldTimeStart:
		return m.OldTimeStart(ctx)
	case subjectentry.FieldTimeEnd:
		return m.OldTimeEnd(ctx)
	case subjectentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectentry.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case subjectentry.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case subjectentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case subjectentry.FieldUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnits(v)
		return nil
	case subjectentry.FieldRoom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoom(v)
		return nil
	case subjectentry.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case subjectentry.FieldTimeStart:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeStart(v)
		return nil
	case subjectentry.FieldTimeEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeEnd(v)
		return nil
	case subjectentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectEntryMutation) AddedFields() []string {
	var fields []string
	if m.addunits != nil {
		fields = append(fields, subjectentry.FieldUnits)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectentry.FieldUnits:
		return m.AddedUnits()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectentry.FieldUnits:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnits(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subjectentry.FieldTitle) {
		fields = append(fields, subjectentry.FieldTitle)
	}
	if m.FieldCleared(subjectentry.FieldUnits) {
		fields = append(fields, subjectentry.FieldUnits)
	}
	if m.FieldCleared(subjectentry.FieldRoom) {
		fields = append(fields, subjectentry.FieldRoom)
	}
	if m.FieldCleared(subjectentry.FieldDay) {
		fields = append(fields, subjectentry.FieldDay)
	}
	if m.FieldCleared(subjectentry.FieldTimeStart) {
		fields = append(fields, subjectentry.FieldTimeStart)
	}
	if m.FieldCleared(subjectentry.FieldTimeEnd) {
		fields = append(fields, subjectentry.FieldTimeEnd)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectEntryMutation) ClearField(name string) error {
	switch name {
	case subjectentry.FieldTitle:
		m.ClearTitle()
		return nil
	case subjectentry.FieldUnits:
		m.ClearUnits()
		return nil
	case subjectentry.FieldRoom:
		m.ClearRoom()
		return nil
	case subjectentry.FieldDay:
		m.ClearDay()
		return nil
	case subjectentry.FieldTimeStart:
		m.ClearTimeStart()
		return nil
	case subjectentry.FieldTimeEnd:
		m.ClearTimeEnd()
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectEntryMutation) ResetField(name string) error {
	switch name {
	case subjectentry.FieldStudentID:
		m.ResetStudentID()
		return nil
	case subjectentry.FieldCode:
		m.ResetCode()
		return nil
	case subjectentry.FieldTitle:
		m.ResetTitle()
		return nil
	case subjectentry.FieldUnits:
		m.ResetUnits()
		return nil
	case subjectentry.FieldRoom:
		m.ResetRoom()
		return nil
	case subjectentry.FieldDay:
		m.ResetDay()
		return nil
	case subjectentry.FieldTimeStart:
		m.ResetTimeStart()
		return nil
	case subjectentry.FieldTimeEnd:
		m.ResetTimeEnd()
		return nil
	case subjectentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.student != nil {
		edges = append(edges, subjectentry.EdgeStudent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subjectentry.EdgeStudent:
		if id := m.student; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudent {
		edges = append(edges, subjectentry.EdgeStudent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case subjectentry.EdgeStudent:
		return m.clearedstudent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectEntryMutation) ClearEdge(name string) error {
	switch name {
	case subjectentry.EdgeStudent:
		m.ClearStudent()
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectEntryMutation) ResetEdge(name string) error {
	switch name {
	case subjectentry.EdgeStudent:
		m.ResetStudent()
		return nil
	}
	return fmt.Errorf("unknown SubjectEntry edge %s", name)
}
