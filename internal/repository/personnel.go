package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	entload "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/loadentry"
	entpersonnel "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent/personnel"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/entity"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/utils"
)

// UpsertPersonnelRequest carries the scalar fields of a staff profile
// record. Empty values leave stored columns untouched on update.
type UpsertPersonnelRequest struct {
	Name         string
	Variant      string
	Position     string
	Department   string
	Email        string
	Phone        string
	SSSNo        string
	PhilHealthNo string
	Birthdate    string
	Address      string
	Employment   string
	RecordText   string
}

type PersonnelRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Personnel, error)
	FindByName(ctx context.Context, name string) (*entity.Personnel, error)
	SearchByName(ctx context.Context, q string) ([]*entity.Personnel, error)
	List(ctx context.Context) ([]*entity.Personnel, error)
	ListByDepartment(ctx context.Context, department string) ([]*entity.Personnel, error)
	Upsert(ctx context.Context, req *UpsertPersonnelRequest) (*entity.Personnel, error)
	ReplaceLoads(ctx context.Context, personnelID uuid.UUID, slots []*entity.LoadEntry) error
	LoadsFor(ctx context.Context, personnelID uuid.UUID) ([]*entity.LoadEntry, error)
}

type personnelRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewPersonnelRepository(client *ent.Client, logger *slog.Logger) PersonnelRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &personnelRepository{
		client: client,
		logger: logger,
	}
}

func (r *personnelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Personnel, error) {
	row, err := r.client.Personnel.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToPersonnel(row), nil
}

// FindByName matches the full name case-insensitively across both
// variants; the oldest row wins when a name repeats.
func (r *personnelRepository) FindByName(ctx context.Context, name string) (*entity.Personnel, error) {
	row, err := r.client.Personnel.Query().
		Where(entpersonnel.NameEqualFold(name)).
		Order(entpersonnel.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToPersonnel(row), nil
}

func (r *personnelRepository) SearchByName(ctx context.Context, q string) ([]*entity.Personnel, error) {
	rows, err := r.client.Personnel.Query().
		Where(entpersonnel.NameContainsFold(q)).
		Order(entpersonnel.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to search personnel", "query", q, "error", err)
		return nil, err
	}
	return toPersonnelList(rows), nil
}

func (r *personnelRepository) List(ctx context.Context) ([]*entity.Personnel, error) {
	rows, err := r.client.Personnel.Query().Order(entpersonnel.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list personnel", "error", err)
		return nil, err
	}
	return toPersonnelList(rows), nil
}

func (r *personnelRepository) ListByDepartment(ctx context.Context, department string) ([]*entity.Personnel, error) {
	rows, err := r.client.Personnel.Query().
		Where(entpersonnel.Department(department)).
		Order(entpersonnel.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list personnel by department", "department", department, "error", err)
		return nil, err
	}
	return toPersonnelList(rows), nil
}

func (r *personnelRepository) Upsert(ctx context.Context, req *UpsertPersonnelRequest) (*entity.Personnel, error) {
	existing, err := r.findForUpsert(ctx, req)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("personnel lookup failed", "name", req.Name, "error", err)
		return nil, err
	}

	if existing == nil {
		row, err := r.client.Personnel.Create().
			SetName(req.Name).
			SetVariant(req.Variant).
			SetNillablePosition(nilIfEmpty(req.Position)).
			SetNillableDepartment(nilIfEmpty(req.Department)).
			SetNillableEmail(nilIfEmpty(req.Email)).
			SetNillablePhone(nilIfEmpty(req.Phone)).
			SetNillableSssNo(nilIfEmpty(req.SSSNo)).
			SetNillablePhilhealthNo(nilIfEmpty(req.PhilHealthNo)).
			SetNillableBirthdate(nilIfEmpty(req.Birthdate)).
			SetNillableAddress(nilIfEmpty(req.Address)).
			SetNillableEmployment(nilIfEmpty(req.Employment)).
			SetNillableRecordText(nilIfEmpty(req.RecordText)).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to create personnel", "name", req.Name, "variant", req.Variant, "error", err)
			return nil, err
		}
		r.logger.Info("personnel created", "personnel_id", row.ID, "name", req.Name, "variant", req.Variant)
		return utils.ToPersonnel(row), nil
	}

	row, err := r.client.Personnel.UpdateOneID(existing.ID).
		SetNillablePosition(nilIfEmpty(req.Position)).
		SetNillableDepartment(nilIfEmpty(req.Department)).
		SetNillableEmail(nilIfEmpty(req.Email)).
		SetNillablePhone(nilIfEmpty(req.Phone)).
		SetNillableSssNo(nilIfEmpty(req.SSSNo)).
		SetNillablePhilhealthNo(nilIfEmpty(req.PhilHealthNo)).
		SetNillableBirthdate(nilIfEmpty(req.Birthdate)).
		SetNillableAddress(nilIfEmpty(req.Address)).
		SetNillableEmployment(nilIfEmpty(req.Employment)).
		SetNillableRecordText(nilIfEmpty(req.RecordText)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update personnel", "personnel_id", existing.ID, "error", err)
		return nil, err
	}
	return utils.ToPersonnel(row), nil
}

// findForUpsert prefers the email; name plus variant is the fallback key.
func (r *personnelRepository) findForUpsert(ctx context.Context, req *UpsertPersonnelRequest) (*entity.Personnel, error) {
	if req.Email != "" {
		row, err := r.client.Personnel.Query().
			Where(entpersonnel.EmailEqualFold(req.Email)).
			First(ctx)
		if err == nil {
			return utils.ToPersonnel(row), nil
		}
		if !ent.IsNotFound(err) {
			return nil, err
		}
	}
	row, err := r.client.Personnel.Query().
		Where(
			entpersonnel.NameEqualFold(req.Name),
			entpersonnel.Variant(req.Variant),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return utils.ToPersonnel(row), nil
}

func (r *personnelRepository) ReplaceLoads(ctx context.Context, personnelID uuid.UUID, slots []*entity.LoadEntry) error {
	if _, err := r.client.LoadEntry.Delete().
		Where(entload.PersonnelID(personnelID)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to clear load entries", "personnel_id", personnelID, "error", err)
		return err
	}
	if len(slots) == 0 {
		return nil
	}

	bulk := make([]*ent.LoadEntryCreate, len(slots))
	for i, slot := range slots {
		bulk[i] = r.client.LoadEntry.Create().
			SetPersonnelID(personnelID).
			SetDay(slot.Day).
			SetTimeStart(slot.TimeStart).
			SetTimeEnd(slot.TimeEnd).
			SetSubject(slot.Subject).
			SetSection(slot.Section)
	}
	if _, err := r.client.LoadEntry.CreateBulk(bulk...).Save(ctx); err != nil {
		r.logger.Error("failed to insert load entries", "personnel_id", personnelID, "count", len(slots), "error", err)
		return err
	}
	return nil
}

func (r *personnelRepository) LoadsFor(ctx context.Context, personnelID uuid.UUID) ([]*entity.LoadEntry, error) {
	rows, err := r.client.LoadEntry.Query().
		Where(entload.PersonnelID(personnelID)).
		Order(entload.ByCreatedAt(), entload.ByDay()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list load entries", "personnel_id", personnelID, "error", err)
		return nil, err
	}
	result := make([]*entity.LoadEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToLoadEntry(row)
	}
	return result, nil
}

func toPersonnelList(rows []*ent.Personnel) []*entity.Personnel {
	result := make([]*entity.Personnel, len(rows))
	for i, row := range rows {
		result[i] = utils.ToPersonnel(row)
	}
	return result
}
