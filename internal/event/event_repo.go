package event

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=event_repo.go -destination=mock/event_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Event) error
	FindByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, e *Event) error
	DeleteHard(ctx context.Context, id string) error

	ListPending(ctx context.Context) ([]Event, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]Event, error)
	ListModeratedByTypeStartingIn(ctx context.Context, employeeID string, t Type, from, to time.Time) ([]Event, error)
	ListAnnotationsOn(ctx context.Context, date time.Time, subtype Subtype) ([]Event, error)

	HasApprovedEventOn(ctx context.Context, employeeID string, date time.Time, types []Type) (bool, error)
	HasAnnotationOn(ctx context.Context, employeeID string, date time.Time, subtype Subtype) (bool, error)
	HasPendingOfTypesOn(ctx context.Context, employeeID string, date time.Time, types []Type) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) DeleteHard(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id).Error
}

func (r *repository) ListPending(ctx context.Context) ([]Event, error) {
	var rows []Event
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("moderated = ?", false).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByDateRange(ctx context.Context, from, to time.Time) ([]Event, error) {
	var rows []Event
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("start_date <= ?", to.Format("2006-01-02")).
		Where("COALESCE(end_date, start_date) >= ?", from.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

// ListModeratedByTypeStartingIn filters by start_date only: a multi-day event
// is attributed to the period containing its start.
func (r *repository) ListModeratedByTypeStartingIn(ctx context.Context, employeeID string, t Type, from, to time.Time) ([]Event, error) {
	var rows []Event
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("type = ?", t).
		Where("moderated = ?", true).
		Where("start_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAnnotationsOn(ctx context.Context, date time.Time, subtype Subtype) ([]Event, error) {
	var rows []Event
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("type = ?", TypeLateLeftEarly).
		Where("subtype = ?", subtype).
		Where("start_date = ?", date.Format("2006-01-02")).
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasApprovedEventOn(ctx context.Context, employeeID string, date time.Time, types []Type) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("employee_id = ?", employeeID).
		Where("moderated = ?", true).
		Where("type IN ?", types).
		Where("start_date <= ?", date.Format("2006-01-02")).
		Where("COALESCE(end_date, start_date) >= ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasAnnotationOn(ctx context.Context, employeeID string, date time.Time, subtype Subtype) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("employee_id = ?", employeeID).
		Where("type = ?", TypeLateLeftEarly).
		Where("subtype = ?", subtype).
		Where("start_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasPendingOfTypesOn(ctx context.Context, employeeID string, date time.Time, types []Type) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Event{}).
		Where("employee_id = ?", employeeID).
		Where("moderated = ?", false).
		Where("type IN ?", types).
		Where("start_date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}
