package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, c *CheckIn) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*CheckIn, error)
	ListByDate(ctx context.Context, date time.Time) ([]CheckIn, error)
	ListByStatusesOn(ctx context.Context, date time.Time, statuses []Status) ([]CheckIn, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]CheckIn, error)
	Update(ctx context.Context, c *CheckIn) error
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

func (r *repository) Create(ctx context.Context, c *CheckIn) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*CheckIn, error) {
	var c CheckIn
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("checkin_date = ?", date.Format("2006-01-02")).
		First(&c).Error
	return &c, err
}

func (r *repository) ListByDate(ctx context.Context, date time.Time) ([]CheckIn, error) {
	var rows []CheckIn
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("checkin_date = ?", date.Format("2006-01-02")).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByStatusesOn(ctx context.Context, date time.Time, statuses []Status) ([]CheckIn, error) {
	var rows []CheckIn
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("checkin_date = ?", date.Format("2006-01-02")).
		Where("status IN ?", statuses).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]CheckIn, error) {
	var rows []CheckIn
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("checkin_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("checkin_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, c *CheckIn) error {
	return r.db.WithContext(ctx).Save(c).Error
}
