package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get returns the singleton row, creating it with defaults when absent.
func (r *repository) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = *defaults()
		if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Update(ctx context.Context, s *Settings) error {
	s.ID = singletonID
	return r.db.WithContext(ctx).Save(s).Error
}
