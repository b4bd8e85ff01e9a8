package notifier

import (
	"context"

	"gorm.io/gorm"
)

type gormDirectory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &gormDirectory{db: db}
}

// AdminChatIDs joins admin users to employees by email; only linked chats count.
func (d *gormDirectory) AdminChatIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).
		Table("employees e").
		Select("e.chat_id").
		Joins("JOIN users u ON LOWER(u.email) = LOWER(e.email)").
		Where("u.role = ?", "ADMIN").
		Where("u.is_active = ?", true).
		Where("u.deleted_at IS NULL").
		Where("e.chat_id IS NOT NULL").
		Where("e.archived = ?", false).
		Scan(&ids).Error
	return ids, err
}

// AdminEmails lists lowercased emails of active admin users. Reports use it to
// keep admins out of per-employee aggregation.
func (d *gormDirectory) AdminEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := d.db.WithContext(ctx).
		Table("users").
		Select("LOWER(email)").
		Where("role = ?", "ADMIN").
		Where("is_active = ?", true).
		Where("deleted_at IS NULL").
		Scan(&emails).Error
	return emails, err
}

func (d *gormDirectory) EmployeeChatIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := d.db.WithContext(ctx).
		Table("employees").
		Select("chat_id").
		Where("chat_id IS NOT NULL").
		Where("archived = ?", false).
		Where("deleted_at IS NULL").
		Scan(&ids).Error
	return ids, err
}
