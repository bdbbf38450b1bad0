package models

// PermCanMarkReturned lets a librarian see every outstanding loan and renew any of them.
const PermCanMarkReturned = "catalog.can_mark_returned"

// UserPermission grants one named capability to a user.
type UserPermission struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_user_permission" json:"user_id"`
	Codename string `gorm:"size:100;not null;uniqueIndex:idx_user_permission" json:"codename"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}
