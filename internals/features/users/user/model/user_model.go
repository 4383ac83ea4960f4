// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserName  string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// hash bcrypt, tidak pernah diserialisasi keluar
	UserPassword string `gorm:"type:varchar(255);not null;column:user_password" json:"-"`

	// student | lecturer | admin (CHECK di DB)
	UserRole string `gorm:"type:varchar(16);not null;default:student;column:user_role;index:idx_users_role" json:"user_role"`

	// NIM/NIP, nullable untuk admin
	UserNumber *string `gorm:"type:varchar(32);column:user_number" json:"user_number,omitempty"`

	// Timestamps
	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetPassword menyimpan hash bcrypt (cost default)
func (u *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hash)
	return nil
}

func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
