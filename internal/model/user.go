package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account able to authenticate against the API.
// Email is the natural lookup key; Password holds a bcrypt hash and is
// never serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Lastname  string    `gorm:"type:varchar(255);not null" json:"lastname"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	RoleID    uuid.UUID `gorm:"type:uuid;not null" json:"-"`
	Role      Role      `gorm:"foreignKey:RoleID" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
