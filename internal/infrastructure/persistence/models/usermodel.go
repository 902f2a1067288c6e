package models

import (
	"time"

	"github.com/orris-inc/setracker/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:150"`
	Email        string `gorm:"not null;size:255;index"`
	FirstName    string `gorm:"not null;size:150"`
	LastName     string `gorm:"not null;size:150"`
	IsTeamMember bool   `gorm:"not null;index:idx_users_team_member"`
	Role         string `gorm:"not null;size:20"`
	PasswordHash string `gorm:"size:255"`
	Active       bool   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
