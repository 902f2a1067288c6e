package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orris-inc/setracker/internal/shared/constants"
)

type ProjectModel struct {
	ID               uint       `gorm:"primarykey"`
	Name             string     `gorm:"uniqueIndex;not null;size:200"`
	Description      string     `gorm:"type:text"`
	Active           bool       `gorm:"not null;index"`
	LeadID           *uint      `gorm:"index"`
	Lead             *UserModel `gorm:"foreignKey:LeadID;constraint:OnDelete:SET NULL"`
	StartDate        *datatypes.Date
	TargetCompletion *datatypes.Date
	CreatedBy        *uint
	ModifiedBy       *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}

// ProjectMemberModel links a user to a project.
type ProjectMemberModel struct {
	ProjectID uint          `gorm:"primaryKey"`
	UserID    uint          `gorm:"primaryKey;index"`
	Project   *ProjectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	User      *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ProjectMemberModel) TableName() string {
	return constants.TableProjectMembers
}
