package models

import (
	"time"

	"github.com/orris-inc/setracker/internal/shared/constants"
)

type TechnologyCategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"uniqueIndex;not null;size:100"`
	Description string `gorm:"type:text"`
	Color       string `gorm:"not null;size:7"`
	CreatedBy   *uint
	ModifiedBy  *uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TechnologyCategoryModel) TableName() string {
	return constants.TableTechCategories
}

type TechnologyModel struct {
	ID               uint                     `gorm:"primarykey"`
	Name             string                   `gorm:"uniqueIndex;not null;size:100"`
	CategoryID       uint                     `gorm:"not null;index"`
	Category         *TechnologyCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Description      string                   `gorm:"type:text"`
	Version          string                   `gorm:"size:50"`
	DocumentationURL string                   `gorm:"size:500"`
	Active           bool                     `gorm:"not null"`
	CreatedBy        *uint
	ModifiedBy       *uint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (TechnologyModel) TableName() string {
	return constants.TableTechnologies
}
