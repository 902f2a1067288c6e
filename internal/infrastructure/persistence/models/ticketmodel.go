package models

import (
	"time"

	"github.com/orris-inc/setracker/internal/shared/constants"
)

type TicketModel struct {
	ID                 uint          `gorm:"primaryKey"`
	Number             string        `gorm:"uniqueIndex;size:32;not null"`
	Title              string        `gorm:"size:255;not null"`
	Description        string        `gorm:"type:text;not null"`
	TicketType         string        `gorm:"size:20;not null;index"`
	ProjectID          uint          `gorm:"not null;index"`
	Project            *ProjectModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Status             string        `gorm:"size:20;not null;index"`
	Priority           string        `gorm:"size:20;not null;index"`
	OwnerID            *uint         `gorm:"index"`
	Owner              *UserModel    `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	ReporterName       string        `gorm:"size:100;not null"`
	ReporterContact    string        `gorm:"size:100;not null"`
	ReporterDepartment string        `gorm:"size:100"`
	ReporterUserID     *uint         `gorm:"index"`
	ReporterUser       *UserModel    `gorm:"foreignKey:ReporterUserID;constraint:OnDelete:SET NULL"`
	BusinessImpact     string        `gorm:"type:text"`
	CreatedBy          *uint
	ModifiedBy         *uint
	Version            int `gorm:"not null;default:1"`
	CreatedAt          time.Time
	UpdatedAt          time.Time `gorm:"index"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type TicketTechnologyModel struct {
	TicketID     uint             `gorm:"primaryKey"`
	TechnologyID uint             `gorm:"primaryKey;index"`
	Ticket       *TicketModel     `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Technology   *TechnologyModel `gorm:"foreignKey:TechnologyID;constraint:OnDelete:CASCADE"`
}

func (TicketTechnologyModel) TableName() string {
	return constants.TableTicketTechnology
}

type TicketAssigneeModel struct {
	TicketID uint         `gorm:"primaryKey"`
	UserID   uint         `gorm:"primaryKey;index"`
	Ticket   *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	User     *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (TicketAssigneeModel) TableName() string {
	return constants.TableTicketAssignees
}

type BugReportModel struct {
	TicketID         uint         `gorm:"primaryKey"`
	Ticket           *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Category         string       `gorm:"size:30;not null"`
	URLLocation      string       `gorm:"size:500"`
	BrowserDevice    string       `gorm:"size:100"`
	StepsToReproduce string       `gorm:"type:text;not null"`
	ExpectedResults  string       `gorm:"type:text;not null"`
	ActualResults    string       `gorm:"type:text;not null"`
}

func (BugReportModel) TableName() string {
	return constants.TableBugReports
}

type FeatureRequestModel struct {
	TicketID             uint         `gorm:"primaryKey"`
	Ticket               *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Category             string       `gorm:"size:30;not null"`
	CurrentSituation     string       `gorm:"type:text;not null"`
	DesiredFunctionality string       `gorm:"type:text;not null"`
	SuccessCriteria      string       `gorm:"type:text;not null"`
	BusinessValue        string       `gorm:"type:text;not null"`
}

func (FeatureRequestModel) TableName() string {
	return constants.TableFeatureRequests
}

type TaskModel struct {
	TicketID            uint         `gorm:"primaryKey"`
	Ticket              *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	TaskType            string       `gorm:"size:30;not null"`
	DetailedDescription string       `gorm:"type:text;not null"`
	AcceptanceCriteria  string       `gorm:"type:text;not null"`
}

func (TaskModel) TableName() string {
	return constants.TableTasks
}

type AttachmentModel struct {
	ID           uint         `gorm:"primaryKey"`
	TicketID     uint         `gorm:"not null;index"`
	Ticket       *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	FileRef      string       `gorm:"size:500;not null"`
	OriginalName string       `gorm:"size:255;not null"`
	CreatedAt    time.Time
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

// TicketSequenceModel holds the last issued sequence per number scope
// (prefix and year).
type TicketSequenceModel struct {
	Scope     string `gorm:"primaryKey;size:32"`
	LastValue int64  `gorm:"not null"`
	UpdatedAt time.Time
}

func (TicketSequenceModel) TableName() string {
	return constants.TableTicketSequences
}

// All lists every persistence model in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProjectModel{},
		&ProjectMemberModel{},
		&TechnologyCategoryModel{},
		&TechnologyModel{},
		&TicketModel{},
		&TicketTechnologyModel{},
		&TicketAssigneeModel{},
		&BugReportModel{},
		&FeatureRequestModel{},
		&TaskModel{},
		&AttachmentModel{},
		&TicketSequenceModel{},
	}
}
