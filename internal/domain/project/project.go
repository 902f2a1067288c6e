package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/domain/shared"
	"github.com/orris-inc/setracker/internal/shared/biztime"
)

const maxNameLength = 100

// Project groups tickets for reporting.
type Project struct {
	id               uint
	name             string
	description      string
	active           bool
	leadID           *uint
	memberIDs        []uint
	startDate        *time.Time
	targetCompletion *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

func NewProject(name, description string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("project name exceeds maximum length of %d characters", maxNameLength)
	}

	now := biztime.NowUTC()
	return &Project{
		name:        name,
		description: description,
		active:      true,
		memberIDs:   []uint{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name, description string,
	active bool,
	leadID *uint,
	memberIDs []uint,
	startDate, targetCompletion *time.Time,
	createdAt, updatedAt time.Time,
) *Project {
	if memberIDs == nil {
		memberIDs = []uint{}
	}
	return &Project{
		id:               id,
		name:             name,
		description:      description,
		active:           active,
		leadID:           leadID,
		memberIDs:        memberIDs,
		startDate:        startDate,
		targetCompletion: targetCompletion,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (p *Project) ID() uint                     { return p.id }
func (p *Project) Name() string                 { return p.name }
func (p *Project) Description() string          { return p.description }
func (p *Project) IsActive() bool               { return p.active }
func (p *Project) LeadID() *uint                { return p.leadID }
func (p *Project) StartDate() *time.Time        { return p.startDate }
func (p *Project) TargetCompletion() *time.Time { return p.targetCompletion }
func (p *Project) CreatedAt() time.Time         { return p.createdAt }
func (p *Project) UpdatedAt() time.Time         { return p.updatedAt }

func (p *Project) MemberIDs() []uint {
	ids := make([]uint, len(p.memberIDs))
	copy(ids, p.memberIDs)
	return ids
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	p.id = id
	return nil
}

// SetSchedule sets the optional start and target completion dates.
func (p *Project) SetSchedule(start, target *time.Time) error {
	if start != nil && target != nil && target.Before(*start) {
		return fmt.Errorf("target completion cannot be before start date")
	}
	p.startDate = start
	p.targetCompletion = target
	p.touch()
	return nil
}

// SetLead sets or clears (nil) the project lead.
func (p *Project) SetLead(userID *uint) {
	if userID != nil && *userID == 0 {
		userID = nil
	}
	p.leadID = userID
	p.touch()
}

// AddMember returns false when the user is already a member.
func (p *Project) AddMember(userID uint) bool {
	var added bool
	p.memberIDs, added = shared.AddID(p.memberIDs, userID)
	if added {
		p.touch()
	}
	return added
}

func (p *Project) RemoveMember(userID uint) bool {
	var removed bool
	p.memberIDs, removed = shared.RemoveID(p.memberIDs, userID)
	if removed {
		p.touch()
	}
	return removed
}

func (p *Project) Deactivate() {
	if !p.active {
		return
	}
	p.active = false
	p.touch()
}

func (p *Project) Activate() {
	if p.active {
		return
	}
	p.active = true
	p.touch()
}

func (p *Project) touch() {
	p.updatedAt = biztime.NowUTC()
}
