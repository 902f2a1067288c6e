package ticket

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/domain/shared"
	vo "github.com/orris-inc/setracker/internal/domain/ticket/valueobjects"
	"github.com/orris-inc/setracker/internal/shared/biztime"
)

const (
	maxTitleLength    = 255
	maxReporterLength = 100
)

// Reporter identifies who raised a ticket. Name and Contact are always
// filled; UserID links the reporter to an account when one exists.
type Reporter struct {
	Name       string
	Contact    string
	Department string
	UserID     *uint
}

func (r Reporter) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("reporter name is required")
	}
	if strings.TrimSpace(r.Contact) == "" {
		return fmt.Errorf("reporter contact is required")
	}
	if len(r.Name) > maxReporterLength || len(r.Contact) > maxReporterLength || len(r.Department) > maxReporterLength {
		return fmt.Errorf("reporter fields exceed maximum length of %d characters", maxReporterLength)
	}
	return nil
}

// AuditInfo records who created and last modified a row.
type AuditInfo struct {
	CreatedBy  *uint
	ModifiedBy *uint
}

type Ticket struct {
	id             uint
	number         string
	title          string
	description    string
	ticketType     vo.TicketType
	projectID      uint
	technologyIDs  []uint
	status         vo.TicketStatus
	priority       vo.Priority
	ownerID        *uint
	assigneeIDs    []uint
	reporter       Reporter
	businessImpact string
	detail         Detail
	audit          AuditInfo
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	title string,
	description string,
	ticketType vo.TicketType,
	projectID uint,
	priority vo.Priority,
	reporter Reporter,
) (*Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if err := reporter.validate(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:         title,
		description:   description,
		ticketType:    ticketType,
		projectID:     projectID,
		technologyIDs: []uint{},
		status:        vo.StatusStaging,
		priority:      priority,
		assigneeIDs:   []uint{},
		reporter:      reporter,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	number string,
	title string,
	description string,
	ticketType vo.TicketType,
	projectID uint,
	technologyIDs []uint,
	status vo.TicketStatus,
	priority vo.Priority,
	ownerID *uint,
	assigneeIDs []uint,
	reporter Reporter,
	businessImpact string,
	detail Detail,
	audit AuditInfo,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if detail != nil && detail.Kind() != ticketType {
		return nil, fmt.Errorf("ticket %s has %s detail but type %s", number, detail.Kind(), ticketType)
	}

	if technologyIDs == nil {
		technologyIDs = []uint{}
	}
	if assigneeIDs == nil {
		assigneeIDs = []uint{}
	}

	return &Ticket{
		id:             id,
		number:         number,
		title:          title,
		description:    description,
		ticketType:     ticketType,
		projectID:      projectID,
		technologyIDs:  technologyIDs,
		status:         status,
		priority:       priority,
		ownerID:        ownerID,
		assigneeIDs:    assigneeIDs,
		reporter:       reporter,
		businessImpact: businessImpact,
		detail:         detail,
		audit:          audit,
		version:        1,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

// Number is the human readable identifier, e.g. SE-2025-001.
func (t *Ticket) Number() string {
	return t.number
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) ProjectID() uint {
	return t.projectID
}

func (t *Ticket) TechnologyIDs() []uint {
	ids := make([]uint, len(t.technologyIDs))
	copy(ids, t.technologyIDs)
	return ids
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) OwnerID() *uint {
	return t.ownerID
}

func (t *Ticket) AssigneeIDs() []uint {
	ids := make([]uint, len(t.assigneeIDs))
	copy(ids, t.assigneeIDs)
	return ids
}

func (t *Ticket) Reporter() Reporter {
	return t.reporter
}

func (t *Ticket) BusinessImpact() string {
	return t.businessImpact
}

// Detail returns nil when no type-specific record has been supplied.
func (t *Ticket) Detail() Detail {
	return t.detail
}

func (t *Ticket) Audit() AuditInfo {
	return t.audit
}

// Version is the optimistic lock counter of the stored row.
func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) SetVersion(version int) {
	t.version = version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// AssignNumber sets the generated identifier. A number is immutable once set.
func (t *Ticket) AssignNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if _, _, _, err := ParseNumber(number); err != nil {
		return err
	}
	t.number = number
	return nil
}

// ClearNumber discards a number that was never persisted so a fresh one can be
// assigned after a uniqueness conflict.
func (t *Ticket) ClearNumber() {
	if t.id == 0 {
		t.number = ""
	}
}

func (t *Ticket) SetBusinessImpact(impact string) {
	t.businessImpact = impact
	t.touch()
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.touch()
	return nil
}

// AssignOwner sets the primary owner; nil clears it.
func (t *Ticket) AssignOwner(ownerID *uint) {
	if ownerID != nil && *ownerID == 0 {
		ownerID = nil
	}
	t.ownerID = ownerID
	t.touch()
}

func (t *Ticket) HasOwner() bool {
	return t.ownerID != nil
}

// SetAssignees replaces the assigned users, dropping duplicates.
func (t *Ticket) SetAssignees(userIDs []uint) {
	t.assigneeIDs = shared.UniqueIDs(userIDs)
	t.touch()
}

func (t *Ticket) SetTechnologies(technologyIDs []uint) {
	t.technologyIDs = shared.UniqueIDs(technologyIDs)
	t.touch()
}

// SetDetail attaches a type-specific record. Its kind must match the ticket type.
func (t *Ticket) SetDetail(detail Detail) error {
	if detail == nil {
		t.detail = nil
		t.touch()
		return nil
	}
	if detail.Kind() != t.ticketType {
		return fmt.Errorf("%s detail does not match ticket type %s", detail.Kind(), t.ticketType)
	}
	if err := detail.Validate(); err != nil {
		return err
	}
	t.detail = detail
	t.touch()
	return nil
}

// IsWorkedOnBy reports whether userID owns the ticket or is assigned to it.
func (t *Ticket) IsWorkedOnBy(userID uint) bool {
	if t.ownerID != nil && *t.ownerID == userID {
		return true
	}
	return shared.HasID(t.assigneeIDs, userID)
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
}
