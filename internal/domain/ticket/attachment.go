package ticket

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/shared/biztime"
)

const maxOriginalNameLength = 255

// Attachment references a stored file. Upload handling lives outside this
// service; only the storage reference and the original filename are kept.
type Attachment struct {
	id           uint
	ticketID     uint
	fileRef      string
	originalName string
	createdAt    time.Time
}

func NewAttachment(ticketID uint, fileRef, originalName string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	fileRef = strings.TrimSpace(fileRef)
	if fileRef == "" {
		return nil, fmt.Errorf("file reference is required")
	}
	originalName = strings.TrimSpace(originalName)
	if originalName == "" {
		originalName = path.Base(fileRef)
	}
	if len(originalName) > maxOriginalNameLength {
		return nil, fmt.Errorf("original name exceeds maximum length of %d characters", maxOriginalNameLength)
	}

	return &Attachment{
		ticketID:     ticketID,
		fileRef:      fileRef,
		originalName: originalName,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(id, ticketID uint, fileRef, originalName string, createdAt time.Time) *Attachment {
	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		fileRef:      fileRef,
		originalName: originalName,
		createdAt:    createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) TicketID() uint       { return a.ticketID }
func (a *Attachment) FileRef() string      { return a.fileRef }
func (a *Attachment) OriginalName() string { return a.originalName }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	a.id = id
	return nil
}
