package technology

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/shared/biztime"
)

const (
	maxNameLength    = 100
	maxVersionLength = 50
)

// Technology is a standardized tag attached to tickets.
type Technology struct {
	id               uint
	name             string
	categoryID       uint
	description      string
	version          string
	documentationURL string
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewTechnology(name string, categoryID uint, description, version, documentationURL string) (*Technology, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("technology name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("technology name exceeds maximum length of %d characters", maxNameLength)
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(version) > maxVersionLength {
		return nil, fmt.Errorf("version exceeds maximum length of %d characters", maxVersionLength)
	}
	if documentationURL != "" {
		u, err := url.Parse(documentationURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("documentation URL must be an absolute http(s) URL")
		}
	}

	now := biztime.NowUTC()
	return &Technology{
		name:             name,
		categoryID:       categoryID,
		description:      description,
		version:          version,
		documentationURL: documentationURL,
		active:           true,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructTechnology(
	id uint,
	name string,
	categoryID uint,
	description, version, documentationURL string,
	active bool,
	createdAt, updatedAt time.Time,
) *Technology {
	return &Technology{
		id:               id,
		name:             name,
		categoryID:       categoryID,
		description:      description,
		version:          version,
		documentationURL: documentationURL,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (t *Technology) ID() uint                 { return t.id }
func (t *Technology) Name() string             { return t.name }
func (t *Technology) CategoryID() uint         { return t.categoryID }
func (t *Technology) Description() string      { return t.description }
func (t *Technology) Version() string          { return t.version }
func (t *Technology) DocumentationURL() string { return t.documentationURL }
func (t *Technology) IsActive() bool           { return t.active }
func (t *Technology) CreatedAt() time.Time     { return t.createdAt }
func (t *Technology) UpdatedAt() time.Time     { return t.updatedAt }

func (t *Technology) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("technology ID is already set")
	}
	t.id = id
	return nil
}

func (t *Technology) Deactivate() {
	t.active = false
	t.updatedAt = biztime.NowUTC()
}
