package technology

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/orris-inc/setracker/internal/shared/biztime"
)

// DefaultCategoryColor is the UI hint used when none is supplied.
const DefaultCategoryColor = "#6c757d"

const maxCategoryNameLength = 50

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Category struct {
	id          uint
	name        string
	description string
	color       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(name, description, color string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > maxCategoryNameLength {
		return nil, fmt.Errorf("category name exceeds maximum length of %d characters", maxCategoryNameLength)
	}
	if color == "" {
		color = DefaultCategoryColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("color must be a #RRGGBB hex value")
	}

	now := biztime.NowUTC()
	return &Category{
		name:        name,
		description: description,
		color:       strings.ToLower(color),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(id uint, name, description, color string, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:          id,
		name:        name,
		description: description,
		color:       color,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (c *Category) ID() uint             { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) Color() string        { return c.color }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	c.id = id
	return nil
}
