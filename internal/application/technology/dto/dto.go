package dto

import "github.com/orris-inc/setracker/internal/domain/technology"

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// TechnologyDTO carries the usage count derived at read time.
type TechnologyDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Version          string `json:"version"`
	DocumentationURL string `json:"documentation_url"`
	Active           bool   `json:"active"`
	UsageCount       int    `json:"usage_count"`
}

func ToCategoryDTO(c *technology.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		Color:       c.Color(),
	}
}

func ToTechnologyDTO(t *technology.Technology, categoryName string, usageCount int) TechnologyDTO {
	return TechnologyDTO{
		ID:               t.ID(),
		Name:             t.Name(),
		Category:         categoryName,
		Description:      t.Description(),
		Version:          t.Version(),
		DocumentationURL: t.DocumentationURL(),
		Active:           t.IsActive(),
		UsageCount:       usageCount,
	}
}
