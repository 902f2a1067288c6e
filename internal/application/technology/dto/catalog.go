package dto

// Catalog is the seed document for categories and their technologies.
type Catalog struct {
	Categories []CatalogCategory `yaml:"categories"`
}

type CatalogCategory struct {
	Name         string              `yaml:"name"`
	Description  string              `yaml:"description"`
	Color        string              `yaml:"color"`
	Technologies []CatalogTechnology `yaml:"technologies"`
}

type CatalogTechnology struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
	Version          string `yaml:"version"`
	DocumentationURL string `yaml:"documentation_url"`
}

// SeedResult counts rows inserted by a catalog seed.
type SeedResult struct {
	CategoriesCreated   int `json:"categories_created"`
	TechnologiesCreated int `json:"technologies_created"`
	Skipped             int `json:"skipped"`
}
