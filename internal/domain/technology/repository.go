package technology

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Category, error)
}

type Repository interface {
	Create(ctx context.Context, technology *Technology) error
	Update(ctx context.Context, technology *Technology) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Technology, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Technology, error)
	GetByName(ctx context.Context, name string) (*Technology, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// List returns technologies ordered by category name then name;
	// an empty categoryName means all categories.
	List(ctx context.Context, categoryName string) ([]*Technology, error)
	// UsageCounts returns the number of tickets referencing each technology.
	UsageCounts(ctx context.Context) (map[uint]int, error)
}
