package project

import "context"

type Repository interface {
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// Delete removes the project and, through cascades, its tickets.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	GetByName(ctx context.Context, name string) (*Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]*Project, error)
	// ProgressByProject returns total/completed ticket counts keyed by project ID.
	ProgressByProject(ctx context.Context) (map[uint]Progress, error)
}
