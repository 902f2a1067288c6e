package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIDs returns the users found; missing IDs are silently skipped.
	GetByIDs(ctx context.Context, ids []uint) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByUsernames returns the users found; missing usernames are silently skipped.
	GetByUsernames(ctx context.Context, usernames []string) ([]*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ListTeamMembers(ctx context.Context) ([]*User, error)
}
