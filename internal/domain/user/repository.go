package user

import "context"

type UserRepository interface {
	// GetByID retrieves a user by its primary key.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email, used by login and by the tenant
	// resolver fallback for manager/employee users without an admin_id.
	GetByEmail(ctx context.Context, email string) (User, error)
}
