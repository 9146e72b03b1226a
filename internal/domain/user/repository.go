package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	// Same as GetByID but locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*User, error)
	// Case-insensitive email match.
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
