package domain

import "context"

// Input is implemented by every request body accepted by an entry endpoint.
type Input interface {
	Validate() error
}

// EntryRepository is the persistence port shared by all user-owned entries.
// Every method is scoped to the owning user; Get, Update and Delete return
// ErrNotFound when no row matches both id and userID.
type EntryRepository[E any, In Input] interface {
	List(ctx context.Context, userID int64) ([]E, error)
	Get(ctx context.Context, userID, id int64) (*E, error)
	Create(ctx context.Context, userID int64, in In) (*E, error)
	Update(ctx context.Context, userID, id int64, in In) (*E, error)
	Delete(ctx context.Context, userID, id int64) error
}
