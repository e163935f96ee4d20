package servicerequest

import "context"

// Repository is the store contract for service requests. Point lookups
// against a missing ID return (nil, nil): a miss is benign, not an error.
type Repository interface {
	// List returns the requested 1-indexed page in the collection's
	// current order along with the total count. Out-of-range pages yield
	// an empty slice.
	List(ctx context.Context, page, pageSize int) ([]*ServiceRequest, int64, error)

	// GetByID returns nil (and no error) when the ID is absent.
	GetByID(ctx context.Context, id string) (*ServiceRequest, error)

	// Save stores a new record, allocating an ID when the record has none.
	Save(ctx context.Context, sr *ServiceRequest) error

	// Update replaces the stored record with the given one. Returns false
	// when the ID is absent.
	Update(ctx context.Context, sr *ServiceRequest) (bool, error)

	// ReplaceAll swaps the entire collection for the given records.
	ReplaceAll(ctx context.Context, requests []*ServiceRequest) error

	Count(ctx context.Context) (int64, error)
}
