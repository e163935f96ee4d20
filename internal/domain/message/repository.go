package message

import "context"

// Repository is the persistence contract for client messages. Lookups
// for absent records return (nil, nil); mutations report a found flag
// instead of erroring on a miss.
type Repository interface {
	// List returns the filtered page and the total filtered count.
	List(ctx context.Context, filter Filter, page, pageSize int) ([]*ClientMessage, int64, error)
	// GetByID returns nil without error when the message does not exist.
	GetByID(ctx context.Context, id string) (*ClientMessage, error)
	// Save persists a new message, allocating its ID.
	Save(ctx context.Context, m *ClientMessage) error
	// Update applies the patch; found is false when the ID is unknown.
	Update(ctx context.Context, id string, patch Patch) (found bool, err error)
	// BatchUpdate applies the patch to every listed ID and returns the
	// number of records actually updated; unknown IDs are skipped.
	BatchUpdate(ctx context.Context, ids []string, patch Patch) (updated int64, err error)
	// Search matches the query case-insensitively against subject,
	// content, client name, and client email. A blank query matches
	// everything.
	Search(ctx context.Context, query string, page, pageSize int) ([]*ClientMessage, int64, error)
	// CountUnread counts every message with IsRead false.
	CountUnread(ctx context.Context) (int64, error)
	// ListByRelatedService returns all messages linked to a request.
	ListByRelatedService(ctx context.Context, serviceRequestID string) ([]*ClientMessage, error)
	// ReplaceAll swaps the whole collection, used by seeding.
	ReplaceAll(ctx context.Context, msgs []*ClientMessage) error
	Count(ctx context.Context) (int64, error)
}

// ThreadRepository is the persistence contract for conversation threads.
type ThreadRepository interface {
	List(ctx context.Context, page, pageSize int) ([]*MessageThread, int64, error)
	// GetByID returns nil without error when the thread does not exist.
	GetByID(ctx context.Context, id string) (*MessageThread, error)
	// Create persists a new thread, allocating the thread ID and the
	// initial message ID.
	Create(ctx context.Context, t *MessageThread) error
	// AppendMessage adds a message to the thread, allocating its ID from
	// the thread's running count. Returns the stored message, or found
	// false when the thread is unknown.
	AppendMessage(ctx context.Context, threadID string, tm ThreadMessage) (stored *ThreadMessage, found bool, err error)
	// Update applies the patch; found is false when the ID is unknown.
	Update(ctx context.Context, id string, patch ThreadPatch) (found bool, err error)
	// MarkMessageRead flags one entry of a thread as read; found is false
	// when either the thread or the entry is unknown.
	MarkMessageRead(ctx context.Context, threadID, messageID string) (found bool, err error)
	// ReplaceAll swaps the whole collection, used by seeding.
	ReplaceAll(ctx context.Context, threads []*MessageThread) error
	Count(ctx context.Context) (int64, error)
}
