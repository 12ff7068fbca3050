package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Content is a saved {title, link} pair owned by a user. Tags exist in the
// schema (content_tags) but no write path populates them, so they are always
// empty in responses.
type Content struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Link      string    `db:"link"`
	Type      string    `db:"type"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

// ContentWithOwner is a content row with the owner's username joined in,
// used by list endpoints and the public share view.
type ContentWithOwner struct {
	Content
	Username string `db:"username"`
}

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) q(query string) string { return s.db.Rebind(query) }

// Create persists a content item for ownerID. The owner comes from the
// verified token, so no separate ownership check is needed.
func (s *ContentStore) Create(ctx context.Context, title, link, contentType, ownerID string) (*Content, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO content (id, title, link, type, owner_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`), id, title, link, contentType, ownerID, now)
	if err != nil {
		return nil, err
	}

	var c Content
	err = s.db.GetContext(ctx, &c, s.q(`SELECT * FROM content WHERE id = ?`), id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByOwner returns all content for ownerID with the owner's username
// joined in, newest first.
func (s *ContentStore) ListByOwner(ctx context.Context, ownerID string) ([]*ContentWithOwner, error) {
	var items []*ContentWithOwner
	err := s.db.SelectContext(ctx, &items, s.q(`
		SELECT c.id, c.title, c.link, c.type, c.owner_id, c.created_at, u.username
		FROM content c
		JOIN users u ON u.id = c.owner_id
		WHERE c.owner_id = ?
		ORDER BY c.created_at DESC, c.id
	`), ownerID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the content row matching both id and ownerID. Deleting a
// row that does not exist (or belongs to someone else) is a no-op; the
// operation is idempotent from the caller's point of view.
func (s *ContentStore) Delete(ctx context.Context, id, ownerID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		DELETE FROM content WHERE id = ? AND owner_id = ?
	`), id, ownerID)
	return err
}
