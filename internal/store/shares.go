package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ShareHashLength is the length of the public share hash. The hash acts as a
// capability token: knowing it grants read access to one user's content.
const ShareHashLength = 10

const hashAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ShareLink is a public read-only handle on a user's content. At most one
// exists per user (unique index on owner_id); the hash is globally unique so
// it can serve as a lookup key.
type ShareLink struct {
	ID        string    `db:"id"`
	Hash      string    `db:"hash"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

type ShareStore struct {
	db *sqlx.DB
}

func NewShareStore(db *sqlx.DB) *ShareStore {
	return &ShareStore{db: db}
}

func (s *ShareStore) q(query string) string { return s.db.Rebind(query) }

// Create generates a fresh random hash and inserts a share link for ownerID.
// Returns ErrShareExists when the user already has one; callers treat that as
// "fetch the existing hash instead" to keep share-enable idempotent under
// concurrent requests.
func (s *ShareStore) Create(ctx context.Context, ownerID string) (*ShareLink, error) {
	hash, err := GenerateShareHash()
	if err != nil {
		return nil, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = s.db.ExecContext(ctx, s.q(`
		INSERT INTO share_links (id, hash, owner_id, created_at)
		VALUES (?, ?, ?, ?)
	`), id, hash, ownerID, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrShareExists
		}
		return nil, err
	}

	return &ShareLink{ID: id, Hash: hash, OwnerID: ownerID, CreatedAt: now}, nil
}

// GetByOwner returns the share link for ownerID, or ErrNotFound.
func (s *ShareStore) GetByOwner(ctx context.Context, ownerID string) (*ShareLink, error) {
	var l ShareLink
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM share_links WHERE owner_id = ?`), ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByHash returns the share link matching hash, or ErrNotFound.
func (s *ShareStore) GetByHash(ctx context.Context, hash string) (*ShareLink, error) {
	var l ShareLink
	err := s.db.GetContext(ctx, &l, s.q(`SELECT * FROM share_links WHERE hash = ?`), hash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteByOwner removes the share link for ownerID. Removing a link that does
// not exist is a no-op; share-disable confirms regardless.
func (s *ShareStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	_, err := s.db.ExecContext(ctx, s.q(`DELETE FROM share_links WHERE owner_id = ?`), ownerID)
	return err
}

// GenerateShareHash produces a cryptographically random base62 string of
// ShareHashLength characters.
func GenerateShareHash() (string, error) {
	base := big.NewInt(int64(len(hashAlphabet)))
	out := make([]byte, ShareHashLength)
	for i := range out {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		out[i] = hashAlphabet[n.Int64()]
	}
	return string(out), nil
}
