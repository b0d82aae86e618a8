package storage

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/revcopy/adminctl/internal/auth"
	_ "modernc.org/sqlite"
)

// Storage keys for the persisted credential fields. Token values are
// encrypted at rest; the expiry is stored as epoch milliseconds in the clear.
const (
	keyAccessToken  = "admin_access_token"
	keyRefreshToken = "admin_refresh_token"
	keyTokenExpiry  = "admin_token_expiry"
)

// SQLiteKeeper persists the admin token pair in a local SQLite database,
// with token values encrypted using AES-GCM.
type SQLiteKeeper struct {
	db            *sql.DB
	encryptionKey []byte
	mu            sync.Mutex
}

var _ auth.Keeper = (*SQLiteKeeper)(nil)

// NewSQLiteKeeper opens (or creates) the credential database at dbPath.
// The encryptionKey is used to encrypt and decrypt token values.
func NewSQLiteKeeper(dbPath string, encryptionKey []byte) (*SQLiteKeeper, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	k := &SQLiteKeeper{
		db:            db,
		encryptionKey: encryptionKey,
	}

	if err := k.init(); err != nil {
		db.Close()
		return nil, err
	}

	return k, nil
}

func (k *SQLiteKeeper) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS credentials (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	if _, err := k.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create credentials table: %w", err)
	}
	return nil
}

// Load returns the persisted token pair. It returns nil, nil when nothing is
// stored. A row set missing any of the three fields is returned as-is so the
// caller can decide to discard it.
func (k *SQLiteKeeper) Load() (*auth.TokenPair, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	rows, err := k.db.Query("SELECT key, value FROM credentials")
	if err != nil {
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, nil
	}

	pair := &auth.TokenPair{}

	if enc, ok := values[keyAccessToken]; ok {
		plain, err := Decrypt(enc, k.encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt access token: %w", err)
		}
		pair.AccessToken = string(plain)
	}
	if enc, ok := values[keyRefreshToken]; ok {
		plain, err := Decrypt(enc, k.encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
		}
		pair.RefreshToken = string(plain)
	}
	if raw, ok := values[keyTokenExpiry]; ok {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse token expiry: %w", err)
		}
		pair.ExpiresAt = time.UnixMilli(millis)
	}

	return pair, nil
}

// Save stores all three credential fields as one set.
func (k *SQLiteKeeper) Save(pair auth.TokenPair) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	encAccess, err := Encrypt([]byte(pair.AccessToken), k.encryptionKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	encRefresh, err := Encrypt([]byte(pair.RefreshToken), k.encryptionKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	now := time.Now()
	tx, err := k.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	upsert := `
		INSERT INTO credentials (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	for key, value := range map[string]string{
		keyAccessToken:  encAccess,
		keyRefreshToken: encRefresh,
		keyTokenExpiry:  strconv.FormatInt(pair.ExpiresAt.UnixMilli(), 10),
	} {
		if _, err := tx.Exec(upsert, key, value, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to save credential %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit credentials: %w", err)
	}
	return nil
}

// Clear removes all credential fields. Clearing an already empty keeper
// succeeds.
func (k *SQLiteKeeper) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, err := k.db.Exec("DELETE FROM credentials"); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (k *SQLiteKeeper) Close() error {
	return k.db.Close()
}
