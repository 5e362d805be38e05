// Package index implements the local manifest index: a SQLite-backed
// store of validated manifest documents keyed by package identifier,
// version, manifest type, and locale.
package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "index.db"

// Key identifies one manifest document in the index. Locale is empty
// for installer and version manifests.
type Key struct {
	Identifier manifest.PackageIdentifier
	Version    manifest.PackageVersion
	Kind       manifest.ManifestType
	Locale     string
}

func (k Key) validate() error {
	if k.Identifier == "" || k.Version.String() == "" || k.Kind == "" {
		return ErrInvalidKey
	}
	return nil
}

// Entry is one stored manifest document with its index metadata.
type Entry struct {
	ID        string
	Key       Key
	Document  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the SQLite-backed manifest index. A Store is not usable
// until Attach succeeds; after Detach every operation returns
// ErrDetached.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// New creates a detached Store; call Attach with a Config to open it.
func New() *Store {
	return &Store{}
}

// Attach opens the index with the given configuration, creating the
// data directory and schema as needed. Returns ErrAlreadyAttached if
// the store is already attached.
func (s *Store) Attach(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true

	return nil
}

// Detach closes the index. Detach is idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// newUUID generates a UUID v7 string for manifest row ids.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Put creates or updates the document stored under key. Returns the
// row id.
func (s *Store) Put(key Key, document string) (string, error) {
	if err := key.validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", ErrDetached
	}

	now := time.Now().UTC().Format(time.RFC3339)

	// Reuse the existing row id on update so the key stays stable.
	var id string
	err := s.db.QueryRow(`
		SELECT manifest_id FROM manifests
		WHERE package_identifier = ? AND package_version = ? AND manifest_type = ? AND locale = ?`,
		key.Identifier.String(), key.Version.String(), string(key.Kind), key.Locale).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		id = newUUID()
	case err != nil:
		return "", fmt.Errorf("checking manifest: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO manifests (manifest_id, package_identifier, package_version, manifest_type, locale, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(package_identifier, package_version, manifest_type, locale) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		id, key.Identifier.String(), key.Version.String(), string(key.Kind), key.Locale,
		document, now, now)
	if err != nil {
		return "", fmt.Errorf("upserting manifest: %w", err)
	}

	return id, nil
}

// Get returns the entry stored under key, or ErrNotFound.
func (s *Store) Get(key Key) (*Entry, error) {
	if err := key.validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	row := s.db.QueryRow(`
		SELECT manifest_id, package_identifier, package_version, manifest_type, locale, document, created_at, updated_at
		FROM manifests
		WHERE package_identifier = ? AND package_version = ? AND manifest_type = ? AND locale = ?`,
		key.Identifier.String(), key.Version.String(), string(key.Kind), key.Locale)
	return scanEntry(row.Scan)
}

// Delete removes the entry stored under key, or returns ErrNotFound.
func (s *Store) Delete(key Key) error {
	if err := key.validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	res, err := s.db.Exec(`
		DELETE FROM manifests
		WHERE package_identifier = ? AND package_version = ? AND manifest_type = ? AND locale = ?`,
		key.Identifier.String(), key.Version.String(), string(key.Kind), key.Locale)
	if err != nil {
		return fmt.Errorf("deleting manifest: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting manifest: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the entries for one package, or every entry when
// identifier is empty, ordered by identifier, version, and type.
func (s *Store) List(identifier manifest.PackageIdentifier) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	query := `
		SELECT manifest_id, package_identifier, package_version, manifest_type, locale, document, created_at, updated_at
		FROM manifests`
	var args []any
	if identifier != "" {
		query += " WHERE package_identifier = ?"
		args = append(args, identifier.String())
	}
	query += " ORDER BY package_identifier, package_version, manifest_type, locale"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing manifests: %w", err)
	}
	defer rows.Close()

	var results []*Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// Versions returns the distinct versions indexed for a package, sorted
// ascending in relaxed version order.
func (s *Store) Versions(identifier manifest.PackageIdentifier) ([]manifest.PackageVersion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.db.Query(
		"SELECT DISTINCT package_version FROM manifests WHERE package_identifier = ?",
		identifier.String())
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	defer rows.Close()

	var versions []manifest.PackageVersion
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning version: %w", err)
		}
		v, err := manifest.NewPackageVersion(raw)
		if err != nil {
			return nil, fmt.Errorf("version %q: %w", raw, err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Less(versions[j])
	})
	return versions, nil
}

// Closest returns the indexed version nearest to target, or
// ErrNoVersions when the package has no entries.
func (s *Store) Closest(identifier manifest.PackageIdentifier, target manifest.PackageVersion) (manifest.PackageVersion, error) {
	versions, err := s.Versions(identifier)
	if err != nil {
		return manifest.PackageVersion{}, err
	}
	if len(versions) == 0 {
		return manifest.PackageVersion{}, ErrNoVersions
	}
	return versions[target.Closest(versions)], nil
}

// scanEntry builds an Entry from a row scan function, translating
// sql.ErrNoRows into ErrNotFound.
func scanEntry(scan func(...any) error) (*Entry, error) {
	var (
		e                    Entry
		identifier, version  string
		kind                 string
		createdAt, updatedAt string
	)
	err := scan(&e.ID, &identifier, &version, &kind, &e.Key.Locale, &e.Document, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning manifest: %w", err)
	}

	e.Key.Identifier = manifest.PackageIdentifier(identifier)
	e.Key.Version, err = manifest.NewPackageVersion(version)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", version, err)
	}
	e.Key.Kind = manifest.ManifestType(kind)

	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
