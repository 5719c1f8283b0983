package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// memoryClientSessionStore keeps the session cookie per host in memory only.
// It satisfies the adapter's SessionStore contract and is the default when
// no session file is configured: the session then lives exactly as long as
// the process, matching a non-remembered login.
type memoryClientSessionStore struct {
	mu      sync.RWMutex
	cookies map[string]string
}

// NewMemoryClientSessionStore returns a session store without persistence.
func NewMemoryClientSessionStore() *memoryClientSessionStore {
	return &memoryClientSessionStore{cookies: make(map[string]string)}
}

func (s *memoryClientSessionStore) Get(host string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.cookies[host]
	return value, ok
}

func (s *memoryClientSessionStore) Set(host string, value string, _ bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cookies[host] = value
	return nil
}

func (s *memoryClientSessionStore) Clear(host string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cookies, host)
	return nil
}

// Close is a no-op for the memory-only store.
func (s *memoryClientSessionStore) Close() error { return nil }

// sqliteClientSessionStore layers SQLite persistence over the in-memory
// store so a remember-me session survives client restarts. Non-remembered
// sessions stay memory-only and any persisted row for the host is removed.
type sqliteClientSessionStore struct {
	memory *memoryClientSessionStore
	db     *sql.DB
}

const createClientSessionsTable = `CREATE TABLE IF NOT EXISTS client_sessions (
	host     TEXT PRIMARY KEY,
	cookie   TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);`

// NewClientSessionStore opens (or creates) the SQLite session file at path
// and returns a persistent session store pre-loaded with any remembered
// sessions. An empty path yields the memory-only store.
func NewClientSessionStore(path string) (ClientSessionStore, error) {
	if path == "" {
		return NewMemoryClientSessionStore(), nil
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open client session db: %w", err)
	}
	if _, err = db.Exec(createClientSessionsTable); err != nil {
		return nil, fmt.Errorf("init client session schema: %w", err)
	}

	s := &sqliteClientSessionStore{
		memory: NewMemoryClientSessionStore(),
		db:     db,
	}
	if err = s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *sqliteClientSessionStore) load() error {
	rows, err := s.db.Query(`SELECT host, cookie FROM client_sessions`)
	if err != nil {
		return fmt.Errorf("load client sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var host, cookie string
		if err = rows.Scan(&host, &cookie); err != nil {
			return fmt.Errorf("scan client session: %w", err)
		}
		_ = s.memory.Set(host, cookie, false)
	}

	return rows.Err()
}

func (s *sqliteClientSessionStore) Get(host string) (string, bool) {
	return s.memory.Get(host)
}

func (s *sqliteClientSessionStore) Set(host string, value string, remember bool) error {
	if err := s.memory.Set(host, value, remember); err != nil {
		return err
	}

	if !remember {
		_, err := s.db.Exec(`DELETE FROM client_sessions WHERE host = ?`, host)
		return err
	}

	_, err := s.db.Exec(
		`INSERT INTO client_sessions (host, cookie, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(host) DO UPDATE SET cookie = excluded.cookie, saved_at = excluded.saved_at`,
		host, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("persist client session: %w", err)
	}
	return nil
}

func (s *sqliteClientSessionStore) Clear(host string) error {
	if err := s.memory.Clear(host); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM client_sessions WHERE host = ?`, host); err != nil {
		return fmt.Errorf("clear persisted client session: %w", err)
	}
	return nil
}

// Close releases the underlying SQLite handle.
func (s *sqliteClientSessionStore) Close() error {
	return s.db.Close()
}
