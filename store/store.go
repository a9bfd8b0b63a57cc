// Package store is an in-memory credential store built on envseal
// envelopes. It demonstrates the collaborator side of the encryption
// boundary: records are stored as opaque envelope strings, plaintext
// exists only in memory during a call, and per-record decryption
// failures are logged and skipped rather than failing a whole listing.
package store

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ai8future/envseal"
)

// Credential is the structured secret stored per record. The whole
// struct is JSON-serialized and sealed into a single envelope; only the
// service label lives outside it.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Record is one stored credential. Envelope is opaque to the store.
type Record struct {
	ID        string
	Service   string
	Envelope  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry pairs a record with its decrypted credential, as returned by List.
type Entry struct {
	Record     Record
	Credential Credential
}

// Store holds encrypted credential records. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	logger  *slog.Logger
}

// New creates an empty Store. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		records: make(map[string]Record),
		logger:  logger,
	}
}

// Put encrypts a credential under masterKey and stores it as a new record.
func (s *Store) Put(service string, cred Credential, masterKey string) (Record, error) {
	envelope, err := envseal.EncryptJSON(cred, masterKey)
	if err != nil {
		return Record{}, err
	}

	now := time.Now().UTC()
	rec := Record{
		ID:        uuid.NewString(),
		Service:   service,
		Envelope:  envelope,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.records[rec.ID] = rec
	s.mu.Unlock()

	return rec, nil
}

// Get decrypts and returns the credential for the given record ID.
// All decryption failures surface as ErrCannotDecrypt; the store never
// tells a caller whether the envelope or the key was at fault.
func (s *Store) Get(id, masterKey string) (Credential, error) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return Credential{}, ErrNotFound
	}

	cred, err := envseal.DecryptJSON[Credential](rec.Envelope, masterKey)
	if err != nil {
		return Credential{}, collapse(err)
	}
	return cred, nil
}

// Update re-encrypts the record's credential in place.
func (s *Store) Update(id string, cred Credential, masterKey string) error {
	envelope, err := envseal.EncryptJSON(cred, masterKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.Envelope = envelope
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return nil
}

// Delete removes a record.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// List decrypts every record with masterKey and returns the readable
// entries, ordered by service name then creation time. Records that
// fail to decrypt are omitted and logged by ID; the log carries no
// plaintext, key material, or failure cause.
func (s *Store) List(masterKey string) []Entry {
	records := s.snapshot()

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		cred, err := envseal.DecryptJSON[Credential](rec.Envelope, masterKey)
		if err != nil {
			s.logger.Warn("skipping undecryptable record",
				slog.String("record_id", rec.ID),
				slog.String("service", rec.Service),
			)
			continue
		}
		entries = append(entries, Entry{Record: rec, Credential: cred})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Record, entries[j].Record
		if a.Service != b.Service {
			return a.Service < b.Service
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return entries
}

// snapshot copies the current records under the read lock.
func (s *Store) snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	return records
}

// RotateAll re-encrypts every record from oldMasterKey to newMasterKey.
// Records that cannot be decrypted with the old key are left untouched
// and counted as skipped, so one corrupted record does not block an
// owner's key change.
//
// Each rotation derives two keys, tens of milliseconds per record, so
// the cryptographic work happens outside the lock: records are
// snapshotted, rotated, and written back one at a time. A record
// deleted or updated while its rotation was in flight is left as the
// concurrent writer made it and counted as skipped.
func (s *Store) RotateAll(oldMasterKey, newMasterKey string) (rotated, skipped int) {
	for _, rec := range s.snapshot() {
		envelope, err := envseal.RotateRecord(rec.Envelope, oldMasterKey, newMasterKey)
		if err != nil {
			s.logger.Warn("skipping record during rotation",
				slog.String("record_id", rec.ID),
				slog.String("service", rec.Service),
			)
			skipped++
			continue
		}

		s.mu.Lock()
		current, ok := s.records[rec.ID]
		if !ok || current.Envelope != rec.Envelope {
			s.mu.Unlock()
			skipped++
			continue
		}
		current.Envelope = envelope
		current.UpdatedAt = time.Now().UTC()
		s.records[rec.ID] = current
		s.mu.Unlock()
		rotated++
	}
	return rotated, skipped
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
