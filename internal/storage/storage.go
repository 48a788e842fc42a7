package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/simple-bank/internal/storage/account"
)

// SaveObserver is notified after every attempt to write the data file.
type SaveObserver interface {
	ObserveSave(elapsed time.Duration, err error)
}

// AccountStore owns every account record. The committed list lives in memory
// and is mirrored to a JSON file after each mutation.
type AccountStore struct {
	path     string
	logger   *logrus.Logger
	observer SaveObserver

	mu       sync.RWMutex
	accounts []account.Account

	// writeSlot admits one Writer at a time.
	writeSlot chan struct{}
}

// NewAccountStore creates an empty store backed by path. Call Load before use.
// observer may be nil.
func NewAccountStore(path string, logger *logrus.Logger, observer SaveObserver) *AccountStore {
	return &AccountStore{
		path:      path,
		logger:    logger,
		observer:  observer,
		writeSlot: make(chan struct{}, 1),
	}
}

// Path returns the data file location.
func (s *AccountStore) Path() string {
	return s.path
}

// Load reads all accounts from the data file. A missing, empty or corrupt
// file resets the store to an empty list and writes it back.
func (s *AccountStore) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.WithField("path", s.path).Warn("AccountStore.Load.missing data file")
		return s.reset()
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.logger.WithField("path", s.path).Warn("AccountStore.Load.empty data file")
		return s.reset()
	}

	accounts, err := decodeAccounts(data)
	if err != nil {
		s.logger.WithError(err).WithField("path", s.path).Warn("AccountStore.Load.corrupt data file")
		return s.reset()
	}

	s.mu.Lock()
	s.accounts = accounts
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"path":     s.path,
		"accounts": len(accounts),
	}).Info("AccountStore.Load.complete")
	return nil
}

// Save overwrites the data file with the committed accounts.
func (s *AccountStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persist(s.accounts)
}

func (s *AccountStore) reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = []account.Account{}
	return s.persist(s.accounts)
}

func (s *AccountStore) persist(accounts []account.Account) (err error) {
	start := time.Now()
	defer func() {
		if s.observer != nil {
			s.observer.ObserveSave(time.Since(start), err)
		}
	}()

	data, err := encodeAccounts(accounts)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func encodeAccounts(accounts []account.Account) ([]byte, error) {
	records := make([]account.Record, len(accounts))
	for i, a := range accounts {
		records[i] = account.ToRecord(a)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encode accounts: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeAccounts(data []byte) ([]account.Account, error) {
	var records []account.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	accounts := make([]account.Account, 0, len(records))
	for _, r := range records {
		a, err := account.FromRecord(r)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}
