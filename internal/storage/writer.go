package storage

import (
	"context"
	"errors"

	"github.com/carson-networks/simple-bank/internal/storage/account"
)

var ErrWriterClosed = errors.New("writer already committed or rolled back")

// Writer stages changes on a private copy of the accounts. Nothing is visible
// to readers or written to disk until Commit.
type Writer struct {
	store    *AccountStore
	accounts []account.Account
	closed   bool
}

// Write waits for the writer slot and returns a Writer over the committed
// accounts. The slot is held until Commit or Rollback.
func (s *AccountStore) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeSlot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &Writer{
		store:    s,
		accounts: s.List(),
	}, nil
}

// FindByCredentials returns the staged account matching accountNumber and pin
// so it can be modified in place, or nil.
func (w *Writer) FindByCredentials(accountNumber string, pin int) *account.Account {
	for i := range w.accounts {
		if w.accounts[i].Matches(accountNumber, pin) {
			return &w.accounts[i]
		}
	}
	return nil
}

// Exists reports whether any staged account uses accountNumber.
func (w *Writer) Exists(accountNumber string) bool {
	for i := range w.accounts {
		if w.accounts[i].AccountNumber == accountNumber {
			return true
		}
	}
	return false
}

// Insert appends a new account. Pointers from FindByCredentials are invalid
// afterwards.
func (w *Writer) Insert(a account.Account) {
	w.accounts = append(w.accounts, a)
}

// Remove deletes the staged account matching accountNumber and pin and
// reports whether one was found.
func (w *Writer) Remove(accountNumber string, pin int) bool {
	for i := range w.accounts {
		if w.accounts[i].Matches(accountNumber, pin) {
			w.accounts = append(w.accounts[:i], w.accounts[i+1:]...)
			return true
		}
	}
	return false
}

// Commit writes the staged accounts to disk and publishes them. If the write
// fails the committed state is left untouched.
func (w *Writer) Commit() error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.release()

	w.store.mu.Lock()
	defer w.store.mu.Unlock()

	if err := w.store.persist(w.accounts); err != nil {
		return err
	}
	w.store.accounts = w.accounts
	return nil
}

// Rollback discards the staged changes. It is a no-op after Commit.
func (w *Writer) Rollback() error {
	if w.closed {
		return nil
	}
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closed = true
	<-w.store.writeSlot
}
