package storage

import (
	"github.com/carson-networks/simple-bank/internal/storage/account"
)

// List returns a copy of the committed accounts in creation order.
func (s *AccountStore) List() []account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]account.Account, len(s.accounts))
	copy(accounts, s.accounts)
	return accounts
}

// FindByCredentials returns a copy of the account matching accountNumber and
// pin, or nil.
func (s *AccountStore) FindByCredentials(accountNumber string, pin int) *account.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].Matches(accountNumber, pin) {
			found := s.accounts[i]
			return &found
		}
	}
	return nil
}
