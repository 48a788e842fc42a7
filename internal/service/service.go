package service

import (
	"github.com/carson-networks/simple-bank/internal/metrics"
	"github.com/carson-networks/simple-bank/internal/operator"
	"github.com/carson-networks/simple-bank/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Account *AccountService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.AccountStore, op *operator.OperatorDelegator, recorder *metrics.Recorder) *Service {
	return &Service{
		Account: NewAccountService(store, op, recorder),
	}
}
