package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/metrics"
	"github.com/carson-networks/simple-bank/internal/operator/actions"
	"github.com/carson-networks/simple-bank/internal/storage"
)

// actionProcessor runs a mutating action to completion.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AccountService handles account business logic. Mutations are handed to the
// operator; reads use the committed state of the store.
type AccountService struct {
	storage        *storage.AccountStore
	operator       actionProcessor
	metrics        *metrics.Recorder
	generateNumber bank.NumberGenerator
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.AccountStore, op actionProcessor, recorder *metrics.Recorder) *AccountService {
	return &AccountService{
		storage:        store,
		operator:       op,
		metrics:        recorder,
		generateNumber: bank.NewAccountNumber,
	}
}

// CreateAccount opens an account with a zero balance and a freshly generated
// account number.
func (s *AccountService) CreateAccount(ctx context.Context, newAccount NewAccount) (created *Account, err error) {
	defer s.record("createAccount", &err)

	action := &actions.CreateAccount{
		Name:           newAccount.Name,
		Age:            newAccount.Age,
		Email:          newAccount.Email,
		PIN:            newAccount.PIN,
		GenerateNumber: s.generateNumber,
	}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Created), nil
}

// Deposit adds amount to the balance and returns the new balance.
func (s *AccountService) Deposit(ctx context.Context, creds Credentials, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	defer s.record("deposit", &err)

	action := &actions.Deposit{Credentials: creds.toAction(), Amount: amount}
	if err = s.operator.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.NewBalance, nil
}

// Withdraw removes amount from the balance and returns the new balance.
func (s *AccountService) Withdraw(ctx context.Context, creds Credentials, amount decimal.Decimal) (balance decimal.Decimal, err error) {
	defer s.record("withdraw", &err)

	action := &actions.Withdraw{Credentials: creds.toAction(), Amount: amount}
	if err = s.operator.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}
	return action.NewBalance, nil
}

// ShowDetails returns the account identified by creds.
func (s *AccountService) ShowDetails(ctx context.Context, creds Credentials) (found *Account, err error) {
	defer s.record("showDetails", &err)

	acc := s.storage.FindByCredentials(creds.AccountNumber, creds.PIN)
	if acc == nil {
		return nil, bank.ErrAccountNotFound
	}
	return accountFromStorage(*acc), nil
}

// UpdateDetails applies update and returns the updated account.
func (s *AccountService) UpdateDetails(ctx context.Context, creds Credentials, update DetailsUpdate) (updated *Account, err error) {
	defer s.record("updateDetails", &err)

	action := &actions.UpdateDetails{
		Credentials: creds.toAction(),
		NewName:     update.Name,
		NewEmail:    update.Email,
		NewPIN:      update.PIN,
	}
	if err = s.operator.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Updated), nil
}

// DeleteAccount removes the account identified by creds.
func (s *AccountService) DeleteAccount(ctx context.Context, creds Credentials) (err error) {
	defer s.record("deleteAccount", &err)

	return s.operator.Process(ctx, &actions.DeleteAccount{Credentials: creds.toAction()})
}

// ListAccounts returns a summary of every account in creation order.
func (s *AccountService) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts := s.storage.List()

	summaries := make([]AccountSummary, len(accounts))
	for i, a := range accounts {
		summaries[i] = AccountSummary{
			Name:          a.Name,
			AccountNumber: a.AccountNumber,
			Balance:       a.Balance,
		}
	}
	return summaries, nil
}

func (s *AccountService) record(operation string, err *error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case *err == nil:
	case bank.IsRejection(*err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeError
	}
	s.metrics.RecordOperation(operation, outcome)
}
