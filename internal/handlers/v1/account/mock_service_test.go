package account

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/simple-bank/internal/service"
)

// mockAccountService is a mock for every account service interface.
type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, newAccount service.NewAccount) (*service.Account, error) {
	args := m.Called(ctx, newAccount)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context) ([]service.AccountSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]service.AccountSummary)
	return summaries, args.Error(1)
}

func (m *mockAccountService) Deposit(ctx context.Context, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, creds, amount)
	balance, _ := args.Get(0).(decimal.Decimal)
	return balance, args.Error(1)
}

func (m *mockAccountService) Withdraw(ctx context.Context, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, creds, amount)
	balance, _ := args.Get(0).(decimal.Decimal)
	return balance, args.Error(1)
}

func (m *mockAccountService) ShowDetails(ctx context.Context, creds service.Credentials) (*service.Account, error) {
	args := m.Called(ctx, creds)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) UpdateDetails(ctx context.Context, creds service.Credentials, update service.DetailsUpdate) (*service.Account, error) {
	args := m.Called(ctx, creds, update)
	acc, _ := args.Get(0).(*service.Account)
	return acc, args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, creds service.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}


// newTestAPI registers every account handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewDepositHandler(svc).Register(api)
	NewWithdrawHandler(svc).Register(api)
	NewShowDetailsHandler(svc).Register(api)
	NewUpdateDetailsHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

func sampleAccount() *service.Account {
	return &service.Account{
		Name:          "Ada",
		Age:           30,
		Email:         "ada@example.com",
		PIN:           1234,
		AccountNumber: "aB1!2c3",
		Balance:       decimal.RequireFromString("42.5"),
	}
}
