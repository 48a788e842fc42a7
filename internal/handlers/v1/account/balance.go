package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

const msgDepositRange = "Sorry, the amount must be greater than 0 and at most 10000."

// BalanceChangeBody is the request body for deposits and withdrawals.
type BalanceChangeBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number"`
	PIN           string `json:"pin" doc:"4-digit PIN"`
	Amount        string `json:"amount" doc:"Decimal amount, e.g. '100' or '12.50'"`
}

// BalanceChangeInput is the Huma input for deposits and withdrawals.
type BalanceChangeInput struct {
	Body BalanceChangeBody
}

// BalanceChangeResponse is the response body for deposits and withdrawals.
type BalanceChangeResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	NewBalance string `json:"newBalance" doc:"Decimal balance after the operation"`
}

// BalanceChangeOutput is the Huma output for deposits and withdrawals.
type BalanceChangeOutput struct {
	Body BalanceChangeResponse
}

type balanceChanger interface {
	Deposit(ctx context.Context, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, creds service.Credentials, amount decimal.Decimal) (decimal.Decimal, error)
}

// DepositHandler handles POST /v1/accounts/deposit.
type DepositHandler struct {
	AccountService balanceChanger
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc balanceChanger) *DepositHandler {
	return &DepositHandler{AccountService: svc}
}

// Register registers the deposit endpoint with the Huma API.
func (h *DepositHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deposit",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/deposit",
		Summary:     "Deposit money",
		Description: "Adds between 0 (exclusive) and 10000 (inclusive) to the balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DepositHandler) handle(ctx context.Context, input *BalanceChangeInput) (*BalanceChangeOutput, error) {
	logData := logging.GetLogData(ctx)

	creds, amount, err := parseBalanceChangeInput(input)
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	timed(logData, "depositMs", func() {
		balance, err = h.AccountService.Deposit(ctx, creds, amount)
	})
	if err != nil {
		addError(logData, err)
		if errors.Is(err, bank.ErrInvalidAmount) || errors.Is(err, bank.ErrDepositLimit) {
			return nil, NewFailure(http.StatusBadRequest, msgDepositRange)
		}
		return nil, failureFromError(err)
	}

	return &BalanceChangeOutput{Body: BalanceChangeResponse{
		Success:    true,
		Message:    "Amount deposited successfully!",
		NewBalance: balance.StringFixed(2),
	}}, nil
}

// WithdrawHandler handles POST /v1/accounts/withdraw.
type WithdrawHandler struct {
	AccountService balanceChanger
}

// NewWithdrawHandler creates a new WithdrawHandler.
func NewWithdrawHandler(svc balanceChanger) *WithdrawHandler {
	return &WithdrawHandler{AccountService: svc}
}

// Register registers the withdraw endpoint with the Huma API.
func (h *WithdrawHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "withdraw",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/withdraw",
		Summary:     "Withdraw money",
		Description: "Removes a positive amount no larger than the balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *WithdrawHandler) handle(ctx context.Context, input *BalanceChangeInput) (*BalanceChangeOutput, error) {
	logData := logging.GetLogData(ctx)

	creds, amount, err := parseBalanceChangeInput(input)
	if err != nil {
		return nil, err
	}

	var balance decimal.Decimal
	timed(logData, "withdrawMs", func() {
		balance, err = h.AccountService.Withdraw(ctx, creds, amount)
	})
	if err != nil {
		addError(logData, err)
		if errors.Is(err, bank.ErrInvalidAmount) {
			return nil, NewFailure(http.StatusBadRequest, "Sorry, the amount must be greater than 0.")
		}
		return nil, failureFromError(err)
	}

	return &BalanceChangeOutput{Body: BalanceChangeResponse{
		Success:    true,
		Message:    "Amount withdrawn successfully!",
		NewBalance: balance.StringFixed(2),
	}}, nil
}

func parseBalanceChangeInput(input *BalanceChangeInput) (service.Credentials, decimal.Decimal, error) {
	creds, err := parseCredentials(input.Body.AccountNumber, input.Body.PIN)
	if err != nil {
		return service.Credentials{}, decimal.Zero, err
	}
	amount, err := parseAmount(input.Body.Amount)
	if err != nil {
		return service.Credentials{}, decimal.Zero, err
	}
	return creds, amount, nil
}
