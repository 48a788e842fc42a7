package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

const (
	msgNotFound          = "Sorry, no data found for the provided account number and PIN."
	msgInvalidPIN        = "PIN must be a valid 4-digit number."
	msgInvalidAmount     = "Amount must be a valid number."
	msgInsufficientFunds = "Sorry, you don't have enough money in your account."
	msgInternal          = "Something went wrong, please try again."
)

// Account is the API response model for an account.
type Account struct {
	Name          string `json:"name" doc:"Account holder name"`
	Age           int    `json:"age" doc:"Account holder age"`
	Email         string `json:"email" doc:"Account holder email"`
	PIN           int    `json:"pin" doc:"4-digit PIN"`
	AccountNumber string `json:"accountNumber" doc:"Generated 7-character account number"`
	Balance       string `json:"balance" doc:"Decimal balance"`
}

func accountFromService(a *service.Account) Account {
	return Account{
		Name:          a.Name,
		Age:           a.Age,
		Email:         a.Email,
		PIN:           a.PIN,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance.String(),
	}
}

// Failure is the result object returned for a rejected request. It satisfies
// huma.StatusError so handlers can return it as an error.
type Failure struct {
	status  int
	Success bool   `json:"success" doc:"Always false"`
	Message string `json:"message" doc:"Human readable reason"`
}

func NewFailure(status int, message string) *Failure {
	return &Failure{status: status, Message: message}
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) GetStatus() int {
	return f.status
}

// failureFromError maps service errors that have a common wording for every
// operation.
func failureFromError(err error) *Failure {
	switch {
	case errors.Is(err, bank.ErrAccountNotFound):
		return NewFailure(http.StatusNotFound, msgNotFound)
	case errors.Is(err, bank.ErrInvalidPIN):
		return NewFailure(http.StatusBadRequest, msgInvalidPIN)
	case errors.Is(err, bank.ErrInsufficientFunds):
		return NewFailure(http.StatusBadRequest, msgInsufficientFunds)
	case bank.IsRejection(err):
		return NewFailure(http.StatusBadRequest, err.Error())
	default:
		return NewFailure(http.StatusInternalServerError, msgInternal)
	}
}

func parseCredentials(accountNumber, pin string) (service.Credentials, error) {
	parsedPIN, err := strconv.Atoi(pin)
	if err != nil {
		return service.Credentials{}, NewFailure(http.StatusBadRequest, msgInvalidPIN)
	}
	return service.Credentials{AccountNumber: accountNumber, PIN: parsedPIN}, nil
}

func parseAmount(amount string) (decimal.Decimal, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, NewFailure(http.StatusBadRequest, msgInvalidAmount)
	}
	return parsed, nil
}

func addError(logData *logging.LogData, err error) {
	if logData != nil {
		logData.AddData("error", err.Error())
	}
}

// timed runs fn and records its duration under name when logData is set.
func timed(logData *logging.LogData, name string, fn func()) {
	if logData == nil {
		fn()
		return
	}
	stopTimer := logData.AddTiming(name)
	fn()
	stopTimer()
}
