package account

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/simple-bank/internal/bank"
	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

const msgCreateRejected = "Sorry, you cannot create your account. Age must be 18+ and PIN must be 4 digits."

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Name  string `json:"name" doc:"Your name"`
	Age   int    `json:"age" minimum:"0" maximum:"120" doc:"Your age, 18 or older"`
	Email string `json:"email" doc:"Your email"`
	PIN   string `json:"pin" doc:"4-digit PIN"`
}

// CreateAccountResponse is the response body for creating an account.
type CreateAccountResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	AccountInfo Account `json:"accountInfo" doc:"The new account; note down the account number"`
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   CreateAccountResponse
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, newAccount service.NewAccount) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts",
		Summary:     "Create an account",
		Description: "Opens an account with a zero balance and returns its generated account number.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.NewAccount, error) {
	pin, err := strconv.Atoi(input.Body.PIN)
	if err != nil {
		return service.NewAccount{}, NewFailure(http.StatusBadRequest, msgInvalidPIN)
	}

	return service.NewAccount{
		Name:  input.Body.Name,
		Age:   input.Body.Age,
		Email: input.Body.Email,
		PIN:   pin,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	newAccount, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	created, err := h.AccountService.CreateAccount(ctx, newAccount)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		addError(logData, err)
	}
	if errors.Is(err, bank.ErrUnderage) || errors.Is(err, bank.ErrInvalidPIN) {
		return nil, NewFailure(http.StatusBadRequest, msgCreateRejected)
	}
	if err != nil {
		return nil, failureFromError(err)
	}

	if logData != nil {
		logData.AddData("accountNumber", created.AccountNumber)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body: CreateAccountResponse{
			Success:     true,
			Message:     "Account has been created successfully!",
			AccountInfo: accountFromService(created),
		},
	}, nil
}
