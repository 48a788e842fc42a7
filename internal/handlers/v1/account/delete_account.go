package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

// DeleteAccountBody is the request body for deleting an account.
type DeleteAccountBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number"`
	PIN           string `json:"pin" doc:"4-digit PIN"`
	Confirm       bool   `json:"confirm" doc:"Must be true: deletion is irreversible"`
}

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	Body DeleteAccountBody
}

// DeleteAccountResponse is the response body for deleting an account.
type DeleteAccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteAccountOutput is the Huma output for deleting an account.
type DeleteAccountOutput struct {
	Body DeleteAccountResponse
}

type accountDeleter interface {
	DeleteAccount(ctx context.Context, creds service.Credentials) error
}

// DeleteAccountHandler handles POST /v1/accounts/delete.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/delete",
		Summary:     "Delete an account",
		Description: "Removes the account permanently. Requires confirm=true.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	if !input.Body.Confirm {
		return nil, NewFailure(http.StatusBadRequest, "Please confirm deletion: this action is irreversible.")
	}

	creds, err := parseCredentials(input.Body.AccountNumber, input.Body.PIN)
	if err != nil {
		return nil, err
	}

	timed(logData, "deleteAccountMs", func() {
		err = h.AccountService.DeleteAccount(ctx, creds)
	})
	if err != nil {
		addError(logData, err)
		return nil, failureFromError(err)
	}

	return &DeleteAccountOutput{Body: DeleteAccountResponse{
		Success: true,
		Message: "Account deleted successfully!",
	}}, nil
}
