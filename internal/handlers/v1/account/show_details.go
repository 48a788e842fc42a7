package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

// CredentialsBody identifies an account.
type CredentialsBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number"`
	PIN           string `json:"pin" doc:"4-digit PIN"`
}

// ShowDetailsInput is the Huma input for showing account details.
type ShowDetailsInput struct {
	Body CredentialsBody
}

// ShowDetailsResponse is the response body for showing account details.
type ShowDetailsResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	AccountInfo Account `json:"accountInfo"`
}

// ShowDetailsOutput is the Huma output for showing account details.
type ShowDetailsOutput struct {
	Body ShowDetailsResponse
}

type detailsReader interface {
	ShowDetails(ctx context.Context, creds service.Credentials) (*service.Account, error)
}

// ShowDetailsHandler handles POST /v1/accounts/details.
type ShowDetailsHandler struct {
	AccountService detailsReader
}

// NewShowDetailsHandler creates a new ShowDetailsHandler.
func NewShowDetailsHandler(svc detailsReader) *ShowDetailsHandler {
	return &ShowDetailsHandler{AccountService: svc}
}

// Register registers the show details endpoint with the Huma API.
func (h *ShowDetailsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "show-details",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/details",
		Summary:     "Show account details",
		Description: "Returns the full account record for the given account number and PIN.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ShowDetailsHandler) handle(ctx context.Context, input *ShowDetailsInput) (*ShowDetailsOutput, error) {
	logData := logging.GetLogData(ctx)

	creds, err := parseCredentials(input.Body.AccountNumber, input.Body.PIN)
	if err != nil {
		return nil, err
	}

	found, err := h.AccountService.ShowDetails(ctx, creds)
	if err != nil {
		addError(logData, err)
		return nil, failureFromError(err)
	}

	return &ShowDetailsOutput{Body: ShowDetailsResponse{
		Success:     true,
		Message:     "Your account information:",
		AccountInfo: accountFromService(found),
	}}, nil
}
