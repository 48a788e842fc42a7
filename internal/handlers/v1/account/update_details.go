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

const msgNewPINInvalid = "New PIN must be 4 digits."

// UpdateDetailsBody is the request body for updating an account. Empty
// optional fields are left unchanged.
type UpdateDetailsBody struct {
	AccountNumber string `json:"accountNumber" minLength:"1" doc:"Account number"`
	PIN           string `json:"pin" doc:"Current 4-digit PIN"`
	NewName       string `json:"newName,omitempty" doc:"New name"`
	NewEmail      string `json:"newEmail,omitempty" doc:"New email"`
	NewPIN        string `json:"newPin,omitempty" doc:"New 4-digit PIN"`
}

// UpdateDetailsInput is the Huma input for updating an account.
type UpdateDetailsInput struct {
	Body UpdateDetailsBody
}

// UpdateDetailsResponse is the response body for updating an account.
type UpdateDetailsResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	UpdatedInfo Account `json:"updatedInfo"`
}

// UpdateDetailsOutput is the Huma output for updating an account.
type UpdateDetailsOutput struct {
	Body UpdateDetailsResponse
}

type detailsUpdater interface {
	UpdateDetails(ctx context.Context, creds service.Credentials, update service.DetailsUpdate) (*service.Account, error)
}

// UpdateDetailsHandler handles POST /v1/accounts/update.
type UpdateDetailsHandler struct {
	AccountService detailsUpdater
}

// NewUpdateDetailsHandler creates a new UpdateDetailsHandler.
func NewUpdateDetailsHandler(svc detailsUpdater) *UpdateDetailsHandler {
	return &UpdateDetailsHandler{AccountService: svc}
}

// Register registers the update details endpoint with the Huma API.
func (h *UpdateDetailsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-details",
		Method:      http.MethodPost,
		Path:        "/v1/accounts/update",
		Summary:     "Update account details",
		Description: "Changes the name, email or PIN. Age, account number and balance cannot be changed.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseUpdateDetailsInput(input *UpdateDetailsInput) (service.Credentials, service.DetailsUpdate, error) {
	creds, err := parseCredentials(input.Body.AccountNumber, input.Body.PIN)
	if err != nil {
		return service.Credentials{}, service.DetailsUpdate{}, err
	}

	var update service.DetailsUpdate
	if input.Body.NewName != "" {
		update.Name = &input.Body.NewName
	}
	if input.Body.NewEmail != "" {
		update.Email = &input.Body.NewEmail
	}
	if input.Body.NewPIN != "" {
		pin, err := strconv.Atoi(input.Body.NewPIN)
		if err != nil {
			return service.Credentials{}, service.DetailsUpdate{}, NewFailure(http.StatusBadRequest, "New PIN must be a valid number.")
		}
		update.PIN = &pin
	}
	return creds, update, nil
}

func (h *UpdateDetailsHandler) handle(ctx context.Context, input *UpdateDetailsInput) (*UpdateDetailsOutput, error) {
	logData := logging.GetLogData(ctx)

	creds, update, err := parseUpdateDetailsInput(input)
	if err != nil {
		return nil, err
	}

	var updated *service.Account
	timed(logData, "updateDetailsMs", func() {
		updated, err = h.AccountService.UpdateDetails(ctx, creds, update)
	})
	if err != nil {
		addError(logData, err)
		if errors.Is(err, bank.ErrInvalidPIN) {
			return nil, NewFailure(http.StatusBadRequest, msgNewPINInvalid)
		}
		return nil, failureFromError(err)
	}

	return &UpdateDetailsOutput{Body: UpdateDetailsResponse{
		Success:     true,
		Message:     "Details updated successfully!",
		UpdatedInfo: accountFromService(updated),
	}}, nil
}
