package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/service"
)

// AccountSummary is the public listing model for an account.
type AccountSummary struct {
	Name          string `json:"name" doc:"Account holder name"`
	AccountNumber string `json:"accountNumber" doc:"Account number"`
	Balance       string `json:"balance" doc:"Decimal balance"`
}

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct{}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
	Accounts []AccountSummary `json:"accounts" doc:"Every account, oldest first"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.AccountSummary, error)
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Returns the name, number and balance of every account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	var summaries []service.AccountSummary
	var err error
	timed(logData, "listAccountsMs", func() {
		summaries, err = h.AccountService.ListAccounts(ctx)
	})
	if err != nil {
		addError(logData, err)
		return nil, failureFromError(err)
	}

	if logData != nil {
		logData.AddData("accountCount", len(summaries))
	}

	resp := ListAccountsResponseBody{
		Success:  true,
		Message:  "Current accounts:",
		Accounts: make([]AccountSummary, len(summaries)),
	}
	if len(summaries) == 0 {
		resp.Message = "No accounts created yet."
	}
	for i, s := range summaries {
		resp.Accounts[i] = AccountSummary{
			Name:          s.Name,
			AccountNumber: s.AccountNumber,
			Balance:       s.Balance.String(),
		}
	}

	return &ListAccountsOutput{Body: resp}, nil
}
