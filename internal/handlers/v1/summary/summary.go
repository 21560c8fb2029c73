package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/logging"
	"github.com/carson-networks/budget-tracker/internal/service"
)

// RecentTransaction is a trimmed transaction for the dashboard list.
type RecentTransaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"accountId"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
}

type SummaryBody struct {
	TotalBalance  string              `json:"totalBalance" doc:"Sum of every account balance"`
	TotalIncome   string              `json:"totalIncome" doc:"Sum of all income amounts"`
	TotalExpenses string              `json:"totalExpenses" doc:"Sum of all expense amounts"`
	AccountCount  int                 `json:"accountCount"`
	IncomeCount   int                 `json:"incomeCount"`
	ExpenseCount  int                 `json:"expenseCount"`
	Recent        []RecentTransaction `json:"recent" doc:"Most recently created transactions"`
}

type GetSummaryInput struct {
	Recent int `query:"recent" minimum:"0" maximum:"100" doc:"How many recent transactions to include, default 5"`
}

type GetSummaryOutput struct {
	Body SummaryBody
}

type summaryGetter interface {
	GetSummary(ctx context.Context, recent int) (*service.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	SummaryService summaryGetter
}

func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Dashboard summary",
		Description: "Returns the total balance, income and expenses along with the latest transactions.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.SummaryService.GetSummary(ctx, input.Recent)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	body := SummaryBody{
		TotalBalance:  summary.TotalBalance.String(),
		TotalIncome:   summary.TotalIncome.String(),
		TotalExpenses: summary.TotalExpenses.String(),
		AccountCount:  summary.AccountCount,
		IncomeCount:   summary.IncomeCount,
		ExpenseCount:  summary.ExpenseCount,
		Recent:        make([]RecentTransaction, len(summary.Recent)),
	}
	for i, t := range summary.Recent {
		body.Recent[i] = RecentTransaction{
			ID:          t.ID,
			AccountID:   t.AccountID,
			Type:        string(t.Type),
			Amount:      t.Amount.String(),
			Description: t.Description,
			Category:    t.Category,
			Date:        t.Date.String(),
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		}
	}

	return &GetSummaryOutput{Body: body}, nil
}
