package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-tracker/internal/service"
)

type CategoriesBody struct {
	Suggested []string `json:"suggested" doc:"Categories offered by default"`
	Used      []string `json:"used" doc:"Categories present on at least one transaction, first use first"`
}

type GetCategoriesOutput struct {
	Body CategoriesBody
}

type categoriesGetter interface {
	GetCategories(ctx context.Context) (*service.Categories, error)
}

// GetCategoriesHandler handles GET /v1/categories.
type GetCategoriesHandler struct {
	SummaryService categoriesGetter
}

func NewGetCategoriesHandler(svc categoriesGetter) *GetCategoriesHandler {
	return &GetCategoriesHandler{SummaryService: svc}
}

func (h *GetCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetCategoriesHandler) handle(ctx context.Context, _ *struct{}) (*GetCategoriesOutput, error) {
	categories, err := h.SummaryService.GetCategories(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list categories", err)
	}
	return &GetCategoriesOutput{Body: CategoriesBody{
		Suggested: categories.Suggested,
		Used:      categories.Used,
	}}, nil
}
