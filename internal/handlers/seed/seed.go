package seed

//go:generate mockgen -source=seed.go -destination=mock_service.go -package=seed

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
)

type Service interface {
	Seed(ctx context.Context) error
	Diagnose(ctx context.Context) ([]domain.InvoiceAmount, error)
}

type Revalidator interface {
	RevalidatePath(prefix string)
}

// RevalidatedPath is the cache prefix dropped after a successful seed.
const RevalidatedPath = "/api/dashboard"

type SeedHandler struct {
	seedService Service
	revalidator Revalidator
}

func New(seedService Service, revalidator Revalidator) *SeedHandler {
	return &SeedHandler{
		seedService: seedService,
		revalidator: revalidator,
	}
}

// Seed godoc
//
//	@Summary		Seed the database
//	@Description	Create the tables and insert the bootstrap dataset in one transaction. Safe to repeat.
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{object}	dto.SeedResponseDTO
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/seed [get]
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.seedService.Seed(r.Context()); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.ErrorResponse{Error: err.Error()})
		return
	}
	h.revalidator.RevalidatePath(RevalidatedPath)
	utils.RespondWithJSON(w, http.StatusOK, dto.SeedResponseDTO{Message: "Database seeded successfully"})
}

// Query godoc
//
//	@Summary		Diagnostic query
//	@Description	Invoices of $6.66 with their customer names
//	@Tags			Maintenance
//	@Produce		json
//	@Success		200	{array}		domain.InvoiceAmount
//	@Failure		500	{object}	utils.ErrorResponse
//	@Router			/query [get]
func (h *SeedHandler) Query(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.seedService.Diagnose(r.Context())
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.ErrorResponse{Error: err.Error()})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, invoices)
}
