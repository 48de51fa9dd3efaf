package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/catalogservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	List(ctx context.Context) ([]domain.Service, error)
	Create(ctx context.Context, principal pkgauth.Principal, name string, price float64) (*domain.Service, error)
	Update(ctx context.Context, principal pkgauth.Principal, id int, name string, price float64) (*domain.Service, error)
	Delete(ctx context.Context, principal pkgauth.Principal, id int) error
}

type CatalogHandler struct {
	catalogService Service
}

func New(catalogService Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// List godoc
//
//	@Summary	List catalog services
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		dto.ServiceResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/services [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.ServiceResponseDTO, 0, len(services))
	for _, service := range services {
		resp = append(resp, toServiceDTO(&service))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Create godoc
//
//	@Summary	Add a catalog service
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ServiceRequestDTO	true	"Service body"
//	@Success	201		{object}	dto.ServiceResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request"
//	@Failure	403		{object}	utils.Response	"Permission denied"
//	@Security	BearerAuth
//	@Router		/api/services [post]
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.ServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	service, err := h.catalogService.Create(r.Context(), principal, req.Name, req.Price)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toServiceDTO(service))
}

// Update godoc
//
//	@Summary		Edit a catalog service
//	@Description	The price cannot change once a payment references the service
//	@Tags			Catalog
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Service ID"
//	@Param			request	body		dto.ServiceRequestDTO	true	"Service body"
//	@Success		200		{object}	dto.ServiceResponseDTO
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Failure		404		{object}	utils.Response	"Service not found"
//	@Failure		409		{object}	utils.Response	"Price is frozen"
//	@Security		BearerAuth
//	@Router			/api/services/{id} [put]
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}
	var req dto.ServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	service, err := h.catalogService.Update(r.Context(), principal, id, req.Name, req.Price)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toServiceDTO(service))
}

// Delete godoc
//
//	@Summary	Remove a catalog service
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Service not found"
//	@Security	BearerAuth
//	@Router		/api/services/{id} [delete]
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}
	if err := h.catalogService.Delete(r.Context(), principal, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Service deleted"})
}

func (h *CatalogHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, catalogservice.ErrServiceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalogservice.ErrInvalidPrice):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalogservice.ErrPriceLocked):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toServiceDTO(service *domain.Service) dto.ServiceResponseDTO {
	return dto.ServiceResponseDTO{
		ID:    service.ID,
		Name:  service.Name,
		Price: service.Price,
	}
}
