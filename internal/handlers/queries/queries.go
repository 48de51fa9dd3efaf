package queries

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/queryservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, principal pkgauth.Principal, title, content string) (*domain.Query, error)
	List(ctx context.Context, principal pkgauth.Principal) ([]domain.Query, error)
	Get(ctx context.Context, principal pkgauth.Principal, id int) (*domain.Query, error)
	Delete(ctx context.Context, principal pkgauth.Principal, id int) error
	Respond(ctx context.Context, principal pkgauth.Principal, queryID int, content string) (*domain.QueryResponse, error)
	Responses(ctx context.Context, principal pkgauth.Principal, queryID int) ([]domain.QueryResponse, error)
}

type QueryHandler struct {
	queryService Service
}

func New(queryService Service) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// Create godoc
//
//	@Summary	Submit a query
//	@Tags		Queries
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.CreateQueryRequestDTO	true	"Query body"
//	@Success	201		{object}	dto.QueryResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Security	BearerAuth
//	@Router		/api/queries [post]
func (h *QueryHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateQueryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	query, err := h.queryService.Create(r.Context(), principal, req.Title, req.Content)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toQueryDTO(query))
}

// List godoc
//
//	@Summary		List queries
//	@Description	Staff see every query, other users only their own
//	@Tags			Queries
//	@Produce		json
//	@Success		200	{array}		dto.QueryResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/queries [get]
func (h *QueryHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	queries, err := h.queryService.List(r.Context(), principal)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.QueryResponseDTO, 0, len(queries))
	for i := range queries {
		resp = append(resp, toQueryDTO(&queries[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a query
//	@Tags		Queries
//	@Produce	json
//	@Param		id	path		int	true	"Query ID"
//	@Success	200	{object}	dto.QueryResponseDTO
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Query not found"
//	@Security	BearerAuth
//	@Router		/api/queries/{id} [get]
func (h *QueryHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid query id")
		return
	}
	query, err := h.queryService.Get(r.Context(), principal, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toQueryDTO(query))
}

// Delete godoc
//
//	@Summary	Delete a query
//	@Tags		Queries
//	@Produce	json
//	@Param		id	path		int	true	"Query ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Query not found"
//	@Security	BearerAuth
//	@Router		/api/queries/{id} [delete]
func (h *QueryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid query id")
		return
	}
	if err := h.queryService.Delete(r.Context(), principal, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Query deleted"})
}

// Respond godoc
//
//	@Summary	Reply to a query
//	@Tags		Queries
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Query ID"
//	@Param		request	body		dto.CreateReplyRequestDTO	true	"Reply body"
//	@Success	201		{object}	dto.ReplyResponseDTO
//	@Failure	403		{object}	utils.Response	"Permission denied"
//	@Failure	404		{object}	utils.Response	"Query not found"
//	@Security	BearerAuth
//	@Router		/api/queries/{id}/responses [post]
func (h *QueryHandler) Respond(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid query id")
		return
	}
	var req dto.CreateReplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	reply, err := h.queryService.Respond(r.Context(), principal, id, req.Content)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ReplyResponseDTO{
		ID:        reply.ID,
		QueryID:   reply.QueryID,
		UserID:    reply.UserID,
		Content:   reply.Content,
		CreatedAt: reply.CreatedAt,
	})
}

// Responses godoc
//
//	@Summary	List the replies of a query
//	@Tags		Queries
//	@Produce	json
//	@Param		id	path		int	true	"Query ID"
//	@Success	200	{array}		dto.ReplyResponseDTO
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Query not found"
//	@Security	BearerAuth
//	@Router		/api/queries/{id}/responses [get]
func (h *QueryHandler) Responses(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid query id")
		return
	}
	replies, err := h.queryService.Responses(r.Context(), principal, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	resp := make([]dto.ReplyResponseDTO, 0, len(replies))
	for _, reply := range replies {
		resp = append(resp, dto.ReplyResponseDTO{
			ID:        reply.ID,
			QueryID:   reply.QueryID,
			UserID:    reply.UserID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *QueryHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, queryservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, queryservice.ErrQueryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toQueryDTO(query *domain.Query) dto.QueryResponseDTO {
	return dto.QueryResponseDTO{
		ID:        query.ID,
		UserID:    query.UserID,
		Title:     query.Title,
		Content:   query.Content,
		CreatedAt: query.CreatedAt,
	}
}
