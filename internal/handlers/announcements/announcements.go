package announcements

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/announcementservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, principal pkgauth.Principal, title, content, dateDescription string) (*domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, principal pkgauth.Principal, id int) error
}

type AnnouncementHandler struct {
	announcementService Service
}

func New(announcementService Service) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// Create godoc
//
//	@Summary		Publish an announcement
//	@Description	Owner and secretary only
//	@Tags			Announcements
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAnnouncementRequestDTO	true	"Announcement body"
//	@Success		201		{object}	dto.AnnouncementResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Permission denied"
//	@Security		BearerAuth
//	@Router			/api/announcements [post]
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreateAnnouncementRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	announcement, err := h.announcementService.Create(r.Context(), principal, req.Title, req.Content, req.DateDescription)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAnnouncementDTO(announcement))
}

// List godoc
//
//	@Summary	List announcements newest first
//	@Tags		Announcements
//	@Produce	json
//	@Success	200	{array}		dto.AnnouncementResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/announcements [get]
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcementService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.AnnouncementResponseDTO, 0, len(announcements))
	for i := range announcements {
		resp = append(resp, toAnnouncementDTO(&announcements[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Delete godoc
//
//	@Summary	Remove an announcement
//	@Tags		Announcements
//	@Produce	json
//	@Param		id	path		int	true	"Announcement ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Announcement not found"
//	@Security	BearerAuth
//	@Router		/api/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid announcement id")
		return
	}
	if err := h.announcementService.Delete(r.Context(), principal, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Announcement deleted"})
}

func (h *AnnouncementHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, announcementservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, announcementservice.ErrAnnouncementNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toAnnouncementDTO(announcement *domain.Announcement) dto.AnnouncementResponseDTO {
	return dto.AnnouncementResponseDTO{
		ID:              announcement.ID,
		Title:           announcement.Title,
		Content:         announcement.Content,
		DateDescription: announcement.DateDescription,
		UserID:          announcement.UserID,
		CreatedAt:       announcement.CreatedAt,
	}
}
