package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/LeandroPanozzo/Spa-produccion/internal/domain"
	"github.com/LeandroPanozzo/Spa-produccion/internal/dto"
	"github.com/LeandroPanozzo/Spa-produccion/internal/service/postservice"
	pkgauth "github.com/LeandroPanozzo/Spa-produccion/pkg/auth"
	"github.com/LeandroPanozzo/Spa-produccion/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, principal pkgauth.Principal, title, content, alias string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id int) (*domain.Post, error)
	Update(ctx context.Context, principal pkgauth.Principal, id int, title, content string) (*domain.Post, error)
	Delete(ctx context.Context, principal pkgauth.Principal, id int) error
}

type PostHandler struct {
	postService Service
}

func New(postService Service) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// Create godoc
//
//	@Summary		Publish a post
//	@Description	A non-empty alias makes the post anonymous
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePostRequestDTO	true	"Post body"
//	@Success		201		{object}	dto.PostResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Security		BearerAuth
//	@Router			/api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.CreatePostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := h.postService.Create(r.Context(), principal, req.Title, req.Content, req.Alias)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPostDTO(post))
}

// List godoc
//
//	@Summary	List posts newest first
//	@Tags		Posts
//	@Produce	json
//	@Success	200	{array}		dto.PostResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PostResponseDTO, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostDTO(&posts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get a post
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	dto.PostResponseDTO
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Router		/api/posts/{id} [get]
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPostDTO(post))
}

// Update godoc
//
//	@Summary	Edit a post
//	@Tags		Posts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Post ID"
//	@Param		request	body		dto.CreatePostRequestDTO	true	"Post body"
//	@Success	200		{object}	dto.PostResponseDTO
//	@Failure	403		{object}	utils.Response	"Permission denied"
//	@Failure	404		{object}	utils.Response	"Post not found"
//	@Security	BearerAuth
//	@Router		/api/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	var req dto.CreatePostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	post, err := h.postService.Update(r.Context(), principal, id, req.Title, req.Content)
	if err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPostDTO(post))
}

// Delete godoc
//
//	@Summary	Delete a post
//	@Tags		Posts
//	@Produce	json
//	@Param		id	path		int	true	"Post ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Permission denied"
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Security	BearerAuth
//	@Router		/api/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := pkgauth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	if err := h.postService.Delete(r.Context(), principal, id); err != nil {
		h.respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Post deleted"})
}

func (h *PostHandler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, postservice.ErrPostNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toPostDTO(post *domain.Post) dto.PostResponseDTO {
	return dto.PostResponseDTO{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		PostedAt: post.PostedAt,
		AuthorID: post.AuthorID,
		Alias:    post.Alias,
	}
}
