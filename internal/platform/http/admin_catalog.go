package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// AdminCatalogHandler serves the write side of the catalog. The router
// wraps every route in RequireAdmin, so handlers here can assume an admin
// caller.
type AdminCatalogHandler struct {
	CatalogService *service.CatalogService
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON")
		return v, false
	}
	return v, true
}

// writeAdminResult maps service errors for mutating catalog calls:
// validation to 400, missing targets to 404, conflicts to 409.
func writeAdminResult(w http.ResponseWriter, r *http.Request, status int, result any, err error) {
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteError(w, http.StatusBadRequest, "Validation failed")
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Not found")
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteError(w, http.StatusConflict, "Already exists")
		default:
			slogx.FromContext(r.Context()).Error("catalog write failed", "path", r.URL.Path, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		}
		return
	}
	if result == nil {
		w.WriteHeader(status)
		return
	}
	httpx.WriteJSON(w, status, result)
}

/* Novels */

// HandleCreateNovel godoc
//
//	@Summary		Create a novel
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		learnsdk.Novel	true	"Novel"
//	@Success		201		{object}	learnsdk.Novel
//	@Failure		400		{object}	learnsdk.ErrorResponse	"Validation failed"
//	@Failure		403		{object}	learnsdk.ErrorResponse	"Admin access required"
//	@Router			/v1/admin/novels [post].
func (h *AdminCatalogHandler) HandleCreateNovel(w http.ResponseWriter, r *http.Request) {
	novel, ok := decodeBody[domain.Novel](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateNovel(r.Context(), novel)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

// HandleUpdateNovel godoc
//
//	@Summary		Update a novel
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Novel ID"
//	@Param			request	body		learnsdk.Novel	true	"Novel"
//	@Success		200		{object}	learnsdk.Novel
//	@Failure		404		{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/admin/novels/{id} [put].
func (h *AdminCatalogHandler) HandleUpdateNovel(w http.ResponseWriter, r *http.Request) {
	novel, ok := decodeBody[domain.Novel](w, r)
	if !ok {
		return
	}
	novel.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateNovel(r.Context(), novel)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

// HandleDeleteNovel godoc
//
//	@Summary		Delete a novel and everything attached to it
//	@Tags			Admin
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Novel ID"
//	@Success		204	"Deleted"
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/admin/novels/{id} [delete].
func (h *AdminCatalogHandler) HandleDeleteNovel(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteNovel(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}

/* Chapters */

func (h *AdminCatalogHandler) HandleCreateChapter(w http.ResponseWriter, r *http.Request) {
	chapter, ok := decodeBody[domain.Chapter](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateChapter(r.Context(), chapter)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

func (h *AdminCatalogHandler) HandleUpdateChapter(w http.ResponseWriter, r *http.Request) {
	chapter, ok := decodeBody[domain.Chapter](w, r)
	if !ok {
		return
	}
	chapter.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateChapter(r.Context(), chapter)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

func (h *AdminCatalogHandler) HandleDeleteChapter(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteChapter(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}

/* Videos */

func (h *AdminCatalogHandler) HandleCreateVideo(w http.ResponseWriter, r *http.Request) {
	video, ok := decodeBody[domain.Video](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateVideo(r.Context(), video)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

func (h *AdminCatalogHandler) HandleUpdateVideo(w http.ResponseWriter, r *http.Request) {
	video, ok := decodeBody[domain.Video](w, r)
	if !ok {
		return
	}
	video.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateVideo(r.Context(), video)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

func (h *AdminCatalogHandler) HandleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteVideo(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}

/* Notes */

func (h *AdminCatalogHandler) HandleCreateNote(w http.ResponseWriter, r *http.Request) {
	note, ok := decodeBody[domain.Note](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateNote(r.Context(), note)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

func (h *AdminCatalogHandler) HandleUpdateNote(w http.ResponseWriter, r *http.Request) {
	note, ok := decodeBody[domain.Note](w, r)
	if !ok {
		return
	}
	note.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateNote(r.Context(), note)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

func (h *AdminCatalogHandler) HandleDeleteNote(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteNote(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}

/* Quizzes */

func (h *AdminCatalogHandler) HandleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, ok := decodeBody[domain.Quiz](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateQuiz(r.Context(), quiz)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

func (h *AdminCatalogHandler) HandleUpdateQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, ok := decodeBody[domain.Quiz](w, r)
	if !ok {
		return
	}
	quiz.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateQuiz(r.Context(), quiz)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

func (h *AdminCatalogHandler) HandleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteQuiz(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}

/* Summaries */

func (h *AdminCatalogHandler) HandleCreateSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := decodeBody[domain.Summary](w, r)
	if !ok {
		return
	}
	created, err := h.CatalogService.CreateSummary(r.Context(), summary)
	writeAdminResult(w, r, http.StatusCreated, created, err)
}

func (h *AdminCatalogHandler) HandleUpdateSummary(w http.ResponseWriter, r *http.Request) {
	summary, ok := decodeBody[domain.Summary](w, r)
	if !ok {
		return
	}
	summary.ID = r.PathValue("id")
	updated, err := h.CatalogService.UpdateSummary(r.Context(), summary)
	writeAdminResult(w, r, http.StatusOK, updated, err)
}

func (h *AdminCatalogHandler) HandleDeleteSummary(w http.ResponseWriter, r *http.Request) {
	err := h.CatalogService.DeleteSummary(r.Context(), r.PathValue("id"))
	writeAdminResult(w, r, http.StatusNoContent, nil, err)
}
