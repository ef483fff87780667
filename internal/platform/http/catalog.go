package http

import (
	"errors"
	"net/http"

	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/httpx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

// CatalogHandler serves the read side of the catalog. Every route requires
// authentication but no particular role.
type CatalogHandler struct {
	CatalogService *service.CatalogService
}

// writeCatalogResult collapses the repeated error handling: not-found maps
// to 404, everything else to 500.
func writeCatalogResult(w http.ResponseWriter, r *http.Request, result any, err error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Not found")
			return
		}
		slogx.FromContext(r.Context()).Error("catalog read failed", "path", r.URL.Path, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

// HandleListNovels godoc
//
//	@Summary		List novels
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		learnsdk.Novel
//	@Failure		401	{object}	learnsdk.ErrorResponse	"Access token required"
//	@Failure		403	{object}	learnsdk.ErrorResponse	"Invalid or expired access token"
//	@Router			/v1/novels [get].
func (h *CatalogHandler) HandleListNovels(w http.ResponseWriter, r *http.Request) {
	novels, err := h.CatalogService.ListNovels(r.Context())
	writeCatalogResult(w, r, novels, err)
}

// HandleGetNovel godoc
//
//	@Summary		Get a novel
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{object}	learnsdk.Novel
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id} [get].
func (h *CatalogHandler) HandleGetNovel(w http.ResponseWriter, r *http.Request) {
	novel, err := h.CatalogService.GetNovel(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, novel, err)
}

// HandleListChapters godoc
//
//	@Summary		List a novel's chapters
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{array}		learnsdk.Chapter
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id}/chapters [get].
func (h *CatalogHandler) HandleListChapters(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.CatalogService.ListChapters(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, chapters, err)
}

// HandleListVideos godoc
//
//	@Summary		List a novel's videos
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{array}		learnsdk.Video
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id}/videos [get].
func (h *CatalogHandler) HandleListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.CatalogService.ListVideos(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, videos, err)
}

// HandleListNotes godoc
//
//	@Summary		List a novel's study notes
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{array}		learnsdk.Note
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id}/notes [get].
func (h *CatalogHandler) HandleListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.CatalogService.ListNotes(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, notes, err)
}

// HandleListQuizzes godoc
//
//	@Summary		List a novel's quizzes
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{array}		learnsdk.Quiz
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id}/quizzes [get].
func (h *CatalogHandler) HandleListQuizzes(w http.ResponseWriter, r *http.Request) {
	quizzes, err := h.CatalogService.ListQuizzes(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, quizzes, err)
}

// HandleListSummaries godoc
//
//	@Summary		List a novel's summaries
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Novel ID"
//	@Success		200	{array}		learnsdk.Summary
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown novel"
//	@Router			/v1/novels/{id}/summaries [get].
func (h *CatalogHandler) HandleListSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.CatalogService.ListSummaries(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, summaries, err)
}

// HandleGetChapter godoc
//
//	@Summary		Get a chapter
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Chapter ID"
//	@Success		200	{object}	learnsdk.Chapter
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown chapter"
//	@Router			/v1/chapters/{id} [get].
func (h *CatalogHandler) HandleGetChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := h.CatalogService.GetChapter(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, chapter, err)
}

// HandleGetVideo godoc
//
//	@Summary		Get a video
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Video ID"
//	@Success		200	{object}	learnsdk.Video
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown video"
//	@Router			/v1/videos/{id} [get].
func (h *CatalogHandler) HandleGetVideo(w http.ResponseWriter, r *http.Request) {
	video, err := h.CatalogService.GetVideo(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, video, err)
}

// HandleGetNote godoc
//
//	@Summary		Get a study note
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	learnsdk.Note
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown note"
//	@Router			/v1/notes/{id} [get].
func (h *CatalogHandler) HandleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.CatalogService.GetNote(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, note, err)
}

// HandleGetQuiz godoc
//
//	@Summary		Get a quiz
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Quiz ID"
//	@Success		200	{object}	learnsdk.Quiz
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown quiz"
//	@Router			/v1/quizzes/{id} [get].
func (h *CatalogHandler) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.CatalogService.GetQuiz(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, quiz, err)
}

// HandleGetSummary godoc
//
//	@Summary		Get a summary
//	@Tags			Catalog
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Summary ID"
//	@Success		200	{object}	learnsdk.Summary
//	@Failure		404	{object}	learnsdk.ErrorResponse	"Unknown summary"
//	@Router			/v1/summaries/{id} [get].
func (h *CatalogHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.CatalogService.GetSummary(r.Context(), r.PathValue("id"))
	writeCatalogResult(w, r, summary, err)
}
