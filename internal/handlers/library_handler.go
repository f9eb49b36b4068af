package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/nstapp/content-library/internal/models"
	"go.uber.org/zap"
)

// LibraryService is the interface that wraps methods for library session handling.
//
// Every action receives the host's current user and returns the session rendered for that user.
// Unknown session ids yield models.ErrSessionNotFound; actions that do not apply to the current
// view state yield models.ErrInvalidAction.
type LibraryService interface {
	// Method Create open a new library session of "kind" ("mcq", "pdf" or "video").
	//
	// "mode" selects the PDF collection (FREE, PREMIUM or ULTRA) and may be empty.
	// Unknown kinds or modes yield models.ErrInvalidLibrary.
	Create(ctx context.Context, kind, mode string, user models.User) (models.LibraryView, error)
	// Method View render the session, keeping only chapters matching "query" when it is not empty.
	View(ctx context.Context, id string, user models.User, query string) (models.LibraryView, error)
	// Method SelectSubject select a subject on the subject screen and start the chapter fetch.
	SelectSubject(ctx context.Context, id string, user models.User, subjectID string) (models.LibraryView, error)
	// Method TapChapter open a chapter, or start a purchase when it is locked.
	TapChapter(ctx context.Context, id string, user models.User, chapterID string) (models.LibraryView, error)
	// Method ConfirmPurchase request the unlock of the pending purchase and open the chapter.
	//
	// models.ErrInsufficientCredits is returned when the user cannot afford it and
	// models.ErrUnlockFailed when the unlock request was not accepted.
	ConfirmPurchase(ctx context.Context, id string, user models.User) (models.LibraryView, error)
	// Method CancelPurchase discard the pending purchase.
	CancelPurchase(ctx context.Context, id string, user models.User) (models.LibraryView, error)
	// Method Answer select an option of the current quiz question.
	Answer(ctx context.Context, id string, user models.User, option int) (models.LibraryView, error)
	// Method Next advance the quiz.
	Next(ctx context.Context, id string, user models.User) (models.LibraryView, error)
	// Method Back pop one navigation level.
	Back(ctx context.Context, id string, user models.User) (models.LibraryView, error)
	// Method Delete close the session.
	Delete(ctx context.Context, id string) error
}

// LibraryHandler handles HTTP requests for library sessions
type LibraryHandler struct {
	BaseHandler
	service LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(svc LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: svc,
		BaseHandler: BaseHandler{
			logger:   logger,
			validate: validator.New(),
		},
	}
}

// RegisterRoutes registers all library handler routes
func (h *LibraryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/libraries", func(r chi.Router) {
			r.Post("/", h.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", h.Delete)
				r.Post("/view", h.View)
				r.Post("/subjects/{subjectId}", h.SelectSubject)
				r.Post("/chapters/{chapterId}", h.TapChapter)
				r.Post("/purchase/confirm", h.ConfirmPurchase)
				r.Post("/purchase/cancel", h.CancelPurchase)
				r.Post("/quiz/answer", h.Answer)
				r.Post("/quiz/next", h.Next)
				r.Post("/back", h.Back)
			})
		})
	})
}

// Create handles POST /api/v1/libraries
// @Summary Open a library
// @Description Open an MCQ, PDF or video library session for the given user
// @Tags libraries
// @Accept json
// @Produce json
// @Param request body models.CreateLibraryRequest true "Library kind, PDF mode and user"
// @Success 201 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Router /api/v1/libraries [post]
func (h *LibraryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLibraryRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid create library request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.Create(r.Context(), req.Kind, req.Mode, req.User)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, view)
}

// View handles POST /api/v1/libraries/{id}/view
// @Summary Render a library
// @Description Render the library session for the given user, optionally filtering chapters
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ActionRequest true "User and optional chapter search"
// @Success 200 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/view [post]
func (h *LibraryHandler) View(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.View(r.Context(), chi.URLParam(r, "id"), req.User, req.Query)
	h.respond(w, view, err)
}

// SelectSubject handles POST /api/v1/libraries/{id}/subjects/{subjectId}
// @Summary Select a subject
// @Description Open the chapter list of a subject
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param subjectId path string true "Subject ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/subjects/{subjectId} [post]
func (h *LibraryHandler) SelectSubject(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.SelectSubject(r.Context(), chi.URLParam(r, "id"), req.User, chi.URLParam(r, "subjectId"))
	h.respond(w, view, err)
}

// TapChapter handles POST /api/v1/libraries/{id}/chapters/{chapterId}
// @Summary Tap a chapter
// @Description Open a chapter, or show the purchase prompt when it is locked
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param chapterId path string true "Chapter ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/chapters/{chapterId} [post]
func (h *LibraryHandler) TapChapter(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.TapChapter(r.Context(), chi.URLParam(r, "id"), req.User, chi.URLParam(r, "chapterId"))
	h.respond(w, view, err)
}

// ConfirmPurchase handles POST /api/v1/libraries/{id}/purchase/confirm
// @Summary Confirm a purchase
// @Description Request the unlock of the pending purchase and open the chapter
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "No pending purchase or insufficient credits"
// @Failure 502 {object} models.ErrorResponse "Unlock request not accepted"
// @Router /api/v1/libraries/{id}/purchase/confirm [post]
func (h *LibraryHandler) ConfirmPurchase(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.ConfirmPurchase(r.Context(), chi.URLParam(r, "id"), req.User)
	h.respond(w, view, err)
}

// CancelPurchase handles POST /api/v1/libraries/{id}/purchase/cancel
// @Summary Cancel a purchase
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/purchase/cancel [post]
func (h *LibraryHandler) CancelPurchase(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.CancelPurchase(r.Context(), chi.URLParam(r, "id"), req.User)
	h.respond(w, view, err)
}

// Answer handles POST /api/v1/libraries/{id}/quiz/answer
// @Summary Answer a question
// @Description Select an option of the current MCQ question; only the first answer counts
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.AnswerRequest true "User and option index"
// @Success 200 {object} models.LibraryView
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/quiz/answer [post]
func (h *LibraryHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid answer request", zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.service.Answer(r.Context(), chi.URLParam(r, "id"), req.User, *req.Option)
	h.respond(w, view, err)
}

// Next handles POST /api/v1/libraries/{id}/quiz/next
// @Summary Next question
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/quiz/next [post]
func (h *LibraryHandler) Next(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.Next(r.Context(), chi.URLParam(r, "id"), req.User)
	h.respond(w, view, err)
}

// Back handles POST /api/v1/libraries/{id}/back
// @Summary Navigate back
// @Description Pop one navigation level, or dismiss the pending purchase
// @Tags libraries
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body models.ActionRequest true "User"
// @Success 200 {object} models.LibraryView
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id}/back [post]
func (h *LibraryHandler) Back(w http.ResponseWriter, r *http.Request) {
	req, ok := h.actionRequest(w, r)
	if !ok {
		return
	}

	view, err := h.service.Back(r.Context(), chi.URLParam(r, "id"), req.User)
	h.respond(w, view, err)
}

// Delete handles DELETE /api/v1/libraries/{id}
// @Summary Close a library
// @Tags libraries
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/libraries/{id} [delete]
func (h *LibraryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *LibraryHandler) actionRequest(w http.ResponseWriter, r *http.Request) (models.ActionRequest, bool) {
	var req models.ActionRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid library action request", zap.String("path", r.URL.Path), zap.Error(err))
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

func (h *LibraryHandler) respond(w http.ResponseWriter, view models.LibraryView, err error) {
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}
