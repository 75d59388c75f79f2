// internal/handlers/assignment_handler.go
package handlers

import (
	"net/http"
	"time"

	"wanikani_apprentice/internal/middleware"
	"wanikani_apprentice/internal/model"
	"wanikani_apprentice/internal/service"
	"wanikani_apprentice/internal/webutil"
)

// assignmentsPage は復習一覧テンプレートのコンテキスト
type assignmentsPage struct {
	IsLoggedIn bool
	Radicals   []*model.Assignment
	Kanji      []*model.Assignment
	Vocabulary []*model.Assignment
	Now        time.Time
}

type AssignmentHandler struct {
	service service.AssignmentService
}

func NewAssignmentHandler(s service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: s}
}

// List はユーザーのApprentice復習一覧を表示します
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	apiKey, ok := middleware.APIKeyFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	list, err := h.service.ListAssignments(r.Context(), apiKey)
	if err != nil {
		logger.Error("Failed to list assignments", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	renderHTML(w, logger, http.StatusOK, "assignments.html", assignmentsPage{
		IsLoggedIn: true,
		Radicals:   list.Radicals,
		Kanji:      list.Kanji,
		Vocabulary: list.Vocabulary,
		Now:        time.Now(),
	})
}
