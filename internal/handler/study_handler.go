package handler

import (
	"net/http"
	"strconv"

	"flashcards/internal/middleware"
	"flashcards/internal/usecase"

	"github.com/labstack/echo/v4"
)

type StudyHandler struct {
	studyUC *usecase.StudyUsecase
}

func NewStudyHandler(studyUC *usecase.StudyUsecase) *StudyHandler {
	return &StudyHandler{studyUC: studyUC}
}

// POST /study/sessions
func (h *StudyHandler) StartSession(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.StudySessionCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	session, err := h.studyUC.StartSession(c.Request().Context(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, session)
}

// GET /study/sessions（自分のセッション一覧）
func (h *StudyHandler) ListSessions(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	sessions, err := h.studyUC.ListSessions(c.Request().Context(), viewer, offset, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, sessions)
}

// GET /study/sessions/:id
func (h *StudyHandler) GetSession(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	session, err := h.studyUC.GetSession(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// PUT /study/sessions/:id/end
func (h *StudyHandler) EndSession(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	session, err := h.studyUC.EndSession(c.Request().Context(), viewer, c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// POST /study/records
func (h *StudyHandler) RecordAnswer(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	var req usecase.StudyRecordCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	record, err := h.studyUC.RecordAnswer(c.Request().Context(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, record)
}

// GET /study/records?session_id=...
func (h *StudyHandler) ListRecords(c echo.Context) error {
	viewer, ok := middleware.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
	}

	sessionID := c.QueryParam("session_id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "session_id is required"})
	}

	offset, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	records, err := h.studyUC.ListRecords(c.Request().Context(), viewer, sessionID, offset, limit)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, records)
}
