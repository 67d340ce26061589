package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartscheduler/meeting-system/internal/core/domain"
	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

// MeetingHandler handles HTTP requests for meeting operations. All routes
// sit behind the Auth middleware; the owner is always the verified caller.
type MeetingHandler struct {
	service ports.MeetingService
}

func NewMeetingHandler(service ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

func toMeetingResponse(m *domain.Meeting) meetingResponse {
	return meetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Date:         m.Date,
		Participants: m.Participants,
		Description:  m.Description,
		OwnerID:      m.OwnerID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create handles POST /meetings.
//
// @Summary      Create a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMeetingRequest  true  "Meeting details"
// @Success      201   {object}  meetingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /meetings [post]
func (h *MeetingHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req createMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meeting, err := h.service.Create(c.Request().Context(), ports.CreateMeetingInput{
		Title:        req.Title,
		Date:         req.Date,
		Participants: req.Participants,
		Description:  req.Description,
		OwnerID:      ownerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toMeetingResponse(meeting))
}

// List handles GET /meetings, returning the caller's meetings by date ascending.
//
// @Summary      List my meetings
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   meetingResponse
// @Failure      401  {object}  map[string]string
// @Router       /meetings [get]
func (h *MeetingHandler) List(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	meetings, err := h.service.List(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	resp := make([]meetingResponse, 0, len(meetings))
	for _, m := range meetings {
		resp = append(resp, toMeetingResponse(m))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /meetings/:id.
//
// @Summary      Get one meeting
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting id"
// @Success      200  {object}  meetingResponse
// @Failure      404  {object}  map[string]string
// @Router       /meetings/{id} [get]
func (h *MeetingHandler) Get(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	meeting, err := h.service.Get(c.Request().Context(), c.Param("id"), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMeetingResponse(meeting))
}

// Update handles PUT /meetings/:id with partial fields.
//
// @Summary      Update a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Meeting id"
// @Param        body  body      updateMeetingRequest  true  "Fields to change"
// @Success      200   {object}  meetingResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /meetings/{id} [put]
func (h *MeetingHandler) Update(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req updateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	meeting, err := h.service.Update(c.Request().Context(), ports.UpdateMeetingInput{
		ID:      c.Param("id"),
		OwnerID: ownerID,
		Fields: ports.MeetingUpdate{
			Title:        req.Title,
			Date:         req.Date,
			Participants: req.Participants,
			Description:  req.Description,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMeetingResponse(meeting))
}

// Delete handles DELETE /meetings/:id.
//
// @Summary      Delete a meeting
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /meetings/{id} [delete]
func (h *MeetingHandler) Delete(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), ownerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{})
}
