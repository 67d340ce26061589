package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smartscheduler/meeting-system/internal/core/ports"
)

// InviteHandler handles invite link creation (authenticated) and resolution
// (public, capability-token only).
type InviteHandler struct {
	service ports.InviteService
}

func NewInviteHandler(service ports.InviteService) *InviteHandler {
	return &InviteHandler{service: service}
}

type createInviteRequest struct {
	Scope    string `json:"scope"     validate:"omitempty,oneof=view book"`
	TTLHours int    `json:"ttl_hours" validate:"omitempty,gte=1"`
}

type createInviteResponse struct {
	URL       string     `json:"url"`
	Scope     string     `json:"scope"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type resolveInviteResponse struct {
	OwnerID  string                `json:"owner_id"`
	Scope    string                `json:"scope"`
	Meetings []ports.SharedMeeting `json:"meetings"`
}

// Create handles POST /invite/create. The owner is always the verified
// caller; an ownerId in the body is ignored rather than trusted.
//
// @Summary      Create a shareable invite link
// @Tags         invites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInviteRequest  true  "Scope and optional TTL"
// @Success      200   {object}  createInviteResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /invite/create [post]
func (h *InviteHandler) Create(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req createInviteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), ports.CreateInviteInput{
		OwnerID:  ownerID,
		Scope:    req.Scope,
		TTLHours: req.TTLHours,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createInviteResponse{
		URL:       result.URL,
		Scope:     string(result.Scope),
		ExpiresAt: result.ExpiresAt,
	})
}

// Resolve handles GET /invite/:token. No session is involved: the token is
// the whole credential.
//
// @Summary      Resolve an invite link
// @Tags         invites
// @Produce      json
// @Param        token  path      string  true  "Invite token"
// @Success      200    {object}  resolveInviteResponse
// @Failure      404    {object}  map[string]string
// @Failure      410    {object}  map[string]string
// @Router       /invite/{token} [get]
func (h *InviteHandler) Resolve(c echo.Context) error {
	resolution, err := h.service.Resolve(c.Request().Context(), c.Param("token"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resolveInviteResponse{
		OwnerID:  resolution.OwnerID,
		Scope:    string(resolution.Scope),
		Meetings: resolution.Meetings,
	})
}
