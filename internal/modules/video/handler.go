package video

import (
	"net/http"

	"mentorhub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	issuer *Issuer
}

func NewHandler(issuer *Issuer) *Handler {
	return &Handler{issuer: issuer}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/video")
	{
		g.POST("/token", h.IssueToken)
		g.GET("/token", h.RefreshToken)
	}
}

type issueTokenRequest struct {
	MeetingID string `json:"meeting_id"`
	UID       int64  `json:"uid"`
}

func (h *Handler) IssueToken(c *gin.Context) {
	var req issueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	creds, err := h.issuer.Credentials(req.MeetingID, req.UID)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, creds)
}

// RefreshToken signs a fresh token for an already-derived channel, used
// when a participant's token expires mid-session.
func (h *Handler) RefreshToken(c *gin.Context) {
	channel := c.Query("channel")
	if channel == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "channel query parameter is required")
		return
	}

	token, err := h.issuer.TokenFor(channel, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, &Credentials{
		Channel: channel,
		Token:   token,
		AppID:   h.issuer.AppID(),
	})
}
