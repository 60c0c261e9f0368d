package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhidesai17/gigflow/internal/http/middleware"
	"github.com/abhidesai17/gigflow/internal/model"
	"github.com/abhidesai17/gigflow/internal/notify"
	"github.com/abhidesai17/gigflow/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type CookieSettings struct {
	Name   string
	MaxAge int
	Secure bool
}

type Handler struct {
	auth    *service.AuthService
	gigs    *service.GigService
	bids    *service.BidService
	hire    *service.HireCoordinator
	exports *service.ExportService
	hub     *notify.Hub
	cookie  CookieSettings
	log     zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	gigs *service.GigService,
	bids *service.BidService,
	hire *service.HireCoordinator,
	exports *service.ExportService,
	hub *notify.Hub,
	cookie CookieSettings,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:    auth,
		gigs:    gigs,
		bids:    bids,
		hire:    hire,
		exports: exports,
		hub:     hub,
		cookie:  cookie,
		log:     log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := router.Group("/api")
	api.POST("/auth/register", h.register)
	api.POST("/auth/login", h.login)
	api.POST("/auth/logout", h.logout)
	api.GET("/gigs", h.listGigs)

	protected := api.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/gigs", h.createGig)
	protected.POST("/bids", h.createBid)
	protected.GET("/bids/:gigId", h.listBidsForGig)
	protected.PATCH("/bids/:bidId/hire", h.hireBid)
	protected.GET("/gigs/:gigId/bids/export", h.exportBidSheet)
	protected.GET("/gigs/:gigId/agreement", h.exportAgreement)
	protected.GET("/events", h.streamEvents)
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookie(c, result.Token)
	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(result.User)})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setAuthCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(result.User)})
}

func (h *Handler) logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listGigs(c *gin.Context) {
	gigs, err := h.gigs.ListOpenGigs(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gigs": toGigResponses(gigs)})
}

type createGigRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Budget      *float64 `json:"budget" binding:"required"`
}

func (h *Handler) createGig(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gig, err := h.gigs.CreateGig(c.Request.Context(), service.CreateGigInput{
		OwnerID:     principal.UserID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      *req.Budget,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gig": toGigResponse(gig)})
}

type createBidRequest struct {
	GigID         string   `json:"gigId" binding:"required"`
	Message       string   `json:"message" binding:"required"`
	ProposedPrice *float64 `json:"proposedPrice" binding:"required"`
}

func (h *Handler) createBid(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gigID, err := uuid.Parse(strings.TrimSpace(req.GigID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gigId"})
		return
	}

	bid, err := h.bids.CreateBid(c.Request.Context(), service.CreateBidInput{
		GigID:         gigID,
		BidderID:      principal.UserID,
		Message:       req.Message,
		ProposedPrice: *req.ProposedPrice,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"bid": toBidResponse(bid)})
}

func (h *Handler) listBidsForGig(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	gigID, err := uuid.Parse(c.Param("gigId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gigId"})
		return
	}

	bids, err := h.bids.ListBidsForGig(c.Request.Context(), principal.UserID, gigID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bids": toBidResponses(bids)})
}

func (h *Handler) hireBid(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	bidID, err := uuid.Parse(c.Param("bidId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bidId"})
		return
	}

	result, err := h.hire.Hire(c.Request.Context(), principal.UserID, bidID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"gig":      toGigResponse(result.Gig),
		"hiredBid": toBidResponse(result.HiredBid),
	})
}

func (h *Handler) exportBidSheet(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	gigID, err := uuid.Parse(c.Param("gigId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gigId"})
		return
	}

	result, err := h.exports.BidSheet(c.Request.Context(), principal.UserID, gigID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}

func (h *Handler) exportAgreement(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	gigID, err := uuid.Parse(c.Param("gigId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid gigId"})
		return
	}

	result, err := h.exports.Agreement(c.Request.Context(), principal.UserID, gigID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

func (h *Handler) streamEvents(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	events, cancel := h.hub.Subscribe(principal.UserID)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(model.EventTypeHired, event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		h.log.Error().Err(err).Msg("store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable, retry the request"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
