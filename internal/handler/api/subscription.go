package api

import (
	"errors"
	"net/http"

	reqdto "newsletter-service/internal/handler/dto/request"
	"newsletter-service/internal/handler/httperr"
	"newsletter-service/internal/usecase/commands"
	"newsletter-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionCommands commands.SubscriptionCommands
	subscriberQueries    queries.SubscriberQueries
}

func NewSubscriptionHandler(subscriptionCommands commands.SubscriptionCommands, subscriberQueries queries.SubscriberQueries) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionCommands: subscriptionCommands,
		subscriberQueries:    subscriberQueries,
	}
}

// @Summary Subscribe to the newsletter
// @Description Register a pending subscription and send a confirmation email
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscription request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.subscriptionCommands.Subscribe(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSubscription):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid name or email", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Confirmation email sent",
	})
}

// @Summary Confirm a subscription
// @Description Confirm a pending subscription using the emailed token
// @Tags subscriptions
// @Produce json
// @Param subscription_token query string true "Subscription token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /subscriptions/confirm [get]
func (h *SubscriptionHandler) Confirm(c *gin.Context) {
	token := c.Query("subscription_token")
	if token == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrSubscriptionTokenInvalid, "Subscription token required", nil)
		return
	}

	err := h.subscriptionCommands.Confirm(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubscriptionTokenInvalid):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unknown subscription token", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscription confirmed",
	})
}

// @Summary Look up a subscriber
// @Description Get a subscriber by email, with the confirmed subscriber total
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Param email query string true "Subscriber email"
// @Success 200 {object} queries.SubscriberView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/subscribers [get]
func (h *SubscriptionHandler) GetSubscriber(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrInvalidSubscription, "Email required", nil)
		return
	}

	view, err := h.subscriberQueries.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, queries.ErrSubscriberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscriber not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Subscriber stats
// @Description Count of confirmed subscribers
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int64
// @Router /admin/subscribers/stats [get]
func (h *SubscriptionHandler) Stats(c *gin.Context) {
	count, err := h.subscriberQueries.CountConfirmed(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"confirmed_subscribers": count,
	})
}
