package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "newsletter-service/internal/handler/dto/request"
	resdto "newsletter-service/internal/handler/dto/response"
	"newsletter-service/internal/handler/httperr"
	"newsletter-service/internal/handler/middleware"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/usecase/commands"
	"newsletter-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NewsletterHandler struct {
	newsletterCommands commands.NewsletterCommands
	newsletterQueries  queries.NewsletterQueries
}

func NewNewsletterHandler(newsletterCommands commands.NewsletterCommands, newsletterQueries queries.NewsletterQueries) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterCommands: newsletterCommands,
		newsletterQueries:  newsletterQueries,
	}
}

// @Summary Publish a newsletter issue
// @Description Store the issue and enqueue delivery to every confirmed subscriber. Safe to retry with the same idempotency key.
// @Tags newsletters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishNewsletterRequest true "Newsletter issue"
// @Success 303 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/newsletters [post]
func (h *NewsletterHandler) PublishIssue(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrUserNotAuthenticated, "User not authenticated", nil)
		return
	}

	var req reqdto.PublishNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.newsletterCommands.PublishIssue(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidIdempotencyKey):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key", nil)
		case errors.Is(err, commands.ErrInvalidIssueContent):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid issue content", nil)
		case errors.Is(err, commands.ErrPublishInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "Publish request is currently being processed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// The saved response is written verbatim so fresh and replayed
	// submissions are byte-identical.
	writeSavedResponse(c, result)
}

func writeSavedResponse(c *gin.Context, result *commands.PublishResult) {
	for _, header := range result.Response.Headers {
		c.Header(header.Name, header.Value)
	}
	c.Data(result.Response.StatusCode, result.Response.Header("Content-Type"), result.Response.Body)
}

// @Summary List newsletter issues
// @Description List published issues with their remaining delivery counts
// @Tags newsletters
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of issues to return"
// @Success 200 {array} resdto.IssueResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/newsletters [get]
func (h *NewsletterHandler) ListIssues(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.newsletterQueries.ListIssues(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.IssueResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromIssueView(view)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get a newsletter issue
// @Description Get one issue by ID with its remaining delivery count
// @Tags newsletters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issue ID"
// @Success 200 {object} resdto.IssueResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/newsletters/{id} [get]
func (h *NewsletterHandler) GetIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid issue ID format", nil)
		return
	}

	view, err := h.newsletterQueries.GetIssue(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Issue not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssueView(view))
}
