//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"newsletter-service/internal/domain/user"
	"newsletter-service/internal/handler/api"
	resdto "newsletter-service/internal/handler/dto/response"
	"newsletter-service/internal/infra"
	"newsletter-service/internal/usecase/commands"
	"newsletter-service/internal/usecase/queries"
	"newsletter-service/internal/usecase/shared"
	"newsletter-service/tests/common/httptest"
	commandsmock "newsletter-service/tests/mock/commands"
	queriesmock "newsletter-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NewsletterHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNewsletterCommands
	mockQueries  *queriesmock.MockNewsletterQueries
	handler      *api.NewsletterHandler
}

func (s *NewsletterHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNewsletterCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNewsletterQueries(s.mockCtrl)
	s.handler = api.NewNewsletterHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	}

	s.router.POST("/admin/newsletters", authMiddleware, s.handler.PublishIssue)
	s.router.GET("/admin/newsletters", authMiddleware, s.handler.ListIssues)
	s.router.GET("/admin/newsletters/:id", authMiddleware, s.handler.GetIssue)
}

func (s *NewsletterHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNewsletterHandlerSuite(t *testing.T) {
	suite.Run(t, new(NewsletterHandlerTestSuite))
}

func validPublishBody() map[string]any {
	return map[string]any{
		"title":           "Issue #1",
		"html_content":    "<p>Hello</p>",
		"text_content":    "Hello",
		"idempotency_key": "abc-123",
	}
}

func acceptedPublishResult() *commands.PublishResult {
	body, _ := json.Marshal(map[string]string{
		"message": "The newsletter issue has been accepted - emails will go out shortly.",
	})
	return &commands.PublishResult{
		Response: shared.SavedResponse{
			StatusCode: http.StatusSeeOther,
			Headers: []shared.HeaderPair{
				{Name: "Location", Value: "/admin/newsletters"},
				{Name: "Content-Type", Value: "application/json; charset=utf-8"},
			},
			Body: body,
		},
	}
}

// ================================================================================
// TestPublishIssue
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestPublishIssue() {
	url := "/admin/newsletters"

	s.Run("success: returns 303 See Other with Location and saved body", func() {
		result := acceptedPublishResult()
		s.mockCommands.EXPECT().PublishIssue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPublishBody(), "bearer-token")

		s.Equal(http.StatusSeeOther, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":     "/admin/newsletters",
			"Content-Type": "application/json; charset=utf-8",
		})
		s.Equal(string(result.Response.Body), rec.Body.String())
	})

	s.Run("success: replayed result is written verbatim", func() {
		result := acceptedPublishResult()
		result.IsReplayed = true
		s.mockCommands.EXPECT().PublishIssue(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPublishBody(), "bearer-token")

		s.Equal(http.StatusSeeOther, rec.Code)
		s.Equal(string(result.Response.Body), rec.Body.String())
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/admin/newsletters"})
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"title", "html_content", "text_content", "idempotency_key"} {
			s.Run("missing field: "+field, func() {
				body := validPublishBody()
				delete(body, field)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPublishBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 401 Unauthorized when no user is set in context", func() {
		// Route registered without auth middleware, so the handler's own
		// context check fires
		bare := gin.New()
		bare.POST(url, s.handler.PublishIssue)

		rec := httptest.PerformRequest(s.T(), bare, http.MethodPost, url, validPublishBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid idempotency key",
				commandsError:  commands.ErrInvalidIdempotencyKey,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid idempotency key",
			},
			{
				name:           "invalid issue content",
				commandsError:  commands.ErrInvalidIssueContent,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid issue content",
			},
			{
				name:           "publish in progress",
				commandsError:  commands.ErrPublishInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "currently being processed",
			},
			{
				name:           "publish failed",
				commandsError:  commands.ErrPublishFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PublishIssue(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validPublishBody(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListIssues
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestListIssues() {
	url := "/admin/newsletters"

	views := []*queries.IssueView{
		{ID: uuid.New(), Title: "Issue #2", PublishedAt: time.Now().UTC(), PendingDeliveries: 3},
		{ID: uuid.New(), Title: "Issue #1", PublishedAt: time.Now().UTC().Add(-time.Hour), PendingDeliveries: 0},
	}

	s.Run("success: returns 200 OK with issue list", func() {
		s.mockQueries.EXPECT().ListIssues(gomock.Any(), 0).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.IssueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
		s.Equal(views[0].Title, response[0].Title)
		s.Equal(views[0].PendingDeliveries, response[0].PendingDeliveries)
	})

	s.Run("success: limit query parameter is forwarded", func() {
		s.mockQueries.EXPECT().ListIssues(gomock.Any(), 5).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")

		var response []*resdto.IssueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().ListIssues(gomock.Any(), 0).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestGetIssue
// ================================================================================

func (s *NewsletterHandlerTestSuite) TestGetIssue() {
	issueID := uuid.New()
	url := "/admin/newsletters/" + issueID.String()

	view := &queries.IssueView{
		ID:                issueID,
		Title:             "Issue #1",
		PublishedAt:       time.Now().UTC(),
		PendingDeliveries: 7,
	}

	s.Run("success: returns 200 OK with IssueResponse", func() {
		s.mockQueries.EXPECT().GetIssue(gomock.Any(), issueID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.IssueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(issueID, response.ID)
		s.Equal(view.Title, response.Title)
		s.Equal(view.PendingDeliveries, response.PendingDeliveries)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/newsletters/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid issue ID format")
	})

	s.Run("error: 404 Not Found for missing issue", func() {
		s.mockQueries.EXPECT().GetIssue(gomock.Any(), issueID).
			Return(nil, infra.WrapRepoErr("issue not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Issue not found")
	})

	s.Run("error: returns 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().GetIssue(gomock.Any(), issueID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
