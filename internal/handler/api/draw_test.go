//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"raffle-draw/internal/domain/user"
	"raffle-draw/internal/handler/api"
	reqdto "raffle-draw/internal/handler/dto/request"
	resdto "raffle-draw/internal/handler/dto/response"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queue"
	"raffle-draw/tests/common/builder"
	"raffle-draw/tests/common/httptest"
	"raffle-draw/tests/common/testutil"
	commandsmock "raffle-draw/tests/mock/commands"
	queuemock "raffle-draw/tests/mock/queue"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrawHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	mockQueue    *queuemock.MockSubmitter
	handler      *api.DrawHandler
}

func (s *DrawHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.mockQueue = queuemock.NewMockSubmitter(s.mockCtrl)
	s.handler = api.NewDrawHandler(s.mockCommands, s.mockQueue)

	auth := newAuth(s.mockCtrl)
	s.router.POST("/draws", auth.RequireAuth(), s.handler.Submit)
	s.router.GET("/draws/tickets/:id", auth.RequireAuth(), s.handler.GetTicket)
}

func (s *DrawHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDrawHandlerSuite(t *testing.T) {
	suite.Run(t, new(DrawHandlerTestSuite))
}

type testCaseDraw struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *DrawHandlerTestSuite) TestSubmit() {
	url := "/draws"
	reqBody := builder.NewRaffleBuilder().BuildDTO()
	ticketID := uuid.New()
	result := &commands.SubmissionResult{
		Ack:        queue.Ack{TicketID: ticketID, Position: 2},
		RaffleKey:  "abc123",
		TotalSlots: 10,
	}

	s.Run("success: returns 202 Accepted with the ticket", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody, caller).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerToken)

		var body resdto.SubmitDrawResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Equal(ticketID, body.TicketID)
		s.Equal(2, body.Position)
		s.Equal("abc123", body.RaffleKey)
		s.Equal(10, body.TotalSlots)
	})

	s.Run("success: total_slots may be omitted", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), caller).
			DoAndReturn(func(_ context.Context, req reqdto.CreateDrawRequest, _ user.Identity) (*commands.SubmissionResult, error) {
				s.Nil(req.TotalSlots)
				return result, nil
			}).Times(1)
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("total_slots", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, callerToken)

		s.Equal(http.StatusAccepted, rec.Code)
	})

	validation := []testCaseDraw{
		{name: "missing field: url", mutate: testutil.Field("url", nil), expectCode: http.StatusBadRequest},
		{name: "url not a url", mutate: testutil.Field("url", "reddit post abc123"), expectCode: http.StatusBadRequest},
		{name: "missing field: winner_count", mutate: testutil.Field("winner_count", nil), expectCode: http.StatusBadRequest},
		{name: "winner_count boundary invalid (0)", mutate: testutil.Field("winner_count", 0), expectCode: http.StatusBadRequest},
		{name: "winner_count boundary invalid (101)", mutate: testutil.Field("winner_count", 101), expectCode: http.StatusBadRequest},
		{name: "total_slots boundary invalid (0)", mutate: testutil.Field("total_slots", 0), expectCode: http.StatusBadRequest},
		{name: "total_slots wrong type", mutate: testutil.Field("total_slots", "ten"), expectCode: http.StatusBadRequest},
	}

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validation {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, callerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 with an unknown token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "forged")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	domainErrors := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"already drawn", errs.Wrap(errs.ErrDuplicateDraw, "abc123"), http.StatusConflict, "Raffle already drawn"},
		{"override by non-admin", commands.ErrOverrideForbidden, http.StatusForbidden, "Override requires admin role"},
		{"slots not in title", commands.ErrSlotsNotInTitle, http.StatusUnprocessableEntity, "Invalid raffle request"},
		{"too many winners", errs.Mark(errs.New("3 winners for 2 slots"), errs.ErrInsufficientParticipants), http.StatusUnprocessableEntity, "Insufficient participants"},
		{"post unavailable", errs.Mark(errs.New("404"), errs.ErrContentUnavailable), http.StatusBadGateway, "Raffle post unavailable"},
		{"queue closed", errs.ErrQueueClosed, http.StatusServiceUnavailable, "Draw queue closed"},
		{"unexpected", errs.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	s.Run("error: domain errors map to status codes", func() {
		for _, tc := range domainErrors {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: 422 carries the reason", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrSlotsNotInTitle).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, callerToken)
		s.Contains(rec.Body.String(), `"reason":"total slots not given and not found in the post title"`)
	})
}

// ================================================================================
// TestGetTicket
// ================================================================================

func (s *DrawHandlerTestSuite) TestGetTicket() {
	submitted := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.Run("success: finished ticket includes the verification", func() {
		rec, err := builder.NewRaffleBuilder().BuildRecord(3, 6)
		s.Require().NoError(err)
		id := uuid.New()
		s.mockQueue.EXPECT().Ticket(id).Return(queue.Ticket{
			ID:          id,
			RaffleKey:   "abc123",
			Requester:   "caller-1",
			Status:      queue.StatusSucceeded,
			Record:      rec,
			SubmittedAt: submitted,
			StartedAt:   submitted.Add(time.Second),
			FinishedAt:  submitted.Add(2 * time.Second),
		}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/draws/tickets/"+id.String(), nil, callerToken)

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("succeeded", body.Status)
		s.Require().NotNil(body.Result)
		s.Equal(rec.DrawID, body.Result.DrawID)
		s.Require().NotNil(body.FinishedAt)
		s.Empty(body.Error)
	})

	s.Run("success: queued ticket has no timestamps yet", func() {
		id := uuid.New()
		s.mockQueue.EXPECT().Ticket(id).Return(queue.Ticket{
			ID: id, RaffleKey: "abc123", Status: queue.StatusQueued, SubmittedAt: submitted,
		}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/draws/tickets/"+id.String(), nil, callerToken)

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("queued", body.Status)
		s.Nil(body.StartedAt)
		s.Nil(body.Result)
	})

	s.Run("success: failed ticket reports the error", func() {
		id := uuid.New()
		s.mockQueue.EXPECT().Ticket(id).Return(queue.Ticket{
			ID: id, Status: queue.StatusFailed, Err: errs.Wrap(errs.ErrDuplicateDraw, "abc123"),
		}, nil).Times(1)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/draws/tickets/"+id.String(), nil, callerToken)

		var body resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Contains(body.Error, "already drawn")
	})

	s.Run("error: 400 on a malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/draws/tickets/not-a-uuid", nil, callerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 on an unknown ticket", func() {
		s.mockQueue.EXPECT().Ticket(gomock.Any()).Return(queue.Ticket{}, errs.ErrTicketNotFound).Times(1)
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/draws/tickets/"+uuid.NewString(), nil, callerToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Ticket not found")
	})
}
