//go:build e2e

package draw_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	reqdto "raffle-draw/internal/handler/dto/request"
	resdto "raffle-draw/internal/handler/dto/response"
	"raffle-draw/tests/common/dbtest"
	"raffle-draw/tests/common/httptest"
	"raffle-draw/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	drawsURL         = "/api/draws"
	ticketURL        = "/api/draws/tickets/%s"
	verificationURL  = "/api/verifications/%s"
	ledgerURL        = "/api/ledger/%s"
	abortURL         = "/api/ledger/%s/in-progress"
	rollHistoryURL   = "/api/rolls/history"
	postTitle        = "[Main] Booster box - 10 spots at $12"
	postBody         = "1 /u/alice **PAID**\n2 /u/bob\n3 /u/carol paid"
	ticketPollBudget = 10 * time.Second
)

type DrawSuite struct {
	e2e.SharedSuite
}

func TestDrawSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(DrawSuite))
}

func postURL(id string) string {
	return fmt.Sprintf("https://www.reddit.com/r/testraffles/comments/%s/booster_box/", id)
}

func (s *DrawSuite) submit(id string, slots *int) resdto.SubmitDrawResponse {
	body := reqdto.CreateDrawRequest{URL: postURL(id), TotalSlots: slots, WinnerCount: 1}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, drawsURL, body, s.CallerToken)

	var ack resdto.SubmitDrawResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusAccepted, &ack)
	return ack
}

// awaitTicket polls until the queue worker has finished the ticket.
func (s *DrawSuite) awaitTicket(ack resdto.SubmitDrawResponse) resdto.TicketResponse {
	var ticket resdto.TicketResponse
	require.Eventually(s.T(), func() bool {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ticketURL, ack.TicketID), nil, s.CallerToken)
		if w.Code != http.StatusOK {
			return false
		}
		ticket = resdto.TicketResponse{}
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &ticket))
		return ticket.Status == "succeeded" || ticket.Status == "failed"
	}, ticketPollBudget, 50*time.Millisecond)
	return ticket
}

func (s *DrawSuite) TestDrawLifecycle() {
	s.Run("success: slots read from the title and the record is public", func() {
		s.Upstream.SetPost("abc123", postTitle, postBody)

		ack := s.submit("abc123", nil)
		s.Equal("abc123", ack.RaffleKey)
		s.Equal(10, ack.TotalSlots)

		ticket := s.awaitTicket(ack)
		s.Require().Equal("succeeded", ticket.Status, ticket.Error)
		s.Require().NotNil(ticket.Result)

		want := []resdto.WinnerResponse{{Slot: 1, Handle: "alice", Assigned: true, Paid: true}}
		if diff := cmp.Diff(want, ticket.Result.Winners, cmpopts.IgnoreFields(resdto.WinnerResponse{}, "Share")); diff != "" {
			s.T().Errorf("winners mismatch (-want +got):\n%s", diff)
		}
		s.Equal("succeeded", dbtest.LedgerStatus(s.T(), s.DB, "abc123"))
		s.Equal(1, dbtest.CountVerifications(s.T(), s.DB, "abc123"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(verificationURL, ticket.Result.DrawID), nil, "")
		var rec resdto.VerificationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rec)
		s.Equal(ticket.Result.DrawID, rec.DrawID)
		s.Equal([]int{1}, rec.Proof.Numbers)
		s.Contains(rec.Proof.Payload, `"serialNumber"`)
		s.Equal("testraffles", rec.Source.Subreddit)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, rollHistoryURL, nil, "")
		var history resdto.RollHistoryResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &history)
		s.Equal(1, history.Draws)
		s.Equal([]resdto.NumberCountResponse{{Number: 1, Count: 1}}, history.Counts)
	})

	s.Run("error: a drawn raffle is not drawn again", func() {
		s.Upstream.SetPost("abc123", postTitle, postBody)
		dbtest.SeedLedgerEntry(s.T(), s.DB, "abc123", "succeeded")
		slots := 10

		ticket := s.awaitTicket(s.submit("abc123", &slots))

		s.Equal("failed", ticket.Status)
		s.Contains(ticket.Error, "already drawn")
		s.Equal(0, dbtest.CountVerifications(s.T(), s.DB, "abc123"))
	})

	s.Run("error: unreachable post releases the marker", func() {
		slots := 10

		ticket := s.awaitTicket(s.submit("gone42", &slots))

		s.Equal("failed", ticket.Status)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ledgerURL, "gone42"), nil, s.AdminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("error: title without a slot count is rejected at submission", func() {
		s.Upstream.SetPost("noslot", "Booster box raffle", postBody)

		body := reqdto.CreateDrawRequest{URL: postURL("noslot"), WinnerCount: 1}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, drawsURL, body, s.CallerToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "")
	})
}

func (s *DrawSuite) TestLedgerAdministration() {
	s.Run("success: admin aborts a stuck draw", func() {
		dbtest.SeedLedgerEntry(s.T(), s.DB, "stuck1", "in_progress")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf(abortURL, "stuck1"), nil, s.AdminToken)
		s.Equal(http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ledgerURL, "stuck1"), nil, s.AdminToken)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("error: callers cannot read the ledger", func() {
		dbtest.SeedLedgerEntry(s.T(), s.DB, "stuck1", "in_progress")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(ledgerURL, "stuck1"), nil, s.CallerToken)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("success: purge removes every record", func() {
		s.Upstream.SetPost("abc123", postTitle, postBody)
		s.Require().Equal("succeeded", s.awaitTicket(s.submit("abc123", nil)).Status)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/verifications", nil, s.AdminToken)
		var purged resdto.PurgeResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &purged)

		s.EqualValues(1, purged.Purged)
		s.Equal(0, dbtest.CountVerifications(s.T(), s.DB, "abc123"))
	})
}
