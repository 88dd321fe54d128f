package commands

import (
	"context"
	"log/slog"

	"raffle-draw/internal/domain/raffle"
	"raffle-draw/internal/domain/user"
	reqdto "raffle-draw/internal/handler/dto/request"
	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/errs"
	"raffle-draw/internal/usecase/queue"
)

//go:generate mockgen -source=submission.go -destination=../../../tests/mock/commands/submission.go -package=commandsmock

var (
	ErrOverrideForbidden = errs.New("override requires the admin role")
	ErrSlotsNotInTitle   = errs.Mark(errs.New("total slots not given and not found in the post title"), errs.ErrInvalidRaffleRequest)
)

type SubmissionResult struct {
	Ack        queue.Ack
	RaffleKey  string
	TotalSlots int
}

type SubmissionCommands interface {
	Submit(ctx context.Context, req reqdto.CreateDrawRequest, caller user.Identity) (*SubmissionResult, error)
}

type submissionCommandsImpl struct {
	posts PostLookup
	queue queue.Submitter
	clock clock.Clock
}

func NewSubmissionCommands(posts PostLookup, q queue.Submitter, clk clock.Clock) SubmissionCommands {
	return &submissionCommandsImpl{posts: posts, queue: q, clock: clk}
}

// Submit validates the request and hands it to the queue. When the slot count is
// omitted it is read from the post title, which is the only network call made
// before queueing.
func (s *submissionCommandsImpl) Submit(ctx context.Context, req reqdto.CreateDrawRequest, caller user.Identity) (*SubmissionResult, error) {
	if req.Override && !caller.IsAdmin() {
		return nil, ErrOverrideForbidden
	}

	postID, err := raffle.ExtractPostID(req.TrimmedURL())
	if err != nil {
		return nil, err
	}

	totalSlots := 0
	if req.TotalSlots != nil {
		totalSlots = *req.TotalSlots
	} else {
		post, err := s.posts.FetchPost(ctx, postID)
		if err != nil {
			return nil, err
		}
		n, ok := raffle.ParseSlotsFromTitle(post.Title)
		if !ok {
			slog.Info("slot count not found in title", "raffle_key", postID, "title", post.Title)
			return nil, ErrSlotsNotInTitle
		}
		totalSlots = n
	}

	requester := raffle.Requester{ID: caller.ID, Name: caller.Name}
	raffleReq, err := raffle.NewRaffleRequest(req.TrimmedURL(), totalSlots, req.WinnerCount, requester, req.Override, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := raffle.ValidateWinnerRatio(raffleReq.WinnerCount(), raffleReq.TotalSlots()); err != nil {
		return nil, err
	}

	ack, err := s.queue.Submit(raffleReq)
	if err != nil {
		return nil, err
	}
	return &SubmissionResult{
		Ack:        ack,
		RaffleKey:  raffleReq.RaffleKey(),
		TotalSlots: raffleReq.TotalSlots(),
	}, nil
}
