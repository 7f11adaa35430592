package application

import (
	"context"

	"github.com/davarch/hw-watcher/internal/domain"
)

type PollUseCase struct {
	api    domain.ReviewClient
	msg    domain.Messenger
	chatID string
	from   int64

	last string
}

func NewPollUseCase(api domain.ReviewClient, msg domain.Messenger, chatID string, from int64) *PollUseCase {
	return &PollUseCase{api: api, msg: msg, chatID: chatID, from: from}
}

// PollOnce fetches the latest review and sends it when the derived message
// differs from the last delivered one.
func (uc *PollUseCase) PollOnce(ctx context.Context) error {
	raw, err := uc.api.HomeworkStatuses(ctx, uc.from)
	if err != nil {
		return err
	}

	text, err := LatestMessage(raw)
	if err != nil {
		return err
	}

	if text == "" || text == uc.last {
		return nil
	}

	if err := uc.msg.Send(ctx, uc.chatID, text); err != nil {
		return &domain.SendError{Err: err}
	}
	uc.last = text

	return nil
}

// ReportFailure relays a poll failure to the chat unless the same text was the
// last thing delivered. The returned error is informational only.
func (uc *PollUseCase) ReportFailure(ctx context.Context, cause error) error {
	text := FailureMessage(cause)
	if text == uc.last {
		return nil
	}

	if err := uc.msg.Send(ctx, uc.chatID, text); err != nil {
		return err
	}
	uc.last = text

	return nil
}

func (uc *PollUseCase) LastMessage() string { return uc.last }
