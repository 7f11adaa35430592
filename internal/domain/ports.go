package domain

import (
	"context"
	"encoding/json"
)

type ReviewClient interface {
	HomeworkStatuses(ctx context.Context, from int64) (json.RawMessage, error)
}

type Messenger interface {
	Send(ctx context.Context, chatID, text string) error
}
