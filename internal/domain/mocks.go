package domain

import (
	"context"
	"encoding/json"
)

type MockReviewClient struct {
	Payload json.RawMessage
	Err     error
	Called  int
	From    []int64
}

func (m *MockReviewClient) HomeworkStatuses(ctx context.Context, from int64) (json.RawMessage, error) {
	m.Called++
	m.From = append(m.From, from)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payload, nil
}

type MockMessenger struct {
	ChatIDs  []string
	Messages []string
	Err      error
}

// Send records every attempt, including failed ones.
func (n *MockMessenger) Send(ctx context.Context, chatID, text string) error {
	n.ChatIDs = append(n.ChatIDs, chatID)
	n.Messages = append(n.Messages, text)
	return n.Err
}
