package application

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/davarch/hw-watcher/internal/domain"
)

const failurePrefix = "Сбой в работе программы: "

// CheckResponse validates the API payload and returns the homework records,
// most recent first.
func CheckResponse(raw json.RawMessage) ([]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, &domain.ShapeError{Reason: "response is not a JSON object"}
	}

	hw, ok := obj["homeworks"]
	if !ok {
		return nil, &domain.ShapeError{Reason: `key "homeworks" is missing`}
	}

	var list []json.RawMessage
	if isNull(hw) || json.Unmarshal(hw, &list) != nil {
		return nil, &domain.ShapeError{Reason: `"homeworks" is not a list`}
	}

	return list, nil
}

// ParseStatus turns one homework record into the notification text.
func ParseStatus(raw json.RawMessage) (string, error) {
	var rec map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
		return "", &domain.ShapeError{Reason: "homework record is not a JSON object"}
	}

	rawStatus, ok := rec["status"]
	if !ok {
		return "", &domain.MissingFieldError{Field: "status"}
	}

	var status string
	if err := json.Unmarshal(rawStatus, &status); err != nil {
		return "", &domain.UnknownStatusError{Status: string(rawStatus)}
	}

	verdict, ok := domain.Verdicts[domain.ReviewStatus(status)]
	if !ok {
		return "", &domain.UnknownStatusError{Status: status}
	}

	rawName, ok := rec["homework_name"]
	if !ok {
		return "", &domain.MissingFieldError{Field: "homework_name"}
	}

	var name string
	if isNull(rawName) || json.Unmarshal(rawName, &name) != nil {
		return "", &domain.ShapeError{Reason: `"homework_name" is not a string`}
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

// LatestMessage runs the validator and the extractor on a payload. An empty
// message with a nil error means there is nothing to report.
func LatestMessage(raw json.RawMessage) (string, error) {
	list, err := CheckResponse(raw)
	if err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", nil
	}
	return ParseStatus(list[0])
}

// DecodeHomeworks validates the payload and decodes every record.
func DecodeHomeworks(raw json.RawMessage) ([]domain.Homework, error) {
	list, err := CheckResponse(raw)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Homework, 0, len(list))
	for i, item := range list {
		var h domain.Homework
		if err := json.Unmarshal(item, &h); err != nil {
			return nil, &domain.ShapeError{Reason: fmt.Sprintf("homework #%d: %v", i, err)}
		}
		out = append(out, h)
	}
	return out, nil
}

func FailureMessage(err error) string {
	return failurePrefix + err.Error()
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
