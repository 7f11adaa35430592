package application

import (
	"encoding/json"
	"testing"

	"github.com/davarch/hw-watcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus_KnownStatuses(t *testing.T) {
	for status, verdict := range domain.Verdicts {
		t.Run(string(status), func(t *testing.T) {
			raw := json.RawMessage(`{"homework_name":"sprint_7","status":"` + string(status) + `"}`)

			got, err := ParseStatus(raw)

			require.NoError(t, err)
			assert.Equal(t, "Изменился статус проверки работы \"sprint_7\". "+verdict, got)
		})
	}
}

func TestParseStatus_UnknownStatus(t *testing.T) {
	cases := map[string]string{
		"unknown value":   `{"homework_name":"hw1","status":"lost"}`,
		"no name":         `{"status":"lost"}`,
		"empty status":    `{"homework_name":"hw1","status":""}`,
		"numeric status":  `{"homework_name":"hw1","status":3}`,
		"null status":     `{"homework_name":"hw1","status":null}`,
		"case mismatch":   `{"homework_name":"hw1","status":"Approved"}`,
		"extra fields ok": `{"homework_name":"hw1","status":"done","id":7}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseStatus(json.RawMessage(payload))

			var use *domain.UnknownStatusError
			assert.ErrorAs(t, err, &use)
		})
	}
}

func TestParseStatus_MissingFields(t *testing.T) {
	_, err := ParseStatus(json.RawMessage(`{"homework_name":"hw1"}`))
	var mfe *domain.MissingFieldError
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "status", mfe.Field)

	_, err = ParseStatus(json.RawMessage(`{"status":"approved"}`))
	require.ErrorAs(t, err, &mfe)
	assert.Equal(t, "homework_name", mfe.Field)
}

func TestParseStatus_RecordNotObject(t *testing.T) {
	_, err := ParseStatus(json.RawMessage(`["hw1","approved"]`))

	var se *domain.ShapeError
	assert.ErrorAs(t, err, &se)
}

func TestCheckResponse(t *testing.T) {
	list, err := CheckResponse(json.RawMessage(`{"homeworks":[{"a":1},{"b":2}],"current_date":1}`))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = CheckResponse(json.RawMessage(`{"homeworks":[]}`))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCheckResponse_ShapeErrors(t *testing.T) {
	cases := map[string]string{
		"missing key":      `{"current_date":1}`,
		"not an object":    `[{"homework_name":"hw1"}]`,
		"null":             `null`,
		"homeworks object": `{"homeworks":{"homework_name":"hw1"}}`,
		"homeworks string": `{"homeworks":"hw1"}`,
		"homeworks null":   `{"homeworks":null}`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CheckResponse(json.RawMessage(payload))

			var se *domain.ShapeError
			assert.ErrorAs(t, err, &se)
		})
	}
}

func TestLatestMessage(t *testing.T) {
	got, err := LatestMessage(json.RawMessage(approvedPayload))
	require.NoError(t, err)
	assert.Equal(t, `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`, got)

	got, err = LatestMessage(json.RawMessage(`{"homeworks":[]}`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLatestMessage_UsesMostRecentOnly(t *testing.T) {
	raw := json.RawMessage(`{"homeworks":[
		{"homework_name":"new","status":"reviewing"},
		{"homework_name":"old","status":"bogus"}
	]}`)

	got, err := LatestMessage(raw)

	require.NoError(t, err)
	assert.Contains(t, got, `"new"`)
}

func TestLatestMessage_ShapeCheckedBeforeExtraction(t *testing.T) {
	_, err := LatestMessage(json.RawMessage(`{"items":[{"homework_name":"hw1","status":"bogus"}]}`))

	var se *domain.ShapeError
	assert.ErrorAs(t, err, &se)
}

func TestDecodeHomeworks(t *testing.T) {
	raw := json.RawMessage(`{"homeworks":[{"id":3,"homework_name":"hw3","status":"rejected","lesson_name":"Go","reviewer_comment":"fix tests","date_updated":"2026-10-01T10:00:00Z"}]}`)

	hws, err := DecodeHomeworks(raw)

	require.NoError(t, err)
	require.Len(t, hws, 1)
	assert.Equal(t, domain.Homework{
		ID:              3,
		Name:            "hw3",
		Status:          domain.StatusRejected,
		LessonName:      "Go",
		ReviewerComment: "fix tests",
		DateUpdated:     "2026-10-01T10:00:00Z",
	}, hws[0])
}
