package practicum_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/davarch/hw-watcher/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeworkStatuses_SendsTokenAndFromDate(t *testing.T) {
	var gotAuth, gotFrom string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotFrom = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1700000100}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/api/user_api/homework_statuses/", "secret", 0)

	raw, err := c.HomeworkStatuses(context.Background(), 1700000000)

	require.NoError(t, err)
	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1700000000", gotFrom)
	assert.JSONEq(t, `{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1700000100}`, string(raw))
}

func TestHomeworkStatuses_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"not_authenticated"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "bad", 0)

	_, err := c.HomeworkStatuses(context.Background(), 0)

	var rse *domain.RemoteStatusError
	require.ErrorAs(t, err, &rse)
	assert.Equal(t, http.StatusUnauthorized, rse.StatusCode)
	assert.Contains(t, err.Error(), srv.URL)
	assert.Contains(t, err.Error(), "401")
}

func TestHomeworkStatuses_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := New(addr, "t", 0)

	_, err := c.HomeworkStatuses(context.Background(), 0)

	var te *domain.TransportError
	assert.ErrorAs(t, err, &te)
}

func TestHomeworkStatuses_BodyNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, "t", 0)

	_, err := c.HomeworkStatuses(context.Background(), 0)

	var se *domain.ShapeError
	assert.ErrorAs(t, err, &se)
}
