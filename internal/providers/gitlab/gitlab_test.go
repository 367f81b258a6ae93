package gitlab_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vukan322/streakcard/internal/core"
	"github.com/vukan322/streakcard/internal/providers/gitlab"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
}

func newProvider(srv *httptest.Server) *gitlab.Provider {
	return gitlab.New("").
		WithBaseURL(srv.URL).
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		WithClock(fixedClock)
}

func TestFetch(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tanuki", r.URL.Query().Get("username"))
		_, _ = w.Write([]byte(`[{"id":42,"username":"tanuki","name":"Tanuki Dev"}]`))
	})
	mux.HandleFunc("/users/tanuki/calendar.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"2024-03-04":1,"2024-03-01":3,"2024-03-02":2,"bogus":9}`))
	})
	mux.HandleFunc("/api/v4/users/42/projects", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "1":
			_, _ = w.Write([]byte(`[{"id":1,"star_count":4},{"id":2,"star_count":6}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	stats, err := newProvider(srv).Fetch(context.Background(), "tanuki")
	require.NoError(t, err)

	assert.Equal(t, "Tanuki Dev", stats.Identity.Name)
	assert.Equal(t, []string{"gitlab: tanuki"}, stats.Identity.Handles)
	assert.Equal(t, 10, stats.Counters.Stars)
	assert.Equal(t, []core.DailyCount{
		{Date: "2024-03-01", Count: 3},
		{Date: "2024-03-02", Count: 2},
		{Date: "2024-03-03", Count: 0},
		{Date: "2024-03-04", Count: 1},
		{Date: "2024-03-05", Count: 0},
		{Date: "2024-03-06", Count: 0},
	}, stats.Days)

	m := core.ComputeMetrics(stats.Days)
	assert.Zero(t, m.CurrentStreak, "inactive days up to today break the streak")
	assert.Equal(t, 2, m.LongestStreak)
}

func TestFetch_ProjectsFailureKeepsCalendar(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":7,"username":"tanuki"}]`))
	})
	mux.HandleFunc("/users/tanuki/calendar.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"2024-03-06":2}`))
	})
	mux.HandleFunc("/api/v4/users/7/projects", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	stats, err := newProvider(srv).Fetch(context.Background(), "tanuki")
	require.NoError(t, err)

	assert.Equal(t, "tanuki", stats.Identity.Name)
	assert.Zero(t, stats.Counters.Stars)
	assert.Equal(t, []core.DailyCount{{Date: "2024-03-06", Count: 2}}, stats.Days)
}

func TestFetch_UnknownUser(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	_, err := newProvider(srv).Fetch(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ghost" not found`)
}

func TestFetch_CalendarMissing(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v4/users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":7,"username":"tanuki"}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	_, err := newProvider(srv).Fetch(context.Background(), "tanuki")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gitlab: fetch calendar")
}

func TestFetch_SendsToken(t *testing.T) {
	t.Parallel()

	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("PRIVATE-TOKEN")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	_, err := gitlab.New("glpat").WithBaseURL(srv.URL).Fetch(context.Background(), "tanuki")
	require.Error(t, err)
	assert.Equal(t, "glpat", <-got)
}
