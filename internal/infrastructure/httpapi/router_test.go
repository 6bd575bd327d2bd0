package httpapi

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
	"github.com/bnema/tabstash/internal/domain/repository"
	repomocks "github.com/bnema/tabstash/internal/domain/repository/mocks"
	"github.com/bnema/tabstash/internal/infrastructure/broadcast"
	"github.com/bnema/tabstash/internal/infrastructure/persistence"
	"github.com/bnema/tabstash/internal/infrastructure/persistence/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	server *httptest.Server
	repo   *memory.Store
	bus    *broadcast.Bus
}

func newFixture(t *testing.T) *apiFixture {
	t.Helper()
	repo := memory.New()
	bus := broadcast.NewBus()
	store := usecase.NewTabGroupStore(repo, bus)
	srv := httptest.NewServer(NewRouter(store, Options{Bus: bus, KeepAlive: time.Hour}))
	t.Cleanup(srv.Close)
	return &apiFixture{server: srv, repo: repo, bus: bus}
}

func (f *apiFixture) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, f.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAPI_CreateGetList(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPost, "/api/tab-groups",
		`{"name":"reading","tabs":[{"id":1,"url":"https://go.dev","title":"Go"}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[persistence.Record](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "/api/tab-groups/"+created.ID, resp.Header.Get("Location"))

	resp = f.do(t, http.MethodGet, "/api/tab-groups/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[persistence.Record](t, resp)
	assert.Equal(t, "reading", got.Name)
	assert.Len(t, got.Tabs, 1)

	resp = f.do(t, http.MethodGet, "/api/tab-groups", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]persistence.Record](t, resp)
	assert.Len(t, list, 1)
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodGet, "/api/tab-groups", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.JSONEq(t, `[]`, string(raw))
}

func TestAPI_PutKeepsCreatedAt(t *testing.T) {
	f := newFixture(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.repo.Put(context.Background(), entity.NewTabGroup(entity.TabGroupParams{
		ID: "g1", Name: "old", CreatedAt: created, UpdatedAt: created,
	})))

	resp := f.do(t, http.MethodPut, "/api/tab-groups/g1", `{"name":"new","tabs":[]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[persistence.Record](t, resp)

	assert.Equal(t, "new", rec.Name)
	assert.True(t, rec.CreatedAt.Equal(created))
	assert.True(t, rec.UpdatedAt.After(created))
}

func TestAPI_PutIgnoresClientCreatedAtForStoredGroup(t *testing.T) {
	f := newFixture(t)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.repo.Put(context.Background(), entity.NewTabGroup(entity.TabGroupParams{
		ID: "g1", Name: "old", CreatedAt: created, UpdatedAt: created,
	})))

	resp := f.do(t, http.MethodPut, "/api/tab-groups/g1",
		`{"name":"new","tabs":[],"createdAt":"2001-02-03T04:05:06Z","updatedAt":"2001-02-03T04:05:06Z"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[persistence.Record](t, resp)
	assert.True(t, rec.CreatedAt.Equal(created), "got %s", rec.CreatedAt)
	assert.True(t, rec.UpdatedAt.After(created))

	stored, err := f.repo.Get(context.Background(), "g1")
	require.NoError(t, err)
	assert.True(t, stored.CreatedAt.Equal(created))
	assert.Equal(t, "new", stored.Name)
}

func TestAPI_PutNewGroupKeepsSuppliedCreatedAt(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPut, "/api/tab-groups/g2",
		`{"name":"imported","tabs":[],"createdAt":"2001-02-03T04:05:06Z"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rec := decode[persistence.Record](t, resp)
	assert.True(t, rec.CreatedAt.Equal(time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)))
}

func TestAPI_PutRejectsMismatchedID(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodPut, "/api/tab-groups/g1", `{"id":"other","name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ErrorMapping(t *testing.T) {
	f := newFixture(t)

	resp := f.do(t, http.MethodGet, "/api/tab-groups/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[APIError](t, resp).Code)

	resp = f.do(t, http.MethodPost, "/api/tab-groups", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_UnavailableAndWriteErrors(t *testing.T) {
	repo := repomocks.NewMockTabGroupRepository(t)
	repo.EXPECT().List(mock.Anything, repository.NewestFirst).
		Return(nil, fmt.Errorf("%w: locked", repository.ErrUnavailable))
	repo.EXPECT().Delete(mock.Anything, entity.TabGroupID("g1")).
		Return(fmt.Errorf("disk full"))

	srv := httptest.NewServer(NewRouter(usecase.NewTabGroupStore(repo, nil), Options{}))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/tab-groups")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/tab-groups/g1", nil)
	require.NoError(t, err)
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAPI_DeleteIsIdempotent(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/tab-groups/nope", "").StatusCode)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/tab-groups/nope", "").StatusCode)
}

func TestAPI_EventsStreamChangeSignals(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.server.URL+"/api/events", nil)
	require.NoError(t, err)
	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return f.bus.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	f.do(t, http.MethodPost, "/api/tab-groups", `{"name":"x","tabs":[]}`)

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "event: ") {
			assert.Equal(t, "event: tabgroups.changed\n", line)
			return
		}
	}
}

func TestAPI_Healthz(t *testing.T) {
	f := newFixture(t)
	resp := f.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
