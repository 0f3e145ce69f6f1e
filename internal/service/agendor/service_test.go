package agendor

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AgendorBridge/entity"
	"AgendorBridge/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

func newTestService(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*AgendorService, *[]recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		recorded []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		recorded = append(recorded, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(body),
		})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	conf := &config.Config{}
	conf.Agendor.ApiKey = "agendor-token"
	conf.Agendor.BaseURL = srv.URL + "/"
	conf.Agendor.Timeout = 2 * time.Second

	svc := NewAgendorService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NotNil(t, svc)
	return svc, &recorded
}

func respond(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func TestNewAgendorService_NoToken(t *testing.T) {
	assert.Nil(t, NewAgendorService(&config.Config{}, slog.Default()))
}

func TestCreatePerson_WireFormat(t *testing.T) {
	svc, recorded := newTestService(t, respond(http.StatusCreated, `{"data":{"id":901,"name":"Ana"}}`))

	person := PersonPayload{
		Name:          entity.Some("Ana"),
		ResponsibleID: entity.Some(int64(42)),
		Contact:       &PersonContact{Whatsapp: entity.Some("5511999999999")},
	}
	data, err := svc.CreatePerson(context.Background(), person)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":901,"name":"Ana"}`, string(data))

	require.Len(t, *recorded, 1)
	req := (*recorded)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/people", req.Path)
	assert.Equal(t, "Token agendor-token", req.Auth)
	assert.JSONEq(t, `{"name":"Ana","ownerUser":42,"contact":{"whatsapp":"5511999999999"}}`, req.Body)
}

func TestUpdatePerson_ForwardsNullsOnly(t *testing.T) {
	svc, recorded := newTestService(t, respond(http.StatusOK, `{"data":{"id":7}}`))

	person := PersonPayload{
		Description: entity.Null[string](),
		Contact:     &PersonContact{Email: entity.Some("ana@example.com")},
	}
	_, err := svc.UpdatePerson(context.Background(), 7, person)
	require.NoError(t, err)

	req := (*recorded)[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/people/7", req.Path)
	assert.JSONEq(t, `{"description":null,"contact":{"email":"ana@example.com"}}`, req.Body)
}

func TestFindPeopleByPhone(t *testing.T) {
	svc, recorded := newTestService(t, respond(http.StatusOK, `{"data":[{"id":1}],"links":{}}`))

	data, err := svc.FindPeopleByPhone(context.Background(), "5511999999999")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))

	req := (*recorded)[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/people", req.Path)
	assert.Equal(t, "phone=5511999999999", req.Query)
	assert.Empty(t, req.Body)
}

func TestDealEndpoints(t *testing.T) {
	svc, recorded := newTestService(t, respond(http.StatusOK, `{"data":{"id":55}}`))
	ctx := context.Background()

	_, err := svc.CreateDeal(ctx, entity.EntityOrganizations, 12, DealPayload{Title: entity.Some("Video AI")})
	require.NoError(t, err)
	_, err = svc.FindDeals(ctx, entity.EntityPeople, 3)
	require.NoError(t, err)
	_, err = svc.UpdateDeal(ctx, 55, DealPayload{Value: entity.Some(1200.0)})
	require.NoError(t, err)
	_, err = svc.UpdateDealStage(ctx, 55, StagePayload{DealStage: 1, Funnel: entity.Some(int64(752516))})
	require.NoError(t, err)
	_, err = svc.UpdateDealStatus(ctx, 55, StatusPayload{DealStatusText: entity.DealStatusWon})
	require.NoError(t, err)

	want := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/organizations/12/deals", `{"title":"Video AI"}`},
		{http.MethodGet, "/people/3/deals", ``},
		{http.MethodPut, "/deals/55", `{"value":1200}`},
		{http.MethodPut, "/deals/55/stage", `{"dealStage":1,"funnel":752516}`},
		{http.MethodPut, "/deals/55/status", `{"dealStatusText":"won"}`},
	}
	require.Len(t, *recorded, len(want))
	for i, w := range want {
		got := (*recorded)[i]
		assert.Equal(t, w.method, got.Method)
		assert.Equal(t, w.path, got.Path)
		if w.body == "" {
			assert.Empty(t, got.Body)
		} else {
			assert.JSONEq(t, w.body, got.Body)
		}
	}
}

func TestErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService(t, respond(http.StatusNotFound, `{"errors":["not found"]}`))
		_, err := svc.UpdateDeal(context.Background(), 1, DealPayload{})
		var nf *entity.NotFoundError
		assert.ErrorAs(t, err, &nf)
	})

	t.Run("remote", func(t *testing.T) {
		svc, _ := newTestService(t, respond(http.StatusUnprocessableEntity, `{"errors":["title is required"]}`))
		_, err := svc.CreateDeal(context.Background(), entity.EntityPeople, 1, DealPayload{})
		var re *entity.RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, http.StatusUnprocessableEntity, re.Status)
		assert.Contains(t, re.Body, "title is required")
	})

	t.Run("transport", func(t *testing.T) {
		conf := &config.Config{}
		conf.Agendor.ApiKey = "token"
		conf.Agendor.BaseURL = "http://127.0.0.1:1"
		conf.Agendor.Timeout = time.Second
		svc := NewAgendorService(conf, slog.New(slog.NewTextHandler(io.Discard, nil)))

		_, err := svc.FindPeopleByPhone(context.Background(), "1")
		var te *entity.TransportError
		assert.ErrorAs(t, err, &te)
	})
}

func TestDo_NonEnvelopeBody(t *testing.T) {
	svc, _ := newTestService(t, respond(http.StatusOK, `[{"id":1}]`))
	data, err := svc.FindDeals(context.Background(), entity.EntityPeople, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(data))
}

func TestResolveResponsibleID(t *testing.T) {
	users := []User{
		{ID: 42, Name: "Carlos Souza"},
		{ID: 43, Name: "João Pereira"},
		{ID: 44, Name: "Marina Lima"},
		{ID: 45, Name: "Marina Costa"},
	}
	body, _ := json.Marshal(map[string]interface{}{"data": users})
	svc, recorded := newTestService(t, respond(http.StatusOK, string(body)))
	ctx := context.Background()

	id, err := svc.ResolveResponsibleID(ctx, "carlos souza")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = svc.ResolveResponsibleID(ctx, "Carlos")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = svc.ResolveResponsibleID(ctx, "joao  PEREIRA")
	require.NoError(t, err)
	assert.Equal(t, int64(43), id)

	_, err = svc.ResolveResponsibleID(ctx, "Marina")
	var nf *entity.NotFoundError
	assert.ErrorAs(t, err, &nf)

	_, err = svc.ResolveResponsibleID(ctx, "Beatriz")
	assert.ErrorAs(t, err, &nf)

	assert.Equal(t, "/users", (*recorded)[0].Path)
	assert.Contains(t, (*recorded)[0].Query, "per_page=100")
}

func TestListUsers_Pages(t *testing.T) {
	page := 0
	svc, recorded := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		page++
		batch := make([]User, 0, usersPerPage)
		n := usersPerPage
		if page == 2 {
			n = 3
		}
		for i := 0; i < n; i++ {
			batch = append(batch, User{ID: int64(page*1000 + i), Name: "user"})
		}
		body, _ := json.Marshal(map[string]interface{}{"data": batch})
		respond(http.StatusOK, string(body))(w, r)
	})

	users, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, usersPerPage+3)
	assert.Len(t, *recorded, 2)
}

func TestPing(t *testing.T) {
	svc, recorded := newTestService(t, respond(http.StatusOK, `{"data":{"id":1}}`))
	require.NoError(t, svc.Ping(context.Background()))
	assert.Equal(t, "/users/me", (*recorded)[0].Path)

	svc, _ = newTestService(t, respond(http.StatusUnauthorized, `{"errors":["invalid token"]}`))
	assert.Error(t, svc.Ping(context.Background()))
}
