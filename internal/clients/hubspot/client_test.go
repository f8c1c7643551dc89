package hubspot_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/dealsync/internal/clients/hubspot"
	"github.com/samandr77/microservices/dealsync/internal/entity"
	"github.com/samandr77/microservices/dealsync/pkg/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *hubspot.Client {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	return hubspot.NewClient(config.HubSpot{
		BaseURL: server.URL + "/",
		Token:   "pat-test",
		Timeout: 5 * time.Second,
	})
}

func TestClient_FindByProperty(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		response string
		wantID   string
		wantErr  error
	}{
		{
			name:     "first match wins",
			response: `{"total":2,"results":[{"id":"101","properties":{"name":"Acme Co"}},{"id":"102"}]}`,
			wantID:   "101",
		},
		{
			name:     "no match",
			response: `{"total":0,"results":[]}`,
			wantErr:  entity.ErrNotFound,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotReq hubspot.SearchRequest

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/crm/v3/objects/companies/search" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}

				if r.Header.Get("Authorization") != "Bearer pat-test" {
					t.Errorf("missing bearer token")
				}

				if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
					t.Errorf("decode search request: %s", err)
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.response))
			})

			id, err := c.FindByProperty(context.Background(), entity.ObjectCompanies, "name", "Acme Co")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
			require.Equal(t, hubspot.SearchRequest{
				FilterGroups: []hubspot.FilterGroup{{
					Filters: []hubspot.Filter{{PropertyName: "name", Operator: "EQ", Value: "Acme Co"}},
				}},
				Limit: 1,
			}, gotReq)
		})
	}
}

func TestClient_Create(t *testing.T) {
	t.Parallel()

	var gotBody map[string]map[string]string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/crm/v3/objects/deals", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"9001","properties":{"dealname":"Roof Repair"}}`))
	})

	id, err := c.Create(context.Background(), entity.ObjectDeals, entity.Properties{
		"dealname":    " Roof Repair ",
		"description": "",
	})
	require.NoError(t, err)
	require.Equal(t, "9001", id)
	require.Equal(t, map[string]map[string]string{"properties": {"dealname": "Roof Repair"}}, gotBody)
}

func TestClient_Create_Conflict(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"status":"error","message":"Contact already exists. Existing ID: 51","category":"CONFLICT"}`))
	})

	_, err := c.Create(context.Background(), entity.ObjectContacts, entity.Properties{"email": "jane@acme.com"})
	require.ErrorIs(t, err, entity.ErrDuplicate)

	var remoteErr *entity.RemoteError

	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, entity.CategoryConflict, remoteErr.Category)
	require.Equal(t, "Contact already exists. Existing ID: 51", remoteErr.Message)
}

func TestClient_Update(t *testing.T) {
	t.Parallel()

	var gotPath, gotMethod string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method

		_, _ = w.Write([]byte(`{"id":"9001"}`))
	})

	err := c.Update(context.Background(), entity.ObjectDeals, "9001", entity.Properties{"amount": "500"})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, gotMethod)
	require.Equal(t, "/crm/v3/objects/deals/9001", gotPath)
}

func TestClient_Associate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		assoc    entity.Association
		from, to string
		wantPath string
	}{
		{
			assoc:    entity.AssocCompanyToParent,
			from:     "11",
			to:       "10",
			wantPath: "/crm/v3/objects/companies/11/associations/parent_company/10/company_to_company",
		},
		{
			assoc:    entity.AssocDealToContact,
			from:     "9001",
			to:       "51",
			wantPath: "/crm/v3/objects/deals/9001/associations/contact/51/deal_to_contact",
		},
		{
			assoc:    entity.AssocDealToCompany,
			from:     "9001",
			to:       "11",
			wantPath: "/crm/v3/objects/deals/9001/associations/company/11/deal_to_company",
		},
	} {
		t.Run(tt.assoc.Type, func(t *testing.T) {
			t.Parallel()

			var gotPath, gotMethod, gotBody string

			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotMethod = r.Method

				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)

				_, _ = w.Write([]byte(`{"id":"` + tt.from + `"}`))
			})

			err := c.Associate(context.Background(), tt.assoc, tt.from, tt.to)
			require.NoError(t, err)
			require.Equal(t, http.MethodPut, gotMethod)
			require.Equal(t, tt.wantPath, gotPath)
			require.Equal(t, "{}", gotBody)
		})
	}
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "missing token",
			status:  http.StatusUnauthorized,
			body:    `{"status":"error","message":"Authentication credentials not found.","category":"INVALID_AUTHENTICATION"}`,
			wantErr: entity.ErrUnauthenticated,
		},
		{
			name:   "unknown path",
			status: http.StatusNotFound,
			body:   `not json`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.FindByProperty(context.Background(), entity.ObjectDeals, "kickserv_job_", "J-100")
			require.Error(t, err)
			require.NotErrorIs(t, err, entity.ErrNotFound)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			var remoteErr *entity.RemoteError

			require.True(t, errors.As(err, &remoteErr))
			require.Equal(t, tt.status, remoteErr.StatusCode)
			require.Equal(t, tt.body, string(remoteErr.Body))
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	c := hubspot.NewClient(config.HubSpot{BaseURL: server.URL, Timeout: time.Second})

	_, err := c.Create(context.Background(), entity.ObjectCompanies, entity.Properties{"name": "Acme Co"})
	require.Error(t, err)

	var remoteErr *entity.RemoteError

	require.False(t, errors.As(err, &remoteErr))
}
