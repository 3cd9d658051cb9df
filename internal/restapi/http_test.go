package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"rosterd.transitops.org/internal/app"
	"rosterd.transitops.org/internal/dataset"
	"rosterd.transitops.org/internal/logging"
	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/roster"
)

// createTestApi creates a new RestAPI instance with a roster manager built
// from the testdata fixture.
func createTestApi(t *testing.T) *RestAPI {
	ds, err := dataset.Load(filepath.Join("../../testdata", "mini_roster.json"))
	require.NoError(t, err)

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager := roster.NewManager(ds, logger, nil)

	application := &app.Application{
		Config: app.Config{
			Env:             "test",
			ApiKeys:         []string{"TEST"},
			MinBreakMinutes: 15,
		},
		Logger: logger,
		Roster: manager,
	}

	return NewRestAPI(application)
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	var model models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&model)
	require.NoError(t, err)

	return resp, model
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// getRaw serves a single request through the router without starting a
// listener, for responses that do not use the standard envelope.
func getRaw(t *testing.T, router *httprouter.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// listFromModel re-decodes the envelope's data.list into out.
func listFromModel(t *testing.T, model models.ResponseModel, out interface{}) {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	raw, err := json.Marshal(data["list"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// entryFromModel re-decodes the envelope's data.entry into out.
func entryFromModel(t *testing.T, model models.ResponseModel, out interface{}) {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data is not an object")
	raw, err := json.Marshal(data["entry"])
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}
