package restapi

import (
	"net/http"

	"rosterd.transitops.org/internal/models"
)

func (api *RestAPI) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := models.NewEntryResponse(api.Roster.Stats())
	api.sendResponse(w, r, response)
}
