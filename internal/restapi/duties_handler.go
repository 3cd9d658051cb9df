package restapi

import (
	"net/http"

	"rosterd.transitops.org/internal/models"
)

func (api *RestAPI) dutiesHandler(w http.ResponseWriter, r *http.Request) {
	rows := api.Roster.StopsReport()
	response := models.NewListResponse(rows)
	api.sendResponse(w, r, response)
}
