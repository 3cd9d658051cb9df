package restapi

import (
	"net/http"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/utils"
)

func (api *RestAPI) breaksHandler(w http.ResponseWriter, r *http.Request) {
	minMinutes, ok := utils.QueryIntDefault(r, "minDuration", api.Config.MinBreakMinutes)
	if !ok || minMinutes < 0 {
		fieldErrors := map[string][]string{
			"minDuration": {"must be a non-negative integer"},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows := api.Roster.BreaksReport(minMinutes)
	if rows == nil {
		rows = []models.BreakRow{}
	}

	response := models.NewListResponse(rows)
	api.sendResponse(w, r, response)
}
