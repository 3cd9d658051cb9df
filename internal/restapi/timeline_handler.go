package restapi

import (
	"net/http"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/utils"
)

func (api *RestAPI) timelineHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	if _, ok := api.Roster.Duty(id); !ok {
		api.sendNotFound(w, r)
		return
	}

	timeline, err := api.Roster.Timeline(id)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	if timeline == nil {
		timeline = []models.Segment{}
	}

	response := models.NewListResponse(timeline)
	api.sendResponse(w, r, response)
}
