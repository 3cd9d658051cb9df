package restapi

import (
	"net/http"

	"rosterd.transitops.org/internal/models"
	"rosterd.transitops.org/internal/utils"
)

func (api *RestAPI) dutyHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "id")
	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"id": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	duty, ok := api.Roster.Duty(id)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	response := models.NewEntryResponse(duty)
	api.sendResponse(w, r, response)
}
