package roster

import "rosterd.transitops.org/internal/models"

// Report-row assembly. Summary fields are best-effort: any identifier that
// fails to resolve leaves its field empty rather than failing the row.

// SummarizeDuty builds the duty times report row.
func SummarizeDuty(duty models.Duty, vehicles []models.Vehicle, trips []models.Trip) models.DutySummary {
	return models.DutySummary{
		DutyID:    duty.ID,
		StartTime: DutyStartTime(duty, vehicles, trips),
		EndTime:   DutyEndTime(duty, vehicles, trips),
	}
}

// SummarizeDutyStops builds the times-and-stops report row. The start stop is
// where passengers first board: the origin of the first service trip's Trip.
// The end stop is the destination of the last service trip's Trip.
func SummarizeDutyStops(duty models.Duty, vehicles []models.Vehicle, trips []models.Trip, stops []models.Stop) models.DutyStopsSummary {
	row := models.DutyStopsSummary{
		DutySummary: SummarizeDuty(duty, vehicles, trips),
	}
	if first, ok := FirstServiceTrip(duty.Events, vehicles); ok {
		row.StartStopName = tripStopName(first, trips, stops, false)
	}
	if last, ok := LastServiceTrip(duty.Events, vehicles); ok {
		row.EndStopName = tripStopName(last, trips, stops, true)
	}
	return row
}

func tripStopName(ve *models.VehicleEvent, trips []models.Trip, stops []models.Stop, destination bool) string {
	trip, ok := FindTrip(trips, ve.TripID)
	if !ok {
		return ""
	}
	stopID := trip.OriginStopID
	if destination {
		stopID = trip.DestinationStopID
	}
	name, _ := FindStopName(stops, stopID)
	return name
}
