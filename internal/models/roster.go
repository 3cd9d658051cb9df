package models

import "encoding/json"

// DutyEventType tags the variants of a duty event.
type DutyEventType string

const (
	DutyEventSignOn       DutyEventType = "sign_on"
	DutyEventTaxi         DutyEventType = "taxi"
	DutyEventVehicleEvent DutyEventType = "vehicle_event"
)

// VehicleEventType tags the variants of a vehicle event.
type VehicleEventType string

const (
	VehicleEventPreTrip      VehicleEventType = "pre_trip"
	VehicleEventDepotPullOut VehicleEventType = "depot_pull_out"
	VehicleEventDeadhead     VehicleEventType = "deadhead"
	VehicleEventDepotPullIn  VehicleEventType = "depot_pull_in"
	VehicleEventAttendance   VehicleEventType = "attendance"
	VehicleEventServiceTrip  VehicleEventType = "service_trip"
)

// SelfContained reports whether a vehicle event of this type carries its own
// start/end times and destination, as opposed to referencing a Trip.
func (t VehicleEventType) SelfContained() bool {
	switch t {
	case VehicleEventPreTrip, VehicleEventDepotPullOut, VehicleEventDeadhead,
		VehicleEventDepotPullIn, VehicleEventAttendance:
		return true
	default:
		return false
	}
}

// Ordinal is a sequence number that source datasets encode inconsistently as
// either a JSON string or a JSON number. It always unmarshals to the canonical
// string form, so lookups never miss on representation alone.
type Ordinal string

func (o *Ordinal) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*o = Ordinal(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*o = Ordinal(s)
	return nil
}

// Stop is immutable reference data, looked up by ID only.
type Stop struct {
	ID        string  `json:"stop_id"`
	Name      string  `json:"stop_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsDepot   bool    `json:"is_depot"`
}

// Trip is one scheduled passenger-carrying journey. Times are day-relative
// "<day>.<hour>:<minute>" strings.
type Trip struct {
	ID                string `json:"trip_id"`
	RouteNumber       string `json:"route_number"`
	OriginStopID      string `json:"origin_stop_id"`
	DestinationStopID string `json:"destination_stop_id"`
	DepartureTime     string `json:"departure_time"`
	ArrivalTime       string `json:"arrival_time"`
}

// VehicleEvent is one leg of a vehicle's operating day. Service trips carry
// only a TripID and take their times and destination from the referenced Trip;
// every other variant is self-contained.
type VehicleEvent struct {
	Sequence          Ordinal          `json:"vehicle_event_sequence"`
	Type              VehicleEventType `json:"vehicle_event_type"`
	StartTime         string           `json:"start_time,omitempty"`
	EndTime           string           `json:"end_time,omitempty"`
	OriginStopID      string           `json:"origin_stop_id,omitempty"`
	DestinationStopID string           `json:"destination_stop_id,omitempty"`
	TripID            string           `json:"trip_id,omitempty"`
	DutyID            string           `json:"duty_id,omitempty"`
}

type Vehicle struct {
	ID     string         `json:"vehicle_id"`
	Events []VehicleEvent `json:"vehicle_events"`
}

// DutyEvent is one leg of a crew member's day. The sign_on and taxi variants
// are self-contained; the vehicle_event variant points at a VehicleEvent by
// (VehicleID, VehicleEventSequence) and must be dereferenced.
type DutyEvent struct {
	Sequence             Ordinal       `json:"duty_event_sequence"`
	Type                 DutyEventType `json:"duty_event_type"`
	StartTime            string        `json:"start_time,omitempty"`
	EndTime              string        `json:"end_time,omitempty"`
	OriginStopID         string        `json:"origin_stop_id,omitempty"`
	DestinationStopID    string        `json:"destination_stop_id,omitempty"`
	VehicleID            string        `json:"vehicle_id,omitempty"`
	VehicleEventSequence Ordinal       `json:"vehicle_event_sequence,omitempty"`
}

// HasVehiclePointer reports whether the event carries both fields needed to
// dereference a vehicle event.
func (e DutyEvent) HasVehiclePointer() bool {
	return e.VehicleID != "" && e.VehicleEventSequence != ""
}

// Duty is a crew member's scheduled workday. The order of Events is the ground
// truth for chronology; segments are never re-sorted by time.
type Duty struct {
	ID     string      `json:"duty_id"`
	Events []DutyEvent `json:"duty_events"`
}

// Dataset is the four input collections, connected only by ID cross-references.
// It is assembled once and treated as read-only for the life of the process.
type Dataset struct {
	Stops    []Stop    `json:"stops"`
	Trips    []Trip    `json:"trips"`
	Vehicles []Vehicle `json:"vehicles"`
	Duties   []Duty    `json:"duties"`
}
