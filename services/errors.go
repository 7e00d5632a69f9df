// file: services/errors.go
package services

import "net/http"

// ServiceError is an expected, user-facing rejection. The Reason code is
// the machine-readable part of the error envelope; infrastructure errors
// stay plain errors and are never mapped to a reason code.
type ServiceError struct {
	Reason  string
	Message string
	Status  int
}

func (e *ServiceError) Error() string {
	return e.Message
}

var (
	ErrMatchNotFound   = &ServiceError{"not_found", "Match not found", http.StatusNotFound}
	ErrHistoryNotFound = &ServiceError{"not_found", "History entry not found", http.StatusNotFound}
	ErrVenueNotFound   = &ServiceError{"not_found", "Venue not found", http.StatusNotFound}
	ErrForbidden       = &ServiceError{"forbidden", "You do not own this resource", http.StatusForbidden}

	ErrInvalidDate = &ServiceError{"invalid_date", "Date must be DD/MM/YYYY or YYYY-MM-DD", http.StatusBadRequest}
	ErrInvalidTime = &ServiceError{"invalid_time", "Time must be HH:MM", http.StatusBadRequest}
	ErrPastDate    = &ServiceError{"past_date", "Match start is in the past", http.StatusBadRequest}
	ErrLeadTime    = &ServiceError{"lead_time_violation", "Matches must be created at least 2 hours before start", http.StatusBadRequest}

	ErrDuplicateTeamName = &ServiceError{"duplicate_team_name", "A match with one of these teams already exists on that date", http.StatusConflict}

	ErrEditConflict = &ServiceError{"edit_conflict", "The match was changed by another request, retry the edit", http.StatusConflict}

	ErrMatchAlreadyStarted    = &ServiceError{"match_already_started", "The match has already started", http.StatusConflict}
	ErrRefereeAlreadyAssigned = &ServiceError{"referee_already_assigned", "A referee is already assigned to this match", http.StatusConflict}
	ErrAlreadyPostulated      = &ServiceError{"already_postulated", "You already applied to this match", http.StatusConflict}
	ErrPostulationCapReached  = &ServiceError{"postulation_cap_reached", "This match already has the maximum number of applicants", http.StatusConflict}
	ErrNotPostulated          = &ServiceError{"not_postulated", "That referee has not applied to this match", http.StatusConflict}
	ErrNoRefereeAssigned      = &ServiceError{"no_referee_assigned", "No referee is assigned to this match", http.StatusConflict}

	ErrMatchNotFinalized = &ServiceError{"match_not_finalized", "Only finalized matches can be rated", http.StatusConflict}
	ErrAlreadyRated      = &ServiceError{"already_rated", "This match has already been rated", http.StatusConflict}
	ErrRefereeMismatch   = &ServiceError{"referee_mismatch", "That referee did not officiate this match", http.StatusConflict}
	ErrInvalidStars      = &ServiceError{"invalid_stars", "Stars must be between 1 and 5", http.StatusBadRequest}
)
