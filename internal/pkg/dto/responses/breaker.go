package responses

import "clinic-service/internal/app/models"

type BreakerState struct {
	Name                 string `json:"name"`
	State                string `json:"state"`
	Requests             uint32 `json:"requests"`
	TotalSuccesses       uint32 `json:"totalSuccesses"`
	TotalFailures        uint32 `json:"totalFailures"`
	ConsecutiveSuccesses uint32 `json:"consecutiveSuccesses"`
	ConsecutiveFailures  uint32 `json:"consecutiveFailures"`
}

func NewBreakerState(snapshot models.BreakerSnapshot) BreakerState {
	return BreakerState{
		Name:                 snapshot.Name,
		State:                snapshot.State,
		Requests:             snapshot.Requests,
		TotalSuccesses:       snapshot.TotalSuccesses,
		TotalFailures:        snapshot.TotalFailures,
		ConsecutiveSuccesses: snapshot.ConsecutiveSuccesses,
		ConsecutiveFailures:  snapshot.ConsecutiveFailures,
	}
}

type Health struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
