package alarm

import (
	"encoding/json"
	"fmt"
)

// State is the alarm state carried in a CloudWatch alarm state-change
// event. Values outside ALARM/OK map to StateUnknown.
type State int

const (
	StateUnknown State = iota
	StateOK
	StateAlarm
)

func ParseState(v string) State {
	switch v {
	case "ALARM":
		return StateAlarm
	case "OK":
		return StateOK
	default:
		return StateUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateAlarm:
		return "ALARM"
	case StateOK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}

// Status is the display word for the service. Only ALARM reads as DOWN;
// everything else, including unknown states, reads as UP.
func (s State) Status() string {
	if s == StateAlarm {
		return "DOWN"
	}
	return "UP"
}

// stateChangeDetail is the slice of the EventBridge detail payload we
// care about.
type stateChangeDetail struct {
	AlarmName string `json:"alarmName"`
	State     struct {
		Value string `json:"value"`
	} `json:"state"`
}

// StateFromDetail extracts detail.state.value from an alarm state-change
// event detail.
func StateFromDetail(detail json.RawMessage) (State, error) {
	var d stateChangeDetail
	if err := json.Unmarshal(detail, &d); err != nil {
		return StateUnknown, fmt.Errorf("decode alarm detail: %w", err)
	}
	return ParseState(d.State.Value), nil
}
