package events

import "encoding/json"

// Event name constants
const (
	DesignCompleted = "design.completed"
	ConfigChanged   = "config.changed"
)

// Event is a generic SSE event from daemon.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // Raw JSON payload
}

// DesignCompletedEvent is the typed payload for design.completed.
type DesignCompletedEvent struct {
	VCC        float64 `json:"vcc"`
	LowTarget  float64 `json:"lowTarget"`
	HighTarget float64 `json:"highTarget"`
	R1         float64 `json:"r1"`
	R2         float64 `json:"r2"`
	R3         float64 `json:"r3"`
	Error      float64 `json:"error"`
	WorstError float64 `json:"worstError"`
	Ts         int64   `json:"ts"`
}

// ConfigChangedEvent is the typed payload for config.changed.
type ConfigChangedEvent struct {
	Reason string `json:"reason"`
	Ts     int64  `json:"ts"`
}

// DecodeAs decodes the event payload into the caller-specified generic type T.
// It ignores the event name and simply unmarshals Data into T. If Data is empty,
// it returns the zero value of T with a nil error.
//
// Example:
//
//	payload, err := events.DecodeAs[events.DesignCompletedEvent](ev)
//	if err != nil { /* handle */ }
//	fmt.Println(payload.R1, payload.R2, payload.R3)
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
