package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the event's payload as T. Payloads published on the
// MemoryBus already have the type; payloads read back from JSON (dead letter
// files, Redis) arrive as raw bytes or generic maps and are converted.
func DecodePayload[T any](evt Event) (T, error) {
	var out T
	switch p := evt.Payload.(type) {
	case T:
		return p, nil
	case json.RawMessage:
		if err := json.Unmarshal(p, &out); err != nil {
			return out, fmt.Errorf("decode %s payload: %w", evt.Type, err)
		}
		return out, nil
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return out, fmt.Errorf("encode %s payload: %w", evt.Type, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	return out, nil
}
