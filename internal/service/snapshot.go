package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedSnapshot is returned when stored data is not a valid task list.
var ErrMalformedSnapshot = errors.New("malformed snapshot")

// EncodeSnapshot serializes the full list. A nil list encodes as [].
func EncodeSnapshot(list TaskList) ([]byte, error) {
	if list == nil {
		list = TaskList{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored list. Records with blank text or
// repeated ids make the whole snapshot malformed.
func DecodeSnapshot(data []byte) (TaskList, error) {
	var list TaskList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	// JSON null decodes cleanly into a nil slice.
	if list == nil {
		return nil, fmt.Errorf("%w: not an array", ErrMalformedSnapshot)
	}

	seen := make(map[int64]struct{}, len(list))
	for _, t := range list {
		if strings.TrimSpace(t.Text) == "" {
			return nil, fmt.Errorf("%w: task %d has empty text", ErrMalformedSnapshot, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate task id %d", ErrMalformedSnapshot, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return list, nil
}
