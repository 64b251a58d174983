package commands

import (
	"fmt"

	"todo/internal/service"
)

// resolveTaskRefs maps references to task ids against one view of the
// list, so that `rm 1 2` addresses the tasks as they were displayed.
// Duplicate references collapse to a single id.
func resolveTaskRefs(list service.TaskList, refs []TaskRef) ([]int64, error) {
	seen := make(map[int64]bool, len(refs))
	ids := make([]int64, 0, len(refs))

	for _, ref := range refs {
		id, err := resolveTaskRef(list, ref)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func resolveTaskRef(list service.TaskList, ref TaskRef) (int64, error) {
	if ref.ByID {
		if list.Index(ref.ID) < 0 {
			return 0, fmt.Errorf("task not found: %s", ref)
		}
		return ref.ID, nil
	}

	if ref.Num < 1 || ref.Num > len(list) {
		return 0, fmt.Errorf("task number out of range: %d", ref.Num)
	}
	return list[ref.Num-1].ID, nil
}
