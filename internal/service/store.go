package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// SeedID is the id of the default task.
	SeedID int64 = 1

	// DefaultSeedText is the text of the default task.
	DefaultSeedText = "Friday Mehmet's class"
)

// ErrPersist wraps storage write failures. The in-memory change is kept.
var ErrPersist = errors.New("failed to persist task list")

// Options configures a Store.
type Options struct {
	// SeedText overrides DefaultSeedText.
	SeedText string

	// KeepEmpty restores a stored empty list as empty instead of
	// replacing it with the seed task.
	KeepEmpty bool

	// Logger receives debug and failure events. Nil disables logging.
	Logger *zerolog.Logger

	// Clock is used for id generation. Defaults to time.Now.
	Clock func() time.Time
}

// Store owns the authoritative task list and rewrites the snapshot in
// the slot after every mutation. Not safe for concurrent use.
type Store struct {
	slot      Slot
	logger    zerolog.Logger
	seedText  string
	keepEmpty bool
	ids       idGenerator
	tasks     TaskList
}

// New creates a Store over slot. Call Initialize before use.
func New(slot Slot, opts Options) *Store {
	s := &Store{
		slot:      slot,
		logger:    zerolog.Nop(),
		seedText:  opts.SeedText,
		keepEmpty: opts.KeepEmpty,
		ids:       idGenerator{clock: opts.Clock},
		tasks:     TaskList{},
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	}
	if s.seedText == "" {
		s.seedText = DefaultSeedText
	}
	if s.ids.clock == nil {
		s.ids.clock = time.Now
	}
	return s
}

// Initialize loads the snapshot into memory and returns the list.
// Absent, malformed or unreadable data and (unless KeepEmpty is set) an
// empty stored list all yield the seed list. It never fails.
func (s *Store) Initialize(ctx context.Context) TaskList {
	s.tasks = s.load(ctx)
	for _, t := range s.tasks {
		s.ids.observe(t.ID)
	}
	return s.tasks.Clone()
}

func (s *Store) load(ctx context.Context) TaskList {
	data, ok, err := s.slot.Get(ctx, SnapshotKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read snapshot, using seed list")
		return s.seed()
	}
	if !ok {
		s.logger.Debug().Msg("no snapshot stored, using seed list")
		return s.seed()
	}

	list, err := DecodeSnapshot(data)
	if err != nil {
		s.logger.Debug().Err(err).Msg("ignoring snapshot")
		return s.seed()
	}
	if len(list) == 0 && !s.keepEmpty {
		s.logger.Debug().Msg("stored list is empty, using seed list")
		return s.seed()
	}

	s.logger.Debug().Int("tasks", len(list)).Msg("restored snapshot")
	return list
}

func (s *Store) seed() TaskList {
	return TaskList{{ID: SeedID, Text: s.seedText}}
}

// Tasks returns a copy of the current list.
func (s *Store) Tasks() TaskList {
	return s.tasks.Clone()
}

// Find returns the task with the given id.
func (s *Store) Find(id int64) (Task, bool) {
	i := s.tasks.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

// RemainingCount returns the number of tasks not completed.
func (s *Store) RemainingCount() int {
	return s.tasks.Remaining()
}

// Add appends a task with a fresh id. text is stored as given; it is a
// no-op when text is blank after trimming.
func (s *Store) Add(ctx context.Context, text string) (TaskList, error) {
	if strings.TrimSpace(text) == "" {
		return s.tasks.Clone(), nil
	}

	t := Task{ID: s.ids.next(), Text: text}
	s.tasks = append(s.tasks, t)
	s.logger.Debug().Int64("task_id", t.ID).Msg("added task")
	return s.commit(ctx)
}

// Toggle flips the completed flag of the task with the given id.
// Unknown ids are a no-op.
func (s *Store) Toggle(ctx context.Context, id int64) (TaskList, error) {
	i := s.tasks.Index(id)
	if i < 0 {
		return s.tasks.Clone(), nil
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.logger.Debug().
		Int64("task_id", id).
		Bool("completed", s.tasks[i].Completed).
		Msg("toggled task")
	return s.commit(ctx)
}

// Remove deletes the task with the given id. Unknown ids are a no-op.
func (s *Store) Remove(ctx context.Context, id int64) (TaskList, error) {
	i := s.tasks.Index(id)
	if i < 0 {
		return s.tasks.Clone(), nil
	}

	s.tasks = slices.Delete(s.tasks, i, i+1)
	s.logger.Debug().Int64("task_id", id).Msg("removed task")
	return s.commit(ctx)
}

// commit writes the full list to the slot and returns a copy of it.
func (s *Store) commit(ctx context.Context) (TaskList, error) {
	data, err := EncodeSnapshot(s.tasks)
	if err != nil {
		return s.tasks.Clone(), fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := s.slot.Set(ctx, SnapshotKey, data); err != nil {
		s.logger.Error().
			Err(err).
			Int("tasks", len(s.tasks)).
			Msg("failed to write snapshot")
		return s.tasks.Clone(), fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return s.tasks.Clone(), nil
}

// Close releases the slot if it holds resources.
func (s *Store) Close() error {
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
