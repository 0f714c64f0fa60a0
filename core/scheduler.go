package core

// TaskID identifies a registered periodic task. IDs are assigned in
// registration order, and due tasks always fire in ID order, so the
// highest-priority task must be registered first.
type TaskID uint8

// maxTasks bounds the descriptor table. The node registers two tasks
// (fine and coarse lease maintenance); the table leaves a little room.
const maxTasks = 4

// taskDescriptor tracks one periodic task.
type taskDescriptor struct {
	intervalMS uint32
	lastFired  uint64
}

// DueSet is the set of tasks found due by a single poll.
type DueSet uint8

// Contains reports whether id is in the set.
func (s DueSet) Contains(id TaskID) bool {
	return s&(1<<id) != 0
}

// Empty reports whether no task is due.
func (s DueSet) Empty() bool {
	return s == 0
}

// PeriodicTaskScheduler decides, from the monotonic clock alone, which
// registered tasks are due on a given loop iteration. It never calls the
// tasks itself; the superloop fires them.
type PeriodicTaskScheduler struct {
	tasks [maxTasks]taskDescriptor
	count int
}

// NewPeriodicTaskScheduler returns an empty scheduler.
func NewPeriodicTaskScheduler() *PeriodicTaskScheduler {
	return &PeriodicTaskScheduler{}
}

// Register adds a task with the given interval, treating nowMS as its
// last firing time so the first due detection happens one full interval
// from now. Registering more than maxTasks tasks panics; that is a wiring
// bug, not a runtime condition.
func (s *PeriodicTaskScheduler) Register(intervalMS uint32, nowMS uint64) TaskID {
	if s.count >= maxTasks {
		panic("scheduler: task table full")
	}
	id := TaskID(s.count)
	s.tasks[s.count] = taskDescriptor{intervalMS: intervalMS, lastFired: nowMS}
	s.count++
	return id
}

// PollDue returns every task whose interval has elapsed at nowMS and
// marks each one as fired at nowMS. A task that is several intervals late
// is not back-filled: it appears in the set once and resynchronizes to
// nowMS. Evaluation runs in ID order.
func (s *PeriodicTaskScheduler) PollDue(nowMS uint64) DueSet {
	var due DueSet
	for i := 0; i < s.count; i++ {
		t := &s.tasks[i]
		if nowMS-t.lastFired >= uint64(t.intervalMS) {
			t.lastFired = nowMS
			due |= 1 << TaskID(i)
		}
	}
	return due
}

// LastFired returns the recorded last firing time of a task.
func (s *PeriodicTaskScheduler) LastFired(id TaskID) uint64 {
	return s.tasks[id].lastFired
}
