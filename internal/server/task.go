package server

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/courseforge/internal/lesson"
)

// Status is the lifecycle state of a generation task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether a task will receive no further updates.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Progress tracks how far a generation task has come.
type Progress struct {
	Percentage       float64 `json:"percentage"`
	CurrentStep      string  `json:"current_step"`
	ModulesCompleted int     `json:"modules_completed"`
	ModulesTotal     int     `json:"modules_total"`
}

// Task is one background lesson generation run.
type Task struct {
	ID        string         `json:"id"`
	Topic     string         `json:"topic"`
	Slug      string         `json:"slug"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Progress  Progress       `json:"progress"`
	Error     string         `json:"error,omitempty"`
	Result    *lesson.Result `json:"result,omitempty"`
}

// TaskManager tracks generation tasks and fans status updates out to
// websocket subscribers. All methods are safe for concurrent use.
type TaskManager struct {
	mu    sync.Mutex
	tasks map[string]*Task
	subs  map[string][]chan Task
}

func NewTaskManager() *TaskManager {
	return &TaskManager{
		tasks: make(map[string]*Task),
		subs:  make(map[string][]chan Task),
	}
}

// Create registers a new pending task and returns its snapshot.
func (m *TaskManager) Create(topicName, slug string) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	task := &Task{
		ID:        uuid.New().String(),
		Topic:     topicName,
		Slug:      slug,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
		Progress:  Progress{CurrentStep: "queued"},
	}
	m.tasks[task.ID] = task
	return *task
}

// Get returns a snapshot of a task.
func (m *TaskManager) Get(id string) (Task, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

// List returns tasks newest first, optionally filtered by status.
func (m *TaskManager) List(status Status, limit int) []Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if status != "" && task.Status != status {
			continue
		}
		out = append(out, *task)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Update applies fn to a task and notifies subscribers. Reported
// progress never moves backwards even if updates race.
func (m *TaskManager) Update(id string, fn func(*Task)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.tasks[id]
	if !ok {
		return false
	}

	before := task.Progress.Percentage
	fn(task)
	if task.Progress.Percentage < before {
		task.Progress.Percentage = before
	}
	task.UpdatedAt = time.Now()

	snapshot := *task
	for _, ch := range m.subs[id] {
		select {
		case ch <- snapshot:
		default:
			if !snapshot.Status.Terminal() {
				// Slow subscriber, drop the intermediate update.
				continue
			}
			// The final snapshot must land: evict the oldest buffered
			// update to make room. The lock keeps this send race-free.
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
	if snapshot.Status.Terminal() {
		for _, ch := range m.subs[id] {
			close(ch)
		}
		delete(m.subs, id)
	}
	return true
}

// Subscribe returns a channel of task snapshots and a cancel func.
// The channel is buffered so the manager never blocks on publishers,
// and is closed by the manager once the task reaches a terminal state.
// Cancel is a no-op after that.
func (m *TaskManager) Subscribe(id string) (<-chan Task, func(), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return nil, nil, false
	}

	ch := make(chan Task, 16)
	m.subs[id] = append(m.subs[id], ch)

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		subs := m.subs[id]
		for i, sub := range subs {
			if sub == ch {
				m.subs[id] = append(subs[:i], subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel, true
}
