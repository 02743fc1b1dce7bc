package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/abhisek/courseforge/internal/lesson"
	"github.com/abhisek/courseforge/internal/topic"
)

// RunnerFactory builds a lesson runner wired to a task's progress
// callback. Each generation task gets its own runner.
type RunnerFactory func(onProgress lesson.Progress) (*lesson.Runner, error)

// LessonHandler serves the lesson generation API.
type LessonHandler struct {
	tasks     *TaskManager
	newRunner RunnerFactory
	outputDir string
}

func NewLessonHandler(tasks *TaskManager, newRunner RunnerFactory, outputDir string) *LessonHandler {
	return &LessonHandler{
		tasks:     tasks,
		newRunner: newRunner,
		outputDir: outputDir,
	}
}

type createLessonRequest struct {
	Topic          string  `json:"topic" binding:"required"`
	Difficulty     string  `json:"difficulty"`
	EstimatedHours float64 `json:"estimated_hours"`
	ModuleCount    int     `json:"module_count"`
}

// Create starts a background generation task and returns it with 202.
func (h *LessonHandler) Create(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	difficulty := topic.Difficulty(req.Difficulty)
	if req.Difficulty == "" {
		difficulty = topic.DifficultyBeginner
	}
	hours := req.EstimatedHours
	if hours == 0 {
		hours = 4
	}
	count := req.ModuleCount
	if count == 0 {
		count = 3
	}

	spec, err := topic.NewSpec(req.Topic, difficulty, hours, count)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if validation := topic.Validate(spec); !validation.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic", "details": validation.Errors})
		return
	}

	task := h.tasks.Create(spec.Name, spec.Slug)
	go h.run(task.ID, spec)

	c.JSON(http.StatusAccepted, task)
}

// run drives one generation task to completion in the background.
func (h *LessonHandler) run(taskID string, spec topic.Spec) {
	onProgress := func(stage string, completed, total int) {
		h.tasks.Update(taskID, func(t *Task) {
			t.Status = StatusRunning
			t.Progress.CurrentStep = stage
			t.Progress.ModulesCompleted = completed
			t.Progress.ModulesTotal = total
			if total > 0 {
				// Reserve the last stretch for config files and the
				// quality gate.
				t.Progress.Percentage = float64(completed) / float64(total) * 90
			}
		})
	}

	runner, err := h.newRunner(onProgress)
	if err != nil {
		h.tasks.Update(taskID, func(t *Task) {
			t.Status = StatusFailed
			t.Error = fmt.Sprintf("initialize runner: %v", err)
		})
		return
	}

	h.tasks.Update(taskID, func(t *Task) {
		t.Status = StatusRunning
		t.Progress.CurrentStep = "starting"
	})

	result, err := runner.Generate(context.Background(), &spec, h.outputDir)
	h.tasks.Update(taskID, func(t *Task) {
		t.Result = &result
		t.Progress.Percentage = 100
		if result.Success {
			t.Status = StatusCompleted
			t.Progress.CurrentStep = "done"
			return
		}
		t.Status = StatusFailed
		t.Progress.CurrentStep = "failed"
		t.Error = result.Error
		if t.Error == "" && err != nil {
			t.Error = err.Error()
		}
	})
}

// Get returns one task by ID.
func (h *LessonHandler) Get(c *gin.Context) {
	task, ok := h.tasks.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// List returns tasks, newest first. Supports ?status= and ?limit=.
func (h *LessonHandler) List(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	tasks := h.tasks.List(Status(c.Query("status")), limit)
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "count": len(tasks)})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Watch streams task snapshots over a websocket until the task reaches
// a terminal state or the client disconnects.
func (h *LessonHandler) Watch(c *gin.Context) {
	id := c.Param("id")
	task, ok := h.tasks.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	updates, cancel, ok := h.tasks.Subscribe(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	defer cancel()

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer ws.Close()

	// Current state first so late subscribers see something immediately.
	if err := ws.WriteJSON(task); err != nil {
		return
	}
	if task.Status.Terminal() {
		return
	}

	for snapshot := range updates {
		if err := ws.WriteJSON(snapshot); err != nil {
			return
		}
		if snapshot.Status.Terminal() {
			return
		}
	}
}
