package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/abhisek/courseforge/internal/assembler"
	"github.com/abhisek/courseforge/internal/content"
	"github.com/abhisek/courseforge/internal/lesson"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testHandler(t *testing.T) (*LessonHandler, *assembler.MemStorage) {
	t.Helper()
	storage := assembler.NewMemStorage()
	factory := func(onProgress lesson.Progress) (*lesson.Runner, error) {
		gen, err := content.NewGenerator(nil, nil, content.Options{})
		if err != nil {
			return nil, err
		}
		return lesson.NewRunner(gen, lesson.Options{
			Storage:    storage,
			OnProgress: onProgress,
		}), nil
	}
	return NewLessonHandler(NewTaskManager(), factory, "out"), storage
}

func postLesson(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/lessons", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func waitForTerminal(t *testing.T, router *gin.Engine, id string) Task {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		req := httptest.NewRequest(http.MethodGet, "/api/lessons/"+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("GET task: status %d", w.Code)
		}
		var task Task
		if err := json.Unmarshal(w.Body.Bytes(), &task); err != nil {
			t.Fatalf("decode task: %v", err)
		}
		if task.Status.Terminal() {
			return task
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("task did not finish in time")
	return Task{}
}

func TestCreateLessonRunsToCompletion(t *testing.T) {
	handler, storage := testHandler(t)
	router := NewRouter(handler)

	w := postLesson(t, router, `{"topic": "Data Structures", "module_count": 1}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var created Task
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created task: %v", err)
	}
	if created.Status != StatusPending {
		t.Errorf("created status = %q", created.Status)
	}
	if created.Slug != "data_structures" {
		t.Errorf("slug = %q", created.Slug)
	}

	task := waitForTerminal(t, router, created.ID)
	if task.Status != StatusCompleted {
		t.Fatalf("task failed: %s", task.Error)
	}
	if task.Progress.Percentage != 100 {
		t.Errorf("final percentage = %v", task.Progress.Percentage)
	}
	if task.Result == nil || !task.Result.Success {
		t.Fatal("expected successful lesson result on task")
	}

	if !storage.Exists("out/data_structures") {
		t.Error("lesson directory was not written")
	}
}

func TestCreateLessonRejectsBadRequests(t *testing.T) {
	handler, _ := testHandler(t)
	router := NewRouter(handler)

	cases := []struct {
		name string
		body string
	}{
		{"missing topic", `{}`},
		{"malformed json", `{"topic": `},
		{"bad difficulty", `{"topic": "Graphs", "difficulty": "expert"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postLesson(t, router, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestGetUnknownTask(t *testing.T) {
	handler, _ := testHandler(t)
	router := NewRouter(handler)

	req := httptest.NewRequest(http.MethodGet, "/api/lessons/no-such-task", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestListTasks(t *testing.T) {
	handler, _ := testHandler(t)
	router := NewRouter(handler)

	for _, body := range []string{
		`{"topic": "Recursion", "module_count": 1}`,
		`{"topic": "Sorting", "module_count": 1}`,
	} {
		if w := postLesson(t, router, body); w.Code != http.StatusAccepted {
			t.Fatalf("create: status %d", w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/lessons", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Tasks []Task `json:"tasks"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
}

func TestWatchStreamsUntilTerminal(t *testing.T) {
	handler, _ := testHandler(t)
	router := NewRouter(handler)
	srv := httptest.NewServer(router)
	defer srv.Close()

	w := postLesson(t, router, `{"topic": "Hash Tables", "module_count": 2}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("create: status %d", w.Code)
	}
	var created Task
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created task: %v", err)
	}

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/lessons/" + created.ID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(10 * time.Second))

	var last Task
	for {
		var snapshot Task
		if err := conn.ReadJSON(&snapshot); err != nil {
			t.Fatalf("read snapshot: %v (last status %s)", err, last.Status)
		}
		if snapshot.Progress.Percentage < last.Progress.Percentage {
			t.Errorf("progress went backwards: %v -> %v",
				last.Progress.Percentage, snapshot.Progress.Percentage)
		}
		last = snapshot
		if snapshot.Status.Terminal() {
			break
		}
	}

	if last.Status != StatusCompleted {
		t.Fatalf("final status = %s, error = %s", last.Status, last.Error)
	}
}

func TestTaskManagerMonotonicProgress(t *testing.T) {
	m := NewTaskManager()
	task := m.Create("Graphs", "graphs")

	m.Update(task.ID, func(t *Task) { t.Progress.Percentage = 60 })
	m.Update(task.ID, func(t *Task) { t.Progress.Percentage = 30 })

	got, ok := m.Get(task.ID)
	if !ok {
		t.Fatal("task disappeared")
	}
	if got.Progress.Percentage != 60 {
		t.Errorf("percentage = %v, want 60 (never decreasing)", got.Progress.Percentage)
	}
}

func TestTaskManagerTerminalSnapshotReachesSlowSubscriber(t *testing.T) {
	m := NewTaskManager()
	task := m.Create("Graphs", "graphs")

	updates, cancel, ok := m.Subscribe(task.ID)
	if !ok {
		t.Fatal("subscribe failed")
	}
	defer cancel()

	// Overflow the subscriber buffer without draining it.
	for i := 0; i < 32; i++ {
		pct := float64(i)
		m.Update(task.ID, func(t *Task) {
			t.Status = StatusRunning
			t.Progress.Percentage = pct
		})
	}
	m.Update(task.ID, func(t *Task) { t.Status = StatusCompleted })

	var last Task
	var received bool
	for snapshot := range updates {
		last = snapshot
		received = true
	}
	if !received {
		t.Fatal("no snapshots delivered")
	}
	if !last.Status.Terminal() {
		t.Errorf("last snapshot status = %s, want terminal", last.Status)
	}
}

func TestTaskManagerClosesSubscribersOnTerminal(t *testing.T) {
	m := NewTaskManager()
	task := m.Create("Graphs", "graphs")

	updates, cancel, ok := m.Subscribe(task.ID)
	if !ok {
		t.Fatal("subscribe failed")
	}
	defer cancel()

	m.Update(task.ID, func(t *Task) { t.Status = StatusFailed })

	if snapshot, open := <-updates; !open || !snapshot.Status.Terminal() {
		t.Fatalf("first receive = (%v, %v), want terminal snapshot", snapshot.Status, open)
	}
	if _, open := <-updates; open {
		t.Error("channel still open after terminal update")
	}
}

func TestTaskManagerListFiltersByStatus(t *testing.T) {
	m := NewTaskManager()
	a := m.Create("A Topic", "a_topic")
	m.Create("B Topic", "b_topic")
	m.Update(a.ID, func(t *Task) { t.Status = StatusFailed })

	failed := m.List(StatusFailed, 0)
	if len(failed) != 1 || failed[0].ID != a.ID {
		t.Errorf("failed filter = %v", failed)
	}
	all := m.List("", 0)
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}
