package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"tasky/internal/model"
	"tasky/internal/recurrence"
	"tasky/internal/task"
	"tasky/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubUseCase implements task.UseCase with overridable funcs; unset methods
// return zero values.
type stubUseCase struct {
	createFunc   func(ctx context.Context, input task.CreateTaskInput) (model.Task, error)
	getFunc      func(ctx context.Context, id string) (model.Task, error)
	generateFunc func(ctx context.Context, templateID string, count int) ([]model.Task, error)
	sweepFunc    func(ctx context.Context) (task.SweepOutput, error)
}

func (s *stubUseCase) Create(ctx context.Context, input task.CreateTaskInput) (model.Task, error) {
	if s.createFunc != nil {
		return s.createFunc(ctx, input)
	}
	return model.Task{}, nil
}

func (s *stubUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	if s.getFunc != nil {
		return s.getFunc(ctx, id)
	}
	return model.Task{}, nil
}

func (s *stubUseCase) List(ctx context.Context, input task.ListTasksInput) ([]model.Task, error) {
	return nil, nil
}
func (s *stubUseCase) Delete(ctx context.Context, id string) error { return nil }
func (s *stubUseCase) Complete(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, nil
}
func (s *stubUseCase) AddSubTask(ctx context.Context, taskID, title string) (model.Task, error) {
	return model.Task{}, nil
}
func (s *stubUseCase) SetSubTaskCompletion(ctx context.Context, taskID, subTaskID string, completed bool) (model.Task, error) {
	return model.Task{}, nil
}
func (s *stubUseCase) RemoveSubTask(ctx context.Context, taskID, subTaskID string) (model.Task, error) {
	return model.Task{}, nil
}

func (s *stubUseCase) GenerateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error) {
	if s.generateFunc != nil {
		return s.generateFunc(ctx, templateID, count)
	}
	return nil, nil
}

func (s *stubUseCase) CreateFutureInstances(ctx context.Context, templateID string, count int) ([]model.Task, error) {
	return nil, nil
}

func (s *stubUseCase) ProcessCompletedRecurringTasks(ctx context.Context) (task.SweepOutput, error) {
	if s.sweepFunc != nil {
		return s.sweepFunc(ctx)
	}
	return task.SweepOutput{}, nil
}

func (s *stubUseCase) UpdateRecurringTaskPattern(ctx context.Context, input task.UpdatePatternInput) (model.Task, error) {
	return model.Task{}, nil
}
func (s *stubUseCase) StopRecurringTaskSeries(ctx context.Context, templateID string) (model.Task, error) {
	return model.Task{}, nil
}
func (s *stubUseCase) GetFutureRecurringInstances(ctx context.Context, templateID string) ([]model.Task, error) {
	return nil, nil
}
func (s *stubUseCase) DeleteFutureRecurringInstances(ctx context.Context, templateID string) (int, error) {
	return 0, nil
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	RegisterRoutes(api, New(&mockLogger{}, uc))
	return engine
}

func TestCreateHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		uc := &stubUseCase{
			createFunc: func(ctx context.Context, input task.CreateTaskInput) (model.Task, error) {
				return model.Task{ID: "t1", Title: input.Title, Status: model.StatusPending, Recurrence: input.Recurrence}, nil
			},
		}
		router := newTestRouter(uc)

		body := `{"title":"Water the plants","recurrence":{"type":"daily","interval":1}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		data, ok := resp.Data.(map[string]interface{})
		if !ok || data["id"] != "t1" {
			t.Errorf("unexpected payload: %v", resp.Data)
		}
	})

	t.Run("Rejects Unknown Recurrence Type", func(t *testing.T) {
		router := newTestRouter(&stubUseCase{})

		body := `{"title":"Bad","recurrence":{"type":"hourly"}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 from binding, got %d", w.Code)
		}
	})

	t.Run("Invalid Pattern Maps To 422", func(t *testing.T) {
		uc := &stubUseCase{
			createFunc: func(ctx context.Context, input task.CreateTaskInput) (model.Task, error) {
				return model.Task{}, &recurrence.InvalidPatternError{Reason: "template due date is required for recurring tasks"}
			},
		}
		router := newTestRouter(uc)

		body := `{"title":"Standup","recurrence":{"type":"daily","interval":1}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestDetailHandler(t *testing.T) {
	uc := &stubUseCase{
		getFunc: func(ctx context.Context, id string) (model.Task, error) {
			return model.Task{}, task.ErrTaskNotFound
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/ghost", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestPreviewOccurrencesHandler(t *testing.T) {
	due := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	uc := &stubUseCase{
		generateFunc: func(ctx context.Context, templateID string, count int) ([]model.Task, error) {
			if count != 10 {
				t.Errorf("expected default count 10, got %d", count)
			}
			return []model.Task{{ID: "i1", Title: "Water the plants", DueDate: &due, Status: model.StatusPending}}, nil
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/tpl/occurrences", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["count"] != float64(1) {
		t.Errorf("unexpected payload: %v", resp.Data)
	}
}

func TestSweepHandler(t *testing.T) {
	uc := &stubUseCase{
		sweepFunc: func(ctx context.Context) (task.SweepOutput, error) {
			return task.SweepOutput{Spawned: []model.Task{{ID: "s1"}, {ID: "s2"}}}, nil
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recurring/sweep", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["count"] != float64(2) {
		t.Errorf("unexpected payload: %v", resp.Data)
	}
}
