package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "mentordash/internal/errors"
	"mentordash/internal/models"
	"mentordash/internal/pagination"
	"mentordash/internal/services"
)

// --- mock habit service ---

type mockHabitService struct {
	createHabitFn   func(userID, name string) (*models.Habit, error)
	getUserHabitsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Habit], error)
	getHabitByIDFn  func(userID, habitID string) (*models.Habit, error)
	renameHabitFn   func(userID, habitID, name string) (*models.Habit, error)
	checkInFn       func(userID, habitID string, now time.Time) (*models.Habit, error)
	deleteHabitFn   func(userID, habitID string) error
}

func (m *mockHabitService) CreateHabit(userID, name string) (*models.Habit, error) {
	if m.createHabitFn != nil {
		return m.createHabitFn(userID, name)
	}
	return &models.Habit{}, nil
}

func (m *mockHabitService) GetUserHabits(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Habit], error) {
	if m.getUserHabitsFn != nil {
		return m.getUserHabitsFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Habit{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockHabitService) GetHabitByID(userID, habitID string) (*models.Habit, error) {
	if m.getHabitByIDFn != nil {
		return m.getHabitByIDFn(userID, habitID)
	}
	return &models.Habit{}, nil
}

func (m *mockHabitService) RenameHabit(userID, habitID, name string) (*models.Habit, error) {
	if m.renameHabitFn != nil {
		return m.renameHabitFn(userID, habitID, name)
	}
	return &models.Habit{}, nil
}

func (m *mockHabitService) CheckIn(userID, habitID string, now time.Time) (*models.Habit, error) {
	if m.checkInFn != nil {
		return m.checkInFn(userID, habitID, now)
	}
	return &models.Habit{}, nil
}

func (m *mockHabitService) DeleteHabit(userID, habitID string) error {
	if m.deleteHabitFn != nil {
		return m.deleteHabitFn(userID, habitID)
	}
	return nil
}

var _ services.HabitServicer = (*mockHabitService)(nil)

const testHabitID = "0190a6be-2222-7abc-9d3e-1a2b3c4d5e6f"

func setupHabitRouter(handler *HabitHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/habits", handler.CreateHabit)
	auth.GET("/habits", handler.GetHabits)
	auth.POST("/habits/:id/check", handler.CheckIn)
	auth.PUT("/habits/:id", handler.RenameHabit)
	auth.DELETE("/habits/:id", handler.DeleteHabit)
	return r
}

func TestHabitHandler_CreateHabit(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockHabitService{
			createHabitFn: func(userID, name string) (*models.Habit, error) {
				return &models.Habit{UserID: userID, Name: name}, nil
			},
		}
		handler := NewHabitHandler(svc)
		r := setupHabitRouter(handler)

		rec := doRequest(r, "POST", "/habits", `{"name":"Morning workout"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		habit := result["habit"].(map[string]interface{})
		if habit["name"] != "Morning workout" {
			t.Errorf("expected Morning workout, got %v", habit["name"])
		}
	})

	t.Run("returns 400 on missing name", func(t *testing.T) {
		handler := NewHabitHandler(&mockHabitService{})
		r := setupHabitRouter(handler)

		rec := doRequest(r, "POST", "/habits", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestHabitHandler_CheckIn(t *testing.T) {
	t.Run("returns 200 with updated streak", func(t *testing.T) {
		svc := &mockHabitService{
			checkInFn: func(userID, habitID string, _ time.Time) (*models.Habit, error) {
				return &models.Habit{UserID: userID, Streak: 6, Checked: true}, nil
			},
		}
		handler := NewHabitHandler(svc)
		r := setupHabitRouter(handler)

		rec := doRequest(r, "POST", "/habits/"+testHabitID+"/check", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		habit := result["habit"].(map[string]interface{})
		if habit["streak"].(float64) != 6 {
			t.Errorf("expected streak 6, got %v", habit["streak"])
		}
		if habit["checked"] != true {
			t.Errorf("expected checked true, got %v", habit["checked"])
		}
	})

	t.Run("returns 404 on unknown habit", func(t *testing.T) {
		svc := &mockHabitService{
			checkInFn: func(_, _ string, _ time.Time) (*models.Habit, error) {
				return nil, apperrors.ErrHabitNotFound
			},
		}
		handler := NewHabitHandler(svc)
		r := setupHabitRouter(handler)

		rec := doRequest(r, "POST", "/habits/"+testHabitID+"/check", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "HABIT_NOT_FOUND")
	})

	t.Run("returns 400 on malformed id", func(t *testing.T) {
		handler := NewHabitHandler(&mockHabitService{})
		r := setupHabitRouter(handler)

		rec := doRequest(r, "POST", "/habits/not-a-uuid/check", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestHabitHandler_DeleteHabit(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewHabitHandler(&mockHabitService{})
		r := setupHabitRouter(handler)

		rec := doRequest(r, "DELETE", "/habits/"+testHabitID, "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown habit", func(t *testing.T) {
		svc := &mockHabitService{
			deleteHabitFn: func(_, _ string) error {
				return apperrors.ErrHabitNotFound
			},
		}
		handler := NewHabitHandler(svc)
		r := setupHabitRouter(handler)

		rec := doRequest(r, "DELETE", "/habits/"+testHabitID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
