package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tejavira2023/fitverse/internal/models"
	"github.com/tejavira2023/fitverse/internal/services"
)

type stubConsultationService struct {
	booked     *models.Consultation
	bookErr    error
	listed     []models.Consultation
	listErr    error
	cancelled  *models.Consultation
	cancelErr  error
	lastUserID int64
	lastInput  services.BookConsultationInput
	lastID     int64
}

func (s *stubConsultationService) Book(_ context.Context, userID int64, input services.BookConsultationInput) (*models.Consultation, error) {
	s.lastUserID = userID
	s.lastInput = input
	return s.booked, s.bookErr
}

func (s *stubConsultationService) List(_ context.Context, userID int64) ([]models.Consultation, error) {
	s.lastUserID = userID
	return s.listed, s.listErr
}

func (s *stubConsultationService) Cancel(_ context.Context, userID int64, consultationID int64) (*models.Consultation, error) {
	s.lastUserID = userID
	s.lastID = consultationID
	return s.cancelled, s.cancelErr
}

type stubConsultationProfileStore struct {
	profile *models.UserProfile
	err     error
}

func (s *stubConsultationProfileStore) GetByUserID(_ context.Context, _ int64) (*models.UserProfile, error) {
	return s.profile, s.err
}

func newConsultationTestApp(service *stubConsultationService, profiles *stubConsultationProfileStore) *fiber.App {
	handler := NewConsultationHandler(service, services.NewRecommendationService(), profiles)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		return c.Next()
	})
	app.Get("/api/v1/consultants", handler.ListConsultants)
	app.Get("/api/v1/consultants/recommended", handler.RecommendedConsultants)
	app.Get("/api/v1/consultants/:id", handler.GetConsultant)
	app.Post("/api/v1/consultations/book", handler.Book)
	app.Get("/api/v1/consultations", handler.List)
	app.Post("/api/v1/consultations/:id/cancel", handler.Cancel)
	return app
}

func TestListConsultantsReturnsRoster(t *testing.T) {
	app := newConsultationTestApp(&stubConsultationService{}, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/consultants", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Consultants []struct {
			ID string `json:"id"`
		} `json:"consultants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Consultants) != 4 || body.Consultants[0].ID != "c1" {
		t.Fatalf("unexpected roster: %+v", body.Consultants)
	}
}

func TestGetConsultantUnknownIDReturnsNotFound(t *testing.T) {
	app := newConsultationTestApp(&stubConsultationService{}, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/consultants/c99", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRecommendedConsultantsRanksForGoal(t *testing.T) {
	goal := "reduce-stress"
	profiles := &stubConsultationProfileStore{profile: &models.UserProfile{Goal: &goal}}
	app := newConsultationTestApp(&stubConsultationService{}, profiles)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/consultants/recommended?limit=2", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Consultants []services.ConsultantWithScore `json:"consultants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(body.Consultants) != 2 {
		t.Fatalf("expected 2 consultants, got %d", len(body.Consultants))
	}
	if body.Consultants[0].ID != "c3" {
		t.Fatalf("expected meditation specialist first, got %s", body.Consultants[0].ID)
	}
}

func TestBookForwardsParsedSchedule(t *testing.T) {
	scheduledAt := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)
	service := &stubConsultationService{
		booked: &models.Consultation{ID: 7, Reference: "ref-1", UserID: 42, ConsultantID: "c1", ScheduledAt: scheduledAt, Status: "pending"},
	}
	app := newConsultationTestApp(service, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations/book",
		strings.NewReader(`{"consultant_id": "c1", "scheduled_at": "2030-06-01T09:00:00Z", "duration_minutes": 60, "notes": "First session"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if !service.lastInput.ScheduledAt.Equal(scheduledAt) || service.lastInput.ConsultantID != "c1" {
		t.Fatalf("unexpected input: %+v", service.lastInput)
	}
}

func TestBookRejectsMalformedTimestamp(t *testing.T) {
	app := newConsultationTestApp(&stubConsultationService{}, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations/book",
		strings.NewReader(`{"consultant_id": "c1", "scheduled_at": "tomorrow", "duration_minutes": 60, "notes": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestBookMapsConflictToConflictStatus(t *testing.T) {
	service := &stubConsultationService{bookErr: services.ErrConflict}
	app := newConsultationTestApp(service, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations/book",
		strings.NewReader(`{"consultant_id": "c1", "scheduled_at": "2030-06-01T09:00:00Z", "duration_minutes": 60, "notes": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestCancelMapsInvalidTransition(t *testing.T) {
	service := &stubConsultationService{cancelErr: services.ErrInvalidStateTransition}
	app := newConsultationTestApp(service, &stubConsultationProfileStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/consultations/9/cancel", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if service.lastID != 9 {
		t.Fatalf("expected consultation id 9, got %d", service.lastID)
	}
}
