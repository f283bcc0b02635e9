package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mototrackr/internal/adapter/http/handlers/mocks"
	"mototrackr/internal/domain/entities"
	"mototrackr/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTrackHandler_Track(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ITrackUseCase) *gin.Engine {
		r := gin.New()
		r.GET("/v1/track", NewTrackHandler(uc).Track)
		return r
	}

	t.Run("missing lookup key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/track", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("by id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByID(gomock.Any(), "j1").Return(entities.Job{ID: "j1", Status: entities.JobStatusReady}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?id=j1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["view"] != "status" {
			t.Fatalf("expected status view, got %s", w.Body.String())
		}
	})

	t.Run("by plate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByPlate(gomock.Any(), "UBG 999Z").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?plate=UBG%20999Z", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("phone zero matches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByPhone(gomock.Any(), "0700000000").Return([]entities.Job{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?phone=0700000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("phone single match is status view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByPhone(gomock.Any(), "0772123456").Return([]entities.Job{{ID: "j1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?phone=0772123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["view"] != "status" {
			t.Fatalf("expected status view, got %s", w.Body.String())
		}
	})

	t.Run("phone multiple matches is history view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByPhone(gomock.Any(), "0772123456").Return([]entities.Job{
			{ID: "j2", CustomerName: "Okello James", CustomerPhone: "0772123456"},
			{ID: "j1", CustomerName: "Okello James", CustomerPhone: "0772123456"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?phone=0772123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["view"] != "history" {
			t.Fatalf("expected history view, got %s", w.Body.String())
		}
		customer, _ := got["customer"].(map[string]any)
		if customer == nil || customer["name"] != "Okello James" {
			t.Fatalf("expected derived customer in body: %s", w.Body.String())
		}
	})

	t.Run("id takes precedence over phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().TrackByID(gomock.Any(), "j1").Return(entities.Job{ID: "j1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track?id=j1&phone=0772123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestTrackHandler_History(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("single job still renders history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/track/history", NewTrackHandler(uc).History)

		uc.EXPECT().History(gomock.Any(), "0772123456").Return(
			entities.Customer{Name: "Okello James", Phone: "0772123456", JobIDs: []string{"j1"}},
			[]entities.Job{{ID: "j1"}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/history?phone=0772123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["view"] != "history" {
			t.Fatalf("expected history view, got %s", w.Body.String())
		}
	})

	t.Run("no jobs is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITrackUseCase(ctrl)
		r := gin.New()
		r.GET("/v1/track/history", NewTrackHandler(uc).History)

		uc.EXPECT().History(gomock.Any(), "0700000000").Return(entities.Customer{}, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/track/history?phone=0700000000", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapTrackError(t *testing.T) {
	if got := mapTrackError(usecase.ErrInvalidPlate); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTrackError(usecase.ErrInvalidPhone); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapTrackError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapTrackError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
