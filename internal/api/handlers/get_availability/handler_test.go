package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LoLe05/jarimae-sub001/internal/api/handlers"
	"github.com/LoLe05/jarimae-sub001/internal/domain"
	getAvailability "github.com/LoLe05/jarimae-sub001/internal/usecase/get_availability"
)

type fakeUseCase struct {
	gotReq *getAvailability.Request
	resp   *getAvailability.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/stores/{storeId}/availability", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return router
}

func doRequest(t *testing.T, router *mux.Router, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleSuccess(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailability.Response{
			StoreID:   1,
			Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			PartySize: 2,
			Available: true,
			Slots: []domain.TimeSlot{
				{StartTime: "10:00", DurationMinutes: 60, RemainingCapacity: 10, Available: true},
				{StartTime: "10:30", DurationMinutes: 60, RemainingCapacity: 1, Available: false},
			},
			AvailableSlots: []domain.TimeSlot{
				{StartTime: "10:00", DurationMinutes: 60, RemainingCapacity: 10, Available: true},
			},
			BusinessHour: domain.BusinessHour{DayOfWeek: 1, OpenTime: "10:00", CloseTime: "14:00"},
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/stores/1/availability?date=2025-03-03&partySize=2&preferredTime=10:00")
	require.Equal(t, http.StatusOK, rec.Code)

	// Параметры запроса дошли до use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.StoreID)
	assert.Equal(t, 2, uc.gotReq.PartySize)
	require.NotNil(t, uc.gotReq.PreferredTime)
	assert.Equal(t, "10:00", uc.gotReq.PreferredTime.String())

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-03", body.Date)
	assert.True(t, body.Available)
	assert.Len(t, body.Slots, 2)
	assert.Len(t, body.AvailableSlots, 1)
	assert.Equal(t, "10:00", body.BusinessHour.OpenTime)
}

func TestHandleBadRequest(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	cases := []struct {
		name string
		url  string
	}{
		{"нечисловой storeId", "/api/v1/stores/abc/availability?date=2025-03-03&partySize=2"},
		{"нет даты", "/api/v1/stores/1/availability?partySize=2"},
		{"нет размера компании", "/api/v1/stores/1/availability?date=2025-03-03"},
		{"некорректная дата", "/api/v1/stores/1/availability?date=03.03.2025&partySize=2"},
		{"некорректное желаемое время", "/api/v1/stores/1/availability?date=2025-03-03&partySize=2&preferredTime=6pm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, handlers.CodeInvalidRequest, body.Code)
		})
	}
}

func TestHandleUseCaseErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"заведение не найдено", getAvailability.ErrStoreNotFound, http.StatusNotFound, handlers.CodeStoreNotFound},
		{"заведение не активно", getAvailability.ErrStoreInactive, http.StatusUnprocessableEntity, handlers.CodeStoreInactive},
		{"брони отключены", getAvailability.ErrReservationsNotAccepted, http.StatusUnprocessableEntity, handlers.CodeReservationsNotAccepted},
		{"компания больше вместимости", getAvailability.ErrPartySizeExceedsCapacity, http.StatusUnprocessableEntity, handlers.CodePartySizeExceedsCapacity},
		{"время вне рабочих часов", getAvailability.ErrPreferredTimeOutsideHours, http.StatusUnprocessableEntity, handlers.CodeOutsideBusinessHours},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tc.err})
			rec := doRequest(t, router, "/api/v1/stores/1/availability?date=2025-03-03&partySize=2")
			assert.Equal(t, tc.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantCode, body.Code)
		})
	}
}
