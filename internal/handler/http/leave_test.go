package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly-hq/attendly-backend-go/internal/config"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/user"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
)

const (
	testJWTSecret  = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

// fakeLeaveService returns canned results so router behavior can be tested
// without a database.
type fakeLeaveService struct {
	submitResp leave.SubmitLeaveResponse
	submitErr  error
	decideResp leave.LeaveResponse
	decideErr  error
	listResp   []leave.LeaveResponse

	gotSubmit *leave.SubmitLeaveRequest
	gotList   *leave.Filter
}

func (f *fakeLeaveService) Submit(_ context.Context, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
	f.gotSubmit = &req
	return f.submitResp, f.submitErr
}

func (f *fakeLeaveService) Decide(_ context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return f.decideResp, f.decideErr
}

func (f *fakeLeaveService) List(_ context.Context, filter leave.Filter) ([]leave.LeaveResponse, error) {
	f.gotList = &filter
	return f.listResp, nil
}

func newTestRouter(t *testing.T, leaveSvc leave.LeaveService) (http.Handler, jwt.Service) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.FrontendURL = "http://localhost:3000"

	jwtService := jwt.NewJWTService(testJWTSecret, testAccessExp, testRefreshExp)

	// Routes under test only exercise the leave handler; the rest are wired
	// with nil services so route registration works.
	handlers := Handlers{
		Auth:       NewAuthHandler(jwtService, nil),
		Attendance: NewAttendanceHandler(nil),
		Leave:      NewLeaveHandler(leaveSvc),
		Permission: NewPermissionHandler(nil),
		Employee:   NewEmployeeHandler(nil, nil),
		Dashboard:  NewDashboardHandler(nil),
	}
	return NewRouter(cfg, jwtService, handlers), jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, employeeID *string, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", "test@example.com", employeeID, role)
	require.NoError(t, err)
	return token
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestSubmitLeaveRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t, &fakeLeaveService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSubmitLeave(t *testing.T) {
	svc := &fakeLeaveService{
		submitResp: leave.SubmitLeaveResponse{
			LeaveRequest:  leave.LeaveResponse{ID: "lr-1", Status: "PENDING", TotalDays: 2},
			RemainingDays: 2,
		},
	}
	router, jwtService := newTestRouter(t, svc)

	employeeID := "emp-1"
	body := `{"from_date":"2025-03-10","to_date":"2025-03-11","reason":"family function"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, &employeeID, user.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)

	// The employee identity must come from the token, not the body.
	require.NotNil(t, svc.gotSubmit)
	assert.Equal(t, "emp-1", svc.gotSubmit.EmployeeID)
}

func TestSubmitLeaveOverCap(t *testing.T) {
	svc := &fakeLeaveService{
		submitErr: &leave.LimitExceededError{MaxPerMonth: 4, RemainingDays: 2},
	}
	router, jwtService := newTestRouter(t, svc)

	employeeID := "emp-1"
	body := `{"from_date":"2025-03-17","to_date":"2025-03-19","reason":"trip"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, &employeeID, user.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Message, "2 days remaining")
}

func TestSubmitLeaveValidation(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeLeaveService{})

	employeeID := "emp-1"
	body := `{"from_date":"17-03-2025","to_date":"2025-03-19","reason":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leaves", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, &employeeID, user.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Contains(t, envelope.Error.Details, "from_date")
	assert.Contains(t, envelope.Error.Details, "reason")
}

func TestDecideLeaveAdminOnly(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeLeaveService{})

	employeeID := "emp-1"
	body := `{"status":"APPROVED"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/leaves/lr-1/decision", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, &employeeID, user.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDecideLeave(t *testing.T) {
	svc := &fakeLeaveService{
		decideResp: leave.LeaveResponse{ID: "lr-1", Status: "APPROVED"},
	}
	router, jwtService := newTestRouter(t, svc)

	body := `{"status":"APPROVED"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/leaves/lr-1/decision", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, nil, user.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestDecideLeaveAlreadyProcessed(t *testing.T) {
	svc := &fakeLeaveService{decideErr: leave.ErrLeaveAlreadyProcessed}
	router, jwtService := newTestRouter(t, svc)

	body := `{"status":"REJECTED"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/leaves/lr-1/decision", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, nil, user.RoleAdmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListLeavesScopedToEmployee(t *testing.T) {
	svc := &fakeLeaveService{}
	router, jwtService := newTestRouter(t, svc)

	employeeID := "emp-1"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves?employee_id=emp-9", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, &employeeID, user.RoleEmployee))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	// Non-admins cannot read other employees' requests.
	require.NotNil(t, svc.gotList)
	require.NotNil(t, svc.gotList.EmployeeID)
	assert.Equal(t, "emp-1", *svc.gotList.EmployeeID)
}
