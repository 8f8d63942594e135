package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"studio/src/config"
	"studio/src/lib"
	"studio/src/services"
	"studio/src/store"
	"studio/src/utils"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAdminEmail    = "admin@studio.test"
	testAdminPassword = "hunter22"
	testDate          = "2025-06-01"
)

type outbox struct {
	mu   sync.Mutex
	sent []*lib.SendMailInput
}

func (o *outbox) Send(_ context.Context, input *lib.SendMailInput) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, input)
	return nil
}

type TestSuite struct {
	suite.Suite
	Cfg    config.App
	Repos  *store.Repositories
	Mail   *outbox
	Router *gin.Engine
	Token  string
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("Error hashing password: %s\n", err.Error())
	}
	s.Cfg = config.App{
		APIEnv:            "local",
		JWTSecret:         "test-secret",
		JWTExpireMin:      60,
		AdminEmail:        testAdminEmail,
		AdminPasswordHash: string(hash),
		MailFrom:          "bookings@studio.test",
		MailFromName:      "Studio",
	}
	token, err := utils.GenerateJWT([]byte(s.Cfg.JWTSecret), testAdminEmail, "admin", time.Hour)
	if err != nil {
		log.Fatalf("Error generating JWT token: %s\n", err.Error())
	}
	s.Token = token
}

func (s *TestSuite) SetupTest() {
	s.Repos = store.NewMemoryRepositories()
	s.Mail = &outbox{}
	app := newApplication(s.Cfg, s.Repos, nil, s.Mail, nil)
	s.Router = buildRouter(app)
}

func (s *TestSuite) request(method, path, body string, admin bool) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) createPackage(duration float64) string {
	w := s.request(http.MethodPost, "/api/packages", fmt.Sprintf(`{"name":"Portrait Session","price":120,"duration":%g}`, duration), true)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	return gjson.Get(w.Body.String(), "id").String()
}

func (s *TestSuite) createWindow(date, start, end string) *httptest.ResponseRecorder {
	return s.request(http.MethodPost, "/api/availability", fmt.Sprintf(`{"date":%q,"startTime":%q,"endTime":%q}`, date, start, end), true)
}

func (s *TestSuite) createBooking(pkgID, name, start, end string) *httptest.ResponseRecorder {
	body := fmt.Sprintf(`{"name":%q,"email":"%s@example.com","phone":"555-0100","date":%q,"startTime":%q,"endTime":%q,"packageId":%q}`,
		name, strings.ToLower(name), testDate, start, end, pkgID)
	return s.request(http.MethodPost, "/api/bookings", body, false)
}

func (s *TestSuite) setStatus(id, status string) *httptest.ResponseRecorder {
	return s.request(http.MethodPatch, "/api/bookings/"+id, fmt.Sprintf(`{"status":%q}`, status), true)
}

func TestAPI(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

func (s *TestSuite) TestHealth() {
	w := s.request(http.MethodGet, "/", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(`"ok"`, w.Body.String())
	s.Equal("nosniff", w.Header().Get("X-Content-Type-Options"))
}

func (s *TestSuite) TestMaintenanceMode() {
	cfg := s.Cfg
	cfg.MaintenanceMode = true
	router := buildRouter(newApplication(cfg, s.Repos, nil, s.Mail, nil))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/packages", nil)
	router.ServeHTTP(w, req)
	s.Equal(http.StatusServiceUnavailable, w.Code)
}

func (s *TestSuite) TestLogin() {
	w := s.request(http.MethodPost, "/api/auth/login", fmt.Sprintf(`{"email":%q,"password":%q}`, testAdminEmail, testAdminPassword), false)
	s.Equal(http.StatusOK, w.Code)
	token := gjson.Get(w.Body.String(), "token").String()
	s.NotEmpty(token)

	w = s.request(http.MethodPost, "/api/auth/login", fmt.Sprintf(`{"email":%q,"password":"nope"}`, testAdminEmail), false)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal("Invalid email or password", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestAdminRoutesRequireToken() {
	s.Equal(http.StatusUnauthorized, s.createWindowAnonymously().Code)
	s.Equal(http.StatusUnauthorized, s.request(http.MethodGet, "/api/bookings", "", false).Code)
	s.Equal(http.StatusUnauthorized, s.request(http.MethodDelete, "/api/packages/x", "", false).Code)
}

func (s *TestSuite) createWindowAnonymously() *httptest.ResponseRecorder {
	return s.request(http.MethodPost, "/api/availability", `{"date":"2025-06-01","startTime":"10:00","endTime":"14:00"}`, false)
}

func (s *TestSuite) TestAvailabilityCrud() {
	w := s.createWindow(testDate, "10:00", "14:00")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	id := gjson.Get(w.Body.String(), "id").String()
	s.True(gjson.Get(w.Body.String(), "isActive").Bool())

	w = s.createWindow(testDate, "13:00", "15:00")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Time slot overlaps with existing availability", gjson.Get(w.Body.String(), "error").String())

	w = s.createWindow(testDate, "14:00", "15:00")
	s.Equal(http.StatusCreated, w.Code)

	w = s.createWindow("2025-02-30", "10:00", "11:00")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodPut, "/api/availability/"+id, `{"date":"2025-06-01","startTime":"09:00","endTime":"13:00","isActive":false}`, true)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("09:00", gjson.Get(w.Body.String(), "startTime").String())
	s.False(gjson.Get(w.Body.String(), "isActive").Bool())

	first := s.request(http.MethodGet, "/api/availability", "", false)
	second := s.request(http.MethodGet, "/api/availability", "", false)
	s.Equal(http.StatusOK, first.Code)
	s.JSONEq(first.Body.String(), second.Body.String())
	s.Equal("09:00", gjson.Get(first.Body.String(), "0.startTime").String())
	s.Equal(int64(2), gjson.Get(first.Body.String(), "#").Int())

	w = s.request(http.MethodDelete, "/api/availability/"+id, "", true)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Availability slot deleted successfully", gjson.Get(w.Body.String(), "message").String())

	w = s.request(http.MethodDelete, "/api/availability/"+id, "", true)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Availability slot not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestBookingLifecycle() {
	pkgID := s.createPackage(1)
	s.Require().Equal(http.StatusCreated, s.createWindow(testDate, "10:00", "14:00").Code)

	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.True(gjson.Get(w.Body.String(), "success").Bool())
	s.Equal(MSG_BOOKING_SUBMITTED, gjson.Get(w.Body.String(), "message").String())
	s.Equal("pending", gjson.Get(w.Body.String(), "booking.status").String())
	a := gjson.Get(w.Body.String(), "booking.id").String()

	w = s.setStatus(a, "approved")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("approved", gjson.Get(w.Body.String(), "booking.status").String())

	w = s.request(http.MethodGet, "/api/bookings/check-availability?date=2025-06-01&startTime=10:30&endTime=11:30", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.False(gjson.Get(w.Body.String(), "available").Bool())
	s.Equal(int64(1), gjson.Get(w.Body.String(), "conflicts").Int())
	s.Equal("Ana", gjson.Get(w.Body.String(), "conflictingBookings.0.customerName").String())

	w = s.createBooking(pkgID, "Ben", "10:30", "11:30")
	s.Equal(http.StatusConflict, w.Code)
	s.Equal("This time slot is no longer available", gjson.Get(w.Body.String(), "error").String())

	w = s.setStatus(a, "cancelled")
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.createBooking(pkgID, "Ben", "10:30", "11:30")
	s.Equal(http.StatusCreated, w.Code)

	list := s.request(http.MethodGet, "/api/bookings", "", true)
	s.Equal(http.StatusOK, list.Code)
	s.Equal(int64(2), gjson.Get(list.Body.String(), "#").Int())
	s.JSONEq(list.Body.String(), s.request(http.MethodGet, "/api/bookings", "", true).Body.String())
}

func (s *TestSuite) TestRepeatedReadsAreStable() {
	pkgID := s.createPackage(1)
	s.Require().Equal(http.StatusCreated, s.createWindow(testDate, "10:00", "14:00").Code)
	s.Require().Equal(http.StatusCreated, s.createWindow("2025-05-31", "09:00", "12:00").Code)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	s.Require().Equal(http.StatusOK, s.setStatus(gjson.Get(w.Body.String(), "booking.id").String(), "approved").Code)
	s.Require().Equal(http.StatusCreated, s.createBooking(pkgID, "Ben", "12:00", "13:00").Code)

	for _, path := range []string{"/api/availability", "/api/bookings", "/api/packages"} {
		first := s.request(http.MethodGet, path, "", true)
		second := s.request(http.MethodGet, path, "", true)
		s.Equal(http.StatusOK, first.Code, path)
		s.Equal(first.Body.String(), second.Body.String(), path)
	}
}

func (s *TestSuite) TestAvailabilityReadThroughRedisIsStable() {
	rdb, mock := redismock.NewClientMock()
	router := buildRouter(newApplication(s.Cfg, s.Repos, services.NewRedisCache(rdb, time.Minute), s.Mail, nil))
	call := func(method, path, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.Token)
		router.ServeHTTP(w, req)
		return w
	}

	mock.ExpectDel(services.AVAILABILITY_CACHE_KEY).SetVal(1)
	s.Require().Equal(http.StatusCreated, call(http.MethodPost, "/api/availability", `{"date":"2025-06-01","startTime":"10:00","endTime":"14:00"}`).Code)

	mock.ExpectGet(services.AVAILABILITY_CACHE_KEY).RedisNil()
	mock.Regexp().ExpectSet(services.AVAILABILITY_CACHE_KEY, `.+`, time.Minute).SetVal("OK")
	first := call(http.MethodGet, "/api/availability", "")
	s.Require().Equal(http.StatusOK, first.Code)

	mock.ExpectGet(services.AVAILABILITY_CACHE_KEY).SetVal(first.Body.String())
	second := call(http.MethodGet, "/api/availability", "")
	s.Equal(http.StatusOK, second.Code)
	s.Equal(first.Body.String(), second.Body.String())
	s.NoError(mock.ExpectationsWereMet())
}

func (s *TestSuite) TestTouchingBookingIsAccepted() {
	pkgID := s.createPackage(1)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	s.Require().Equal(http.StatusCreated, w.Code)
	s.Require().Equal(http.StatusOK, s.setStatus(gjson.Get(w.Body.String(), "booking.id").String(), "approved").Code)

	s.Equal(http.StatusCreated, s.createBooking(pkgID, "Ben", "11:00", "12:00").Code)
}

func (s *TestSuite) TestPendingBookingsDoNotBlock() {
	pkgID := s.createPackage(1)
	s.Require().Equal(http.StatusCreated, s.createBooking(pkgID, "Ana", "10:00", "11:00").Code)
	s.Equal(http.StatusCreated, s.createBooking(pkgID, "Ben", "10:00", "11:00").Code)
}

func (s *TestSuite) TestReopenDoesNotRevalidate() {
	pkgID := s.createPackage(1)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	a := gjson.Get(w.Body.String(), "booking.id").String()
	w = s.createBooking(pkgID, "Ben", "10:30", "11:30")
	b := gjson.Get(w.Body.String(), "booking.id").String()

	s.Require().Equal(http.StatusOK, s.setStatus(a, "approved").Code)
	s.Require().Equal(http.StatusOK, s.setStatus(b, "rejected").Code)

	w = s.setStatus(b, "pending")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("pending", gjson.Get(w.Body.String(), "booking.status").String())

	w = s.setStatus(b, "approved")
	s.Equal(http.StatusConflict, w.Code)
}

func (s *TestSuite) TestIllegalTransition() {
	pkgID := s.createPackage(1)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	id := gjson.Get(w.Body.String(), "booking.id").String()

	w = s.setStatus(id, "cancelled")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Cannot change booking status from pending to cancelled", gjson.Get(w.Body.String(), "error").String())

	w = s.setStatus(id, "archived")
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.setStatus("missing", "approved")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Booking not found", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestBookingValidation() {
	w := s.request(http.MethodPost, "/api/bookings", `{"name":"Ana"}`, false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Missing required fields", gjson.Get(w.Body.String(), "error").String())

	w = s.createBooking("missing", "Ana", "10:00", "11:00")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Package not found", gjson.Get(w.Body.String(), "error").String())

	w = s.request(http.MethodGet, "/api/bookings/check-availability?date=2025-06-01", "", false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Missing parameters", gjson.Get(w.Body.String(), "error").String())

	w = s.request(http.MethodGet, "/api/bookings/check-availability?date=2025-06-01&startTime=9:00&endTime=10:00", "", false)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestMalformedFormatsUseScheduleWording() {
	pkgID := s.createPackage(1)

	w := s.request(http.MethodPost, "/api/bookings", fmt.Sprintf(`{"name":"Ana","email":"ana@example.com","phone":"1","date":"2025-02-30","startTime":"10:00","endTime":"11:00","packageId":%q}`, pkgID), false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid date format. Use YYYY-MM-DD", gjson.Get(w.Body.String(), "error").String())

	w = s.createBooking(pkgID, "Ana", "9:00", "11:00")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid time format. Use HH:MM", gjson.Get(w.Body.String(), "error").String())

	w = s.createWindow(testDate, "10:00", "25:00")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid time format. Use HH:MM", gjson.Get(w.Body.String(), "error").String())

	w = s.request(http.MethodGet, "/api/bookings/check-availability?date=2025-06-01&startTime=9:00&endTime=10:00", "", false)
	s.Equal("Invalid time format. Use HH:MM", gjson.Get(w.Body.String(), "error").String())

	w = s.request(http.MethodPost, "/api/bookings", `{"name":`, false)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid request body", gjson.Get(w.Body.String(), "error").String())
}

func (s *TestSuite) TestSlots() {
	pkgID := s.createPackage(1)
	s.Require().Equal(http.StatusCreated, s.createWindow(testDate, "10:00", "14:00").Code)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	s.Require().Equal(http.StatusOK, s.setStatus(gjson.Get(w.Body.String(), "booking.id").String(), "approved").Code)

	w = s.request(http.MethodGet, "/api/availability/slots?date=2025-06-01&packageId="+pkgID, "", false)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal(int64(3), gjson.Get(w.Body.String(), "#").Int())
	s.Equal("11:00", gjson.Get(w.Body.String(), "0.startTime").String())

	w = s.request(http.MethodGet, "/api/availability/slots?date=2025-06-01&duration=4", "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(int64(0), gjson.Get(w.Body.String(), "#").Int())

	w = s.request(http.MethodGet, "/api/availability/slots?date=2025-06-01", "", false)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *TestSuite) TestNotificationsAreSent() {
	pkgID := s.createPackage(1)
	w := s.createBooking(pkgID, "Ana", "10:00", "11:00")
	id := gjson.Get(w.Body.String(), "booking.id").String()
	s.Len(s.Mail.sent, 2)

	w = s.request(http.MethodPatch, "/api/bookings/"+id, `{"status":"approved","adminNotes":"Bring props"}`, true)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("Bring props", gjson.Get(w.Body.String(), "booking.adminNotes").String())
	s.Require().Len(s.Mail.sent, 3)
	s.Equal("Booking Approved!", s.Mail.sent[2].Subject)

	rows, err := s.Repos.Notifications.ListByBooking(context.Background(), id)
	s.Require().NoError(err)
	s.Len(rows, 3)
}

func (s *TestSuite) TestPackages() {
	id := s.createPackage(1.5)

	w := s.request(http.MethodGet, "/api/packages/"+id, "", false)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("portrait-session", gjson.Get(w.Body.String(), "slug").String())
	s.Equal(testAdminEmail, gjson.Get(w.Body.String(), "createdBy").String())

	w = s.request(http.MethodPut, "/api/packages/"+id, `{"name":"Studio Session","price":90,"duration":2,"isActive":false}`, true)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.Equal("studio-session", gjson.Get(w.Body.String(), "slug").String())

	w = s.request(http.MethodGet, "/api/packages?active=true", "", false)
	s.Equal(int64(0), gjson.Get(w.Body.String(), "#").Int())
	w = s.request(http.MethodGet, "/api/packages", "", false)
	s.Equal(int64(1), gjson.Get(w.Body.String(), "#").Int())

	w = s.request(http.MethodPost, "/api/packages", `{"name":"Broken","duration":0}`, true)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.request(http.MethodDelete, "/api/packages/"+id, "", true)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Package deleted successfully", gjson.Get(w.Body.String(), "message").String())
	s.Equal(http.StatusNotFound, s.request(http.MethodGet, "/api/packages/"+id, "", false).Code)
}
