package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"utilibook/internal/config"
	"utilibook/internal/database"
	"utilibook/internal/domain"
	"utilibook/internal/middleware"
	"utilibook/internal/modules/auth"
	"utilibook/internal/modules/availability"
	"utilibook/internal/modules/booking"
	"utilibook/internal/modules/catalog"
	"utilibook/internal/modules/holidays"
	"utilibook/internal/modules/notification"
	"utilibook/internal/modules/slots"
	jwtsvc "utilibook/internal/pkg/jwt"
	"utilibook/internal/repository"
)

type E2ETestSuite struct {
	router         *gin.Engine
	db             *gorm.DB
	jwtService     *jwtsvc.Service
	bookingService *booking.Service

	branchID int64
	typeID   int64
	clientID int64
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	// One connection keeps every goroutine on the same in-memory database and
	// serializes the capacity transaction the way Postgres row locks would.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	apptRepo := repository.NewAppointmentRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	typeRepo := repository.NewAppointmentTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	settings := config.NewSettings(settingRepo, &config.RuntimeConfig{DefaultMaxAppointmentsPerDay: 50})

	hub := notification.NewHub()
	sms := notification.NewTwilioSender("", "", "")
	dispatcher := notification.NewDispatcher(notifRepo, clientRepo, sms, hub)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(branchRepo, typeRepo, clientRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	slotService := slots.NewService(slotRepo, branchRepo, typeRepo)
	slotHandler := slots.NewHandler(slotService)

	holidayService := holidays.NewService(holidayRepo, branchRepo)
	holidayHandler := holidays.NewHandler(holidayService)

	availabilityService := availability.NewService(slotRepo, holidayService, apptRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	bookingService := booking.NewService(
		apptRepo, clientRepo, branchRepo, typeRepo, holidayService, settings, dispatcher,
	)
	bookingHandler := booking.NewHandler(bookingService)

	notifService := notification.NewService(notifRepo, clientRepo)
	notifHandler := notification.NewHandler(notifService, hub)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		notifHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1.Group("/public"))

		staff := v1.Group("/")
		staff.Use(middleware.Auth(jwtService))
		{
			bookingHandler.RegisterStaffRoutes(staff)
			slotHandler.RegisterRoutes(staff)
			holidayHandler.RegisterRoutes(staff)

			admin := staff.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				catalogHandler.RegisterAdminRoutes(admin)
				authHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	suite := &E2ETestSuite{
		router:         router,
		db:             db,
		jwtService:     jwtService,
		bookingService: bookingService,
	}
	suite.seed(t)
	return suite
}

func (s *E2ETestSuite) seed(t *testing.T) {
	branch := domain.Branch{Code: "CTR", Name: "Central Office", Active: true}
	require.NoError(t, s.db.Create(&branch).Error)
	s.branchID = branch.ID

	typ := domain.AppointmentType{Name: "Meter installation", Active: true}
	require.NoError(t, s.db.Create(&typ).Error)
	s.typeID = typ.ID

	client := domain.Client{ClientNumber: "CL-000001", FullName: "Sample Client", Phone: "+15550201", Active: true}
	require.NoError(t, s.db.Create(&client).Error)
	s.clientID = client.ID
}

func (s *E2ETestSuite) staffToken(t *testing.T, role domain.Role) string {
	user := domain.StaffUser{
		Email:        fmt.Sprintf("%s-%d@utilibook.local", role, time.Now().UnixNano()),
		PasswordHash: "unused",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, s.db.Create(&user).Error)

	token, err := s.jwtService.GenerateToken(user.ID, string(role))
	require.NoError(t, err)
	return token
}

func (s *E2ETestSuite) request(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, *TestResponse) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	}
	return w, &parsed
}

// nextWeekday returns the next future date falling on the weekday, always at
// least one day out so past-date checks never trip.
func nextWeekday(day time.Weekday) string {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateFormat)
}

func (s *E2ETestSuite) addSlot(t *testing.T, token, at string) {
	w, _ := s.request(t, http.MethodPost, "/api/v1/slots", gin.H{
		"branch_id": s.branchID,
		"time":      at,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func (s *E2ETestSuite) availableTimes(t *testing.T, date string) []string {
	w, resp := s.request(t, http.MethodGet,
		fmt.Sprintf("/api/v1/availability?branch_id=%d&date=%s", s.branchID, date), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	raw, _ := resp.Data["times"].([]interface{})
	times := make([]string, 0, len(raw))
	for _, v := range raw {
		times = append(times, v.(string))
	}
	return times
}

func TestBookingFlow_AvailabilityExcludesAndRestores(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)

	s.addSlot(t, token, "09:00")
	s.addSlot(t, token, "09:30")

	assert.Equal(t, []string{"09:00", "09:30"}, s.availableTimes(t, date))

	// Book 09:30 through the public flow.
	w, resp := s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "09:30",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	number := resp.Data["appointment_number"].(string)
	assert.Regexp(t, `^APT-\d{8}-[0-9A-F]{8}$`, number)

	assert.Equal(t, []string{"09:00"}, s.availableTimes(t, date))

	// Cancelling frees the slot again.
	w, _ = s.request(t, http.MethodPost, "/api/v1/public/appointments/"+number+"/cancel", gin.H{
		"client_number": "CL-000001",
		"reason":        "changed plans",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, []string{"09:00", "09:30"}, s.availableTimes(t, date))
}

func TestBookingFlow_DoubleBookingRejected(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)
	s.addSlot(t, token, "10:00")

	body := gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "10:00",
	}

	w, _ := s.request(t, http.MethodPost, "/api/v1/public/appointments", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, http.MethodPost, "/api/v1/public/appointments", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "SLOT_UNAVAILABLE", resp.Error.Code)
}

func TestBookingFlow_DailyCapacity(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Wednesday)
	s.addSlot(t, token, "09:00")
	s.addSlot(t, token, "09:30")

	require.NoError(t, s.db.Create(&domain.SystemSetting{
		Key:   domain.SettingMaxAppointmentsPerDay,
		Value: "1",
	}).Error)

	w, resp := s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "09:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := int64(resp.Data["id"].(float64))

	// Completing the appointment does not hand its capacity back.
	w, _ = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/complete", id), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, resp = s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "09:30",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DAILY_CAPACITY_EXCEEDED", resp.Error.Code)
}

func TestBookingFlow_SundayAndHoliday(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)

	sunday := nextWeekday(time.Sunday)
	w, resp := s.request(t, http.MethodGet,
		fmt.Sprintf("/api/v1/availability?branch_id=%d&date=%s", s.branchID, sunday), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUNDAY_NOT_AVAILABLE", resp.Data["reason"])

	holidayDate := nextWeekday(time.Thursday)
	w, _ = s.request(t, http.MethodPost, "/api/v1/holidays/national", gin.H{
		"date": holidayDate,
		"name": "Founders Day",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp = s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                holidayDate,
		"time":                "09:00",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "HOLIDAY_NOT_AVAILABLE", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Founders Day")
}

func TestBookingFlow_LifecycleTransitions(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)
	s.addSlot(t, token, "11:00")

	w, resp := s.request(t, http.MethodPost, "/api/v1/appointments", gin.H{
		"client_id":           s.clientID,
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "11:00",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := int64(resp.Data["id"].(float64))

	// Complete, then every further transition conflicts.
	w, resp = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/complete", id), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "completed", resp.Data["status"])
	assert.NotNil(t, resp.Data["completed_date"])

	var before domain.Appointment
	require.NoError(t, s.db.First(&before, id).Error)

	w, resp = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/complete", id), nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_COMPLETED", resp.Error.Code)

	w, resp = s.request(t, http.MethodPost, fmt.Sprintf("/api/v1/appointments/%d/cancel", id), gin.H{
		"reason": "too late",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CANNOT_CANCEL_COMPLETED", resp.Error.Code)

	// Rejected transitions leave the row untouched.
	var after domain.Appointment
	require.NoError(t, s.db.First(&after, id).Error)
	assert.True(t, after.UpdatedAt.Equal(before.UpdatedAt), "rejected transitions must not bump updated_at")
	assert.Equal(t, before.Status, after.Status)

	// Logical delete works regardless of status, once.
	w, _ = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/appointments/%d", id), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodDelete, fmt.Sprintf("/api/v1/appointments/%d", id), nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_DELETED", resp.Error.Code)
}

func TestBookingFlow_VerifyQRCheck(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)
	s.addSlot(t, token, "14:00")

	w, resp := s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "14:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	number := resp.Data["appointment_number"].(string)

	w, _ = s.request(t, http.MethodGet,
		"/api/v1/public/appointments/verify?number="+number+"&client_number=CL-000001", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet,
		"/api/v1/public/appointments/verify?number="+number+"&client_number=CL-999999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "VERIFICATION_FAILED", resp.Error.Code)
}

func TestBookingFlow_NotificationFeed(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)
	s.addSlot(t, token, "15:00")

	w, _ := s.request(t, http.MethodPost, "/api/v1/public/appointments", gin.H{
		"client_number":       "CL-000001",
		"branch_id":           s.branchID,
		"appointment_type_id": s.typeID,
		"date":                date,
		"time":                "15:00",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, http.MethodGet, "/api/v1/notifications?client_number=CL-000001", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), resp.Data["unread_count"])

	list := resp.Data["notifications"].([]interface{})
	require.Len(t, list, 1)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "appointment_confirmed", first["type"])

	w, _ = s.request(t, http.MethodPatch, "/api/v1/notifications/read-all?client_number=CL-000001", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/v1/notifications?client_number=CL-000001", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), resp.Data["unread_count"])
}

func TestBookingFlow_StaffAuthRequired(t *testing.T) {
	s := setupTestSuite(t)

	w, resp := s.request(t, http.MethodPost, "/api/v1/slots", gin.H{
		"branch_id": s.branchID,
		"time":      "09:00",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)

	// Staff role cannot reach admin endpoints.
	staff := s.staffToken(t, domain.RoleStaff)
	w, resp = s.request(t, http.MethodPost, "/api/v1/admin/branches", gin.H{
		"code": "NRT",
		"name": "North Office",
	}, staff)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	admin := s.staffToken(t, domain.RoleAdmin)
	w, _ = s.request(t, http.MethodPost, "/api/v1/admin/branches", gin.H{
		"code": "NRT",
		"name": "North Office",
	}, admin)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestBookingFlow_ConcurrentSchedulesOneWinner(t *testing.T) {
	s := setupTestSuite(t)
	token := s.staffToken(t, domain.RoleStaff)
	date := nextWeekday(time.Tuesday)
	s.addSlot(t, token, "16:00")

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.bookingService.Schedule(t.Context(), booking.ScheduleRequest{
				ClientID:          s.clientID,
				BranchID:          s.branchID,
				AppointmentTypeID: s.typeID,
				Date:              date,
				Time:              "16:00",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, booking.ErrSlotUnavailable)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent schedule must win")

	var count int64
	require.NoError(t, s.db.Model(&domain.Appointment{}).
		Where("branch_id = ? AND date = ? AND time = ?", s.branchID, date, "16:00").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
