package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"utilibook/internal/config"
	"utilibook/internal/database"
	"utilibook/internal/middleware"
	"utilibook/internal/modules/auth"
	"utilibook/internal/modules/availability"
	"utilibook/internal/modules/booking"
	"utilibook/internal/modules/catalog"
	"utilibook/internal/modules/holidays"
	"utilibook/internal/modules/notification"
	"utilibook/internal/modules/slots"
	jwtsvc "utilibook/internal/pkg/jwt"
	"utilibook/internal/reminder"
	"utilibook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	apptRepo := repository.NewAppointmentRepository(db)
	slotRepo := repository.NewTimeSlotRepository(db)
	holidayRepo := repository.NewHolidayRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	typeRepo := repository.NewAppointmentTypeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	settings := config.NewSettings(settingRepo, cfg)

	hub := notification.NewHub()
	defer hub.Close()
	sms := notification.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
	dispatcher := notification.NewDispatcher(notifRepo, clientRepo, sms, hub)

	authService := auth.NewService(userRepo, j)
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
		apptRepo,
		clientRepo,
		branchRepo,
		typeRepo,
		holidayService,
		settings,
		dispatcher,
	)
	bookingHandler := booking.NewHandler(bookingService)

	notifService := notification.NewService(notifRepo, clientRepo)
	notifHandler := notification.NewHandler(notifService, hub)

	reminders := reminder.NewScheduler(apptRepo, dispatcher, cfg.ReminderCronSpec)
	if err := reminders.Start(); err != nil {
		log.Fatal(err)
	}
	defer reminders.Stop()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)
		notifHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1.Group("/public"))

		// staff back office
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j))
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

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
