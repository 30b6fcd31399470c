package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/tyforge/launchpad-backend/config"
	"github.com/tyforge/launchpad-backend/infra/queue"
	"github.com/tyforge/launchpad-backend/internal/api/rest/handlers"
	"github.com/tyforge/launchpad-backend/internal/clients/aigen"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/repository"
	"github.com/tyforge/launchpad-backend/internal/services"
	"github.com/tyforge/launchpad-backend/pkg/storage"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxFileSize) + 1024*1024,
	})

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION + SEED (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260901

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Plan{},
		&domain.Order{},
		&domain.Project{},
		&domain.Synopsis{},
		&domain.Meeting{},
		&domain.AdminRequest{},
		&domain.IdeaSubmission{},
		&domain.ApprovedIdeaSubmission{},
		&domain.IdeaGenerationHistory{},
		&domain.ChatbotHistory{},
		&domain.ActivityLog{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	authHelper := helper.SetupAuth(cfg.AccessSecret, cfg.TokenTTL)

	// ---------- Repositories ----------
	userRepo := repository.NewUserRepository(db)
	planRepo := repository.NewPlanRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	synopsisRepo := repository.NewSynopsisRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	requestRepo := repository.NewAdminRequestRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	seedPlans(planRepo)
	seedAdmin(userRepo, authHelper, cfg)

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	files := storage.NewDiskStore(cfg.UploadDir, cfg.MaxFileSize, cfg.AllowedExtensions)
	xai := aigen.Provider{
		Name:    "xai",
		BaseURL: "https://api.x.ai/v1",
		Model:   cfg.XAIModel,
		APIKey:  cfg.XAIAPIKey,
	}
	groq := aigen.Provider{
		Name:    "groq",
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   cfg.GroqModel,
		APIKey:  cfg.GroqAPIKey,
	}
	generator := aigen.New(xai, groq)
	// the chatbot prefers groq and falls back to xai
	chatGenerator := aigen.New(groq, xai)

	// ---------- Services ----------
	activitySvc := services.NewActivityService(activityRepo, kafkaProducer)
	userSvc := services.NewUserService(userRepo, planRepo, orderRepo, authHelper)
	planSvc := services.NewPlanService(planRepo)
	orderSvc := services.NewOrderService(orderRepo, planRepo, files)
	synopsisSvc := services.NewSynopsisService(synopsisRepo, userRepo, projectRepo, files)
	projectSvc := services.NewProjectService(projectRepo, userRepo, orderRepo, files)
	meetingSvc := services.NewMeetingService(meetingRepo)
	adminSvc := services.NewAdminService(requestRepo, userRepo, orderRepo, projectRepo, synopsisRepo)
	ideaSvc := services.NewIdeaService(ideaRepo, generator, chatGenerator, cfg.IdeaQuota)
	blackbookSvc := services.NewBlackbookService(files)

	// ---------- Handlers ----------
	handlers.NewAuthHandler(userSvc, activitySvc, authHelper).SetupRoutes(app)
	handlers.NewUserHandler(userSvc, activitySvc, authHelper).SetupRoutes(app)
	handlers.NewPlanHandler(planSvc).SetupRoutes(app)
	handlers.NewOrderHandler(orderSvc, userSvc, activitySvc, authHelper, cfg.MaxFileSize).SetupRoutes(app)
	handlers.NewSynopsisHandler(synopsisSvc, userSvc, activitySvc, authHelper, cfg.MaxFileSize).SetupRoutes(app)
	handlers.NewProjectHandler(projectSvc, userSvc, activitySvc, authHelper, cfg.MaxFileSize).SetupRoutes(app)
	handlers.NewMeetingHandler(meetingSvc, userSvc, authHelper).SetupRoutes(app)
	handlers.NewAdminHandler(adminSvc, userSvc, activitySvc, authHelper).SetupRoutes(app)
	handlers.NewIdeaHandler(ideaSvc, userSvc, activitySvc, authHelper).SetupRoutes(app)
	handlers.NewBlackbookHandler(blackbookSvc, userSvc, activitySvc, authHelper, cfg.MaxFileSize).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}

// seedPlans keeps the three catalog plans up to date; ids are stable so
// existing orders keep pointing at them.
func seedPlans(repo repository.PlanRepository) {
	plans := []domain.Plan{
		{
			ID:           "basic_plan",
			Name:         "Basic",
			Description:  "Project idea and synopsis support",
			Price:        5000,
			Features:     "Idea generation,Synopsis review,Email support",
			MaxProjects:  1,
			SupportLevel: "Basic",
		},
		{
			ID:           "standard_plan",
			Name:         "Standard",
			Description:  "Full project with guidance meetings",
			Price:        12000,
			Features:     "Idea generation,Synopsis review,Complete project,2 meetings",
			MaxProjects:  1,
			SupportLevel: "Standard",
		},
		{
			ID:           "premium_plan",
			Name:         "Premium",
			Description:  "Full project, blog and priority support",
			Price:        25000,
			Features:     "Idea generation,Synopsis review,Complete project,Unlimited meetings,Blog article",
			BlogIncluded: true,
			MaxProjects:  2,
			SupportLevel: "Priority",
		},
	}

	for i := range plans {
		if err := repo.UpsertPlan(&plans[i]); err != nil {
			log.Printf("plan seed error (%s): %v", plans[i].ID, err)
		}
	}
}

// seedAdmin bootstraps the first admin account from the environment. If the
// account already exists it is left untouched.
func seedAdmin(repo repository.UserRepository, auth helper.Auth, cfg config.Config) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("admin bootstrap skipped: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return
	}

	if _, err := repo.FindUserByEmail(cfg.AdminEmail); err == nil {
		return
	}

	hashed, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Printf("admin bootstrap error: %v", err)
		return
	}

	_, err = repo.CreateUser(&domain.User{
		Email:               cfg.AdminEmail,
		PasswordHash:        hashed,
		Name:                "Administrator",
		IsAdmin:             true,
		SignupStep:          domain.StepCompleted,
		OnboardingCompleted: true,
	})
	if err != nil {
		log.Printf("admin bootstrap error: %v", err)
		return
	}
	log.Println("admin account bootstrapped")
}
