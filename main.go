package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorhub/config"
	"mentorhub/database"
	availabilityRepo "mentorhub/database/repository/availability"
	mentorRepo "mentorhub/database/repository/mentor"
	reviewRepo "mentorhub/database/repository/review"
	specialtyRepo "mentorhub/database/repository/specialty"
	studentRepo "mentorhub/database/repository/student"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/handlers"
	"mentorhub/routes"
	adminsvc "mentorhub/services/admin"
	authsvc "mentorhub/services/auth"
	availabilitysvc "mentorhub/services/availability"
	mentorsvc "mentorhub/services/mentor"
	reviewsvc "mentorhub/services/review"
	specialtysvc "mentorhub/services/specialty"
	studentsvc "mentorhub/services/student"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	// Repositories.
	users := userRepo.NewMongoUserRepo()
	mentors := mentorRepo.NewMongoMentorRepo()
	students := studentRepo.NewMongoStudentRepo()
	specialties := specialtyRepo.NewMongoSpecialtyRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	slots := availabilityRepo.NewMongoWeeklySlotStore()

	// Services.
	authService := &authsvc.DefaultAuthService{
		Users:    users,
		Students: students,
		Mentors:  mentors,
	}
	availabilityService := &availabilitysvc.DefaultAvailabilityService{
		Slots:    slots,
		Mentors:  mentors,
		MaxWeeks: config.AppConfig.PreviewMaxWeeks,
	}
	mentorService := &mentorsvc.DefaultMentorService{
		Mentors:     mentors,
		Users:       users,
		Specialties: specialties,
		Reviews:     reviews,
		Slots:       slots,
	}
	studentService := &studentsvc.DefaultStudentService{
		Students:    students,
		Users:       users,
		Specialties: specialties,
	}
	specialtyService := &specialtysvc.DefaultSpecialtyService{
		Specialties: specialties,
		Mentors:     mentors,
	}
	reviewService := &reviewsvc.DefaultReviewService{
		Reviews: reviews,
		Mentors: mentors,
		Users:   users,
	}
	adminService := &adminsvc.DefaultAdminService{
		Users:       users,
		Mentors:     mentors,
		Specialties: specialties,
	}

	hb := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(authService),
		Mentor:       handlers.NewMentorHandler(mentorService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Student:      handlers.NewStudentHandler(studentService),
		Specialty:    handlers.NewSpecialtyHandler(specialtyService),
		Review:       handlers.NewReviewHandler(reviewService),
		Admin:        handlers.NewAdminHandler(adminService),
		Upload:       handlers.NewUploadHandler(storageService, users),
		Users:        users,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), utils.ErrorHandler())
	routes.RegisterRoutes(r, hb)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect MongoDB", zap.Error(err))
	}
	logger.Info("Server exited")
}
