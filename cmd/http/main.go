package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindfit-service/internal/app/config"
	"mindfit-service/internal/app/delivery/http/middlewares"
	"mindfit-service/internal/app/delivery/http/routers"
	"mindfit-service/internal/app/drivers/database"
	"mindfit-service/internal/app/drivers/logger"
	"mindfit-service/internal/app/drivers/messaging"
	"mindfit-service/internal/app/drivers/storage"
	"mindfit-service/internal/app/services/core/auth"
	"mindfit-service/internal/app/services/core/emergencycontacts"
	"mindfit-service/internal/app/services/core/exercises"
	"mindfit-service/internal/app/services/core/helplines"
	"mindfit-service/internal/app/services/core/moods"
	"mindfit-service/internal/app/services/core/muscles"
	"mindfit-service/internal/app/services/core/penpals"
	"mindfit-service/internal/app/services/core/users"
	"mindfit-service/internal/app/services/core/workouts"
	"mindfit-service/internal/app/services/shared/notifications"
	redisrepo "mindfit-service/internal/app/services/shared/redis"
	sessionsvc "mindfit-service/internal/app/services/shared/session"
	storagesvc "mindfit-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	logger.InitLogrus(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	dbName := driverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(redisClient)
	sessionService := sessionsvc.NewSessionService(redisRepository)
	storageService := storagesvc.NewMinioStorageService(minioClient, driverConfig.Minio.BucketName)

	crisisQueue, err := notifications.NewService(rabbitConn, zapLogger, internalConfig.App.RabbitMQCrisisAlertQueue)
	if err != nil {
		logrus.Fatalf("Failed to set up crisis alert queue: %s", err.Error())
	}

	// Repositories
	userRepository := users.NewUserMongoRepository(mongoClient, dbName)
	muscleRepository := muscles.NewMuscleMongoRepository(mongoClient, dbName)
	exerciseRepository := exercises.NewExerciseMongoRepository(mongoClient, dbName)
	workoutRepository := workouts.NewWorkoutMongoRepository(mongoClient, dbName)
	moodRepository := moods.NewMoodMongoRepository(mongoClient, dbName)
	contactRepository := emergencycontacts.NewEmergencyContactMongoRepository(mongoClient, dbName)
	helplineRepository := helplines.NewHelplineMongoRepository(mongoClient, dbName)
	penpalRepository := penpals.NewPenpalMongoRepository(mongoClient, dbName)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, redisRepository, internalConfig, zapLogger)
	userUsecase := users.NewUserUsecase(userRepository, sessionService, storageService, internalConfig, zapLogger)
	muscleUsecase := muscles.NewMuscleUsecase(muscleRepository, zapLogger)
	exerciseUsecase := exercises.NewExerciseUsecase(exerciseRepository, muscleRepository, zapLogger)
	workoutUsecase := workouts.NewWorkoutUsecase(workoutRepository, exerciseRepository, sessionService, zapLogger)
	moodUsecase := moods.NewMoodUsecase(moodRepository, contactRepository, crisisQueue, sessionService, internalConfig, zapLogger)
	contactUsecase := emergencycontacts.NewEmergencyContactUsecase(contactRepository, sessionService, zapLogger)
	helplineUsecase := helplines.NewHelplineUsecase(helplineRepository, zapLogger)
	penpalUsecase := penpals.NewPenpalUsecase(penpalRepository, userRepository, sessionService, zapLogger)

	controllers := &routers.Controllers{
		Auth:             auth.NewAuthController(zapLogger, authUsecase),
		User:             users.NewUserController(zapLogger, userUsecase, internalConfig),
		Muscle:           muscles.NewMuscleController(zapLogger, muscleUsecase),
		Exercise:         exercises.NewExerciseController(zapLogger, exerciseUsecase),
		Workout:          workouts.NewWorkoutController(zapLogger, workoutUsecase),
		Mood:             moods.NewMoodController(zapLogger, moodUsecase),
		EmergencyContact: emergencycontacts.NewEmergencyContactController(zapLogger, contactUsecase),
		Helpline:         helplines.NewHelplineController(zapLogger, helplineUsecase),
		Penpal:           penpals.NewPenpalController(zapLogger, penpalUsecase),
	}

	worker := notifications.NewWorker(zapLogger, crisisQueue, contactRepository)
	workerStop, err := worker.Start(context.Background())
	if err != nil {
		logrus.Fatalf("Failed to start crisis alert worker: %s", err.Error())
	}

	router := chi.NewRouter()
	m := middlewares.NewMiddlewares(zapLogger, sessionService, internalConfig)
	routers.SetupRoutes(router, m, internalConfig, controllers)

	bootstrap := &config.Bootstrap{
		Router:         router,
		MongoDB:        mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		WorkerStop:     workerStop,
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: router,
	}

	go func() {
		zapLogger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.App.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("http server shutdown failed", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Failed to shut down cleanly: %s", err.Error())
	}
}
