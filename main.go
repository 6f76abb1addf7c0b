package main

import (
	"fmt"

	"github.com/trung2605/bakery-assginment-be/configs"
	"github.com/trung2605/bakery-assginment-be/entity"
	"github.com/trung2605/bakery-assginment-be/middlewares"
	"github.com/trung2605/bakery-assginment-be/pkg/logger"
	"github.com/trung2605/bakery-assginment-be/repository"
	"github.com/trung2605/bakery-assginment-be/routes"
	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg := configs.LoadConfig()
	logger.Initialize(cfg.Env)
	log := logger.L()
	defer log.Sync()

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatal("connect database failed", zap.Error(err))
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedCatalog(db); err != nil {
		log.Fatal("seed catalog failed", zap.Error(err))
	}
	if err := seedAdmin(db, cfg); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}

	// HTTP
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// seedAdmin registers the ADMIN_EMAIL account once and promotes it. Skipped
// when the env vars are absent or the account already exists.
func seedAdmin(db *gorm.DB, cfg *configs.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		logger.L().Info("skip admin seed: ADMIN_EMAIL/ADMIN_PASSWORD not set")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	idSvc := services.NewIDService(repository.NewIDRepository())
	users := services.NewUserService(db, repository.NewUserRepository(db), repository.NewCartRepository(db), idSvc, logger.L())
	admin, _, err := users.Register(&services.RegisterIn{
		FirstName: "Admin",
		LastName:  "Seed",
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
	})
	if err != nil {
		return err
	}
	return db.Model(&entity.User{}).
		Where("user_id = ?", admin.UserID).
		Update("role", entity.RoleAdmin).Error
}
