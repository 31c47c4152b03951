package database

import (
	"fmt"
	"log"

	"quiz_portal_backend/internal/config"
	"quiz_portal_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.QuizSet{},
		&model.Question{},
		&model.QuizAttempt{},
		&model.AttemptAnswer{},
		&model.QuizResult{},
		&model.Feedback{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")
	return nil
}

// SeedAdmin creates the bootstrap admin account if no admin exists yet,
// so quiz sets can be authored before any registration has happened.
func SeedAdmin(db *gorm.DB, seed *config.SeedConfig) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("role = ?", model.Admin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := seed.AdminName
	if name == "" {
		name = "admin"
	}

	admin := &model.User{
		Name:     name,
		Email:    seed.AdminEmail,
		Password: string(hashed),
		Role:     model.Admin,
	}
	return db.Create(admin).Error
}
