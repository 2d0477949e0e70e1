package database

import (
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"leaderpath_backend/internal/config"
	"leaderpath_backend/internal/model"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
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
		Logger: logger.Default.LogMode(logger.Info),
		// 把驱动的 1062 等错误翻译成 gorm.ErrDuplicatedKey，积分幂等写入依赖这一点
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		err = db.AutoMigrate(
			&model.Organization{},
			&model.Team{},
			&model.User{},
			&model.LearningPath{},
			&model.LearningPathItem{},
			&model.VideoProgress{},
			&model.WorksheetSubmission{},
			&model.Checkin{},
			&model.BoldAction{},
			&model.PointsEntry{},
			&model.StreakRecord{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")

		// 默认组织，首次启动后可通过管理接口改名
		var count int64
		db.Model(&model.Organization{}).Count(&count)
		if count == 0 {
			db.Create(&model.Organization{
				Name:     "默认组织",
				TenantID: 1,
			})
		}
	}

	return db, nil
}
