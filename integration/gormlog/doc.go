// Package gormlog adapts a logger.Logger to gorm's logger.Interface.
//
//	db, err := gorm.Open(dialector, &gorm.Config{
//		Logger: gormlog.New(log.Named("gorm")),
//	})
package gormlog
