package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories use. Row models are private to this package, so the
// seed command and the e2e suite migrate through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&mentorProfileModel{},
		&availabilityPeriodModel{},
		&sessionModel{},
		&reviewModel{},
		&notificationModel{},
		&achievementModel{},
		&conversationModel{},
		&messageModel{},
	)
}
