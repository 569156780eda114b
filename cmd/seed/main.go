package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"mentorhub/internal/database"
	"mentorhub/internal/domain"
	"mentorhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "mentorhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM messages")
	db.Exec("DELETE FROM conversations")
	db.Exec("DELETE FROM achievements")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM mentoring_sessions")
	db.Exec("DELETE FROM availability_periods")
	db.Exec("DELETE FROM mentor_profiles")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	mentorRepo := repository.NewMentorRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)

	log.Println("Creating mentees...")
	menteeEmails := []string{"alice@example.com", "bekzat@example.com", "dina@example.com"}
	for i, email := range menteeEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("mentee123"), bcrypt.DefaultCost)
		mentee := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleMentee,
			Name:         fmt.Sprintf("Mentee %d", i+1),
		}
		if err := userRepo.Create(ctx, &mentee); err != nil {
			log.Fatal("seed mentee:", err)
		}
	}

	log.Println("Creating mentors...")
	mentors := []struct {
		email     string
		name      string
		title     string
		company   string
		expertise []string
	}{
		{"dana@example.com", "Dana Mentor", "Staff Engineer", "Acme", []string{"go", "distributed systems"}},
		{"erik@example.com", "Erik Mentor", "Engineering Manager", "Globex", []string{"leadership", "career"}},
		{"gulnaz@example.com", "Gulnaz Mentor", "Product Designer", "Initech", []string{"design", "ux"}},
	}

	for _, m := range mentors {
		hash, _ := bcrypt.GenerateFromPassword([]byte("mentor123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        m.email,
			PasswordHash: string(hash),
			Role:         domain.RoleMentor,
			Name:         m.name,
		}
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatal("seed mentor user:", err)
		}

		profile := domain.MentorProfile{
			UserID:    user.ID,
			Name:      m.name,
			Title:     m.title,
			Company:   m.company,
			Expertise: m.expertise,
			Email:     m.email,
			Bio:       fmt.Sprintf("%s at %s, happy to help with %s.", m.title, m.company, m.expertise[0]),
		}
		if err := mentorRepo.Create(ctx, &profile); err != nil {
			log.Fatal("seed mentor profile:", err)
		}

		// a week of one-hour morning slots per mentor
		base := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
		for day := 0; day < 7; day++ {
			start := base.AddDate(0, 0, day).Add(9 * time.Hour)
			period := domain.AvailabilityPeriod{
				MentorID:  profile.ID,
				StartTime: start,
				EndTime:   start.Add(time.Hour),
				Status:    domain.PeriodAvailable,
			}
			if err := availabilityRepo.Create(ctx, &period); err != nil {
				log.Fatal("seed availability:", err)
			}
		}
	}

	log.Println("Seed complete.")
	log.Println("Mentees: alice@example.com / mentee123 (and friends)")
	log.Println("Mentors: dana@example.com / mentor123 (and friends)")
}
