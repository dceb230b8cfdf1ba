package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"finance_api/domain"
	"finance_api/internal/service/dsn"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Category{}, &domain.Record{}); err != nil {
		return err
	}
	fmt.Println("Database migrated")
	return nil
}

type demoRecord struct {
	userIdx     int
	categoryIdx int
	datetime    string
	amount      string
}

// seed loads the demo data set: six users, six global categories and seven
// records.
func seed(db *gorm.DB) error {
	userNames := []string{"Nazar", "Olena", "Ihor", "Svitlana", "Andriy", "Devushka"}
	categoryNames := []string{"Food & Dining", "Transport", "Utilities", "Entertainment", "Health & Fitness", "Dogs"}
	demo := []demoRecord{
		{0, 2, "2025-10-25T08:30:00", "420.75"},
		{1, 0, "2025-10-25T12:15:30", "158.40"},
		{2, 3, "2025-10-26T19:45:10", "899.99"},
		{3, 1, "2025-10-27T07:10:20", "64.00"},
		{4, 4, "2025-10-27T14:55:05", "315.25"},
		{0, 0, "2025-10-27T18:20:00", "92.30"},
		{5, 5, "2025-10-27T18:20:00", "9999.99"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := make([]domain.User, len(userNames))
		for i, name := range userNames {
			users[i] = domain.User{Name: name}
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		categories := make([]domain.Category, len(categoryNames))
		for i, name := range categoryNames {
			categories[i] = domain.Category{Name: name}
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		for _, d := range demo {
			datetime, err := time.ParseInLocation("2006-01-02T15:04:05", d.datetime, time.UTC)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(d.amount)
			if err != nil {
				return err
			}
			record := domain.Record{
				UserID:     users[d.userIdx].ID,
				CategoryID: categories[d.categoryIdx].ID,
				Datetime:   datetime,
				Amount:     amount,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func main() {
	withSeed := flag.Bool("seed", false, "load demo data after migrating")
	flag.Parse()

	_ = godotenv.Load()
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	if err := migrate(db); err != nil {
		log.Fatal(err)
	}
	if *withSeed {
		if err := seed(db); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Demo data loaded")
	}
}
