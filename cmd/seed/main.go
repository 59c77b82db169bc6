package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"campusrent/internal/database"
	"campusrent/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("campusrent.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM rentals")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	ownerHash, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := domain.User{
		Email:        "owner@campusrent.dev",
		PasswordHash: string(ownerHash),
		Role:         domain.RoleOwner,
		Name:         "Paula Proprietária",
		Phone:        "+55 21 99999-0001",
	}
	if err := db.Create(&owner).Error; err != nil {
		log.Fatal(err)
	}

	studentHash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
	students := make([]domain.User, 0, 3)
	for i := 1; i <= 3; i++ {
		s := domain.User{
			Email:        fmt.Sprintf("student%d@campusrent.dev", i),
			PasswordHash: string(studentHash),
			Role:         domain.RoleStudent,
			Name:         fmt.Sprintf("Student %d", i),
		}
		if err := db.Create(&s).Error; err != nil {
			log.Fatal(err)
		}
		students = append(students, s)
	}

	log.Println("Creating listings...")

	types := []domain.ListingType{domain.TypeHouse, domain.TypeApartment, domain.TypeStudio}
	titles := []string{
		"Cozy studio near the main gate",
		"Two-bedroom apartment with balcony",
		"House with garden and garage",
		"Bright kitnet five minutes from campus",
		"Quiet apartment on a tree-lined street",
	}

	for i := 0; i < 25; i++ {
		l := domain.Listing{
			OwnerID:             owner.ID,
			Title:               titles[i%len(titles)],
			Description:         "Seeded listing for local development.",
			Type:                types[i%len(types)],
			Price:               600 + float64(rand.Intn(1400)),
			Area:                20 + float64(rand.Intn(120)),
			Bedrooms:            1 + rand.Intn(3),
			Bathrooms:           1 + rand.Intn(2),
			Furnished:           i%2 == 0,
			PetsAllowed:         i%3 == 0,
			Garage:              i%4 == 0,
			Address:             fmt.Sprintf("Rua Universitária %d, Teresópolis", 100+i),
			Latitude:            -22.41 + rand.Float64()*0.02,
			Longitude:           -42.97 + rand.Float64()*0.02,
			DistanceCampusMain:  200 + float64(rand.Intn(3000)),
			DistanceCampusNorth: 400 + float64(rand.Intn(4000)),
			Status:              domain.ListingAvailable,
			CreatedAt:           time.Now().Add(-time.Duration(i) * 24 * time.Hour),
		}
		if err := db.Create(&l).Error; err != nil {
			log.Fatal(err)
		}

		// a few favorites to make the favorites view non-empty
		if i%5 == 0 {
			db.Create(&domain.Favorite{
				UserID:    students[i%len(students)].ID,
				ListingID: l.ID,
			})
		}
	}

	log.Println("Seed complete.")
}
