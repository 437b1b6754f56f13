package main

import (
	"fmt"
	"log"
	"time"

	"concert-ticketing-platform/internal/config"
	"concert-ticketing-platform/internal/database"
	"concert-ticketing-platform/internal/models"
	"concert-ticketing-platform/internal/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	venueRepo := repositories.NewVenueRepository(db.DB)
	concertRepo := repositories.NewConcertRepository(db.DB)

	venues := []*models.VenueCreateRequest{
		{
			Name:        "Axiata Arena",
			Address:     "Jalan Barat, Bukit Jalil",
			City:        "Kuala Lumpur",
			State:       "Wilayah Persekutuan",
			PostalCode:  "57000",
			Country:     "Malaysia",
			Capacity:    16000,
			PhoneNumber: "+60-3-8998-8111",
		},
		{
			Name:        "Stadium Negara",
			Address:     "Jalan Hang Jebat",
			City:        "Kuala Lumpur",
			State:       "Wilayah Persekutuan",
			PostalCode:  "50150",
			Country:     "Malaysia",
			Capacity:    10000,
			PhoneNumber: "+60-3-2078-7648",
		},
		{
			Name:        "Mega Star Arena",
			Address:     "Jalan Hang Tuah",
			City:        "Kuala Lumpur",
			State:       "Wilayah Persekutuan",
			PostalCode:  "55100",
			Country:     "Malaysia",
			Capacity:    5000,
			PhoneNumber: "+60-3-9222-8811",
		},
	}

	venueIDs := make([]int, 0, len(venues))
	for _, req := range venues {
		venue, err := venueRepo.Create(req)
		if err != nil {
			log.Fatalf("Failed to create venue %s: %v", req.Name, err)
		}
		venueIDs = append(venueIDs, venue.ID)
		fmt.Printf("Created venue %q with ID %d\n", venue.Name, venue.ID)
	}

	now := time.Now()
	concerts := []*models.ConcertCreateRequest{
		{
			Title:        "Rock Legends Live",
			Description:  "An evening of classic rock anthems.",
			Artist:       "The Thunderbolts",
			Genre:        "Rock",
			EventDate:    now.AddDate(0, 1, 0),
			BasePrice:    8900,
			TotalTickets: 500,
			VenueID:      venueIDs[0],
			IsActive:     true,
		},
		{
			Title:        "Jazz Under the Stars",
			Description:  "Smooth jazz in an intimate setting.",
			Artist:       "Melissa Tan Quartet",
			Genre:        "Jazz",
			EventDate:    now.AddDate(0, 2, 0),
			BasePrice:    12000,
			TotalTickets: 300,
			VenueID:      venueIDs[1],
			IsActive:     true,
		},
		{
			Title:        "Pop Sensation World Tour",
			Description:  "The biggest pop show of the year.",
			Artist:       "Aurora Lim",
			Genre:        "Pop",
			EventDate:    now.AddDate(0, 3, 0),
			BasePrice:    15000,
			TotalTickets: 1000,
			VenueID:      venueIDs[0],
			IsActive:     true,
		},
		{
			Title:        "Symphony Night",
			Description:  "A full orchestra performing beloved classics.",
			Artist:       "KL Philharmonic",
			Genre:        "Classical",
			EventDate:    now.AddDate(0, 1, 15),
			BasePrice:    10000,
			TotalTickets: 400,
			VenueID:      venueIDs[2],
			IsActive:     true,
		},
	}

	for _, req := range concerts {
		concert, err := concertRepo.Create(req)
		if err != nil {
			log.Fatalf("Failed to create concert %s: %v", req.Title, err)
		}
		fmt.Printf("Created concert %q with ID %d (%d tickets)\n", concert.Title, concert.ID, concert.TotalTickets)
	}

	fmt.Println("Seeding completed successfully!")
}
