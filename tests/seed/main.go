package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"salonhq/config"
	"salonhq/database"
	"salonhq/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a local database with a week of plausible salon traffic: bookings in
// every status, duplicate client records under differently formatted phone
// numbers, staff, inventory and feedback. Run against a throwaway database.
func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, name := range []string{"bookings", "clients", "staff", "products", "feedbacks", "billing"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", name, err)
		}
	}

	staffNames := []string{"Anita", "Deepak", "Meena"}
	var staff []interface{}
	for _, name := range staffNames {
		staff = append(staff, models.Staff{
			ID:        uuid.New().String(),
			Name:      name,
			Contact:   fmt.Sprintf("98%08d", rand.Intn(100000000)),
			CreatedAt: time.Now(),
		})
	}
	if _, err := db.Collection("staff").InsertMany(ctx, staff); err != nil {
		log.Fatalf("Failed to seed staff: %v", err)
	}

	serviceNames := []string{"Hydra Facial", "Hair Spa", "Hair Styling", "Men's Haircut", "Manicure & Pedicure"}
	times := []string{"09:30", "10:00", "11:30", "13:00", "15:30", "17:00"}
	statuses := []string{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusCompleted,
	}

	var bookings []interface{}
	today := time.Now()
	for day := -3; day < 4; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		for i := 0; i < 4; i++ {
			status := statuses[rand.Intn(len(statuses))]
			if day < 0 {
				status = models.BookingStatusCompleted
			}
			b := models.Booking{
				ID:        uuid.New().String(),
				Name:      fmt.Sprintf("Client %d", rand.Intn(40)),
				Phone:     fmt.Sprintf("98765%05d", rand.Intn(100000)),
				Services:  []string{serviceNames[rand.Intn(len(serviceNames))]},
				Date:      date,
				Time:      times[rand.Intn(len(times))],
				Status:    status,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if status == models.BookingStatusCompleted {
				at := today.AddDate(0, 0, day)
				b.CompletedBy = staffNames[rand.Intn(len(staffNames))]
				b.Amount = float64(300 + rand.Intn(2500))
				b.PaymentMode = []string{"cash", "upi", "card"}[rand.Intn(3)]
				b.CompletedAt = &at
			}
			bookings = append(bookings, b)
		}
	}
	if _, err := db.Collection("bookings").InsertMany(ctx, bookings); err != nil {
		log.Fatalf("Failed to seed bookings: %v", err)
	}

	// Two records for the same person under different phone formats, to
	// exercise the merged client view.
	now := time.Now()
	clients := []interface{}{
		models.Client{
			ID: uuid.New().String(), Name: "Priya", Contact: "+91 98765 43210",
			Allergies: "ammonia",
			ServiceHistory: []models.ServiceRecord{
				{Date: now.AddDate(0, 0, -30).Format("2006-01-02"), Services: []string{"Hair Spa"}, Staff: "Anita", Amount: 1200, PaymentMode: "upi", CompletedAt: now.AddDate(0, 0, -30)},
			},
			CreatedAt: now.AddDate(0, 0, -60), UpdatedAt: now.AddDate(0, 0, -30),
		},
		models.Client{
			ID: uuid.New().String(), Name: "Priya Sharma", Contact: "9876543210",
			ServiceHistory: []models.ServiceRecord{
				{Date: now.AddDate(0, 0, -2).Format("2006-01-02"), Services: []string{"Hydra Facial"}, Staff: "Meena", Amount: 2500, PaymentMode: "card", CompletedAt: now.AddDate(0, 0, -2)},
			},
			CreatedAt: now.AddDate(0, 0, -2), UpdatedAt: now.AddDate(0, 0, -2),
		},
		models.Client{
			ID: uuid.New().String(), Name: "Rohan", Contact: "9876543211",
			CreatedAt: now.AddDate(0, 0, -10), UpdatedAt: now.AddDate(0, 0, -10),
		},
	}
	if _, err := db.Collection("clients").InsertMany(ctx, clients); err != nil {
		log.Fatalf("Failed to seed clients: %v", err)
	}

	products := []interface{}{
		models.Product{ID: uuid.New().String(), Name: "Argan Oil Shampoo", Brand: "L'Oreal", Quantity: 12, Price: 850, CreatedAt: now},
		models.Product{ID: uuid.New().String(), Name: "Keratin Serum", Brand: "Streax", Quantity: 3, Price: 499, CreatedAt: now},
		models.Product{ID: uuid.New().String(), Name: "Facial Kit", Brand: "VLCC", Quantity: 7, Price: 1200, CreatedAt: now},
	}
	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	var feedbacks []interface{}
	for i := 0; i < 10; i++ {
		feedbacks = append(feedbacks, models.Feedback{
			ID:          uuid.New().String(),
			Name:        fmt.Sprintf("Client %d", rand.Intn(40)),
			Phone:       fmt.Sprintf("98765%05d", rand.Intn(100000)),
			Rating:      3 + rand.Intn(3),
			WhatYouLike: "Friendly staff",
			CreatedAt:   now.AddDate(0, 0, -rand.Intn(30)),
		})
	}
	if _, err := db.Collection("feedbacks").InsertMany(ctx, feedbacks); err != nil {
		log.Fatalf("Failed to seed feedback: %v", err)
	}

	log.Printf("Seeded %d bookings, %d clients, %d staff, %d products, %d feedback entries",
		len(bookings), len(clients), len(staff), len(products), len(feedbacks))
}
