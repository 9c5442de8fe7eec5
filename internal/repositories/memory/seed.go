package memory

import (
	"time"

	"github.com/Srivastav4327/RentMate/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func amount(v float64) *float64 { return &v }

func text(s string) *string { return &s }

// SeedListings is the demo catalogue served by the memory driver.
func SeedListings() []models.Listing {
	return []models.Listing{
		{
			ID:          "item1",
			Title:       "Sony Alpha A7III Mirrorless Camera",
			Description: "Full-frame mirrorless camera with 24.2MP sensor, 4K video and a 28-70mm kit lens. Perfect for events and travel photography.",
			Category:    "electronics",
			Price:       1200,
			Deposit:     amount(5000),
			Location:    "Powai",
			City:        "Mumbai",
			State:       "Maharashtra",
			Images:      models.StringList{"https://images.unsplash.com/photo-1516035069371-29a1b244cc32"},
			OwnerID:     "user456",
			OwnerName:   "Raj Sharma",
			Status:      models.ListingAvailable,
			Featured:    true,
			CreatedAt:   day(2023, time.April, 15),
			UpdatedAt:   day(2023, time.April, 15),
		},
		{
			ID:          "item2",
			Title:       "PlayStation 5 Console with 2 Controllers",
			Description: "PS5 disc edition with two DualSense controllers and three games. Great for weekend gaming sessions.",
			Category:    "gaming",
			Price:       500,
			Deposit:     amount(10000),
			Location:    "Koramangala",
			City:        "Bangalore",
			State:       "Karnataka",
			Images:      models.StringList{"https://images.unsplash.com/photo-1606144042614-b2417e99c4e3"},
			OwnerID:     "user789",
			OwnerName:   "Priya Patel",
			Status:      models.ListingAvailable,
			CreatedAt:   day(2023, time.April, 20),
			UpdatedAt:   day(2023, time.April, 20),
		},
		{
			ID:          "item3",
			Title:       "MacBook Pro 16\" (2023) - M2 Pro",
			Description: "Latest MacBook Pro with M2 Pro chip, 16GB RAM and 512GB SSD. Ideal for creative work and development.",
			Category:    "electronics",
			Price:       1500,
			Deposit:     amount(20000),
			Location:    "Hauz Khas",
			City:        "Delhi",
			State:       "Delhi",
			Images:      models.StringList{"https://images.unsplash.com/photo-1517336714731-489689fd1ca8"},
			OwnerID:     "user123",
			OwnerName:   "Amit Kumar",
			Status:      models.ListingRented,
			Featured:    true,
			CreatedAt:   day(2023, time.May, 1),
			UpdatedAt:   day(2023, time.May, 1),
		},
		{
			ID:          "item4",
			Title:       "Premium Study Desk and Chair Set",
			Description: "Ergonomic study desk with an adjustable chair. Suitable for students and work-from-home setups.",
			Category:    "furniture",
			Price:       300,
			Location:    "Anna Nagar",
			City:        "Chennai",
			State:       "Tamil Nadu",
			Images:      models.StringList{"https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd"},
			OwnerID:     "user345",
			OwnerName:   "Arun Vijay",
			Status:      models.ListingAvailable,
			CreatedAt:   day(2023, time.May, 5),
			UpdatedAt:   day(2023, time.May, 5),
		},
		{
			ID:          "item5",
			Title:       "Complete UPSC Study Material Set",
			Description: "Comprehensive UPSC preparation books and notes covering prelims and mains.",
			Category:    "books",
			Price:       200,
			Location:    "Banjara Hills",
			City:        "Hyderabad",
			State:       "Telangana",
			Images:      models.StringList{"https://images.unsplash.com/photo-1497633762265-9d179a990aa6"},
			OwnerID:     "user567",
			OwnerName:   "Lakshmi Reddy",
			Status:      models.ListingAvailable,
			CreatedAt:   day(2023, time.May, 10),
			UpdatedAt:   day(2023, time.May, 10),
		},
	}
}

func SeedRentals() []models.Rental {
	return []models.Rental{
		{
			ID:              "rental1",
			ListingID:       "item1",
			ListingTitle:    "Sony Alpha A7III Mirrorless Camera",
			ListingImage:    "https://images.unsplash.com/photo-1516035069371-29a1b244cc32",
			RenterID:        "user123",
			RenterName:      "Amit Kumar",
			OwnerID:         "user456",
			OwnerName:       "Raj Sharma",
			StartDate:       day(2023, time.May, 10),
			EndDate:         day(2023, time.May, 15),
			TotalPrice:      6000,
			CommissionFee:   600,
			SecurityDeposit: amount(5000),
			Status:          models.RentalCompleted,
			PaymentStatus:   models.PaymentPaid,
			PaymentID:       text("pay_123456"),
			CreatedAt:       day(2023, time.May, 1),
			UpdatedAt:       day(2023, time.May, 15),
		},
		{
			ID:              "rental2",
			ListingID:       "item3",
			ListingTitle:    "MacBook Pro 16\" (2023) - M2 Pro",
			ListingImage:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca8",
			RenterID:        "user456",
			RenterName:      "Raj Sharma",
			OwnerID:         "user123",
			OwnerName:       "Amit Kumar",
			StartDate:       day(2023, time.June, 5),
			EndDate:         day(2023, time.June, 12),
			TotalPrice:      10500,
			CommissionFee:   1050,
			SecurityDeposit: amount(20000),
			Status:          models.RentalActive,
			PaymentStatus:   models.PaymentPaid,
			PaymentID:       text("pay_234567"),
			CreatedAt:       day(2023, time.June, 1),
			UpdatedAt:       day(2023, time.June, 5),
		},
		{
			ID:              "rental3",
			ListingID:       "item2",
			ListingTitle:    "PlayStation 5 Console with 2 Controllers",
			ListingImage:    "https://images.unsplash.com/photo-1606144042614-b2417e99c4e3",
			RenterID:        "user123",
			RenterName:      "Amit Kumar",
			OwnerID:         "user789",
			OwnerName:       "Priya Patel",
			StartDate:       day(2023, time.July, 20),
			EndDate:         day(2023, time.July, 27),
			TotalPrice:      3500,
			CommissionFee:   350,
			SecurityDeposit: amount(10000),
			Status:          models.RentalPending,
			PaymentStatus:   models.PaymentPending,
			CreatedAt:       day(2023, time.July, 10),
			UpdatedAt:       day(2023, time.July, 10),
		},
	}
}

func SeedUsers() []models.User {
	return []models.User{
		{ID: "admin123", DisplayName: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin, CreatedAt: day(2023, time.January, 1)},
		{ID: "user456", DisplayName: "Regular User", Email: "user@example.com", Role: models.RoleUser, CreatedAt: day(2023, time.February, 1)},
	}
}

func SeedCities() []models.City {
	return []models.City{
		{ID: "mumbai", Name: "Mumbai", State: "Maharashtra"},
		{ID: "delhi", Name: "Delhi", State: "Delhi"},
		{ID: "bangalore", Name: "Bangalore", State: "Karnataka"},
		{ID: "hyderabad", Name: "Hyderabad", State: "Telangana"},
		{ID: "chennai", Name: "Chennai", State: "Tamil Nadu"},
		{ID: "pune", Name: "Pune", State: "Maharashtra"},
		{ID: "kolkata", Name: "Kolkata", State: "West Bengal"},
		{ID: "ahmedabad", Name: "Ahmedabad", State: "Gujarat"},
	}
}
