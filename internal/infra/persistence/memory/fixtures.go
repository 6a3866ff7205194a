package memory

import (
	"time"

	"storefront/internal/domain/entity"
)

// Fixture baseline. Timestamps are fixed so reloads and tests are stable.
var fixtureTime = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

func seedCategories() []entity.Category {
	return []entity.Category{
		{ID: 1, Name: "Juices", Description: "Cold-pressed fruit juices", Color: "#f97316", Icon: "🧃", IsActive: true, SortOrder: 1, CreatedAt: fixtureTime},
		{ID: 2, Name: "Smoothies", Description: "Blended fruit and yogurt", Color: "#84cc16", Icon: "🥤", IsActive: true, SortOrder: 2, CreatedAt: fixtureTime},
		{ID: 3, Name: "Snacks", Description: "Light bites and sides", Color: "#eab308", Icon: "🥨", IsActive: true, SortOrder: 3, CreatedAt: fixtureTime},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Orange Juice", Price: 15, CategoryID: 1, Description: "Squeezed to order", IsActive: true, CreatedAt: fixtureTime},
		{ID: 2, Name: "Watermelon Juice", Price: 14, CategoryID: 1, Description: "Summer staple", IsActive: true, CreatedAt: fixtureTime},
		{ID: 3, Name: "Berry Smoothie", Price: 22, CategoryID: 2, Description: "Strawberry, blueberry, yogurt", IsActive: true, CreatedAt: fixtureTime},
		{ID: 4, Name: "Banana Smoothie", Price: 20, CategoryID: 2, Description: "With honey and oats", IsActive: true, CreatedAt: fixtureTime},
		{ID: 5, Name: "Pretzel Bites", Price: 12, CategoryID: 3, Description: "Warm, salted", IsActive: true, CreatedAt: fixtureTime},
	}
}

func seedOrders() []entity.Order {
	return []entity.Order{
		{ID: 1, CustomerName: "Mai Tran", CustomerPhone: "555-0134", CustomerAddress: "12 Market Lane", Total: 37, Status: entity.OrderStatusPending, PaymentMethod: "cash", Notes: "Less ice", CreatedAt: fixtureTime},
		{ID: 2, CustomerName: "Leo Park", CustomerPhone: "555-0187", CustomerAddress: "8 Harbor St", Total: 22, Status: entity.OrderStatusDelivered, PaymentMethod: "card", CreatedAt: fixtureTime},
	}
}

func seedReviews() []entity.Review {
	return []entity.Review{
		{ID: 1, CustomerName: "Ana Silva", CustomerEmail: "ana@example.com", ProductID: 1, Rating: 5, Comment: "Best orange juice in town", IsApproved: true, IsFeatured: true, CreatedAt: fixtureTime},
		{ID: 2, CustomerName: "Tom Reed", CustomerEmail: "tom@example.com", ProductID: 3, Rating: 4, Comment: "Great, a bit sweet", IsApproved: true, CreatedAt: fixtureTime},
	}
}

func seedPosts() []entity.BlogPost {
	return []entity.BlogPost{
		{ID: 1, Title: "Why cold-pressed?", Content: "Cold pressing keeps more of the fruit intact...", Excerpt: "Cold pressing keeps more of the fruit intact", Author: "Storefront Team", Category: "behind-the-counter", IsPublished: true, IsFeatured: true, Views: 120, Likes: 14, CreatedAt: fixtureTime},
	}
}

func seedUsers() []entity.User {
	return []entity.User{
		{ID: "seed-admin", Email: "admin@storefront.local", Name: "Store Admin", Role: entity.RoleAdmin, IsActive: true, CreatedAt: fixtureTime},
	}
}
