package seed

import (
	"github.com/shoppy/backend/internal/application/catalog"
	"github.com/shopspring/decimal"
)

// SampleProducts returns the built-in catalog used to bootstrap a fresh
// installation. SKUs are stable so repeated imports are idempotent.
func SampleProducts() []catalog.UpsertProductRequest {
	return []catalog.UpsertProductRequest{
		// Electronics
		{
			SKU:           "ELEC-001",
			Name:          "Wireless Bluetooth Headphones",
			Description:   "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			Category:      "Electronics",
			Price:         decimal.NewFromFloat(149.99),
			Cost:          decimal.NewFromFloat(75.00),
			StockQuantity: 50,
			ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop",
		},
		{
			SKU:           "ELEC-002",
			Name:          "Smart Watch Pro",
			Description:   "Feature-rich smartwatch with health monitoring, GPS, and water resistance.",
			Category:      "Electronics",
			Price:         decimal.NewFromFloat(299.99),
			Cost:          decimal.NewFromFloat(150.00),
			StockQuantity: 30,
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=300&fit=crop",
		},
		{
			SKU:           "ELEC-003",
			Name:          "Portable Bluetooth Speaker",
			Description:   "Compact speaker with powerful bass and 12-hour playtime.",
			Category:      "Electronics",
			Price:         decimal.NewFromFloat(79.99),
			Cost:          decimal.NewFromFloat(35.00),
			StockQuantity: 75,
			ImageURL:      "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=300&fit=crop",
		},
		{
			SKU:           "ELEC-004",
			Name:          "Mechanical Keyboard",
			Description:   "RGB mechanical keyboard with customizable keys and wrist rest.",
			Category:      "Electronics",
			Price:         decimal.NewFromFloat(119.99),
			Cost:          decimal.NewFromFloat(50.00),
			StockQuantity: 20,
			ImageURL:      "https://www.popsci.com/wp-content/uploads/2022/02/12/mechanical-keyboard-with-rbg.jpg?quality=85",
		},
		{
			SKU:           "ELEC-005",
			Name:          "Wireless Charging Pad",
			Description:   "Fast wireless charger compatible with all Qi-enabled devices.",
			Category:      "Electronics",
			Price:         decimal.NewFromFloat(34.99),
			Cost:          decimal.NewFromFloat(12.00),
			StockQuantity: 45,
			ImageURL:      "https://eu.omnicharge.co/cdn/shop/files/omni-2-in-1-wireless-charging-pad-03.jpg?v=1723201087&width=1000",
		},
		// Clothing
		{
			SKU:           "CLOTH-001",
			Name:          "Classic Denim Jacket",
			Description:   "Timeless denim jacket with comfortable fit and stylish design.",
			Category:      "Clothing",
			Price:         decimal.NewFromFloat(89.99),
			Cost:          decimal.NewFromFloat(40.00),
			StockQuantity: 40,
			ImageURL:      "https://www.celebritystylefashion.com.au/cdn/shop/files/Sa5e4eb5acec74ad484fd808a3e37d448N.webp?v=1716011791",
		},
		{
			SKU:           "CLOTH-002",
			Name:          "Running Sneakers",
			Description:   "Lightweight running shoes with responsive cushioning.",
			Category:      "Clothing",
			Price:         decimal.NewFromFloat(129.99),
			Cost:          decimal.NewFromFloat(55.00),
			StockQuantity: 60,
			ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=300&fit=crop",
		},
		{
			SKU:           "CLOTH-003",
			Name:          "Cotton T-Shirt",
			Description:   "Comfortable cotton t-shirt in various colors.",
			Category:      "Clothing",
			Price:         decimal.NewFromFloat(24.99),
			Cost:          decimal.NewFromFloat(10.00),
			StockQuantity: 100,
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=300&fit=crop",
		},
		// Books
		{
			SKU:           "BOOK-001",
			Name:          "Python Programming Book",
			Description:   "Comprehensive guide to Python programming for beginners and experts.",
			Category:      "Books",
			Price:         decimal.NewFromFloat(49.99),
			Cost:          decimal.NewFromFloat(20.00),
			StockQuantity: 100,
			ImageURL:      "https://m.media-amazon.com/images/I/81YWUlX6J4L._AC_UF1000,1000_QL80_.jpg",
		},
		{
			SKU:           "BOOK-002",
			Name:          "Cookbook Gourmet",
			Description:   "Collection of gourmet recipes from around the world.",
			Category:      "Books",
			Price:         decimal.NewFromFloat(34.99),
			Cost:          decimal.NewFromFloat(15.00),
			StockQuantity: 50,
			ImageURL:      "https://eatdrinkfrolic.com/wp-content/uploads/2015/07/Easy2BGourmet.jpg",
		},
		// Home & Kitchen
		{
			SKU:           "HOME-001",
			Name:          "Ceramic Coffee Mug Set",
			Description:   "Set of 4 elegant ceramic mugs, microwave and dishwasher safe.",
			Category:      "Home",
			Price:         decimal.NewFromFloat(34.99),
			Cost:          decimal.NewFromFloat(12.00),
			StockQuantity: 45,
			ImageURL:      "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=400&h=300&fit=crop",
		},
		{
			SKU:           "HOME-002",
			Name:          "LED Desk Lamp",
			Description:   "Adjustable LED lamp with multiple brightness levels and USB charging port.",
			Category:      "Home",
			Price:         decimal.NewFromFloat(59.99),
			Cost:          decimal.NewFromFloat(25.00),
			StockQuantity: 35,
			ImageURL:      "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400&h=300&fit=crop",
		},
		{
			SKU:           "HOME-003",
			Name:          "Coffee Maker",
			Description:   "12-cup programmable coffee maker with thermal carafe.",
			Category:      "Home",
			Price:         decimal.NewFromFloat(79.99),
			Cost:          decimal.NewFromFloat(35.00),
			StockQuantity: 25,
			ImageURL:      "https://media.wired.com/photos/64bad54a52bb92d7ad7c335a/master/w_1600%2Cc_limit/Delonghi-TrueBrew-Beans-Gear.jpg",
		},
		// Sports & Fitness
		{
			SKU:           "SPORT-001",
			Name:          "Yoga Mat Premium",
			Description:   "Extra thick, non-slip yoga mat with carrying strap.",
			Category:      "Sports",
			Price:         decimal.NewFromFloat(39.99),
			Cost:          decimal.NewFromFloat(15.00),
			StockQuantity: 80,
			ImageURL:      "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=400&h=300&fit=crop",
		},
		{
			SKU:           "SPORT-002",
			Name:          "Dumbbell Set",
			Description:   "Adjustable dumbbell set 5-25 lbs with storage rack.",
			Category:      "Sports",
			Price:         decimal.NewFromFloat(149.99),
			Cost:          decimal.NewFromFloat(70.00),
			StockQuantity: 15,
			ImageURL:      "https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?w=400&h=300&fit=crop",
		},
		// Toys
		{
			SKU:           "TOY-001",
			Name:          "Building Blocks Set",
			Description:   "Creative building blocks set with 500 pieces for endless fun.",
			Category:      "Toys",
			Price:         decimal.NewFromFloat(44.99),
			Cost:          decimal.NewFromFloat(18.00),
			StockQuantity: 55,
			ImageURL:      "https://images.unsplash.com/photo-1587654780291-39c9404d746b?w=400&h=300&fit=crop",
		},
		{
			SKU:           "TOY-002",
			Name:          "Board Game Collection",
			Description:   "Family board game collection with 5 classic games.",
			Category:      "Toys",
			Price:         decimal.NewFromFloat(59.99),
			Cost:          decimal.NewFromFloat(25.00),
			StockQuantity: 30,
			ImageURL:      "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?w=400&h=300&fit=crop",
		},
		// Beauty
		{
			SKU:           "BEAUTY-001",
			Name:          "Organic Skincare Set",
			Description:   "All-natural skincare collection with cleanser, toner, and moisturizer.",
			Category:      "Beauty",
			Price:         decimal.NewFromFloat(69.99),
			Cost:          decimal.NewFromFloat(30.00),
			StockQuantity: 25,
			ImageURL:      "https://images.unsplash.com/photo-1556228720-195a672e8a03?w=400&h=300&fit=crop",
		},
		{
			SKU:           "BEAUTY-002",
			Name:          "Hair Dryer Professional",
			Description:   "Professional-grade hair dryer with ionic technology.",
			Category:      "Beauty",
			Price:         decimal.NewFromFloat(89.99),
			Cost:          decimal.NewFromFloat(40.00),
			StockQuantity: 20,
			ImageURL:      "https://frisorshop.se/images/zoom/30wdu2fq.jpeg",
		},
		// Automotive
		{
			SKU:           "AUTO-001",
			Name:          "Car Phone Mount",
			Description:   "Universal magnetic phone mount with 360-degree rotation.",
			Category:      "Automotive",
			Price:         decimal.NewFromFloat(24.99),
			Cost:          decimal.NewFromFloat(8.00),
			StockQuantity: 90,
			ImageURL:      "https://preview.redd.it/what-car-phone-holder-do-you-use-v0-90wg3nl6b6fc1.jpeg?auto=webp&s=5109da07e87f629a22dc608c65faa41a379b395e",
		},
		{
			SKU:           "AUTO-002",
			Name:          "Tire Pressure Gauge",
			Description:   "Digital tire pressure gauge with LCD display.",
			Category:      "Automotive",
			Price:         decimal.NewFromFloat(19.99),
			Cost:          decimal.NewFromFloat(7.00),
			StockQuantity: 70,
			ImageURL:      "https://upload.wikimedia.org/wikipedia/commons/6/6a/ReifendruckPruefen.jpg",
		},
	}
}
