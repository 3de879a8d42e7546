// Package seeddata holds the reference catalog used to seed an empty
// database and to populate the in-memory repositories when the
// database is unavailable. IDs are derived from stable keys so that
// barcode and recipe references survive re-seeding.
package seeddata

import (
	"Smart-Fridge-Backend/entities"

	"github.com/google/uuid"
)

// ID returns a stable UUID for a seed key such as "s1" or "p42".
func ID(key string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("smartfridge/"+key))
}

type storeSeed struct {
	key      string
	name     string
	location string
}

type productSeed struct {
	key      string
	name     string
	category string
	price    float64
	unit     string
	storeKey string
	barcode  string
}

var storeSeeds = []storeSeed{
	{"s1", "Makro", "Bangkok"},
	{"s2", "Lotus", "Chiang Mai"},
	{"s3", "BigC", "Phuket"},
	{"s4", "Villa Market", "Pattaya"},
	{"s5", "Tops", "Hua Hin"},
	{"s6", "Foodland", "Bangkok"},
	{"s7", "Gourmet Market", "Bangkok"},
	{"s8", "7-Eleven", "Nationwide"},
	{"s9", "Tesco", "Bangkok"},
	{"s10", "CJ Express", "Chiang Rai"},
}

var productSeeds = []productSeed{
	{"p1", "Eggs", "Dairy", 60, "dozen", "s1", "5901234123457"},
	{"p2", "Milk", "Dairy", 55, "liter", "s1", ""},
	{"p3", "Chicken Breast", "Meat", 120, "kg", "s1", "8901234567893"},
	{"p4", "Broccoli", "Vegetables", 40, "kg", "s1", "7501234567893"},
	{"p41", "Rice Noodles", "Grains", 45, "pack", "s1", ""},
	{"p42", "Bean Sprouts", "Vegetables", 20, "pack", "s1", ""},

	{"p5", "Milk", "Dairy", 50, "liter", "s2", "4003994155486"},
	{"p6", "Tofu", "Protein", 25, "pack", "s2", "6291041500213"},
	{"p7", "Rice", "Grains", 150, "5kg", "s2", "3045320094084"},
	{"p8", "Carrots", "Vegetables", 30, "kg", "s2", "7622210100123"},
	{"p43", "Peanuts", "Nuts", 60, "pack", "s2", ""},
	{"p44", "Garlic", "Vegetables", 15, "pack", "s2", ""},

	{"p9", "Cheese", "Dairy", 180, "pack", "s3", "8410054010412"},
	{"p10", "Onion", "Vegetables", 35, "kg", "s3", "5449000000996"},
	{"p11", "Pork", "Meat", 140, "kg", "s3", "8712345678906"},
	{"p12", "Pasta", "Grains", 45, "pack", "s3", "4890008100309"},
	{"p45", "Mushrooms", "Vegetables", 70, "pack", "s3", "4902430698146"},
	{"p46", "Chili", "Vegetables", 25, "pack", "s3", ""},

	{"p13", "Olive Oil", "Condiments", 350, "bottle", "s4", "3800065711035"},
	{"p14", "Cheese", "Dairy", 220, "pack", "s4", ""},
	{"p15", "Salmon", "Seafood", 300, "kg", "s4", "5000169116010"},
	{"p16", "Avocado", "Fruits", 80, "piece", "s4", "7891234567895"},
	{"p47", "Shrimp", "Seafood", 250, "kg", "s4", ""},
	{"p48", "Lemongrass", "Herbs", 30, "bunch", "s4", ""},

	{"p17", "Beef", "Meat", 280, "kg", "s5", "8000500003954"},
	{"p18", "Spinach", "Vegetables", 45, "bunch", "s5", "5060073380635"},
	{"p19", "Yogurt", "Dairy", 65, "pack", "s5", "3661112502850"},
	{"p20", "Eggs", "Dairy", 65, "dozen", "s5", ""},
	{"p49", "Lime", "Fruits", 15, "piece", "s5", "8410100107042"},
	{"p50", "Basil", "Herbs", 20, "bunch", "s5", "8480000591241"},

	{"p21", "Shrimp", "Seafood", 250, "kg", "s6", "8717163262245"},
	{"p22", "Bell Pepper", "Vegetables", 70, "kg", "s6", "5010477348678"},
	{"p23", "Butter", "Dairy", 95, "pack", "s6", "7310865004703"},
	{"p24", "Chicken", "Meat", 90, "kg", "s6", ""},
	{"p51", "Coconut Milk", "Dairy", 65, "can", "s6", "5000237122267"},
	{"p52", "Eggplant", "Vegetables", 40, "kg", "s6", ""},

	{"p25", "Truffle Oil", "Condiments", 650, "bottle", "s7", ""},
	{"p26", "Wagyu Beef", "Meat", 1200, "kg", "s7", ""},
	{"p27", "Asparagus", "Vegetables", 180, "bunch", "s7", ""},
	{"p28", "Goat Cheese", "Dairy", 320, "pack", "s7", ""},
	{"p53", "Green Curry Paste", "Condiments", 85, "jar", "s7", "8001250123459"},
	{"p54", "Soy Sauce", "Condiments", 75, "bottle", "s7", "8715700110622"},

	{"p29", "Milk", "Dairy", 60, "liter", "s8", ""},
	{"p30", "Bread", "Bakery", 40, "loaf", "s8", "9780201379624"},
	{"p31", "Eggs", "Dairy", 70, "half-dozen", "s8", ""},
	{"p32", "Banana", "Fruits", 15, "piece", "s8", "4902505079245"},
	{"p55", "Green Papaya", "Fruits", 45, "piece", "s8", "8715700011097"},
	{"p56", "Chili", "Vegetables", 10, "piece", "s8", "8715700011103"},

	{"p33", "Pasta Sauce", "Condiments", 85, "jar", "s9", "5000213013398"},
	{"p34", "Ground Beef", "Meat", 150, "kg", "s9", ""},
	{"p35", "Tomatoes", "Vegetables", 50, "kg", "s9", "7350053850019"},
	{"p36", "Cheddar Cheese", "Dairy", 160, "pack", "s9", "5060073380642"},
	{"p57", "Lime", "Fruits", 12, "piece", "s9", ""},
	{"p58", "Peanuts", "Nuts", 55, "pack", "s9", "8715700011110"},

	{"p37", "Instant Noodles", "Packaged", 15, "pack", "s10", "8076809529587"},
	{"p38", "Soy Milk", "Dairy", 25, "bottle", "s10", "8801043150125"},
	{"p39", "Rice", "Grains", 140, "5kg", "s10", ""},
	{"p40", "Tofu", "Protein", 20, "pack", "s10", ""},
	{"p59", "Garlic", "Vegetables", 12, "pack", "s10", "8715700011127"},
	{"p60", "Basil", "Herbs", 15, "bunch", "s10", "8715700011134"},
}

type recipeSeed struct {
	key         string
	name        string
	description string
	ingredients []recipeIngredientSeed
}

type recipeIngredientSeed struct {
	name     string
	quantity float64
	unit     string
}

var recipeSeeds = []recipeSeed{
	{"r1", "Pad Thai", "Classic Thai stir-fried noodles with eggs, tofu, and vegetables.", []recipeIngredientSeed{
		{"Rice Noodles", 200, "g"},
		{"Eggs", 2, "pcs"},
		{"Tofu", 100, "g"},
		{"Bean Sprouts", 50, "g"},
		{"Peanuts", 30, "g"},
	}},
	{"r2", "Tom Yum Soup", "Spicy and sour Thai soup with shrimp and mushrooms.", []recipeIngredientSeed{
		{"Shrimp", 200, "g"},
		{"Mushrooms", 100, "g"},
		{"Lemongrass", 2, "stalks"},
		{"Lime", 1, "pc"},
		{"Chili", 3, "pcs"},
	}},
	{"r3", "Green Curry", "Aromatic Thai curry with chicken and vegetables.", []recipeIngredientSeed{
		{"Chicken", 300, "g"},
		{"Coconut Milk", 400, "ml"},
		{"Eggplant", 100, "g"},
		{"Green Curry Paste", 2, "tbsp"},
		{"Basil", 10, "leaves"},
	}},
	{"r4", "Fried Rice", "Simple and delicious Thai-style fried rice.", []recipeIngredientSeed{
		{"Rice", 300, "g"},
		{"Eggs", 2, "pcs"},
		{"Onion", 1, "pc"},
		{"Garlic", 3, "cloves"},
		{"Soy Sauce", 2, "tbsp"},
	}},
	{"r5", "Papaya Salad", "Spicy and tangy green papaya salad.", []recipeIngredientSeed{
		{"Green Papaya", 200, "g"},
		{"Tomatoes", 2, "pcs"},
		{"Lime", 1, "pc"},
		{"Peanuts", 30, "g"},
		{"Chili", 2, "pcs"},
	}},
}

func Stores() []*entities.Store {
	stores := make([]*entities.Store, 0, len(storeSeeds))
	for _, s := range storeSeeds {
		stores = append(stores, &entities.Store{
			ID:       ID(s.key),
			Name:     s.name,
			Location: s.location,
		})
	}
	return stores
}

func Products() []*entities.Product {
	products := make([]*entities.Product, 0, len(productSeeds))
	for _, p := range productSeeds {
		product := &entities.Product{
			ID:       ID(p.key),
			StoreID:  ID(p.storeKey),
			Name:     p.name,
			Category: p.category,
			Price:    p.price,
			Unit:     p.unit,
		}
		if p.barcode != "" {
			barcode := p.barcode
			product.Barcode = &barcode
		}
		products = append(products, product)
	}
	return products
}

func Recipes() []*entities.Recipe {
	recipes := make([]*entities.Recipe, 0, len(recipeSeeds))
	for _, r := range recipeSeeds {
		recipe := &entities.Recipe{
			ID:          ID(r.key),
			Name:        r.name,
			Description: r.description,
		}
		for i, ing := range r.ingredients {
			recipe.Ingredients = append(recipe.Ingredients, &entities.RecipeIngredient{
				ID:       ID(r.key + "/" + ing.name),
				RecipeID: recipe.ID,
				Name:     ing.name,
				Quantity: ing.quantity,
				Unit:     ing.unit,
				Position: i,
			})
		}
		recipes = append(recipes, recipe)
	}
	return recipes
}
