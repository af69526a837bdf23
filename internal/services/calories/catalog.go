// Package calories implements the calorie counter: a built-in food catalog,
// a per-day food log and daily nutrition summaries.
package calories

import (
	"strings"

	"github.com/vedaai/veda/internal/models"
)

// Catalog is the built-in list of common Indian foods, per serving.
var Catalog = []models.FoodItem{
	{ID: 1, Name: "Roti", NameHi: "रोटी", Serving: "1 pc (30g)", Calories: 72, Protein: 2.1, Carbs: 15, Fat: 0.4, Category: "bread"},
	{ID: 2, Name: "Rice (Steamed)", NameHi: "चावल", Serving: "1 bowl (150g)", Calories: 195, Protein: 4, Carbs: 45, Fat: 0.4, Category: "grain"},
	{ID: 3, Name: "Dal (Lentils)", NameHi: "दाल", Serving: "1 bowl (150g)", Calories: 150, Protein: 9, Carbs: 20, Fat: 3, Category: "protein"},
	{ID: 4, Name: "Mixed Sabzi", NameHi: "सब्जी", Serving: "1 bowl (100g)", Calories: 80, Protein: 2, Carbs: 8, Fat: 4, Category: "vegetable"},
	{ID: 5, Name: "Paneer Curry", NameHi: "पनीर", Serving: "1 bowl (100g)", Calories: 265, Protein: 15, Carbs: 8, Fat: 20, Category: "protein"},
	{ID: 6, Name: "Curd/Dahi", NameHi: "दही", Serving: "1 bowl (100g)", Calories: 60, Protein: 3, Carbs: 5, Fat: 3, Category: "dairy"},
	{ID: 7, Name: "Raita", NameHi: "रायता", Serving: "1 bowl (100g)", Calories: 75, Protein: 3, Carbs: 6, Fat: 4, Category: "dairy"},
	{ID: 8, Name: "Paratha", NameHi: "पराठा", Serving: "1 pc (60g)", Calories: 180, Protein: 4, Carbs: 25, Fat: 7, Category: "bread"},
	{ID: 9, Name: "Chai (Milk Tea)", NameHi: "चाय", Serving: "1 cup (150ml)", Calories: 80, Protein: 2, Carbs: 10, Fat: 3, Category: "beverage"},
	{ID: 10, Name: "Banana", NameHi: "केला", Serving: "1 medium (120g)", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Category: "fruit"},
	{ID: 11, Name: "Idli", NameHi: "इडली", Serving: "2 pcs (100g)", Calories: 150, Protein: 4, Carbs: 30, Fat: 1, Category: "breakfast"},
	{ID: 12, Name: "Dosa", NameHi: "डोसा", Serving: "1 pc (100g)", Calories: 130, Protein: 3, Carbs: 22, Fat: 3, Category: "breakfast"},
	{ID: 13, Name: "Upma", NameHi: "उपमा", Serving: "1 plate (150g)", Calories: 220, Protein: 5, Carbs: 35, Fat: 7, Category: "breakfast"},
	{ID: 14, Name: "Poha", NameHi: "पोहा", Serving: "1 plate (150g)", Calories: 250, Protein: 5, Carbs: 45, Fat: 6, Category: "breakfast"},
	{ID: 15, Name: "Apple", NameHi: "सेब", Serving: "1 medium (150g)", Calories: 78, Protein: 0.4, Carbs: 21, Fat: 0.2, Category: "fruit"},
}

// QuickAddIDs are the catalog foods offered as one-key shortcuts.
var QuickAddIDs = []int{1, 2, 3, 4, 9}

// FindFood returns the catalog food with the given ID.
func FindFood(id int) (models.FoodItem, bool) {
	for _, f := range Catalog {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}

// SearchFoods matches query against English and Hindi names, ignoring case.
// An empty query returns the whole catalog.
func SearchFoods(query string) []models.FoodItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]models.FoodItem(nil), Catalog...)
	}

	var matches []models.FoodItem
	for _, f := range Catalog {
		if strings.Contains(strings.ToLower(f.Name), q) || strings.Contains(f.NameHi, q) {
			matches = append(matches, f)
		}
	}
	return matches
}

// QuickAddFoods returns the quick-add foods in catalog order.
func QuickAddFoods() []models.FoodItem {
	var foods []models.FoodItem
	for _, id := range QuickAddIDs {
		if f, ok := FindFood(id); ok {
			foods = append(foods, f)
		}
	}
	return foods
}
