package ledger

// Cabin layout of the aircraft.  The layout is fixed; rows are numbered
// from 1 and columns are lettered from 'A'.
const (
	Rows         = 15
	Columns      = 4
	TotalSeats   = Rows * Columns
	BusinessRows = 3 // rows 1..BusinessRows are Business class
	firstColumn  = 'A'
)

// Fare table in the fare currency.
const (
	Currency          = "PKR"
	BusinessFare      = 40000
	EconomyFare       = 25000
	LuggageRatePerKg  = 2500
	ClassBusiness     = "Business"
	ClassEconomy      = "Economy"
	BusinessAllowance = "3 bags (50kg)"
	EconomyAllowance  = "2 bags (30kg)"
)

// Meal is one entry of the in-flight meal menu.
type Meal struct {
	Name  string
	Price int
}

// Meals is the fixed meal menu.  Choice n selects Meals[n-1].
var Meals = []Meal{
	{Name: "Chicken Biryani", Price: 2000},
	{Name: "Beef Steak", Price: 5000},
	{Name: "Pasta Alfredo", Price: 3000},
	{Name: "BBQ Platter", Price: 8000},
	{Name: "Veg Sandwich", Price: 2500},
}

// MealPrice returns the price for a 1-based menu choice.  Choices outside
// the menu cost nothing and are not an error.
func MealPrice(choice int) int {
	if choice < 1 || choice > len(Meals) {
		return 0
	}
	return Meals[choice-1].Price
}

// IsBusiness reports whether a row belongs to the Business cabin.
func IsBusiness(row int) bool { return row <= BusinessRows }

// ClassOf returns the cabin class label for a row.
func ClassOf(row int) string {
	if IsBusiness(row) {
		return ClassBusiness
	}
	return ClassEconomy
}

// baseFare returns the seat price for a row.
func baseFare(row int) int {
	if IsBusiness(row) {
		return BusinessFare
	}
	return EconomyFare
}

func luggageAllowance(row int) string {
	if IsBusiness(row) {
		return BusinessAllowance
	}
	return EconomyAllowance
}

// LuggageCost charges the extra luggage weight, truncating toward zero.
func LuggageCost(kg float64) int {
	return int(kg * LuggageRatePerKg)
}
