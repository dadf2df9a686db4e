package utils

// FoodCategories is the fixed category list food items are filed
// under. Values outside the list display as "Other".
var FoodCategories = []string{
	"Fast Food",
	"Home Made",
	"Pakistani",
	"Chinese",
	"BBQ",
	"Pizza",
	"Burger",
	"Desi",
	"Biryani",
	"Karahi",
	"Beverages",
	"Desserts",
	"Snacks",
	"Healthy",
	"Vegetarian",
	"Bakery",
	"Seafood",
	"Continental",
	"Italian",
	"Thai",
	"Other",
}

// PakistanCities is the fixed city list stores pick their location
// from, with "Other" as the fallback bucket.
var PakistanCities = []string{
	"Karachi",
	"Lahore",
	"Islamabad",
	"Rawalpindi",
	"Faisalabad",
	"Multan",
	"Peshawar",
	"Quetta",
	"Sialkot",
	"Gujranwala",
	"Hyderabad",
	"Sukkur",
	"Larkana",
	"Abbottabad",
	"Bahawalpur",
	"Sargodha",
	"Sheikhupura",
	"Rahim Yar Khan",
	"Mardan",
	"Swat",
	"Gwadar",
	"Turbat",
	"Khuzdar",
	"Kasur",
	"Sahiwal",
	"Okara",
	"Gujrat",
	"Jhelum",
	"Sadiqabad",
	"Chiniot",
	"Kamoke",
	"Kohat",
	"Khanpur",
	"Jacobabad",
	"Shikarpur",
	"Muzaffargarh",
	"Khanewal",
	"Jhang",
	"Hafizabad",
	"Pakpattan",
	"Daska",
	"Gojra",
	"Sambrial",
	"Nawabshah",
	"Chishtian",
	"Kot Addu",
	"Haveli Lakha",
	"Chakwal",
	"Badin",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range FoodCategories {
		if c == category {
			return true
		}
	}
	return false
}

func CategoryDisplayName(category string) string {
	if category == "" {
		return "Not specified"
	}
	if IsValidCategory(category) {
		return category
	}
	return "Other"
}

func IsValidCity(city string) bool {
	for _, c := range PakistanCities {
		if c == city {
			return true
		}
	}
	return false
}

func CityDisplayName(city string) string {
	if city == "" {
		return "Not specified"
	}
	if IsValidCity(city) {
		return city
	}
	return "Other"
}
