package domain

// Regions is the fixed set of region labels, in keyboard order. The labels
// double as calendar lookup keys and must never contain ':' (callback data
// uses it as the field delimiter).
var Regions = []string{
	"Toshkent",
	"Andijon",
	"Farg‘ona",
	"Namangan",
	"Samarqand",
	"Buxoro",
	"Navoiy",
	"Jizzax",
	"Sirdaryo",
	"Qashqadaryo",
	"Surxondaryo",
	"Xorazm",
	"Qoraqalpog‘iston",
}

// UnselectedLabel is the tally bucket for users without a stored region.
const UnselectedLabel = "Tanlamagan"

// ValidRegion reports whether name is one of the fixed region labels.
func ValidRegion(name string) bool {
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}
