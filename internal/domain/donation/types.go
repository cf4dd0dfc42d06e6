package donation

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusPickedUp  Status = "picked-up"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusPickedUp, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOrderable reports whether stock may still be reserved against the
// donation. An expired donation is never orderable regardless of quantity.
func (s Status) IsOrderable() bool {
	switch s {
	case StatusExpired, StatusCancelled, StatusPickedUp:
		return false
	default:
		return true
	}
}

type FoodType string

const (
	FoodTypeVegetables    FoodType = "vegetables"
	FoodTypeFruits        FoodType = "fruits"
	FoodTypeDairy         FoodType = "dairy"
	FoodTypeMeat          FoodType = "meat"
	FoodTypeBakery        FoodType = "bakery"
	FoodTypeCanned        FoodType = "canned"
	FoodTypeGrains        FoodType = "grains"
	FoodTypeBeverages     FoodType = "beverages"
	FoodTypeSnacks        FoodType = "snacks"
	FoodTypePreparedMeals FoodType = "prepared-meals"
	FoodTypeOther         FoodType = "other"
)

func (f FoodType) String() string {
	return string(f)
}

func (f FoodType) IsValid() bool {
	switch f {
	case FoodTypeVegetables, FoodTypeFruits, FoodTypeDairy, FoodTypeMeat,
		FoodTypeBakery, FoodTypeCanned, FoodTypeGrains, FoodTypeBeverages,
		FoodTypeSnacks, FoodTypePreparedMeals, FoodTypeOther:
		return true
	default:
		return false
	}
}

type Unit string

const (
	UnitKg      Unit = "kg"
	UnitGrams   Unit = "grams"
	UnitPieces  Unit = "pieces"
	UnitPackets Unit = "packets"
	UnitBottles Unit = "bottles"
	UnitCans    Unit = "cans"
	UnitLoaves  Unit = "loaves"
	UnitDozen   Unit = "dozen"
)

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitKg, UnitGrams, UnitPieces, UnitPackets, UnitBottles, UnitCans, UnitLoaves, UnitDozen:
		return true
	default:
		return false
	}
}
