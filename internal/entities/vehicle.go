package entities

// VehicleCategory — статическая тарифная категория транспорта.
// Неизменна на все время жизни процесса.
type VehicleCategory struct {
	Name      VehicleCategoryName
	PerKmRate float64
	MinPrice  int64
	MaxPrice  int64
}

type VehicleCategoryName string

const (
	VehicleSmall  VehicleCategoryName = "small"
	VehicleMedium VehicleCategoryName = "medium"
	VehicleLarge  VehicleCategoryName = "large"
)

func (n VehicleCategoryName) String() string {
	return string(n)
}

var vehicleCategories = map[VehicleCategoryName]VehicleCategory{
	VehicleSmall:  {Name: VehicleSmall, PerKmRate: 18, MinPrice: 400, MaxPrice: 1500},
	VehicleMedium: {Name: VehicleMedium, PerKmRate: 25, MinPrice: 700, MaxPrice: 2500},
	VehicleLarge:  {Name: VehicleLarge, PerKmRate: 35, MinPrice: 1200, MaxPrice: 4000},
}

// VehicleCategoryByName возвращает тариф категории и признак её существования.
func VehicleCategoryByName(name VehicleCategoryName) (VehicleCategory, bool) {
	c, ok := vehicleCategories[name]
	return c, ok
}

// VehicleCategories возвращает все категории в фиксированном порядке.
func VehicleCategories() []VehicleCategory {
	return []VehicleCategory{
		vehicleCategories[VehicleSmall],
		vehicleCategories[VehicleMedium],
		vehicleCategories[VehicleLarge],
	}
}
