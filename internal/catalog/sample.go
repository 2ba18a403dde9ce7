package catalog

import "github.com/hitoshi/puntocar/internal/model"

// sampleCars はカタログ取得失敗時のフォールバック、およびseedサブコマンドの
// 投入データとなる固定の12件のサンプルセット。
var sampleCars = []model.Car{
	{
		ID:           "car-001",
		Brand:        "Toyota",
		Model:        "Corolla XEI 2.0 CVT",
		Year:         2022,
		Price:        25900,
		Mileage:      15000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "White",
		Description:  "Excellent condition, like new. Single owner, full service history.",
		Images:       []string{"https://images.unsplash.com/photo-1621339011221-16089853905c?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-002",
		Brand:        "Honda",
		Model:        "Civic EX",
		Year:         2021,
		Price:        27800,
		Mileage:      30000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Black",
		Description:  "Well maintained, one owner.",
		Images:       []string{"https://images.unsplash.com/photo-1594508601248-20d755714341?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-003",
		Brand:        "Volkswagen",
		Model:        "Golf GTI",
		Year:         2023,
		Price:        42500,
		Mileage:      5000,
		Transmission: "Manual",
		Fuel:         "Gasoline",
		Color:        "Red",
		Description:  "Sporty and reliable.",
		Images:       []string{"https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-004",
		Brand:        "Ford",
		Model:        "Mustang GT V8 Premium Performance",
		Year:         2020,
		Price:        58900,
		Mileage:      20000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Blue",
		Description:  "Iconic muscle car, raw power.",
		Images:       []string{"https://images.unsplash.com/photo-1584345604481-0304e76993a4?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-005",
		Brand:        "BMW",
		Model:        "320i M Sport",
		Year:         2022,
		Price:        52000,
		Mileage:      12000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Grey",
		Description:  "Luxury and performance combined.",
		Images:       []string{"https://images.unsplash.com/photo-1555214107-f2e7c485a488?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-006",
		Brand:        "Chevrolet",
		Model:        "Cruze LTZ",
		Year:         2019,
		Price:        26900,
		Mileage:      45000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Silver",
		Description:  "Great family sedan at a fair price.",
		Images:       []string{"https://images.unsplash.com/photo-1552519507-da3b142c6e3d?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-007",
		Brand:        "Audi",
		Model:        "A4 45 TFSI",
		Year:         2021,
		Price:        49500,
		Mileage:      18000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Black",
		Description:  "Quattro drive, premium interior.",
		Images:       []string{"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-008",
		Brand:        "Mercedes-Benz",
		Model:        "C300 AMG Line",
		Year:         2022,
		Price:        61500,
		Mileage:      9000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "White",
		Description:  "AMG styling package, panoramic roof.",
		Images:       []string{"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-009",
		Brand:        "Peugeot",
		Model:        "208 GT",
		Year:         2023,
		Price:        28400,
		Mileage:      3000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Yellow",
		Description:  "Practically new city car with warranty.",
		Images:       []string{"https://images.unsplash.com/photo-1617814076367-b759c7d7e738?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-010",
		Brand:        "Fiat",
		Model:        "Cronos Precision",
		Year:         2022,
		Price:        27200,
		Mileage:      22000,
		Transmission: "Manual",
		Fuel:         "Flex",
		Color:        "Grey",
		Description:  "Economical and spacious.",
		Images:       []string{"https://images.unsplash.com/photo-1549317661-bd348a54c2b1?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-011",
		Brand:        "Renault",
		Model:        "Sandero RS",
		Year:         2020,
		Price:        29800,
		Mileage:      38000,
		Transmission: "Manual",
		Fuel:         "Gasoline",
		Color:        "Red",
		Description:  "Fun hot hatch, well cared for.",
		Images:       []string{"https://images.unsplash.com/photo-1502877338535-766e1452684a?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
	{
		ID:           "car-012",
		Brand:        "Porsche",
		Model:        "911 Carrera",
		Year:         2021,
		Price:        125000,
		Mileage:      7000,
		Transmission: "Automatic",
		Fuel:         "Gasoline",
		Color:        "Green",
		Description:  "Collector condition, garage kept.",
		Images:       []string{"https://images.unsplash.com/photo-1503376780353-7e6692767b70?q=80&w=1000&auto=format&fit=crop"},
		Status:       model.CarStatusAvailable,
	},
}

// SampleCars は組み込みサンプルセットのコピーを返す。
// 呼び出し側の変更が元データに波及しないよう、常に新しいスライスを返す。
func SampleCars() []model.Car {
	cars := make([]model.Car, len(sampleCars))
	copy(cars, sampleCars)
	return cars
}
