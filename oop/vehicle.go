package oop

import "fmt"

// Vehicular is the abstraction contract every vehicle satisfies. Nothing
// declares the relationship; having the method set is enough.
type Vehicular interface {
	Start() string
	Stop() string
	Describe() string
	FuelEfficiency() float64
}

// Drivable captures driving behavior separately from the vehicle contract.
type Drivable interface {
	Accelerate() string
	Brake() string
	Turn(direction string) string
}

// Maintainable captures the maintenance concern. Not every vehicle type
// implements it, which the type-assertion demos rely on.
type Maintainable interface {
	PerformMaintenance() string
	NeedsMaintenance() bool
}

// Vehicle is the base struct the concrete vehicles embed, playing the role
// an abstract class would elsewhere. It carries shared identity only.
type Vehicle struct {
	Brand string
	Model string
	Year  int
}

// NewVehicle builds the shared base.
func NewVehicle(brand, model string, year int) Vehicle {
	return Vehicle{Brand: brand, Model: model, Year: year}
}

// Describe returns the identity line shared by all embedding types.
func (v *Vehicle) Describe() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Brand, v.Model)
}

// maintenanceMileage is the odometer reading past which a car wants service.
const maintenanceMileage = 10000

// Car embeds Vehicle by value and fills in the Vehicular, Drivable and
// Maintainable method sets.
type Car struct {
	Vehicle
	doors    int
	fuelType string
	mileage  float64
}

// NewCar builds a Car with zero mileage.
func NewCar(brand, model string, year, doors int, fuelType string) *Car {
	return &Car{
		Vehicle:  NewVehicle(brand, model, year),
		doors:    doors,
		fuelType: fuelType,
	}
}

// Start satisfies Vehicular.
func (c *Car) Start() string { return "car engine started with key ignition" }

// Stop satisfies Vehicular.
func (c *Car) Stop() string { return "car engine stopped" }

// FuelEfficiency reports km per liter, derived from mileage. A never-driven
// car reports zero.
func (c *Car) FuelEfficiency() float64 {
	if c.mileage > 0 {
		return c.mileage / 100
	}
	return 0
}

// Accelerate satisfies Drivable.
func (c *Car) Accelerate() string { return "car is accelerating smoothly" }

// Brake satisfies Drivable.
func (c *Car) Brake() string { return "car brakes applied" }

// Turn satisfies Drivable.
func (c *Car) Turn(direction string) string { return "car turning " + direction }

// PerformMaintenance satisfies Maintainable.
func (c *Car) PerformMaintenance() string {
	return "performing car maintenance: oil change, tire check"
}

// NeedsMaintenance reports whether the odometer passed the service threshold.
func (c *Car) NeedsMaintenance() bool { return c.mileage > maintenanceMileage }

// AddMileage advances the odometer.
func (c *Car) AddMileage(km float64) { c.mileage += km }

// Mileage returns the odometer reading.
func (c *Car) Mileage() float64 { return c.mileage }

// Motorcycle is Car's sibling: a second type embedding the same Vehicle base
// (hierarchical inheritance) with its own behavior.
type Motorcycle struct {
	Vehicle
	engineCC int
}

// NewMotorcycle builds a Motorcycle.
func NewMotorcycle(brand, model string, year, engineCC int) *Motorcycle {
	return &Motorcycle{Vehicle: NewVehicle(brand, model, year), engineCC: engineCC}
}

// Start satisfies Vehicular.
func (m *Motorcycle) Start() string { return "motorcycle started with kick start" }

// Stop satisfies Vehicular.
func (m *Motorcycle) Stop() string { return "motorcycle engine stopped" }

// FuelEfficiency reports km per liter. Smaller engines do better.
func (m *Motorcycle) FuelEfficiency() float64 {
	if m.engineCC < 200 {
		return 40
	}
	return 25
}

// Accelerate satisfies Drivable.
func (m *Motorcycle) Accelerate() string { return "motorcycle accelerating quickly" }

// Brake satisfies Drivable.
func (m *Motorcycle) Brake() string { return "motorcycle brakes applied" }

// Turn satisfies Drivable. Motorcycles lean.
func (m *Motorcycle) Turn(direction string) string {
	return fmt.Sprintf("motorcycle leaning %s to turn", direction)
}

// SportsCar embeds *Car, which embeds Vehicle: multilevel inheritance.
// Re-declared methods override the Car versions; everything else promotes
// through unchanged.
type SportsCar struct {
	*Car
	horsepower   int
	turbocharged bool
}

// NewSportsCar builds a SportsCar. Sports cars take petrol.
func NewSportsCar(brand, model string, year, doors, horsepower int, turbocharged bool) *SportsCar {
	return &SportsCar{
		Car:          NewCar(brand, model, year, doors, "petrol"),
		horsepower:   horsepower,
		turbocharged: turbocharged,
	}
}

// Start overrides Car.Start.
func (sc *SportsCar) Start() string { return "sports car engine roars to life" }

// Accelerate overrides Car.Accelerate.
func (sc *SportsCar) Accelerate() string {
	return fmt.Sprintf("sports car accelerating with %d HP", sc.horsepower)
}

// FuelEfficiency overrides the mileage-derived Car figure with flat numbers;
// turbo costs fuel.
func (sc *SportsCar) FuelEfficiency() float64 {
	if sc.turbocharged {
		return 8
	}
	return 12
}

// SportMode is specific to SportsCar and only reachable after a type
// assertion when holding a Vehicular.
func (sc *SportsCar) SportMode() string { return "sport mode activated" }
