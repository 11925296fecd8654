package oop_test

import (
	"fmt"

	"github.com/grazierShahid/OOP-context/oop"
)

// Runtime polymorphism: one slice, four dynamic types, four behaviors.
func ExampleWorker() {
	workers := []oop.Worker{
		oop.NewEmployee("Alice", 50000, "IT"),
		oop.NewManager("Bob", 80000, "IT", "DevTeam"),
		oop.NewDeveloper("Charlie", 60000, "IT", "Java"),
		oop.NewSeniorDeveloper("David", 90000, "IT", "Python", 8),
	}
	for _, w := range workers {
		fmt.Println(w.Work())
	}
	// Output:
	// Alice is working
	// Bob is managing team DevTeam
	// Charlie is coding in Java
	// David is leading development with 8 years of experience
}

// Encapsulation: the balance only moves through the guarded methods.
func ExampleBankAccount() {
	acc := oop.NewBankAccount("ACC001", "Alice Johnson", 1000)
	acc.Deposit(200)
	acc.Withdraw(150)
	acc.Withdraw(100000) // rejected, no effect
	fmt.Println(acc)
	// Output:
	// Account: ACC001, Owner: Alice Johnson, Balance: $1050.00
}

// Abstraction: callers hold the contract, not the concrete type.
func ExampleVehicular() {
	vehicles := []oop.Vehicular{
		oop.NewCar("Toyota", "Camry", 2023, 4, "petrol"),
		oop.NewMotorcycle("Honda", "CBR600RR", 2023, 600),
		oop.NewSportsCar("Ferrari", "F8", 2023, 2, 710, true),
	}
	for _, v := range vehicles {
		fmt.Printf("%s: %s (%.0f km/l)\n", v.Describe(), v.Start(), v.FuelEfficiency())
	}
	// Output:
	// 2023 Toyota Camry: car engine started with key ignition (0 km/l)
	// 2023 Honda CBR600RR: motorcycle started with kick start (25 km/l)
	// 2023 Ferrari F8: sports car engine roars to life (8 km/l)
}

// Composition: the car drives its owned parts.
func ExampleAdvancedCar() {
	car := oop.NewAdvancedCar("Mercedes", "S-Class", 2023, oop.NewEngine("V8", 450))
	fmt.Println(car.Describe())
	fmt.Println(car.Features())
	fmt.Println(car.Start())
	route, _ := car.Navigate("downtown mall")
	fmt.Println(route)
	fmt.Println(car.Stop())
	// Output:
	// 2023 Mercedes S-Class
	// air conditioning, power steering, ABS
	// V8 engine started (450 HP); advanced car is ready to drive
	// navigating from starting point to downtown mall
	// V8 engine stopped; advanced car stopped
}
