package oop

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEngineOff is returned by AdvancedCar.Navigate when the engine is not
// running.
var ErrEngineOff = errors.New("oop: engine is off")

// Engine is a part, not a vehicle. AdvancedCar owns one instead of embedding
// it; that is the has-a relationship this chapter is about.
type Engine struct {
	kind       string
	horsepower int
	running    bool
}

// NewEngine builds a stopped engine.
func NewEngine(kind string, horsepower int) *Engine {
	return &Engine{kind: kind, horsepower: horsepower}
}

// Start turns the engine over.
func (e *Engine) Start() string {
	e.running = true
	return fmt.Sprintf("%s engine started (%d HP)", e.kind, e.horsepower)
}

// Stop shuts the engine down.
func (e *Engine) Stop() string {
	e.running = false
	return fmt.Sprintf("%s engine stopped", e.kind)
}

// Running reports whether the engine is on.
func (e *Engine) Running() bool { return e.running }

// GPS is the second owned part.
type GPS struct {
	location string
}

// NewGPS builds a GPS with an unknown position.
func NewGPS() *GPS { return &GPS{location: "unknown"} }

// UpdateLocation records the current position.
func (g *GPS) UpdateLocation(location string) { g.location = location }

// Location returns the last recorded position.
func (g *GPS) Location() string { return g.location }

// Route describes a route from the current position.
func (g *GPS) Route(destination string) string {
	return fmt.Sprintf("navigating from %s to %s", g.location, destination)
}

// AdvancedCar mixes both reuse styles: it embeds Vehicle (is-a) and owns an
// Engine and a GPS (has-a). The owned parts stay invisible to callers; only
// the car's own methods touch them.
type AdvancedCar struct {
	Vehicle
	engine   *Engine
	gps      *GPS
	features []string
}

// NewAdvancedCar builds a car around an existing engine.
func NewAdvancedCar(brand, model string, year int, engine *Engine) *AdvancedCar {
	return &AdvancedCar{
		Vehicle:  NewVehicle(brand, model, year),
		engine:   engine,
		gps:      NewGPS(),
		features: []string{"air conditioning", "power steering", "ABS"},
	}
}

// Start delegates to the owned engine and resets the GPS.
func (a *AdvancedCar) Start() string {
	started := a.engine.Start()
	a.gps.UpdateLocation("starting point")
	return started + "; advanced car is ready to drive"
}

// Stop delegates to the owned engine.
func (a *AdvancedCar) Stop() string {
	return a.engine.Stop() + "; advanced car stopped"
}

// FuelEfficiency satisfies Vehicular.
func (a *AdvancedCar) FuelEfficiency() float64 { return 15 }

// Navigate routes to destination. The engine must be running.
func (a *AdvancedCar) Navigate(destination string) (string, error) {
	if !a.engine.Running() {
		return "", ErrEngineOff
	}
	return a.gps.Route(destination), nil
}

// Features lists the car's features as a single line.
func (a *AdvancedCar) Features() string {
	return strings.Join(a.features, ", ")
}
