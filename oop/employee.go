package oop

import (
	"fmt"
	"sync/atomic"
)

// totalEmployees is package-level state, the closest Go gets to a Java-style
// static counter. Atomic because package state is visible to every goroutine
// in the process, parallel tests included.
var totalEmployees atomic.Int64

// Employee demonstrates encapsulation through package visibility: name and
// salary are unexported and only reachable via accessor methods, while
// Department is exported and freely mutable by callers.
type Employee struct {
	name       string
	salary     float64
	Department string
}

// NewEmployee is the constructor-shaped function Go uses in place of real
// constructors. It also bumps the package counter.
func NewEmployee(name string, salary float64, department string) *Employee {
	totalEmployees.Add(1)
	return &Employee{name: name, salary: salary, Department: department}
}

// Name returns the employee's name.
func (e *Employee) Name() string { return e.name }

// Salary returns the employee's salary.
func (e *Employee) Salary() float64 { return e.salary }

// TotalEmployees reports how many employees have been constructed so far.
func TotalEmployees() int { return int(totalEmployees.Load()) }

// Work describes what the employee is doing. Embedding types re-declare Work
// to override it; that re-declaration is Go's runtime polymorphism.
func (e *Employee) Work() string { return e.name + " is working" }

// Worker is the polymorphic contract every staff type satisfies.
type Worker interface {
	Work() string
}

// Manageable intentionally duplicates Worker's method set. Together they set
// up the diamond-problem discussion under TeamLead.
type Manageable interface {
	Work() string
}

// Manager embeds *Employee: single inheritance, Go style. The promoted
// Employee methods are available on Manager, and Work is overridden.
type Manager struct {
	*Employee
	team string
}

// NewManager builds a Manager on top of a fresh Employee.
func NewManager(name string, salary float64, department, team string) *Manager {
	return &Manager{Employee: NewEmployee(name, salary, department), team: team}
}

// Work overrides Employee.Work.
func (m *Manager) Work() string {
	return fmt.Sprintf("%s is managing team %s", m.Name(), m.team)
}

// Developer embeds *Employee alongside Manager: hierarchical inheritance,
// two siblings reusing the same base.
type Developer struct {
	*Employee
	language string
}

// NewDeveloper builds a Developer on top of a fresh Employee.
func NewDeveloper(name string, salary float64, department, language string) *Developer {
	return &Developer{Employee: NewEmployee(name, salary, department), language: language}
}

// Work overrides Employee.Work.
func (d *Developer) Work() string {
	return fmt.Sprintf("%s is coding in %s", d.Name(), d.language)
}

// SeniorDeveloper embeds *Developer, which embeds *Employee: multilevel
// inheritance. Promotion is transitive, so Name() still resolves.
type SeniorDeveloper struct {
	*Developer
	years int
}

// NewSeniorDeveloper builds a SeniorDeveloper on top of a fresh Developer.
func NewSeniorDeveloper(name string, salary float64, department, language string, years int) *SeniorDeveloper {
	return &SeniorDeveloper{
		Developer: NewDeveloper(name, salary, department, language),
		years:     years,
	}
}

// Work overrides Developer.Work.
func (sd *SeniorDeveloper) Work() string {
	return fmt.Sprintf("%s is leading development with %d years of experience", sd.Name(), sd.years)
}

// TeamLead satisfies both Worker and Manageable with a single Work method.
// This is why Go has no diamond problem: two interfaces demanding the same
// method are satisfied by one implementation, and conflicting promotions from
// double embedding must be resolved explicitly or they do not compile.
type TeamLead struct {
	*Employee
}

// NewTeamLead builds a TeamLead on top of a fresh Employee.
func NewTeamLead(name string, salary float64, department string) *TeamLead {
	return &TeamLead{Employee: NewEmployee(name, salary, department)}
}

// Work satisfies Worker and Manageable at once.
func (tl *TeamLead) Work() string {
	return fmt.Sprintf("team lead %s is doing both work and management", tl.Name())
}
