package domain

import "time"

// EntityRef is one side of a restaurant/employee linkage. Name is a snapshot
// taken when the link was made; it is not re-resolved if the referenced
// entity is later renamed.
type EntityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Self string `json:"self"`
}

type Employee struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Wage      float64    `json:"wage"`
	Position  string     `json:"position"`
	Workplace *EntityRef `json:"workplace"`
	Self      string     `json:"self,omitempty"`
}

type Restaurant struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Cost      string      `json:"cost"`
	Cuisine   string      `json:"cuisine"`
	Owner     string      `json:"owner"`
	Employees []EntityRef `json:"employees"`
	Self      string      `json:"self,omitempty"`
}

type User struct {
	ID   int64  `json:"id"`
	Sub  string `json:"sub"`
	Self string `json:"self,omitempty"`
}

// Costs are the only accepted restaurant cost ratings.
var Costs = []string{"$", "$$", "$$$", "$$$$"}

// MinimumWage is the floor every create/update path enforces on Employee.Wage.
const MinimumWage = 14.20

func ValidCost(cost string) bool {
	for _, c := range Costs {
		if cost == c {
			return true
		}
	}
	return false
}

type EmployeePage struct {
	Count     int        `json:"count"`
	Employees []Employee `json:"employees"`
	Next      string     `json:"next,omitempty"`
}

type RestaurantPage struct {
	Count       int          `json:"count"`
	Restaurants []Restaurant `json:"restaurants"`
	Next        string       `json:"next,omitempty"`
}

type StaffingEvent struct {
	Type         string    `json:"type"`
	RestaurantID int64     `json:"restaurant_id"`
	EmployeeID   int64     `json:"employee_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventEmployeeHired     = "employee_hired"
	EventEmployeeFired     = "employee_fired"
	EventRestaurantDeleted = "restaurant_deleted"
)
