package service

import (
	"fmt"
	"net/http"

	"restaurant-staffing/internal/domain"
)

var errLinkageNotFound = domain.Errorf(http.StatusNotFound,
	"No employee with this employee_id works at the restaurant with this restaurant_id")

// ApplyEmployeeFull copies the three domain attributes of a validated full
// payload onto the employee. The workplace link is never touched here: an
// existing employee keeps their employer, a fresh one starts unemployed.
func ApplyEmployeeFull(content Payload, e *domain.Employee) {
	e.Name, _ = content.stringField("name")
	e.Wage, _ = content.numberField("wage")
	e.Position, _ = content.stringField("position")
}

// ApplyRestaurantFull copies a validated full payload onto the restaurant.
// Employees defaults to an empty list on first write so the linkage engine
// can always append.
func ApplyRestaurantFull(content Payload, r *domain.Restaurant) {
	r.Name, _ = content.stringField("name")
	r.Cost, _ = content.stringField("cost")
	r.Cuisine, _ = content.stringField("cuisine")
	if r.Employees == nil {
		r.Employees = []domain.EntityRef{}
	}
}

// ApplyEmployeeSome merges only the fields present in a validated partial
// payload. Relationship fields can never appear here: validation caps the key
// count and workplace is not a domain attribute.
func ApplyEmployeeSome(content Payload, e *domain.Employee) {
	if name, ok := content.stringField("name"); ok {
		e.Name = name
	}
	if wage, ok := content.numberField("wage"); ok {
		e.Wage = wage
	}
	if position, ok := content.stringField("position"); ok {
		e.Position = position
	}
}

// ApplyRestaurantSome merges only the fields present in a validated partial
// payload.
func ApplyRestaurantSome(content Payload, r *domain.Restaurant) {
	if name, ok := content.stringField("name"); ok {
		r.Name = name
	}
	if cost, ok := content.stringField("cost"); ok {
		r.Cost = cost
	}
	if cuisine, ok := content.stringField("cuisine"); ok {
		r.Cuisine = cuisine
	}
}

// LinkEmployee records the hire on both sides: the employee's workplace and a
// new entry at the end of the restaurant's employee list. Both refs carry a
// name snapshot and a self link under base. Callers must have validated the
// hire first.
func LinkEmployee(r *domain.Restaurant, e *domain.Employee, base string) {
	e.Workplace = &domain.EntityRef{
		ID:   r.ID,
		Name: r.Name,
		Self: fmt.Sprintf("%s/restaurants/%d", base, r.ID),
	}
	r.Employees = append(r.Employees, domain.EntityRef{
		ID:   e.ID,
		Name: e.Name,
		Self: fmt.Sprintf("%s/employees/%d", base, e.ID),
	})
}

// UnlinkEmployee severs the linkage: the first list entry matching the
// employee's id is removed by position and the workplace is cleared. A
// missing entry is reported instead of silently ignored.
func UnlinkEmployee(e *domain.Employee, r *domain.Restaurant) *domain.Error {
	for i, ref := range r.Employees {
		if ref.ID == e.ID {
			r.Employees = append(r.Employees[:i], r.Employees[i+1:]...)
			e.Workplace = nil
			return nil
		}
	}
	return errLinkageNotFound
}
