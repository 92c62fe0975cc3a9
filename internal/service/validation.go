package service

import (
	"net/http"

	"restaurant-staffing/internal/domain"
)

// Payload is a decoded JSON request body. Validation works on the raw map so
// that key counts and attribute presence can be checked before anything is
// copied onto a typed entity.
type Payload map[string]interface{}

func (p Payload) stringField(key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (p Payload) numberField(key string) (float64, bool) {
	v, ok := p[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(float64)
	return n, ok
}

var (
	errExtraneous = domain.Errorf(http.StatusBadRequest,
		"The request object includes extraneous attributes")
	errMissing = domain.Errorf(http.StatusBadRequest,
		"The request object is missing at least one of the required attributes")
	errBelowMinimumWage = domain.Errorf(http.StatusBadRequest,
		"The 'wage' value must not be less than %.2f", domain.MinimumWage)
	errInvalidCost = domain.Errorf(http.StatusBadRequest,
		"The 'cost' value must equal $, $$, $$$, or $$$$")
)

func useFullUpdateError(kind string) *domain.Error {
	return domain.Errorf(http.StatusBadRequest,
		"The request object includes all three attributes. Please use a PUT request to update all three attributes of %s", kind)
}

// ValidateEmployeeFull checks a create/PUT employee payload: exactly the
// three domain attributes, correctly typed, wage at or above the floor.
func ValidateEmployeeFull(content Payload) *domain.Error {
	if len(content) > 3 {
		return errExtraneous
	}
	if _, ok := content.stringField("name"); !ok {
		return errMissing
	}
	if _, ok := content.stringField("position"); !ok {
		return errMissing
	}
	wage, ok := content.numberField("wage")
	if !ok {
		return errMissing
	}
	if wage < domain.MinimumWage {
		return errBelowMinimumWage
	}
	return nil
}

// ValidateRestaurantFull checks a create/PUT restaurant payload.
func ValidateRestaurantFull(content Payload) *domain.Error {
	if len(content) > 3 {
		return errExtraneous
	}
	if _, ok := content.stringField("name"); !ok {
		return errMissing
	}
	if _, ok := content.stringField("cuisine"); !ok {
		return errMissing
	}
	cost, ok := content.stringField("cost")
	if !ok {
		return errMissing
	}
	if !domain.ValidCost(cost) {
		return errInvalidCost
	}
	return nil
}

// ValidateEmployeeSome checks a PATCH employee payload. A patch carrying all
// three domain attributes must go through the full-update path instead.
func ValidateEmployeeSome(content Payload) *domain.Error {
	if len(content) > 3 {
		return errExtraneous
	}
	_, hasName := content["name"]
	_, hasWage := content["wage"]
	_, hasPosition := content["position"]
	if hasName && hasWage && hasPosition {
		return useFullUpdateError("an employee")
	}
	if hasWage {
		wage, ok := content.numberField("wage")
		if !ok || wage < domain.MinimumWage {
			return errBelowMinimumWage
		}
	}
	return nil
}

// ValidateRestaurantSome checks a PATCH restaurant payload.
func ValidateRestaurantSome(content Payload) *domain.Error {
	if len(content) > 3 {
		return errExtraneous
	}
	_, hasName := content["name"]
	_, hasCost := content["cost"]
	_, hasCuisine := content["cuisine"]
	if hasName && hasCost && hasCuisine {
		return useFullUpdateError("a restaurant")
	}
	if hasCost {
		cost, ok := content.stringField("cost")
		if !ok || !domain.ValidCost(cost) {
			return errInvalidCost
		}
	}
	return nil
}
