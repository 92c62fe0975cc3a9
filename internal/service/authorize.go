package service

import (
	"net/http"

	"restaurant-staffing/internal/domain"
)

var (
	errForbidden = domain.Errorf(http.StatusForbidden,
		"You are not authorized to view this restaurant")
	errHireMissing = domain.Errorf(http.StatusNotFound,
		"The specified restaurant and/or employee does not exist")
	errAlreadyEmployed = domain.Errorf(http.StatusForbidden,
		"The employee already has a workplace")
)

// AuthorizeOwner gates every restaurant-scoped route, reads included:
// restaurants are private to the subject that created them.
func AuthorizeOwner(r *domain.Restaurant, subject string) *domain.Error {
	if r.Owner != subject {
		return errForbidden
	}
	return nil
}

// ValidateHire checks the preconditions for linking: both entities exist and
// the employee is currently unemployed.
func ValidateHire(e *domain.Employee, r *domain.Restaurant) *domain.Error {
	if e == nil || r == nil {
		return errHireMissing
	}
	if e.Workplace != nil {
		return errAlreadyEmployed
	}
	return nil
}

// ValidateRemoval checks that both entities exist and the employee currently
// appears in the restaurant's list.
func ValidateRemoval(e *domain.Employee, r *domain.Restaurant) *domain.Error {
	if e == nil || r == nil {
		return errLinkageNotFound
	}
	for _, ref := range r.Employees {
		if ref.ID == e.ID {
			return nil
		}
	}
	return errLinkageNotFound
}

func notFound(kind string) *domain.Error {
	return domain.Errorf(http.StatusNotFound,
		"No %s with this %s_id exists", kind, kind)
}
