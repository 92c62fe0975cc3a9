package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-staffing/internal/domain"
	"restaurant-staffing/internal/service"
)

func TestAuthorizeOwner(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, Name: "Cafe", Owner: "sub123"}

	assert.Nil(t, service.AuthorizeOwner(rest, "sub123"))

	err := service.AuthorizeOwner(rest, "sub456")
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusForbidden, err.Status)
		body := err.Body.(map[string]string)
		assert.Equal(t, "You are not authorized to view this restaurant", body["Error"])
	}
}

func TestValidateHire(t *testing.T) {
	rest := &domain.Restaurant{ID: 1, Name: "Cafe", Owner: "sub123"}

	tests := []struct {
		name       string
		employee   *domain.Employee
		restaurant *domain.Restaurant
		wantStatus int
	}{
		{
			name:       "unemployed employee can be hired",
			employee:   &domain.Employee{ID: 4},
			restaurant: rest,
		},
		{
			name:       "missing employee",
			employee:   nil,
			restaurant: rest,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing restaurant",
			employee:   &domain.Employee{ID: 4},
			restaurant: nil,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "already employed elsewhere",
			employee: &domain.Employee{
				ID:        4,
				Workplace: &domain.EntityRef{ID: 77, Name: "Diner"},
			},
			restaurant: rest,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := service.ValidateHire(testCase.employee, testCase.restaurant)
			if testCase.wantStatus == 0 {
				assert.Nil(t, err)
			} else if assert.NotNil(t, err) {
				assert.Equal(t, testCase.wantStatus, err.Status)
			}
		})
	}
}

func TestValidateRemoval(t *testing.T) {
	rest := &domain.Restaurant{
		ID:        1,
		Owner:     "sub123",
		Employees: []domain.EntityRef{{ID: 4, Name: "Ann"}},
	}

	assert.Nil(t, service.ValidateRemoval(&domain.Employee{ID: 4}, rest))

	err := service.ValidateRemoval(&domain.Employee{ID: 5}, rest)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusNotFound, err.Status)
	}

	err = service.ValidateRemoval(nil, rest)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusNotFound, err.Status)
	}
}
