package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-staffing/internal/domain"
	"restaurant-staffing/internal/service"
)

func TestApplyEmployeeFull(t *testing.T) {
	content := service.Payload{"name": "Ann", "wage": 16.5, "position": "cook"}

	t.Run("fresh employee starts unemployed", func(t *testing.T) {
		e := &domain.Employee{}
		service.ApplyEmployeeFull(content, e)

		assert.Equal(t, "Ann", e.Name)
		assert.Equal(t, 16.5, e.Wage)
		assert.Equal(t, "cook", e.Position)
		assert.Nil(t, e.Workplace)
	})

	t.Run("existing employee keeps the workplace link", func(t *testing.T) {
		e := &domain.Employee{
			ID:        4,
			Name:      "Old Name",
			Workplace: &domain.EntityRef{ID: 9, Name: "Cafe"},
		}
		service.ApplyEmployeeFull(content, e)

		assert.Equal(t, "Ann", e.Name)
		if assert.NotNil(t, e.Workplace) {
			assert.Equal(t, int64(9), e.Workplace.ID)
		}
	})
}

func TestApplyRestaurantFull(t *testing.T) {
	content := service.Payload{"name": "Cafe", "cost": "$$", "cuisine": "French"}

	t.Run("fresh restaurant gets an empty employee list", func(t *testing.T) {
		r := &domain.Restaurant{Owner: "sub123"}
		service.ApplyRestaurantFull(content, r)

		assert.Equal(t, "Cafe", r.Name)
		assert.Equal(t, "$$", r.Cost)
		assert.Equal(t, "French", r.Cuisine)
		assert.Equal(t, "sub123", r.Owner)
		assert.NotNil(t, r.Employees)
		assert.Empty(t, r.Employees)
	})

	t.Run("existing employee list survives a full update", func(t *testing.T) {
		r := &domain.Restaurant{
			Employees: []domain.EntityRef{{ID: 2, Name: "Ann"}},
		}
		service.ApplyRestaurantFull(content, r)

		assert.Len(t, r.Employees, 1)
	})
}

func TestApplySome(t *testing.T) {
	e := &domain.Employee{Name: "Ann", Wage: 15, Position: "cook",
		Workplace: &domain.EntityRef{ID: 9}}
	service.ApplyEmployeeSome(service.Payload{"wage": 18.0}, e)

	assert.Equal(t, "Ann", e.Name)
	assert.Equal(t, 18.0, e.Wage)
	assert.NotNil(t, e.Workplace)

	r := &domain.Restaurant{Name: "Cafe", Cost: "$$", Cuisine: "French", Owner: "sub123"}
	service.ApplyRestaurantSome(service.Payload{"cost": "$$$", "cuisine": "Thai"}, r)

	assert.Equal(t, "Cafe", r.Name)
	assert.Equal(t, "$$$", r.Cost)
	assert.Equal(t, "Thai", r.Cuisine)
	assert.Equal(t, "sub123", r.Owner)
}

func TestLinkUnlinkRoundTrip(t *testing.T) {
	r := &domain.Restaurant{ID: 9, Name: "Cafe", Employees: []domain.EntityRef{}}
	e := &domain.Employee{ID: 4, Name: "Ann"}

	service.LinkEmployee(r, e, "http://localhost:8080")

	if assert.NotNil(t, e.Workplace) {
		assert.Equal(t, int64(9), e.Workplace.ID)
		assert.Equal(t, "Cafe", e.Workplace.Name)
		assert.Equal(t, "http://localhost:8080/restaurants/9", e.Workplace.Self)
	}
	if assert.Len(t, r.Employees, 1) {
		assert.Equal(t, int64(4), r.Employees[0].ID)
		assert.Equal(t, "Ann", r.Employees[0].Name)
		assert.Equal(t, "http://localhost:8080/employees/4", r.Employees[0].Self)
	}

	err := service.UnlinkEmployee(e, r)
	assert.Nil(t, err)
	assert.Nil(t, e.Workplace)
	assert.Empty(t, r.Employees)

	// A second unlink is not a silent no-op.
	err = service.UnlinkEmployee(e, r)
	if assert.NotNil(t, err) {
		assert.Equal(t, http.StatusNotFound, err.Status)
	}
}

func TestUnlinkRemovesOnlyTheMatchingEntry(t *testing.T) {
	r := &domain.Restaurant{ID: 9, Name: "Cafe", Employees: []domain.EntityRef{
		{ID: 1, Name: "Ann"},
		{ID: 2, Name: "Bea"},
		{ID: 3, Name: "Cal"},
	}}
	e := &domain.Employee{ID: 2, Name: "Bea", Workplace: &domain.EntityRef{ID: 9}}

	err := service.UnlinkEmployee(e, r)
	assert.Nil(t, err)
	assert.Nil(t, e.Workplace)
	if assert.Len(t, r.Employees, 2) {
		assert.Equal(t, int64(1), r.Employees[0].ID)
		assert.Equal(t, int64(3), r.Employees[1].ID)
	}
}
