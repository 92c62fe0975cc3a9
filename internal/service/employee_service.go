package service

import (
	"context"

	"restaurant-staffing/internal/domain"
)

type EmployeeService struct {
	employees   EmployeeRepository
	restaurants RestaurantRepository
	publisher   StaffingPublisher
}

func NewEmployeeService(employees EmployeeRepository, restaurants RestaurantRepository, publisher StaffingPublisher) *EmployeeService {
	return &EmployeeService{
		employees:   employees,
		restaurants: restaurants,
		publisher:   publisher,
	}
}

func (s *EmployeeService) Create(ctx context.Context, content Payload) (*domain.Employee, *domain.Error) {
	if verr := ValidateEmployeeFull(content); verr != nil {
		return nil, verr
	}
	e := &domain.Employee{}
	ApplyEmployeeFull(content, e)
	if err := s.employees.CreateEmployee(ctx, e); err != nil {
		return nil, domain.Internal(err)
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context, limit, offset int) (*domain.EmployeePage, *domain.Error) {
	items, count, err := s.employees.ListEmployees(ctx, limit, offset)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &domain.EmployeePage{Count: count, Employees: items}, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int64) (*domain.Employee, *domain.Error) {
	e, err := s.employees.GetEmployee(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if e == nil {
		return nil, notFound("employee")
	}
	return e, nil
}

func (s *EmployeeService) UpdateFull(ctx context.Context, id int64, content Payload) (*domain.Employee, *domain.Error) {
	if verr := ValidateEmployeeFull(content); verr != nil {
		return nil, verr
	}
	e, serr := s.Get(ctx, id)
	if serr != nil {
		return nil, serr
	}
	ApplyEmployeeFull(content, e)
	if err := s.employees.UpdateEmployee(ctx, e); err != nil {
		return nil, domain.Internal(err)
	}
	return e, nil
}

func (s *EmployeeService) UpdateSome(ctx context.Context, id int64, content Payload) (*domain.Employee, *domain.Error) {
	if verr := ValidateEmployeeSome(content); verr != nil {
		return nil, verr
	}
	e, serr := s.Get(ctx, id)
	if serr != nil {
		return nil, serr
	}
	ApplyEmployeeSome(content, e)
	if err := s.employees.UpdateEmployee(ctx, e); err != nil {
		return nil, domain.Internal(err)
	}
	return e, nil
}

// Delete removes the employee, first severing the restaurant linkage when one
// exists. The two writes are separate read-modify-write calls, not a
// transaction.
func (s *EmployeeService) Delete(ctx context.Context, id int64) *domain.Error {
	e, serr := s.Get(ctx, id)
	if serr != nil {
		return serr
	}
	if e.Workplace != nil {
		r, err := s.restaurants.GetRestaurant(ctx, e.Workplace.ID)
		if err != nil {
			return domain.Internal(err)
		}
		if r != nil {
			if uerr := UnlinkEmployee(e, r); uerr != nil {
				return uerr
			}
			if err := s.restaurants.UpdateRestaurant(ctx, r); err != nil {
				return domain.Internal(err)
			}
			s.publish(ctx, domain.EventEmployeeFired, r.ID, e.ID)
		}
	}
	if err := s.employees.DeleteEmployee(ctx, id); err != nil {
		return domain.Internal(err)
	}
	return nil
}

func (s *EmployeeService) DeleteAll(ctx context.Context) *domain.Error {
	if err := s.employees.DeleteAllEmployees(ctx); err != nil {
		return domain.Internal(err)
	}
	return nil
}

func (s *EmployeeService) publish(ctx context.Context, eventType string, restaurantID, employeeID int64) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.PublishStaffing(ctx, domain.StaffingEvent{
		Type:         eventType,
		RestaurantID: restaurantID,
		EmployeeID:   employeeID,
		Timestamp:    timeNow(),
	})
}

var _ EmployeeServiceInterface = (*EmployeeService)(nil)
