package service

import (
	"context"
	"time"

	"restaurant-staffing/internal/domain"
)

// timeNow is stubbed in tests.
var timeNow = time.Now

type RestaurantService struct {
	restaurants RestaurantRepository
	employees   EmployeeRepository
	publisher   StaffingPublisher
	qr          QRGenerator
}

func NewRestaurantService(restaurants RestaurantRepository, employees EmployeeRepository, publisher StaffingPublisher, qr QRGenerator) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		employees:   employees,
		publisher:   publisher,
		qr:          qr,
	}
}

// Create validates the payload and stores a new restaurant owned by the token
// subject. The owner is set exactly once here and never reassigned.
func (s *RestaurantService) Create(ctx context.Context, content Payload, owner string) (*domain.Restaurant, *domain.Error) {
	if verr := ValidateRestaurantFull(content); verr != nil {
		return nil, verr
	}
	r := &domain.Restaurant{Owner: owner}
	ApplyRestaurantFull(content, r)
	if err := s.restaurants.CreateRestaurant(ctx, r); err != nil {
		return nil, domain.Internal(err)
	}
	return r, nil
}

func (s *RestaurantService) List(ctx context.Context, limit, offset int) (*domain.RestaurantPage, *domain.Error) {
	items, count, err := s.restaurants.ListRestaurants(ctx, limit, offset)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &domain.RestaurantPage{Count: count, Restaurants: items}, nil
}

// Get returns a single restaurant, owner-gated: restaurants are private even
// for reading.
func (s *RestaurantService) Get(ctx context.Context, id int64, subject string) (*domain.Restaurant, *domain.Error) {
	r, serr := s.fetch(ctx, id)
	if serr != nil {
		return nil, serr
	}
	if aerr := AuthorizeOwner(r, subject); aerr != nil {
		return nil, aerr
	}
	return r, nil
}

func (s *RestaurantService) UpdateFull(ctx context.Context, id int64, subject string, content Payload) (*domain.Restaurant, *domain.Error) {
	r, serr := s.Get(ctx, id, subject)
	if serr != nil {
		return nil, serr
	}
	if verr := ValidateRestaurantFull(content); verr != nil {
		return nil, verr
	}
	ApplyRestaurantFull(content, r)
	if err := s.restaurants.UpdateRestaurant(ctx, r); err != nil {
		return nil, domain.Internal(err)
	}
	return r, nil
}

func (s *RestaurantService) UpdateSome(ctx context.Context, id int64, subject string, content Payload) (*domain.Restaurant, *domain.Error) {
	r, serr := s.Get(ctx, id, subject)
	if serr != nil {
		return nil, serr
	}
	if verr := ValidateRestaurantSome(content); verr != nil {
		return nil, verr
	}
	ApplyRestaurantSome(content, r)
	if err := s.restaurants.UpdateRestaurant(ctx, r); err != nil {
		return nil, domain.Internal(err)
	}
	return r, nil
}

// Delete removes the restaurant after clearing the workplace of every linked
// employee. The per-employee writes and the final delete are separate,
// non-transactional store calls.
func (s *RestaurantService) Delete(ctx context.Context, id int64, subject string) *domain.Error {
	r, serr := s.Get(ctx, id, subject)
	if serr != nil {
		return serr
	}
	for _, ref := range r.Employees {
		e, err := s.employees.GetEmployee(ctx, ref.ID)
		if err != nil {
			return domain.Internal(err)
		}
		if e == nil {
			continue
		}
		e.Workplace = nil
		if err := s.employees.UpdateEmployee(ctx, e); err != nil {
			return domain.Internal(err)
		}
	}
	if err := s.restaurants.DeleteRestaurant(ctx, id); err != nil {
		return domain.Internal(err)
	}
	s.publish(ctx, domain.EventRestaurantDeleted, id, 0)
	return nil
}

// Hire links the employee to the restaurant. Both entities are re-read,
// mutated in memory and written back without a transaction.
func (s *RestaurantService) Hire(ctx context.Context, restaurantID, employeeID int64, subject, base string) *domain.Error {
	r, e, serr := s.pair(ctx, restaurantID, employeeID)
	if serr != nil {
		return serr
	}
	if r != nil {
		if aerr := AuthorizeOwner(r, subject); aerr != nil {
			return aerr
		}
	}
	if verr := ValidateHire(e, r); verr != nil {
		return verr
	}
	LinkEmployee(r, e, base)
	if err := s.restaurants.UpdateRestaurant(ctx, r); err != nil {
		return domain.Internal(err)
	}
	if err := s.employees.UpdateEmployee(ctx, e); err != nil {
		return domain.Internal(err)
	}
	s.publish(ctx, domain.EventEmployeeHired, r.ID, e.ID)
	return nil
}

// Fire severs the linkage between the employee and the restaurant.
func (s *RestaurantService) Fire(ctx context.Context, restaurantID, employeeID int64, subject string) *domain.Error {
	r, e, serr := s.pair(ctx, restaurantID, employeeID)
	if serr != nil {
		return serr
	}
	if r != nil {
		if aerr := AuthorizeOwner(r, subject); aerr != nil {
			return aerr
		}
	}
	if verr := ValidateRemoval(e, r); verr != nil {
		return verr
	}
	if uerr := UnlinkEmployee(e, r); uerr != nil {
		return uerr
	}
	if err := s.restaurants.UpdateRestaurant(ctx, r); err != nil {
		return domain.Internal(err)
	}
	if err := s.employees.UpdateEmployee(ctx, e); err != nil {
		return domain.Internal(err)
	}
	s.publish(ctx, domain.EventEmployeeFired, r.ID, e.ID)
	return nil
}

// ShareQR renders a QR png of the restaurant's public link for its owner.
func (s *RestaurantService) ShareQR(ctx context.Context, id int64, subject, base string) ([]byte, *domain.Error) {
	r, serr := s.Get(ctx, id, subject)
	if serr != nil {
		return nil, serr
	}
	png, err := s.qr.Generate(base, r.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return png, nil
}

func (s *RestaurantService) DeleteAll(ctx context.Context) *domain.Error {
	if err := s.restaurants.DeleteAllRestaurants(ctx); err != nil {
		return domain.Internal(err)
	}
	return nil
}

func (s *RestaurantService) fetch(ctx context.Context, id int64) (*domain.Restaurant, *domain.Error) {
	r, err := s.restaurants.GetRestaurant(ctx, id)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if r == nil {
		return nil, notFound("restaurant")
	}
	return r, nil
}

func (s *RestaurantService) pair(ctx context.Context, restaurantID, employeeID int64) (*domain.Restaurant, *domain.Employee, *domain.Error) {
	r, err := s.restaurants.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, nil, domain.Internal(err)
	}
	e, err := s.employees.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, nil, domain.Internal(err)
	}
	return r, e, nil
}

func (s *RestaurantService) publish(ctx context.Context, eventType string, restaurantID, employeeID int64) {
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

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
