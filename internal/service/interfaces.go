package service

import (
	"context"

	"restaurant-staffing/internal/domain"
)

// Repositories return (nil, nil) when the entity does not exist; the services
// translate that into a 404.

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, int, error)
	UpdateEmployee(ctx context.Context, e *domain.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
	DeleteAllEmployees(ctx context.Context) error
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context, limit, offset int) ([]domain.Restaurant, int, error)
	UpdateRestaurant(ctx context.Context, r *domain.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) error
	DeleteAllRestaurants(ctx context.Context) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserBySub(ctx context.Context, sub string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteAllUsers(ctx context.Context) error
}

// StaffingPublisher emits hire/fire/delete events. Services treat a nil
// publisher as disabled and never fail a request over a publish error.
type StaffingPublisher interface {
	PublishStaffing(ctx context.Context, event domain.StaffingEvent) error
}

type EmployeeServiceInterface interface {
	Create(ctx context.Context, content Payload) (*domain.Employee, *domain.Error)
	List(ctx context.Context, limit, offset int) (*domain.EmployeePage, *domain.Error)
	Get(ctx context.Context, id int64) (*domain.Employee, *domain.Error)
	UpdateFull(ctx context.Context, id int64, content Payload) (*domain.Employee, *domain.Error)
	UpdateSome(ctx context.Context, id int64, content Payload) (*domain.Employee, *domain.Error)
	Delete(ctx context.Context, id int64) *domain.Error
	DeleteAll(ctx context.Context) *domain.Error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, content Payload, owner string) (*domain.Restaurant, *domain.Error)
	List(ctx context.Context, limit, offset int) (*domain.RestaurantPage, *domain.Error)
	Get(ctx context.Context, id int64, subject string) (*domain.Restaurant, *domain.Error)
	UpdateFull(ctx context.Context, id int64, subject string, content Payload) (*domain.Restaurant, *domain.Error)
	UpdateSome(ctx context.Context, id int64, subject string, content Payload) (*domain.Restaurant, *domain.Error)
	Delete(ctx context.Context, id int64, subject string) *domain.Error
	Hire(ctx context.Context, restaurantID, employeeID int64, subject, base string) *domain.Error
	Fire(ctx context.Context, restaurantID, employeeID int64, subject string) *domain.Error
	ShareQR(ctx context.Context, id int64, subject, base string) ([]byte, *domain.Error)
	DeleteAll(ctx context.Context) *domain.Error
}

type UserServiceInterface interface {
	Ensure(ctx context.Context, sub string) (*domain.User, bool, *domain.Error)
	List(ctx context.Context) ([]domain.User, *domain.Error)
	DeleteAll(ctx context.Context) *domain.Error
}
