package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restaurant-staffing/internal/api/http"
	"restaurant-staffing/internal/auth"
	"restaurant-staffing/internal/domain"
	"restaurant-staffing/internal/mocks"
	"restaurant-staffing/internal/service"
)

type testAPI struct {
	router      http.Handler
	verifier    *mocks.TokenVerifier
	employees   *mocks.EmployeeRepository
	restaurants *mocks.RestaurantRepository
	users       *mocks.UserRepository
}

// newTestAPI wires real services over repository mocks, so requests exercise
// the full handler, validation and linkage path.
func newTestAPI(t *testing.T) *testAPI {
	verifier := mocks.NewTokenVerifier(t)
	employees := mocks.NewEmployeeRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	users := mocks.NewUserRepository(t)

	handler := httpapi.NewHandler(
		service.NewEmployeeService(employees, restaurants, nil),
		service.NewRestaurantService(restaurants, employees, nil, nil),
		service.NewUserService(users),
		verifier,
	)
	return &testAPI{
		router:      httpapi.NewRouter(handler),
		verifier:    verifier,
		employees:   employees,
		restaurants: restaurants,
		users:       users,
	}
}

func (a *testAPI) do(method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) authAs(subject string) {
	a.verifier.On("VerifyRequest", mock.Anything).
		Return(&auth.Claims{Subject: subject}, nil)
}

func (a *testAPI) authFails(err *domain.Error) {
	a.verifier.On("VerifyRequest", mock.Anything).Return(nil, err)
}

func TestCreateRestaurantEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub123")
	api.restaurants.On("CreateRestaurant", mock.Anything, mock.AnythingOfType("*domain.Restaurant")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Restaurant).ID = 9
		}).
		Return(nil).Once()

	rec := api.do("POST", "/restaurants",
		map[string]interface{}{"name": "Cafe", "cost": "$$", "cuisine": "French"}, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, "sub123", body["owner"])
	assert.Equal(t, "http://example.com/restaurants/9", body["self"])
}

func TestCreateRestaurantRejectsBadPayload(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub123")

	rec := api.do("POST", "/restaurants",
		map[string]interface{}{"name": "Cafe", "cost": "cheap", "cuisine": "French"}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The 'cost' value must equal")
}

func TestGetRestaurantOwnerPrivate(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub456")
	api.restaurants.On("GetRestaurant", mock.Anything, int64(9)).
		Return(&domain.Restaurant{ID: 9, Name: "Cafe", Owner: "sub123"}, nil).Once()

	rec := api.do("GET", "/restaurants/9", nil, nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are not authorized to view this restaurant")
}

func TestRestaurantRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)
	api.authFails(domain.Errorf(http.StatusUnauthorized, "Missing token"))

	rec := api.do("GET", "/restaurants", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing token")
}

func TestAcceptHeaderGate(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do("GET", "/employees", nil, map[string]string{"Accept": "text/html"})

	assert.Equal(t, http.StatusNotAcceptable, rec.Code)
	assert.Contains(t, rec.Body.String(), "This endpoint only supports the return of JSON objects")
}

func TestCreateEmployeeNeedsNoToken(t *testing.T) {
	api := newTestAPI(t)
	api.employees.On("CreateEmployee", mock.Anything, mock.AnythingOfType("*domain.Employee")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Employee).ID = 4
		}).
		Return(nil).Once()

	rec := api.do("POST", "/employees",
		map[string]interface{}{"name": "Ann", "wage": 15.0, "position": "cook"}, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "http://example.com/employees/4", body["self"])
}

func TestCreateEmployeeRejectsMalformedJSON(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest("POST", "/employees", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "The request body must be a valid JSON object")
}

func TestListEmployeesPagination(t *testing.T) {
	api := newTestAPI(t)

	stored := make([]domain.Employee, 5)
	for i := range stored {
		stored[i] = domain.Employee{ID: int64(i + 1), Name: fmt.Sprintf("E%d", i+1),
			Wage: 15, Position: "cook"}
	}
	api.employees.On("ListEmployees", mock.Anything, 5, 0).Return(stored, 7, nil).Once()

	rec := api.do("GET", "/employees", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Count     int               `json:"count"`
		Employees []domain.Employee `json:"employees"`
		Next      string            `json:"next"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 7, page.Count)
	assert.Len(t, page.Employees, 5)
	assert.Equal(t, "http://example.com/employees?limit=5&offset=5", page.Next)
	assert.Equal(t, "http://example.com/employees/1", page.Employees[0].Self)
}

func TestListEmployeesLastPageHasNoNextLink(t *testing.T) {
	api := newTestAPI(t)
	api.employees.On("ListEmployees", mock.Anything, 5, 5).
		Return([]domain.Employee{{ID: 6, Name: "Fay", Wage: 15, Position: "cook"}}, 6, nil).Once()

	rec := api.do("GET", "/employees?limit=5&offset=5", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"next"`)
}

func TestHireEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub123")

	rest := &domain.Restaurant{ID: 9, Name: "Cafe", Owner: "sub123",
		Employees: []domain.EntityRef{}}
	employee := &domain.Employee{ID: 4, Name: "Ann", Wage: 15, Position: "cook"}

	api.restaurants.On("GetRestaurant", mock.Anything, int64(9)).Return(rest, nil).Once()
	api.employees.On("GetEmployee", mock.Anything, int64(4)).Return(employee, nil).Once()
	api.restaurants.On("UpdateRestaurant", mock.Anything, rest).Return(nil).Once()
	api.employees.On("UpdateEmployee", mock.Anything, employee).Return(nil).Once()

	rec := api.do("PUT", "/restaurants/9/employees/4", nil, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotNil(t, employee.Workplace)
}

func TestFireEndpointMissingLinkage(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub123")

	rest := &domain.Restaurant{ID: 9, Name: "Cafe", Owner: "sub123",
		Employees: []domain.EntityRef{}}
	api.restaurants.On("GetRestaurant", mock.Anything, int64(9)).Return(rest, nil).Once()
	api.employees.On("GetEmployee", mock.Anything, int64(4)).
		Return(&domain.Employee{ID: 4, Name: "Ann"}, nil).Once()

	rec := api.do("DELETE", "/restaurants/9/employees/4", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(),
		"No employee with this employee_id works at the restaurant with this restaurant_id")
}

func TestHomeWithoutToken(t *testing.T) {
	api := newTestAPI(t)
	api.authFails(domain.Errorf(http.StatusUnauthorized, "Missing token"))

	rec := api.do("GET", "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supply a Bearer token to register as a restaurant owner")
}

func TestHomeRegistersNewOwner(t *testing.T) {
	api := newTestAPI(t)
	api.authAs("sub123")
	api.users.On("FindUserBySub", mock.Anything, "sub123").Return(nil, nil).Once()
	api.users.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 1
		}).
		Return(nil).Once()

	rec := api.do("GET", "/", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["returning"])
}

func TestDeleteEmployeeEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.employees.On("GetEmployee", mock.Anything, int64(4)).
		Return(&domain.Employee{ID: 4, Name: "Ann"}, nil).Once()
	api.employees.On("DeleteEmployee", mock.Anything, int64(4)).Return(nil).Once()

	rec := api.do("DELETE", "/employees/4", nil, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do("GET", "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
