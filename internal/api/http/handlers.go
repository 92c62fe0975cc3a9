package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"restaurant-staffing/internal/auth"
	"restaurant-staffing/internal/domain"
	"restaurant-staffing/internal/service"
)

const defaultPageLimit = 5

type Handler struct {
	Employees   service.EmployeeServiceInterface
	Restaurants service.RestaurantServiceInterface
	Users       service.UserServiceInterface
	Auth        auth.TokenVerifier
}

func NewHandler(employees service.EmployeeServiceInterface, restaurants service.RestaurantServiceInterface, users service.UserServiceInterface, verifier auth.TokenVerifier) *Handler {
	return &Handler{
		Employees:   employees,
		Restaurants: restaurants,
		Users:       users,
		Auth:        verifier,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.home).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants/all", h.deleteAllRestaurants).Methods("DELETE")
	r.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.patchRestaurant).Methods("PATCH")
	r.HandleFunc("/restaurants/{id:[0-9]+}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/restaurants/{id:[0-9]+}/qr", h.restaurantQR).Methods("GET")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/employees/{employeeId:[0-9]+}", h.hireEmployee).Methods("PUT")
	r.HandleFunc("/restaurants/{restaurantId:[0-9]+}/employees/{employeeId:[0-9]+}", h.fireEmployee).Methods("DELETE")

	r.HandleFunc("/employees/all", h.deleteAllEmployees).Methods("DELETE")
	r.HandleFunc("/employees", h.createEmployee).Methods("POST")
	r.HandleFunc("/employees", h.listEmployees).Methods("GET")
	r.HandleFunc("/employees/{id:[0-9]+}", h.getEmployee).Methods("GET")
	r.HandleFunc("/employees/{id:[0-9]+}", h.updateEmployee).Methods("PUT")
	r.HandleFunc("/employees/{id:[0-9]+}", h.patchEmployee).Methods("PATCH")
	r.HandleFunc("/employees/{id:[0-9]+}", h.deleteEmployee).Methods("DELETE")

	r.HandleFunc("/users/all", h.deleteAllUsers).Methods("DELETE")
	r.HandleFunc("/users", h.listUsers).Methods("GET")
}

var errNotAcceptable = domain.Errorf(http.StatusNotAcceptable,
	"This endpoint only supports the return of JSON objects")

var errInvalidBody = domain.Errorf(http.StatusBadRequest,
	"The request body must be a valid JSON object")

// acceptsJSON mirrors the Accept-header gate every route applies: clients must
// admit application/json responses.
func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "*/*")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err *domain.Error) {
	writeJSON(w, err.Status, err.Body)
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func decodePayload(r *http.Request) (service.Payload, *domain.Error) {
	var content service.Payload
	if err := json.NewDecoder(r.Body).Decode(&content); err != nil || content == nil {
		return nil, errInvalidBody
	}
	return content, nil
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

func pageParams(r *http.Request) (int, int) {
	limit := defaultPageLimit
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func nextLink(r *http.Request, path string, limit, offset, count int) string {
	if offset+limit >= count {
		return ""
	}
	return fmt.Sprintf("%s%s?limit=%d&offset=%d", baseURL(r), path, limit, offset+limit)
}

func (h *Handler) verify(r *http.Request) (*auth.Claims, *domain.Error) {
	return h.Auth.VerifyRequest(r)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "staffing-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// home registers the authenticated subject as a user on first visit. Without
// a token it just points the caller at the login requirement.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Supply a Bearer token to register as a restaurant owner",
		})
		return
	}
	u, returning, serr := h.Users.Ensure(r.Context(), claims.Subject)
	if serr != nil {
		writeError(w, serr)
		return
	}
	u.Self = fmt.Sprintf("%s/users/%d", baseURL(r), u.ID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":      u,
		"returning": returning,
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	rest, serr := h.Restaurants.Create(r.Context(), content, claims.Subject)
	if serr != nil {
		writeError(w, serr)
		return
	}
	rest.Self = fmt.Sprintf("%s/restaurants/%d", baseURL(r), rest.ID)
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	if _, aerr := h.verify(r); aerr != nil {
		writeError(w, aerr)
		return
	}
	limit, offset := pageParams(r)
	page, serr := h.Restaurants.List(r.Context(), limit, offset)
	if serr != nil {
		writeError(w, serr)
		return
	}
	for i := range page.Restaurants {
		page.Restaurants[i].Self = fmt.Sprintf("%s/restaurants/%d", baseURL(r), page.Restaurants[i].ID)
	}
	page.Next = nextLink(r, "/restaurants", limit, offset, page.Count)
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	rest, serr := h.Restaurants.Get(r.Context(), pathID(r, "id"), claims.Subject)
	if serr != nil {
		writeError(w, serr)
		return
	}
	rest.Self = fmt.Sprintf("%s/restaurants/%d", baseURL(r), rest.ID)
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	if _, serr := h.Restaurants.UpdateFull(r.Context(), pathID(r, "id"), claims.Subject, content); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) patchRestaurant(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	if _, serr := h.Restaurants.UpdateSome(r.Context(), pathID(r, "id"), claims.Subject, content); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	if serr := h.Restaurants.Delete(r.Context(), pathID(r, "id"), claims.Subject); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) restaurantQR(w http.ResponseWriter, r *http.Request) {
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	png, serr := h.Restaurants.ShareQR(r.Context(), pathID(r, "id"), claims.Subject, baseURL(r))
	if serr != nil {
		writeError(w, serr)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) hireEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	serr := h.Restaurants.Hire(r.Context(), pathID(r, "restaurantId"), pathID(r, "employeeId"), claims.Subject, baseURL(r))
	if serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) fireEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	claims, aerr := h.verify(r)
	if aerr != nil {
		writeError(w, aerr)
		return
	}
	serr := h.Restaurants.Fire(r.Context(), pathID(r, "restaurantId"), pathID(r, "employeeId"), claims.Subject)
	if serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllRestaurants(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	if serr := h.Restaurants.DeleteAll(r.Context()); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	e, serr := h.Employees.Create(r.Context(), content)
	if serr != nil {
		writeError(w, serr)
		return
	}
	e.Self = fmt.Sprintf("%s/employees/%d", baseURL(r), e.ID)
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	limit, offset := pageParams(r)
	page, serr := h.Employees.List(r.Context(), limit, offset)
	if serr != nil {
		writeError(w, serr)
		return
	}
	for i := range page.Employees {
		page.Employees[i].Self = fmt.Sprintf("%s/employees/%d", baseURL(r), page.Employees[i].ID)
	}
	page.Next = nextLink(r, "/employees", limit, offset, page.Count)
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	e, serr := h.Employees.Get(r.Context(), pathID(r, "id"))
	if serr != nil {
		writeError(w, serr)
		return
	}
	e.Self = fmt.Sprintf("%s/employees/%d", baseURL(r), e.ID)
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	if _, serr := h.Employees.UpdateFull(r.Context(), pathID(r, "id"), content); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) patchEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	content, derr := decodePayload(r)
	if derr != nil {
		writeError(w, derr)
		return
	}
	if _, serr := h.Employees.UpdateSome(r.Context(), pathID(r, "id"), content); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	if serr := h.Employees.Delete(r.Context(), pathID(r, "id")); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllEmployees(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	if serr := h.Employees.DeleteAll(r.Context()); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	users, serr := h.Users.List(r.Context())
	if serr != nil {
		writeError(w, serr)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) deleteAllUsers(w http.ResponseWriter, r *http.Request) {
	if !acceptsJSON(r) {
		writeError(w, errNotAcceptable)
		return
	}
	if serr := h.Users.DeleteAll(r.Context()); serr != nil {
		writeError(w, serr)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
