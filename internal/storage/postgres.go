package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"restaurant-staffing/internal/domain"
)

// PostgresRepository backs all three entity kinds. Relationship state is kept
// as jsonb columns so each entity round-trips as a single row, the way the
// linkage engine reads and writes them.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			cost TEXT NOT NULL,
			cuisine TEXT NOT NULL,
			owner TEXT NOT NULL,
			employees JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			wage DOUBLE PRECISION NOT NULL,
			position TEXT NOT NULL,
			workplace JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			sub TEXT NOT NULL UNIQUE
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	workplace, err := marshalWorkplace(e.Workplace)
	if err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO employees (name, wage, position, workplace) VALUES ($1, $2, $3, $4) RETURNING id",
		e.Name, e.Wage, e.Position, workplace,
	).Scan(&e.ID)
}

func (r *PostgresRepository) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	var e domain.Employee
	var workplace []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, wage, position, workplace FROM employees WHERE id = $1", id).
		Scan(&e.ID, &e.Name, &e.Wage, &e.Position, &workplace)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := unmarshalWorkplace(workplace, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresRepository) ListEmployees(ctx context.Context, limit, offset int) ([]domain.Employee, int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, wage, position, workplace FROM employees ORDER BY id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		var workplace []byte
		if err := rows.Scan(&e.ID, &e.Name, &e.Wage, &e.Position, &workplace); err != nil {
			return nil, 0, err
		}
		if err := unmarshalWorkplace(workplace, &e); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, count, rows.Err()
}

func (r *PostgresRepository) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	workplace, err := marshalWorkplace(e.Workplace)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE employees SET name=$1, wage=$2, position=$3, workplace=$4 WHERE id=$5",
		e.Name, e.Wage, e.Position, workplace, e.ID)
	return err
}

func (r *PostgresRepository) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM employees WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) DeleteAllEmployees(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM employees")
	return err
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	employees, err := marshalEmployees(rest.Employees)
	if err != nil {
		return err
	}
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO restaurants (name, cost, cuisine, owner, employees) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		rest.Name, rest.Cost, rest.Cuisine, rest.Owner, employees,
	).Scan(&rest.ID)
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	var employees []byte
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, cost, cuisine, owner, employees FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name, &rest.Cost, &rest.Cuisine, &rest.Owner, &employees)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(employees, &rest.Employees); err != nil {
		return nil, fmt.Errorf("decode employees column: %w", err)
	}
	return &rest, nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context, limit, offset int) ([]domain.Restaurant, int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, cost, cuisine, owner, employees FROM restaurants ORDER BY id LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		var employees []byte
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Cost, &rest.Cuisine, &rest.Owner, &employees); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(employees, &rest.Employees); err != nil {
			return nil, 0, fmt.Errorf("decode employees column: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, count, rows.Err()
}

func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	employees, err := marshalEmployees(rest.Employees)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE restaurants SET name=$1, cost=$2, cuisine=$3, employees=$4 WHERE id=$5",
		rest.Name, rest.Cost, rest.Cuisine, employees, rest.ID)
	return err
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) DeleteAllRestaurants(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants")
	return err
}

func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO users (sub) VALUES ($1) RETURNING id", u.Sub).Scan(&u.ID)
}

func (r *PostgresRepository) FindUserBySub(ctx context.Context, sub string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, sub FROM users WHERE sub = $1", sub).Scan(&u.ID, &u.Sub)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, sub FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Sub); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) DeleteAllUsers(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM users")
	return err
}

func marshalWorkplace(ref *domain.EntityRef) (interface{}, error) {
	if ref == nil {
		return nil, nil
	}
	data, err := json.Marshal(ref)
	if err != nil {
		return nil, fmt.Errorf("encode workplace column: %w", err)
	}
	return data, nil
}

func unmarshalWorkplace(data []byte, e *domain.Employee) error {
	if len(data) == 0 {
		e.Workplace = nil
		return nil
	}
	var ref domain.EntityRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("decode workplace column: %w", err)
	}
	e.Workplace = &ref
	return nil
}

func marshalEmployees(refs []domain.EntityRef) ([]byte, error) {
	if refs == nil {
		refs = []domain.EntityRef{}
	}
	data, err := json.Marshal(refs)
	if err != nil {
		return nil, fmt.Errorf("encode employees column: %w", err)
	}
	return data, nil
}
