package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.user_id, e.employee_code, e.name, e.department, e.state,
	e.mobile_number, e.created_at, e.updated_at`

func scanEmployee(row pgx.Row, withEmail bool) (employee.Employee, error) {
	var emp employee.Employee
	dest := []interface{}{
		&emp.ID, &emp.UserID, &emp.EmployeeCode, &emp.Name, &emp.Department,
		&emp.State, &emp.MobileNumber, &emp.CreatedAt, &emp.UpdatedAt,
	}
	if withEmail {
		dest = append(dest, &emp.Email)
	}
	if err := row.Scan(dest...); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := database.QuerierFromContext(ctx, r.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, user_id, employee_code, name, department, state, mobile_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.UserID,
		newEmployee.EmployeeCode,
		newEmployee.Name,
		newEmployee.Department,
		newEmployee.State,
		newEmployee.MobileNumber,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `, u.email
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `, u.email
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.employee_code = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := database.QuerierFromContext(ctx, r.db)

	query := `
		SELECT` + employeeColumns + `, u.email
		FROM employees e
		LEFT JOIN users u ON u.id = e.user_id
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := database.QuerierFromContext(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if emp.Name != "" {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, emp.Name)
		argIdx++
	}
	if emp.Department != "" {
		updates = append(updates, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, emp.Department)
		argIdx++
	}
	if emp.State != "" {
		updates = append(updates, fmt.Sprintf("state = $%d", argIdx))
		args = append(args, emp.State)
		argIdx++
	}
	if emp.MobileNumber != "" {
		updates = append(updates, fmt.Sprintf("mobile_number = $%d", argIdx))
		args = append(args, emp.MobileNumber)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for employee update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, emp.ID)

	query := "UPDATE employees SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := database.QuerierFromContext(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Count implements employee.EmployeeRepository.
func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}
