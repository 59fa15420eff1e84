package db

import (
	"context"
	"fmt"

	"icolleague/internal/models"
	"icolleague/internal/validation"
)

// SearchEmployees returns directory entries whose name or department
// contains term, case-insensitively. An empty term returns everyone.
func (d *DB) SearchEmployees(ctx context.Context, term string) ([]models.Employee, error) {
	query := `SELECT id, name, email, department, phone FROM employees`
	var args []any

	term = validation.NormalizeSearchTerm(term)
	if term != "" {
		query += `
			WHERE LOWER(name) LIKE '%' || $1 || '%'
			   OR LOWER(department) LIKE '%' || $1 || '%'`
		args = append(args, validation.EscapeLike(term))
	}
	query += ` ORDER BY id`

	rows, err := d.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Phone); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// CreateEmployee adds a directory entry.
func (d *DB) CreateEmployee(ctx context.Context, e *models.Employee) error {
	return d.Pool.QueryRow(ctx, `
		INSERT INTO employees (name, email, department, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, e.Name, e.Email, e.Department, e.Phone).Scan(&e.ID)
}

// SeedEmployees inserts the sample directory if the employees table is empty.
// Returns the number of rows inserted.
func (d *DB) SeedEmployees(ctx context.Context) (int, error) {
	var count int
	if err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	for _, e := range SampleEmployees() {
		if err := d.CreateEmployee(ctx, &e); err != nil {
			return 0, fmt.Errorf("failed to seed employee %s: %w", e.Name, err)
		}
	}

	return len(SampleEmployees()), nil
}

// SampleEmployees is the starter directory used for development installs.
func SampleEmployees() []models.Employee {
	return []models.Employee{
		{Name: "Rajesh Kumar", Email: "rajesh.kumar@techcorp.in", Department: "Engineering", Phone: "+91-98765-43210"},
		{Name: "Priya Sharma", Email: "priya.sharma@techcorp.in", Department: "Human Resources", Phone: "+91-98765-43211"},
		{Name: "Amit Patel", Email: "amit.patel@techcorp.in", Department: "Marketing", Phone: "+91-98765-43212"},
		{Name: "Anjali Reddy", Email: "anjali.reddy@techcorp.in", Department: "Finance", Phone: "+91-98765-43213"},
		{Name: "Vikram Singh", Email: "vikram.singh@techcorp.in", Department: "Engineering", Phone: "+91-98765-43214"},
		{Name: "Meera Nair", Email: "meera.nair@techcorp.in", Department: "Sales", Phone: "+91-98765-43215"},
		{Name: "Suresh Iyer", Email: "suresh.iyer@techcorp.in", Department: "IT Support", Phone: "+91-98765-43216"},
		{Name: "Kavita Joshi", Email: "kavita.joshi@techcorp.in", Department: "Operations", Phone: "+91-98765-43217"},
		{Name: "Rohit Verma", Email: "rohit.verma@techcorp.in", Department: "Product", Phone: "+91-98765-43218"},
		{Name: "Deepa Gupta", Email: "deepa.gupta@techcorp.in", Department: "Quality Assurance", Phone: "+91-98765-43219"},
		{Name: "Arjun Malhotra", Email: "arjun.malhotra@techcorp.in", Department: "Business Development", Phone: "+91-98765-43220"},
		{Name: "Swati Deshmukh", Email: "swati.deshmukh@techcorp.in", Department: "Customer Support", Phone: "+91-98765-43221"},
	}
}
