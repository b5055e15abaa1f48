package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
)

type serviceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Get(ctx context.Context, id int64) (*model.Service, error) {
	query := `
		SELECT service_id, service_name, duration_minutes, price
		FROM bs_services
		WHERE service_id = $1
	`
	var service model.Service
	err := r.db.GetContext(ctx, &service, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	query := `
		SELECT service_id, service_name, duration_minutes, price
		FROM bs_services
		ORDER BY service_name ASC
	`
	var services []*model.Service
	if err := r.db.SelectContext(ctx, &services, query); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

type staffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) Get(ctx context.Context, id int64) (*model.StaffMember, error) {
	query := `
		SELECT staff_id, first_name, last_name, specialty
		FROM bs_staff
		WHERE staff_id = $1
	`
	var staff model.StaffMember
	err := r.db.GetContext(ctx, &staff, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context) ([]*model.StaffMember, error) {
	query := `
		SELECT staff_id, first_name, last_name, specialty
		FROM bs_staff
		ORDER BY first_name ASC, last_name ASC
	`
	var staff []*model.StaffMember
	if err := r.db.SelectContext(ctx, &staff, query); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

type clientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Get(ctx context.Context, id int64) (*model.Client, error) {
	query := `
		SELECT client_id, first_name, last_name, phone_number
		FROM bs_clients
		WHERE client_id = $1
	`
	var client model.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) Search(ctx context.Context, query string) ([]*model.Client, error) {
	stmt := `
		SELECT client_id, first_name, last_name, phone_number
		FROM bs_clients
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR phone_number LIKE '%' || $1 || '%'
		ORDER BY first_name ASC, last_name ASC
		LIMIT 50
	`
	var clients []*model.Client
	if err := r.db.SelectContext(ctx, &clients, stmt, query); err != nil {
		return nil, fmt.Errorf("failed to search clients: %w", err)
	}
	return clients, nil
}
