package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"concert-ticketing-platform/internal/models"
)

// VenueRepository handles venue data operations
type VenueRepository struct {
	db *sql.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *sql.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

const venueColumns = "id, name, address, city, state, postal_code, country, capacity, phone_number, is_active, created_at"

func scanVenue(row interface{ Scan(...interface{}) error }) (*models.Venue, error) {
	venue := &models.Venue{}
	var phone sql.NullString
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.City,
		&venue.State,
		&venue.PostalCode,
		&venue.Country,
		&venue.Capacity,
		&phone,
		&venue.IsActive,
		&venue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	venue.PhoneNumber = phone.String
	return venue, nil
}

// Create inserts a new venue
func (r *VenueRepository) Create(req *models.VenueCreateRequest) (*models.Venue, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	country := req.Country
	if country == "" {
		country = "Malaysia"
	}

	query := `
		INSERT INTO venues (name, address, city, state, postal_code, country, capacity, phone_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + venueColumns

	venue, err := scanVenue(r.db.QueryRow(query, req.Name, req.Address, req.City, req.State, req.PostalCode, country, req.Capacity, req.PhoneNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return venue, nil
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(id int) (*models.Venue, error) {
	venue, err := scanVenue(r.db.QueryRow("SELECT "+venueColumns+" FROM venues WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	return venue, nil
}

// List returns all venues, newest first
func (r *VenueRepository) List() ([]*models.Venue, error) {
	rows, err := r.db.Query("SELECT " + venueColumns + " FROM venues ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	defer rows.Close()

	var venues []*models.Venue
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	return venues, rows.Err()
}

// Update updates a venue
func (r *VenueRepository) Update(id int, req *models.VenueUpdateRequest) (*models.Venue, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE venues
		SET name = $2, address = $3, city = $4, state = $5, postal_code = $6, country = $7, capacity = $8, phone_number = $9, is_active = $10
		WHERE id = $1
		RETURNING ` + venueColumns

	venue, err := scanVenue(r.db.QueryRow(query, id, req.Name, req.Address, req.City, req.State, req.PostalCode, req.Country, req.Capacity, req.PhoneNumber, req.IsActive))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	return venue, nil
}

// Deactivate soft-deletes a venue
func (r *VenueRepository) Deactivate(id int) error {
	result, err := r.db.Exec("UPDATE venues SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to deactivate venue: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation result: %w", err)
	}
	if affected == 0 {
		return models.ErrVenueNotFound
	}

	return nil
}
