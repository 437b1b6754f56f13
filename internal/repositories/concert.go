package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concert-ticketing-platform/internal/models"
)

// ConcertRepository handles concert data operations
type ConcertRepository struct {
	db *sql.DB
}

// NewConcertRepository creates a new concert repository
func NewConcertRepository(db *sql.DB) *ConcertRepository {
	return &ConcertRepository{db: db}
}

// ConcertFilters narrows concert listings
type ConcertFilters struct {
	Genre      string // exact genre match
	Search     string // substring match on title or artist
	ActiveOnly bool
}

const concertColumns = `c.id, c.title, c.description, c.artist, c.genre, c.event_date, c.base_price,
		c.available_tickets, c.total_tickets, c.is_active, c.venue_id, c.created_at, c.updated_at,
		v.id, v.name, v.address, v.city, v.state, v.postal_code, v.country, v.capacity, v.phone_number, v.is_active, v.created_at`

func scanConcert(row interface{ Scan(...interface{}) error }) (*models.Concert, error) {
	concert := &models.Concert{}
	venue := &models.Venue{}
	var description sql.NullString
	var updatedAt sql.NullTime
	var venuePhone sql.NullString

	err := row.Scan(
		&concert.ID,
		&concert.Title,
		&description,
		&concert.Artist,
		&concert.Genre,
		&concert.EventDate,
		&concert.BasePrice,
		&concert.AvailableTickets,
		&concert.TotalTickets,
		&concert.IsActive,
		&concert.VenueID,
		&concert.CreatedAt,
		&updatedAt,
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.City,
		&venue.State,
		&venue.PostalCode,
		&venue.Country,
		&venue.Capacity,
		&venuePhone,
		&venue.IsActive,
		&venue.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	concert.Description = description.String
	if updatedAt.Valid {
		concert.UpdatedAt = &updatedAt.Time
	}
	venue.PhoneNumber = venuePhone.String
	concert.Venue = venue

	return concert, nil
}

// Create inserts a new concert. Available tickets start at the total.
func (r *ConcertRepository) Create(req *models.ConcertCreateRequest) (*models.Concert, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO concerts (title, description, artist, genre, event_date, base_price, available_tickets, total_tickets, is_active, venue_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, $9)
		RETURNING id`

	var id int
	err := r.db.QueryRow(
		query,
		req.Title,
		req.Description,
		req.Artist,
		req.Genre,
		req.EventDate,
		req.BasePrice,
		req.TotalTickets,
		req.IsActive,
		req.VenueID,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create concert: %w", err)
	}

	return r.GetByID(id)
}

// GetByID retrieves a concert with its venue
func (r *ConcertRepository) GetByID(id int) (*models.Concert, error) {
	query := `
		SELECT ` + concertColumns + `
		FROM concerts c
		JOIN venues v ON v.id = c.venue_id
		WHERE c.id = $1`

	concert, err := scanConcert(r.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrConcertNotFound
		}
		return nil, fmt.Errorf("failed to get concert: %w", err)
	}

	return concert, nil
}

// List returns concerts matching the filters, ordered by event date
func (r *ConcertRepository) List(filters ConcertFilters) ([]*models.Concert, error) {
	query := `
		SELECT ` + concertColumns + `
		FROM concerts c
		JOIN venues v ON v.id = c.venue_id
		WHERE 1=1`

	var args []interface{}
	argPos := 1

	if filters.ActiveOnly {
		query += " AND c.is_active = TRUE"
	}
	if filters.Genre != "" {
		query += fmt.Sprintf(" AND c.genre = $%d", argPos)
		args = append(args, filters.Genre)
		argPos++
	}
	if filters.Search != "" {
		query += fmt.Sprintf(" AND (c.title ILIKE $%d OR c.artist ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	query += " ORDER BY c.event_date ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}
	defer rows.Close()

	var concerts []*models.Concert
	for rows.Next() {
		concert, err := scanConcert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan concert: %w", err)
		}
		concerts = append(concerts, concert)
	}

	return concerts, rows.Err()
}

// ListGenres returns the distinct genres of active concerts
func (r *ConcertRepository) ListGenres() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT genre FROM concerts WHERE is_active = TRUE ORDER BY genre")
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var genre string
		if err := rows.Scan(&genre); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

// Update updates a concert. Availability is adjusted by the change in total
// tickets so already-sold tickets stay accounted for.
func (r *ConcertRepository) Update(id int, req *models.ConcertUpdateRequest) (*models.Concert, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE concerts
		SET title = $2, description = $3, artist = $4, genre = $5, event_date = $6, base_price = $7,
		    available_tickets = GREATEST(0, available_tickets + ($8 - total_tickets)),
		    total_tickets = $8, is_active = $9, venue_id = $10, updated_at = $11
		WHERE id = $1
		RETURNING id`

	var updatedID int
	err := r.db.QueryRow(
		query,
		id,
		req.Title,
		req.Description,
		req.Artist,
		req.Genre,
		req.EventDate,
		req.BasePrice,
		req.TotalTickets,
		req.IsActive,
		req.VenueID,
		time.Now(),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrConcertNotFound
		}
		return nil, fmt.Errorf("failed to update concert: %w", err)
	}

	return r.GetByID(updatedID)
}

// Deactivate soft-deletes a concert
func (r *ConcertRepository) Deactivate(id int) error {
	result, err := r.db.Exec("UPDATE concerts SET is_active = FALSE, updated_at = $2 WHERE id = $1", id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to deactivate concert: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivation result: %w", err)
	}
	if affected == 0 {
		return models.ErrConcertNotFound
	}

	return nil
}
