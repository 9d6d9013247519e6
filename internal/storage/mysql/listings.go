package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/Akarsh-2004/Bagragi/internal/domain"
)

func (r *Repo) CreateListing(ctx context.Context, l domain.Listing) error {
	images, _ := json.Marshal(l.Images)
	amenities, _ := json.Marshal(l.Amenities)
	roomTypes, _ := json.Marshal(l.RoomTypes)
	tags, _ := json.Marshal(l.Tags)

	_, err := r.db.ExecContext(ctx, insertListingSQL,
		l.ID,
		l.HostID,
		l.Name,
		nullStr(l.Description),
		l.Location.Country,
		l.Location.City,
		nullStr(l.Location.Address),
		l.Location.Coordinates.Lat,
		l.Location.Coordinates.Long,
		string(images),
		l.PricePerNight,
		string(amenities),
		l.IsAvailable,
		string(roomTypes),
		l.MaxGuests,
		l.AverageRating,
		l.TotalReviews,
		l.CheckInTime,
		l.CheckOutTime,
		l.CancellationPolicy,
		l.Stars,
		string(tags),
		l.ViewsCount,
		l.BookingsCount,
	)
	return err
}

func (r *Repo) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, getListingSQL, id)
	if err != nil {
		return domain.Listing{}, err
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Listing{}, err
		}
		return domain.Listing{}, domain.ErrNotFound
	}
	return scanListing(rows)
}

func (r *Repo) ListListings(ctx context.Context) ([]domain.Listing, error) {
	return r.queryListings(ctx, listListingsSQL)
}

func (r *Repo) ListByHost(ctx context.Context, hostID string) ([]domain.Listing, error) {
	return r.queryListings(ctx, listByHostSQL, hostID)
}

func (r *Repo) UpdateListing(ctx context.Context, l domain.Listing) error {
	images, _ := json.Marshal(l.Images)
	amenities, _ := json.Marshal(l.Amenities)
	roomTypes, _ := json.Marshal(l.RoomTypes)
	tags, _ := json.Marshal(l.Tags)

	res, err := r.db.ExecContext(ctx, updateListingSQL,
		l.Name,
		nullStr(l.Description),
		l.Location.Country,
		l.Location.City,
		nullStr(l.Location.Address),
		l.Location.Coordinates.Lat,
		l.Location.Coordinates.Long,
		string(images),
		l.PricePerNight,
		string(amenities),
		l.IsAvailable,
		string(roomTypes),
		l.MaxGuests,
		l.CheckInTime,
		l.CheckOutTime,
		l.CancellationPolicy,
		l.Stars,
		string(tags),
		l.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// zero rows can also mean a no-op update; confirm existence
		var one int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM listings WHERE id = ?`, l.ID).Scan(&one); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) DeleteListing(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteListingSQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) SearchListings(ctx context.Context, q domain.SearchQuery) ([]domain.Listing, error) {
	where := []string{"LOWER(l.country) = LOWER(?)"}
	args := []any{q.Country}
	if q.City != "" {
		where = append(where, "LOWER(l.city) = LOWER(?)")
		args = append(args, q.City)
	}
	if q.MinStars > 0 {
		where = append(where, "l.stars >= ?")
		args = append(args, q.MinStars)
	}
	sqlStr := `SELECT` + selectListingCols + listingFromSQL +
		`WHERE ` + strings.Join(where, " AND ") + ` ORDER BY l.created_at DESC, l.id`
	return r.queryListings(ctx, sqlStr, args...)
}

func (r *Repo) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanListing(rows *sql.Rows) (domain.Listing, error) {
	var l domain.Listing
	var desc, addr sql.NullString
	var stars, maxGuests sql.NullInt64
	var imagesJSON, amenitiesJSON, roomTypesJSON, tagsJSON []byte

	err := rows.Scan(
		&l.ID, &l.HostID, &l.HostName, &l.HostEmail,
		&l.Name, &desc, &l.Location.Country, &l.Location.City, &addr,
		&l.Location.Coordinates.Lat, &l.Location.Coordinates.Long, &imagesJSON,
		&l.PricePerNight, &amenitiesJSON, &l.IsAvailable, &roomTypesJSON, &maxGuests,
		&l.AverageRating, &l.TotalReviews, &l.CheckInTime, &l.CheckOutTime,
		&l.CancellationPolicy, &stars, &tagsJSON, &l.ViewsCount, &l.BookingsCount,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	l.Description = desc.String
	l.Location.Address = addr.String
	l.Stars = int(stars.Int64)
	l.MaxGuests = int(maxGuests.Int64)
	_ = json.Unmarshal(imagesJSON, &l.Images)
	_ = json.Unmarshal(amenitiesJSON, &l.Amenities)
	_ = json.Unmarshal(roomTypesJSON, &l.RoomTypes)
	_ = json.Unmarshal(tagsJSON, &l.Tags)
	return l, nil
}
