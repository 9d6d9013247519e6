package mysql

const insertAccountSQL = `
INSERT INTO accounts
  (id, name, email, password_hash, role, country, city, phone, bio, profile_image,
   travel_style, budget, preferred_countries)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const selectAccountCols = `
  id, name, email, password_hash, role, country, city, phone, bio, profile_image,
  travel_style, budget, preferred_countries, created_at
`

const getAccountByEmailSQL = `SELECT ` + selectAccountCols + ` FROM accounts WHERE email = ?`

const getAccountByIDSQL = `SELECT ` + selectAccountCols + ` FROM accounts WHERE id = ?`

const deleteAccountSQL = `DELETE FROM accounts WHERE id = ?`

const insertListingSQL = `
INSERT INTO listings
  (id, host_id, name, description, country, city, address, lat, lon, images,
   price_per_night, amenities, is_available, room_types, max_guests,
   average_rating, total_reviews, check_in_time, check_out_time,
   cancellation_policy, stars, tags, views_count, bookings_count)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Joined with the owner so read paths can project host name/email.
const selectListingCols = `
  l.id, l.host_id, a.name, a.email,
  l.name, l.description, l.country, l.city, l.address, l.lat, l.lon, l.images,
  l.price_per_night, l.amenities, l.is_available, l.room_types, l.max_guests,
  l.average_rating, l.total_reviews, l.check_in_time, l.check_out_time,
  l.cancellation_policy, l.stars, l.tags, l.views_count, l.bookings_count,
  l.created_at, l.updated_at
`

const listingFromSQL = ` FROM listings l JOIN accounts a ON a.id = l.host_id `

const getListingSQL = `SELECT` + selectListingCols + listingFromSQL + `WHERE l.id = ?`

const listListingsSQL = `SELECT` + selectListingCols + listingFromSQL + `ORDER BY l.created_at DESC, l.id`

const listByHostSQL = `SELECT` + selectListingCols + listingFromSQL + `WHERE l.host_id = ? ORDER BY l.created_at DESC, l.id`

const updateListingSQL = `
UPDATE listings SET
  name = ?, description = ?, country = ?, city = ?, address = ?, lat = ?, lon = ?,
  images = ?, price_per_night = ?, amenities = ?, is_available = ?, room_types = ?,
  max_guests = ?, check_in_time = ?, check_out_time = ?, cancellation_policy = ?,
  stars = ?, tags = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const deleteListingSQL = `DELETE FROM listings WHERE id = ?`
