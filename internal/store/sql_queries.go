package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, access_token, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, access_token, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, access_token, created_at
    FROM users
    WHERE user_id = $1;`

	updateUsername = `UPDATE users
    SET username = $2
    WHERE user_id = $1
    RETURNING user_id, username, email, password_hash, access_token, created_at;`

	// compare-and-swap: only replaces the hash that was read by the caller
	updatePassword = `UPDATE users
    SET password_hash = $3
    WHERE user_id = $1 AND password_hash = $2;`

	updateAccessToken = `UPDATE users
    SET access_token = $2
    WHERE user_id = $1;`

	listLinkedUserIDs = `SELECT user_id
    FROM users
    WHERE access_token <> '';`

	upsertTransaction = `INSERT INTO transactions (user_id, transaction_id, name, amount, category, date)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (user_id, transaction_id) DO UPDATE
    SET name = EXCLUDED.name,
        amount = EXCLUDED.amount,
        category = EXCLUDED.category,
        date = EXCLUDED.date;`
)

// buildListTransactionsQuery builds the transaction listing SELECT for one
// user, with optional inclusive date bounds (YYYY-MM-DD), newest first.
func buildListTransactionsQuery(userID int64, startDate, endDate string) (string, []any, error) {
	builder := sq.
		Select("user_id", "transaction_id", "name", "amount", "category", "date").
		From("transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC", "transaction_id").
		PlaceholderFormat(sq.Dollar)

	if startDate != "" {
		builder = builder.Where(sq.GtOrEq{"date": startDate})
	}
	if endDate != "" {
		builder = builder.Where(sq.LtOrEq{"date": endDate})
	}

	return builder.ToSql()
}
