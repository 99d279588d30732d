package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	// necessary import to wire up the postgres driver
	_ "github.com/lib/pq"

	dbtx "sanctyr/db/tx"
	"sanctyr/models"
)

type PostgresNewsletterSignupsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for newsletter_signups table
var newsletterSignupsColumns = []string{
	"id",
	"email",
	"created_at",
}

func NewPostgresNewsletterSignupsRepository(db *sqlx.DB, schema string) *PostgresNewsletterSignupsRepository {
	return &PostgresNewsletterSignupsRepository{db: db, schema: schema}
}

// CreateSignup stores a newsletter subscription. Signing up twice with the
// same email is a no-op that returns the existing row.
func (r *PostgresNewsletterSignupsRepository) CreateSignup(
	ctx context.Context,
	id, email string,
) (*models.NewsletterSignup, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(newsletterSignupsColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.newsletter_signups (id, email, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING %s`,
		r.schema, returningStr)

	signup := &models.NewsletterSignup{}
	if err := db.QueryRowxContext(ctx, query, id, email).StructScan(signup); err != nil {
		return nil, fmt.Errorf("failed to create newsletter signup: %w", err)
	}

	return signup, nil
}

// GetSignupByEmail returns the signup for an email, or nil when absent.
func (r *PostgresNewsletterSignupsRepository) GetSignupByEmail(
	ctx context.Context,
	email string,
) (*models.NewsletterSignup, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(newsletterSignupsColumns, ", ")
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.newsletter_signups
		WHERE email = $1`,
		returningStr, r.schema)

	signup := &models.NewsletterSignup{}
	err := db.QueryRowxContext(ctx, query, email).StructScan(signup)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Signup not found
		}
		return nil, fmt.Errorf("failed to get newsletter signup: %w", err)
	}

	return signup, nil
}
