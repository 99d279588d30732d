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

type PostgresLoginCodesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for login_codes table
var loginCodesColumns = []string{
	"id",
	"code",
	"discord_user_id",
	"expires_at",
	"consumed_at",
	"created_at",
}

func NewPostgresLoginCodesRepository(db *sqlx.DB, schema string) *PostgresLoginCodesRepository {
	return &PostgresLoginCodesRepository{db: db, schema: schema}
}

// ConsumeCode atomically claims a verified login code: it succeeds at most
// once per code, only while the code is unexpired. Returns nil when the
// code is unknown, already consumed, or expired.
func (r *PostgresLoginCodesRepository) ConsumeCode(
	ctx context.Context,
	code string,
) (*models.LoginCode, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(loginCodesColumns, ", ")
	query := fmt.Sprintf(`
		UPDATE %s.login_codes
		SET consumed_at = NOW()
		WHERE code = $1 AND consumed_at IS NULL AND expires_at > NOW()
		RETURNING %s`,
		r.schema, returningStr)

	loginCode := &models.LoginCode{}
	err := db.QueryRowxContext(ctx, query, code).StructScan(loginCode)
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return nil, nil // Code not found, expired, or already used
		}
		return nil, fmt.Errorf("failed to consume login code: %w", err)
	}

	return loginCode, nil
}

// CreateCode records a bot-verified code for a Discord user. The community
// bot calls this through its own backend once a user DMs it the code.
func (r *PostgresLoginCodesRepository) CreateCode(
	ctx context.Context,
	id, code, discordUserID string,
) (*models.LoginCode, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(loginCodesColumns, ", ")
	query := fmt.Sprintf(`
		INSERT INTO %s.login_codes (id, code, discord_user_id, expires_at, created_at)
		VALUES ($1, $2, $3, NOW() + INTERVAL '10 minutes', NOW())
		RETURNING %s`,
		r.schema, returningStr)

	loginCode := &models.LoginCode{}
	if err := db.QueryRowxContext(ctx, query, id, code, discordUserID).StructScan(loginCode); err != nil {
		return nil, fmt.Errorf("failed to create login code: %w", err)
	}

	return loginCode, nil
}
