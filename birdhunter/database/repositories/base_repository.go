package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/birdwatchers/birdhunter/birdhunter/database"
	"github.com/birdwatchers/birdhunter/birdhunter/database/models"
	"github.com/birdwatchers/birdhunter/internal/domain/gameerr"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// BaseRepository holds what every game repository shares: the handle, the
// transaction manager and the error mapping onto gameerr.
type BaseRepository struct {
	db *bun.DB
	tx *database.TxManager
}

func NewBaseRepository(db *database.DB, tx *database.TxManager) *BaseRepository {
	return &BaseRepository{db: db.BunDB(), tx: tx}
}

// RepositoryError wraps a storage failure with the operation that hit it.
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

func (br *BaseRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return br.tx.WithinTx(ctx, fn)
}

// conn is the open transaction if ctx carries one.
func (br *BaseRepository) conn(ctx context.Context) bun.IDB {
	return database.Conn(ctx, br.db)
}

// HandleError maps no-rows onto notFound and unique violations onto ErrConflict.
func (br *BaseRepository) HandleError(operation, entity string, notFound, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) && notFound != nil {
		return notFound
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("%s already exists: %w", entity, gameerr.ErrConflict)
	}

	slog.Error("Repository operation failed",
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("entity", entity),
		slog.Any("error", err),
	)
	return &RepositoryError{Operation: operation, Entity: entity, Err: err}
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY ||
			strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == "23505"
	}
	return false
}

// affected turns a zero-row conditional update into the guard's error.
func affected(res sql.Result, guard error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return guard
	}
	return nil
}

func (br *BaseRepository) getUser(ctx context.Context, userID string) (*models.User, error) {
	user := new(models.User)
	err := br.conn(ctx).NewSelect().
		Model(user).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, br.HandleError("get", "user", gameerr.ErrUserNotFound, err)
	}
	return user, nil
}

func (br *BaseRepository) getBird(ctx context.Context, ownerID string, birdID int64) (*models.OwnedBird, error) {
	bird := new(models.OwnedBird)
	err := br.conn(ctx).NewSelect().
		Model(bird).
		Relation("Species").
		Where("ob.id = ?", birdID).
		Where("ob.owner_id = ?", ownerID).
		Where("ob.released_at IS NULL").
		Scan(ctx)
	if err != nil {
		return nil, br.HandleError("get", "bird", gameerr.ErrBirdNotFound, err)
	}
	return bird, nil
}

// listBirds returns the active birds of ownerID, oldest capture first.
func (br *BaseRepository) listBirds(ctx context.Context, ownerID string) ([]*models.OwnedBird, error) {
	var birds []*models.OwnedBird
	err := br.conn(ctx).NewSelect().
		Model(&birds).
		Relation("Species").
		Where("ob.owner_id = ?", ownerID).
		Where("ob.released_at IS NULL").
		OrderExpr("ob.captured_at ASC, ob.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, br.HandleError("list", "birds", nil, err)
	}
	return birds, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePrefix builds a LIKE pattern for ESCAPE '!' that matches values starting with prefix.
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
