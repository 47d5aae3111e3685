package repos

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/hash"
	"github.com/yungbote/contacts-backend/internal/platform/apierr"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/types"
)

const (
	sqlFindAddressByKey = `
		SELECT address_key, country_id, city, state, zip_code, created_at, updated_at
		FROM addresses
		WHERE address_key = $1`

	// Conflict-as-no-op: a concurrent writer winning the race makes RETURNING
	// come back empty instead of raising a driver error.
	sqlInsertAddress = `
		INSERT INTO addresses (address_key, country_id, city, state, zip_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (address_key) DO NOTHING
		RETURNING address_key, country_id, city, state, zip_code, created_at, updated_at`

	// Global anti-join sweep. Scans the whole table rather than the current
	// user's formerly-linked keys; a latent performance concern at scale.
	sqlDeleteOrphanAddresses = `
		DELETE FROM addresses
		WHERE address_key NOT IN (SELECT address_key FROM user_addresses)`
)

type AddressRepo interface {
	Create(ctx context.Context, countryID, city, state, zipCode string) (*types.Address, db.Outcome, error)
	FindByKey(ctx context.Context, key string) (*types.Address, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

type addressRepo struct {
	exec db.Executor
	log  *logger.Logger
}

func NewAddressRepo(exec db.Executor, baseLog *logger.Logger) AddressRepo {
	return &addressRepo{exec: exec, log: baseLog.With("repo", "AddressRepo")}
}

// Create is idempotent: existing data wins over incoming data, even when the
// incoming fields differ only in case.
func (ar *addressRepo) Create(ctx context.Context, countryID, city, state, zipCode string) (*types.Address, db.Outcome, error) {
	key := hash.AddressKey(countryID, city, state, zipCode)

	existing, err := ar.FindByKey(ctx, key)
	if err == nil {
		return existing, db.OutcomeAlreadyExists, nil
	}
	if !apierr.Is(err, apierr.CodeNotFound) {
		return nil, 0, err
	}

	address := &types.Address{}
	row := ar.exec.QueryRow(ctx, sqlInsertAddress, key, countryID, city, state, zipCode)
	err = row.Scan(&address.AddressKey, &address.CountryID, &address.City, &address.State,
		&address.ZipCode, &address.CreatedAt, &address.UpdatedAt)
	if err == nil {
		ar.log.Debug("Address inserted", "address_key", key)
		return address, db.OutcomeInserted, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, 0, fmt.Errorf("insert address: %w", err)
	}

	// Lost the insert race; the winner's row is the record of truth.
	winner, err := ar.FindByKey(ctx, key)
	if err != nil {
		return nil, 0, fmt.Errorf("re-read address after insert conflict: %w", err)
	}
	return winner, db.OutcomeAlreadyExists, nil
}

func (ar *addressRepo) FindByKey(ctx context.Context, key string) (*types.Address, error) {
	address := &types.Address{}
	row := ar.exec.QueryRow(ctx, sqlFindAddressByKey, key)
	err := row.Scan(&address.AddressKey, &address.CountryID, &address.City, &address.State,
		&address.ZipCode, &address.CreatedAt, &address.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("address not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find address by key: %w", err)
	}
	return address, nil
}

func (ar *addressRepo) DeleteOrphans(ctx context.Context) (int64, error) {
	deleted, err := ar.exec.Exec(ctx, sqlDeleteOrphanAddresses)
	if err != nil {
		return 0, fmt.Errorf("delete orphan addresses: %w", err)
	}
	if deleted > 0 {
		ar.log.Debug("Orphan addresses swept", "count", deleted)
	}
	return deleted, nil
}
