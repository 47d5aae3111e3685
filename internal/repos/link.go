package repos

import (
	"context"
	"fmt"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
)

const (
	// The pair is the primary key, so replaying the same link is a no-op.
	sqlInsertLink = `
		INSERT INTO user_addresses (user_key, address_key)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`

	sqlDeleteLinksForUser = `DELETE FROM user_addresses WHERE user_key = $1`
)

type LinkRepo interface {
	Link(ctx context.Context, userKey, addressKey string) error
	DeleteLinksForUser(ctx context.Context, userKey string) (int64, error)
}

type linkRepo struct {
	exec db.Executor
	log  *logger.Logger
}

func NewLinkRepo(exec db.Executor, baseLog *logger.Logger) LinkRepo {
	return &linkRepo{exec: exec, log: baseLog.With("repo", "LinkRepo")}
}

func (lr *linkRepo) Link(ctx context.Context, userKey, addressKey string) error {
	if _, err := lr.exec.Exec(ctx, sqlInsertLink, userKey, addressKey); err != nil {
		return fmt.Errorf("link user to address: %w", err)
	}
	return nil
}

func (lr *linkRepo) DeleteLinksForUser(ctx context.Context, userKey string) (int64, error) {
	deleted, err := lr.exec.Exec(ctx, sqlDeleteLinksForUser, userKey)
	if err != nil {
		return 0, fmt.Errorf("delete links for user: %w", err)
	}
	return deleted, nil
}
