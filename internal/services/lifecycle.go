package services

import (
	"context"

	"github.com/yungbote/contacts-backend/internal/db"
	"github.com/yungbote/contacts-backend/internal/platform/apierr"
	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/repos"
	"github.com/yungbote/contacts-backend/internal/types"
)

type CreateUserWithAddressInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CountryID string `json:"country_id"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

type CreateUserWithAddressResult struct {
	User           *types.User    `json:"user"`
	Address        *types.Address `json:"address"`
	Link           types.Link     `json:"link"`
	AddressOutcome string         `json:"address_outcome"`
}

type DeleteCascadeResult struct {
	Found            bool  `json:"found"`
	LinksDeleted     int64 `json:"links_deleted"`
	AddressesDeleted int64 `json:"addresses_deleted"`
}

// LifecycleService orchestrates the multi-step create and delete sequences.
// Neither sequence runs in a transaction: every step is individually
// idempotent (except the duplicate-email check), so a crash between steps
// leaves a self-consistent state that converges on retry.
type LifecycleService interface {
	CreateUserWithAddress(ctx context.Context, in CreateUserWithAddressInput) (*CreateUserWithAddressResult, error)
	DeleteUserCascade(ctx context.Context, email string) (*DeleteCascadeResult, error)
}

type lifecycleService struct {
	log         *logger.Logger
	userRepo    repos.UserRepo
	addressRepo repos.AddressRepo
	linkRepo    repos.LinkRepo
}

func NewLifecycleService(log *logger.Logger, userRepo repos.UserRepo, addressRepo repos.AddressRepo, linkRepo repos.LinkRepo) LifecycleService {
	return &lifecycleService{
		log:         log.With("service", "LifecycleService"),
		userRepo:    userRepo,
		addressRepo: addressRepo,
		linkRepo:    linkRepo,
	}
}

func (ls *lifecycleService) CreateUserWithAddress(ctx context.Context, in CreateUserWithAddressInput) (*CreateUserWithAddressResult, error) {
	if in.Email == "" {
		return nil, apierr.Validation("email is required")
	}

	address, addressOutcome, err := ls.addressRepo.Create(ctx, in.CountryID, in.City, in.State, in.ZipCode)
	if err != nil {
		return nil, err
	}

	user, userOutcome, err := ls.userRepo.Create(ctx, in.FirstName, in.LastName, in.Email)
	if err != nil {
		// The address row stands: content-addressed, harmless, reusable.
		// No compensating rollback.
		return nil, err
	}
	if userOutcome == db.OutcomeAlreadyExists {
		ls.log.Debug("User already exists, rejecting duplicate", "user_key", user.UserKey)
		return nil, apierr.Conflict("duplicate email")
	}

	if err := ls.linkRepo.Link(ctx, user.UserKey, address.AddressKey); err != nil {
		// User and address are already committed; the whole call is
		// retry-safe because the link insert is idempotent.
		return nil, err
	}

	ls.log.Info("User created with address",
		"user_key", user.UserKey,
		"address_key", address.AddressKey,
		"address_outcome", addressOutcome.String())

	return &CreateUserWithAddressResult{
		User:           user,
		Address:        address,
		Link:           types.Link{UserKey: user.UserKey, AddressKey: address.AddressKey},
		AddressOutcome: addressOutcome.String(),
	}, nil
}

func (ls *lifecycleService) DeleteUserCascade(ctx context.Context, email string) (*DeleteCascadeResult, error) {
	if email == "" {
		return nil, apierr.Validation("email is required")
	}

	user, err := ls.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if apierr.Is(err, apierr.CodeNotFound) {
			// Benign: the user is already gone, including on a repeated
			// delete for the same email.
			return &DeleteCascadeResult{Found: false}, nil
		}
		return nil, err
	}

	// Ordering invariant: links first (otherwise no address looks orphaned),
	// the user row last.
	links, err := ls.linkRepo.DeleteLinksForUser(ctx, user.UserKey)
	if err != nil {
		return nil, err
	}

	orphans, err := ls.addressRepo.DeleteOrphans(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := ls.userRepo.DeleteByKey(ctx, user.UserKey); err != nil {
		return nil, err
	}

	ls.log.Info("User deleted",
		"user_key", user.UserKey,
		"links_deleted", links,
		"addresses_deleted", orphans)

	return &DeleteCascadeResult{Found: true, LinksDeleted: links, AddressesDeleted: orphans}, nil
}
