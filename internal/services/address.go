package services

import (
	"context"

	"github.com/yungbote/contacts-backend/internal/platform/logger"
	"github.com/yungbote/contacts-backend/internal/repos"
	"github.com/yungbote/contacts-backend/internal/types"
)

type AddressService interface {
	GetByKey(ctx context.Context, key string) (*types.Address, error)
}

type addressService struct {
	log         *logger.Logger
	addressRepo repos.AddressRepo
}

func NewAddressService(log *logger.Logger, addressRepo repos.AddressRepo) AddressService {
	return &addressService{log: log.With("service", "AddressService"), addressRepo: addressRepo}
}

func (as *addressService) GetByKey(ctx context.Context, key string) (*types.Address, error) {
	return as.addressRepo.FindByKey(ctx, key)
}
