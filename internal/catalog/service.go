package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/communityexpress/laundry-client/pkg/enums"
	pkgerrors "github.com/communityexpress/laundry-client/pkg/errors"
)

type apiClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// Service reads the vendor catalog from the remote API.
type Service interface {
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*LaundryVendor, error)
	ListItems(ctx context.Context, vendorID uuid.UUID, filter ItemFilter) ([]LaundryItem, error)
}

// ItemFilter narrows the vendor item listing.
type ItemFilter struct {
	Category      *enums.LaundryCategory
	AvailableOnly bool
}

type service struct {
	api apiClient
}

// NewService builds a catalog service over the API client.
func NewService(api apiClient) (Service, error) {
	if api == nil {
		return nil, fmt.Errorf("api client required")
	}
	return &service{api: api}, nil
}

func (s *service) GetVendor(ctx context.Context, vendorID uuid.UUID) (*LaundryVendor, error) {
	if vendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id required")
	}
	var vendor LaundryVendor
	if err := s.api.Get(ctx, "/laundry/vendors/"+vendorID.String(), nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (s *service) ListItems(ctx context.Context, vendorID uuid.UUID, filter ItemFilter) ([]LaundryItem, error) {
	if vendorID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor id required")
	}
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown item category")
	}

	query := url.Values{}
	category := ""
	if filter.Category != nil {
		category = filter.Category.String()
	}
	query.Set("category", category)
	available := ""
	if filter.AvailableOnly {
		available = "true"
	}
	query.Set("is_available", available)

	var items []LaundryItem
	path := "/laundry/vendors/" + vendorID.String() + "/items"
	if err := s.api.Get(ctx, path, query, &items); err != nil {
		return nil, err
	}
	return items, nil
}
