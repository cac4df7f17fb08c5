package catalog

import (
	"context"
	"fmt"

	"github.com/salenest/salenest-api/infrastructure/repository"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/pkg/log"
	"github.com/salenest/salenest-api/pkg/utils"
)

type CatalogService interface {
	CreateItem(ctx context.Context, input domain.ItemInput) (*domain.Item, error)
	ListItems(ctx context.Context) ([]*domain.Item, error)
	UpdateItem(ctx context.Context, id string, input domain.ItemInput) error
	DeleteItem(ctx context.Context, id string) error
}

type Service struct {
	itemRepo   repository.ItemRepository
	generateID func() (string, error)
}

func NewService(itemRepo repository.ItemRepository) CatalogService {
	return &Service{
		itemRepo:   itemRepo,
		generateID: utils.GenerateID,
	}
}

// CreateItem rejeita nome vazio ou preço zero. Preços negativos são aceitos.
func (s *Service) CreateItem(ctx context.Context, input domain.ItemInput) (*domain.Item, error) {
	if input.ItemName == "" || input.ItemPrice == 0 {
		return nil, ErrMissingItemFields
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerateID, err)
	}

	item := &domain.Item{
		ID:        id,
		ItemImage: input.ItemImage,
		ItemName:  input.ItemName,
		ItemPrice: input.ItemPrice,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	log.ForContext(ctx).WithField("item_id", item.ID).Info("catalog: item created")
	return item, nil
}

func (s *Service) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if items == nil {
		items = make([]*domain.Item, 0)
	}

	return items, nil
}

// UpdateItem substitui todos os campos graváveis. Id inexistente não é erro.
func (s *Service) UpdateItem(ctx context.Context, id string, input domain.ItemInput) error {
	matched, err := s.itemRepo.Update(ctx, id, input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if !matched {
		log.ForContext(ctx).WithField("item_id", id).Debug("catalog: update matched no item")
	}

	return nil
}

// DeleteItem remove o item. Id inexistente não é erro.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	matched, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if !matched {
		log.ForContext(ctx).WithField("item_id", id).Debug("catalog: delete matched no item")
	}

	return nil
}
