package services

import (
	"errors"

	"wearline/internal/domain"
	"wearline/internal/repos"
)

var (
	ErrItemExists   = errors.New("an item with that name already exists")
	ErrNoItemsFound = errors.New("no items found")
)

type CatalogService struct {
	Items *repos.ItemRepo
}

func NewCatalogService(items *repos.ItemRepo) *CatalogService {
	return &CatalogService{Items: items}
}

func (s *CatalogService) AddItem(it domain.Item) (int64, error) {
	exists, err := s.Items.NameExists(it.Name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrItemExists
	}
	return s.Items.Insert(it)
}

func (s *CatalogService) GetItem(id int64) (domain.Item, error) {
	return s.Items.Get(id)
}

func (s *CatalogService) ListLatest(limit int) ([]domain.Item, error) {
	return s.Items.ListLatest(limit)
}

// ItemsByGender returns the gender slice of the catalog as flat records.
// An empty result is reported as ErrNoItemsFound; the endpoint treats
// "empty" and "not found" the same way.
func (s *CatalogService) ItemsByGender(gender string) ([]domain.ItemRecord, error) {
	items, err := s.Items.ByGender(gender)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoItemsFound
	}
	out := make([]domain.ItemRecord, 0, len(items))
	for _, it := range items {
		out = append(out, it.Record())
	}
	return out, nil
}

func (s *CatalogService) Search(q, itemType, gender string, page, pageSize int) ([]domain.Item, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.Items.Search(q, itemType, gender, pageSize, offset)
}
