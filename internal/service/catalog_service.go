package service

import (
	"iter"

	"press-start/internal/domain"
	"press-start/internal/repository"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrTypeChange = errors.New("product type cannot be changed")
)

// CatalogService defines the interface for catalog business logic
type CatalogService interface {
	Create(draft domain.ProductDraft) (domain.Product, error)
	Update(id int, draft domain.ProductDraft) (domain.Product, error)
	Delete(id int) error
	Describe(id int) (domain.View, error)
	Find(id int) (domain.Product, error)
	List() iter.Seq[domain.Product]
	Count() int
	Seed() error
}

type catalogService struct {
	store  repository.ProductStore
	logger *zap.Logger
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(store repository.ProductStore, logger *zap.Logger) CatalogService {
	return &catalogService{
		store:  store,
		logger: logger,
	}
}

// Create validates the draft, assigns it the next id and registers it.
// A draft that fails validation does not consume an id.
func (s *catalogService) Create(draft domain.ProductDraft) (domain.Product, error) {
	candidate, err := domain.New(0, draft)
	if err != nil {
		s.logValidation("create", err)
		return domain.Product{}, err
	}

	product, err := candidate.WithID(s.store.GenerateID())
	if err != nil {
		return domain.Product{}, errors.Wrap(err, "assign id")
	}

	if err := s.store.Register(product); err != nil {
		s.logger.Warn("Product registration rejected",
			zap.Int("id", product.ID()),
			zap.Error(err),
		)
		return domain.Product{}, errors.Wrap(err, "register product")
	}

	s.logger.Info("Product registered",
		zap.Int("id", product.ID()),
		zap.String("name", product.Name()),
		zap.Stringer("type", product.Type()),
	)
	return product, nil
}

// Update rebuilds the product with the given id from the draft. The draft
// must describe the same variant as the stored product.
func (s *catalogService) Update(id int, draft domain.ProductDraft) (domain.Product, error) {
	existing, ok := s.store.FindProductByID(id)
	if !ok {
		s.logger.Warn("Product not found for update", zap.Int("id", id))
		return domain.Product{}, errors.Wrapf(repository.ErrProductNotFound, "id %d", id)
	}

	if draft.Type != existing.Type() {
		s.logger.Warn("Product type change rejected",
			zap.Int("id", id),
			zap.Stringer("from", existing.Type()),
			zap.Stringer("to", draft.Type),
		)
		return domain.Product{}, errors.Wrapf(ErrTypeChange, "%s to %s", existing.Type(), draft.Type)
	}

	product, err := domain.New(id, draft)
	if err != nil {
		s.logValidation("update", err)
		return domain.Product{}, err
	}

	if err := s.store.Update(product); err != nil {
		s.logger.Warn("Product update rejected", zap.Int("id", id), zap.Error(err))
		return domain.Product{}, errors.Wrap(err, "update product")
	}

	s.logger.Info("Product updated",
		zap.Int("id", id),
		zap.String("name", product.Name()),
	)
	return product, nil
}

// Delete removes the product with the given id
func (s *catalogService) Delete(id int) error {
	if err := s.store.Delete(id); err != nil {
		s.logger.Warn("Product not found for deletion", zap.Int("id", id))
		return errors.Wrap(err, "delete product")
	}

	s.logger.Info("Product deleted", zap.Int("id", id))
	return nil
}

// Describe returns the rendering data of the product with the given id
func (s *catalogService) Describe(id int) (domain.View, error) {
	view, err := s.store.ListByID(id)
	if err != nil {
		s.logger.Debug("Product lookup missed", zap.Int("id", id))
		return domain.View{}, err
	}
	return view, nil
}

// Find returns the product with the given id
func (s *catalogService) Find(id int) (domain.Product, error) {
	product, ok := s.store.FindProductByID(id)
	if !ok {
		return domain.Product{}, errors.Wrapf(repository.ErrProductNotFound, "id %d", id)
	}
	return product, nil
}

// List yields every product in registration order
func (s *catalogService) List() iter.Seq[domain.Product] {
	return s.store.ListAll()
}

func (s *catalogService) Count() int {
	return s.store.Len()
}

// Seed registers the demo catalog
func (s *catalogService) Seed() error {
	for _, draft := range seedDrafts() {
		if _, err := s.Create(draft); err != nil {
			return errors.Wrapf(err, "seed %q", draft.Name)
		}
	}

	s.logger.Info("Catalog seeded", zap.Int("count", s.store.Len()))
	return nil
}

func (s *catalogService) logValidation(op string, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		s.logger.Debug("Product validation failed",
			zap.String("op", op),
			zap.Any("fields", vErr.Fields),
		)
		return
	}
	s.logger.Error("Product construction failed", zap.String("op", op), zap.Error(err))
}

func seedDrafts() []domain.ProductDraft {
	return []domain.ProductDraft{
		{
			Type: domain.TypeGame, Name: "The Legend of Zelda: Tears of the Kingdom",
			Price: decimal.RequireFromString("349.90"), Genre: "Adventure", Developer: "Nintendo",
		},
		{
			Type: domain.TypeGame, Name: "God of War Ragnarok",
			Price: decimal.RequireFromString("299.90"), Genre: "Action", Developer: "Santa Monica Studio",
		},
		{
			Type: domain.TypeConsole, Name: "PlayStation 5",
			Price: decimal.RequireFromString("3999.90"), Brand: "Sony", Storage: domain.Storage2TB,
		},
		{
			Type: domain.TypeConsole, Name: "Xbox Series S",
			Price: decimal.RequireFromString("2499.00"), Brand: "Microsoft", Storage: domain.Storage500GB,
		},
		{
			Type: domain.TypePeripheral, Name: "DualSense",
			Price: decimal.RequireFromString("449.90"), Brand: "Sony", ConnectionType: "Bluetooth",
		},
		{
			Type: domain.TypePeripheral, Name: "G Pro Headset",
			Price: decimal.RequireFromString("899.00"), Brand: "Logitech", ConnectionType: "P2",
		},
	}
}
