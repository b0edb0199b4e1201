package repository

import (
	"iter"
	"slices"

	"press-start/internal/domain"

	"github.com/go-faster/errors"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this id already exists")
)

// ProductRepository defines the interface for catalog data access
type ProductRepository interface {
	ListAll() iter.Seq[domain.Product]
	ListByID(id int) (domain.View, error)
	Register(product domain.Product) error
	Update(product domain.Product) error
	Delete(id int) error
}

// ProductStore is a ProductRepository that also issues identifiers and
// exposes direct lookups
type ProductStore interface {
	ProductRepository
	GenerateID() int
	FindProductByID(id int) (domain.Product, bool)
	Len() int
}

// inMemoryRepository keeps products for the lifetime of the process. It is
// not safe for concurrent use.
type inMemoryRepository struct {
	products map[int]domain.Product
	order    []int
	lastID   int
}

// NewInMemory creates an empty in-memory ProductStore
func NewInMemory() ProductStore {
	return &inMemoryRepository{products: make(map[int]domain.Product)}
}

// GenerateID returns the next identifier. Identifiers are never reused,
// even after the product holding one is deleted.
func (r *inMemoryRepository) GenerateID() int {
	r.lastID++
	return r.lastID
}

// ListAll yields the stored products in insertion order. Each range over
// the sequence reads the current state; products deleted while ranging
// are skipped.
func (r *inMemoryRepository) ListAll() iter.Seq[domain.Product] {
	return func(yield func(domain.Product) bool) {
		for _, id := range slices.Clone(r.order) {
			product, ok := r.products[id]
			if !ok {
				continue
			}
			if !yield(product) {
				return
			}
		}
	}
}

// ListByID returns the description of the product with the given id
func (r *inMemoryRepository) ListByID(id int) (domain.View, error) {
	product, ok := r.products[id]
	if !ok {
		return domain.View{}, errors.Wrapf(ErrProductNotFound, "id %d", id)
	}
	return product.View(), nil
}

// Register stores a new product. An existing product with the same id is
// left untouched.
func (r *inMemoryRepository) Register(product domain.Product) error {
	if _, exists := r.products[product.ID()]; exists {
		return errors.Wrapf(ErrProductAlreadyExists, "id %d", product.ID())
	}

	r.products[product.ID()] = product
	r.order = append(r.order, product.ID())
	return nil
}

// Update replaces the stored product with the same id
func (r *inMemoryRepository) Update(product domain.Product) error {
	if _, exists := r.products[product.ID()]; !exists {
		return errors.Wrapf(ErrProductNotFound, "id %d", product.ID())
	}

	r.products[product.ID()] = product
	return nil
}

// Delete removes the product with the given id
func (r *inMemoryRepository) Delete(id int) error {
	if _, exists := r.products[id]; !exists {
		return errors.Wrapf(ErrProductNotFound, "id %d", id)
	}

	delete(r.products, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// FindProductByID returns the product with the given id, if any
func (r *inMemoryRepository) FindProductByID(id int) (domain.Product, bool) {
	product, ok := r.products[id]
	return product, ok
}

func (r *inMemoryRepository) Len() int {
	return len(r.products)
}
