package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductType discriminates the catalog variants
type ProductType int

const (
	TypeGame ProductType = iota + 1
	TypeConsole
	TypePeripheral
)

// ProductTypes returns every catalog type in menu order
func ProductTypes() []ProductType {
	return []ProductType{TypeGame, TypeConsole, TypePeripheral}
}

// IsValid reports whether t is an actual catalog type
func (t ProductType) IsValid() bool {
	return t >= TypeGame && t <= TypePeripheral
}

func (t ProductType) String() string {
	switch t {
	case TypeGame:
		return "Game"
	case TypeConsole:
		return "Console"
	case TypePeripheral:
		return "Peripheral"
	default:
		return "ProductType(" + strconv.Itoa(int(t)) + ")"
	}
}

// StorageCapacity is a console storage size in GB
type StorageCapacity int

const (
	Storage500GB StorageCapacity = 500
	Storage1TB   StorageCapacity = 1024
	Storage2TB   StorageCapacity = 2048
)

// StorageCapacities returns the accepted console storage sizes
func StorageCapacities() []StorageCapacity {
	return []StorageCapacity{Storage500GB, Storage1TB, Storage2TB}
}

func (s StorageCapacity) String() string {
	if s >= Storage1TB {
		return strconv.Itoa(int(s/Storage1TB)) + " TB"
	}
	return strconv.Itoa(int(s)) + " GB"
}

// ConnectionTypes returns the accepted peripheral connection types
func ConnectionTypes() []string {
	return []string{"USB", "Bluetooth", "Wireless", "P2", "USB-C"}
}

// Details is the variant payload of a Product. It is implemented only by
// Game, Console and Peripheral.
type Details interface {
	productType() ProductType
}

// Game holds the fields specific to games
type Game struct {
	Genre     string `json:"genre" validate:"notblank"`
	Developer string `json:"developer" validate:"notblank"`
}

func (Game) productType() ProductType { return TypeGame }

// Console holds the fields specific to consoles
type Console struct {
	Brand   string          `json:"brand"`
	Storage StorageCapacity `json:"storage" validate:"oneof=500 1024 2048"`
}

func (Console) productType() ProductType { return TypeConsole }

// Peripheral holds the fields specific to peripherals
type Peripheral struct {
	Brand          string `json:"brand"`
	ConnectionType string `json:"connection_type" validate:"oneof=USB Bluetooth Wireless P2 USB-C"`
}

func (Peripheral) productType() ProductType { return TypePeripheral }

// Product is a validated catalog entry. The zero value is not a valid
// product; use New or one of the typed constructors.
type Product struct {
	id      int
	name    string
	kind    ProductType
	price   decimal.Decimal
	details Details
}

// ProductDraft carries the raw field values collected for a product before
// validation. Only the fields of the selected Type are used.
type ProductDraft struct {
	Type           ProductType
	Name           string
	Price          decimal.Decimal
	Genre          string
	Developer      string
	Brand          string
	Storage        StorageCapacity
	ConnectionType string
}

// New builds a product of the draft's type, validating every field
func New(id int, d ProductDraft) (Product, error) {
	var details Details
	switch d.Type {
	case TypeGame:
		details = Game{
			Genre:     strings.TrimSpace(d.Genre),
			Developer: strings.TrimSpace(d.Developer),
		}
	case TypeConsole:
		details = Console{Brand: d.Brand, Storage: d.Storage}
	case TypePeripheral:
		details = Peripheral{Brand: d.Brand, ConnectionType: strings.TrimSpace(d.ConnectionType)}
	}
	return build(id, d.Name, d.Type, d.Price, details)
}

// NewGame builds a validated game
func NewGame(id int, name string, price decimal.Decimal, genre, developer string) (Product, error) {
	return New(id, ProductDraft{Type: TypeGame, Name: name, Price: price, Genre: genre, Developer: developer})
}

// NewConsole builds a validated console
func NewConsole(id int, name string, price decimal.Decimal, storage StorageCapacity, brand string) (Product, error) {
	return New(id, ProductDraft{Type: TypeConsole, Name: name, Price: price, Storage: storage, Brand: brand})
}

// NewPeripheral builds a validated peripheral
func NewPeripheral(id int, name string, price decimal.Decimal, brand, connectionType string) (Product, error) {
	return New(id, ProductDraft{Type: TypePeripheral, Name: name, Price: price, Brand: brand, ConnectionType: connectionType})
}

// DraftOf returns the draft that rebuilds p
func DraftOf(p Product) ProductDraft {
	d := ProductDraft{Type: p.kind, Name: p.name, Price: p.price}
	switch det := p.details.(type) {
	case Game:
		d.Genre, d.Developer = det.Genre, det.Developer
	case Console:
		d.Brand, d.Storage = det.Brand, det.Storage
	case Peripheral:
		d.Brand, d.ConnectionType = det.Brand, det.ConnectionType
	}
	return d
}

func build(id int, name string, kind ProductType, price decimal.Decimal, details Details) (Product, error) {
	p := Product{
		id:      id,
		name:    strings.TrimSpace(name),
		kind:    kind,
		price:   price,
		details: details,
	}
	if err := validateProduct(p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// WithID returns a copy of p carrying id, re-validated
func (p Product) WithID(id int) (Product, error) {
	return build(id, p.name, p.kind, p.price, p.details)
}

func (p Product) ID() int                { return p.id }
func (p Product) Name() string           { return p.name }
func (p Product) Type() ProductType      { return p.kind }
func (p Product) Price() decimal.Decimal { return p.price }

// Details returns a copy of the variant payload
func (p Product) Details() Details { return p.details }

// Game returns the game fields when p is a game
func (p Product) Game() (Game, bool) {
	g, ok := p.details.(Game)
	return g, ok
}

// Console returns the console fields when p is a console
func (p Product) Console() (Console, bool) {
	c, ok := p.details.(Console)
	return c, ok
}

// Peripheral returns the peripheral fields when p is a peripheral
func (p Product) Peripheral() (Peripheral, bool) {
	per, ok := p.details.(Peripheral)
	return per, ok
}

// Equal reports whether p and o hold the same values
func (p Product) Equal(o Product) bool {
	return p.id == o.id &&
		p.name == o.name &&
		p.kind == o.kind &&
		p.price.Equal(o.price) &&
		p.details == o.details
}
