package domain

import (
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestNewConsole_RendersStorageInTB(t *testing.T) {
	p, err := NewConsole(1, "PS5", price(t, "3999.90"), Storage2TB, "Sony")
	require.NoError(t, err)

	assert.Equal(t, 1, p.ID())
	assert.Equal(t, TypeConsole, p.Type())

	lines := p.View().Lines()
	assert.Equal(t, []string{
		"ID: 1",
		"Name: PS5",
		"Type: Console",
		"Price: 3999.90",
		"Brand: Sony",
		"Storage: 2 TB",
	}, lines)
}

func TestStorageCapacity_String(t *testing.T) {
	assert.Equal(t, "500 GB", Storage500GB.String())
	assert.Equal(t, "1 TB", Storage1TB.String())
	assert.Equal(t, "2 TB", Storage2TB.String())
}

func TestNew_RejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		draft  ProductDraft
		id     int
		fields []string
	}{
		{
			name:   "console storage outside the allowed sizes",
			draft:  ProductDraft{Type: TypeConsole, Name: "PS5", Price: decimal.NewFromInt(10), Storage: 999, Brand: "Sony"},
			fields: []string{"storage"},
		},
		{
			name:   "peripheral over HDMI",
			draft:  ProductDraft{Type: TypePeripheral, Name: "Cable", Price: decimal.NewFromInt(10), Brand: "Acme", ConnectionType: "HDMI"},
			fields: []string{"connection_type"},
		},
		{
			name:   "blank name",
			draft:  ProductDraft{Type: TypeGame, Name: "   ", Price: decimal.NewFromInt(10), Genre: "RPG", Developer: "FromSoftware"},
			fields: []string{"name"},
		},
		{
			name:   "negative price",
			draft:  ProductDraft{Type: TypeGame, Name: "Elden Ring", Price: decimal.NewFromFloat(-0.01), Genre: "RPG", Developer: "FromSoftware"},
			fields: []string{"price"},
		},
		{
			name:   "negative price below float precision",
			draft:  ProductDraft{Type: TypeGame, Name: "Ghost", Price: decimal.RequireFromString("-1e-400"), Genre: "RPG", Developer: "Dev"},
			fields: []string{"price"},
		},
		{
			name:   "blank genre and developer",
			draft:  ProductDraft{Type: TypeGame, Name: "Elden Ring", Price: decimal.NewFromInt(10), Genre: "", Developer: " \t"},
			fields: []string{"genre", "developer"},
		},
		{
			name:   "unknown type",
			draft:  ProductDraft{Type: ProductType(9), Name: "Mystery", Price: decimal.NewFromInt(1)},
			fields: []string{"type"},
		},
		{
			name:   "negative id",
			id:     -1,
			draft:  ProductDraft{Type: TypePeripheral, Name: "Mouse", Price: decimal.NewFromInt(1), ConnectionType: "USB"},
			fields: []string{"id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.id, tt.draft)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidProduct))
			assert.Equal(t, Product{}, p)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Len(t, vErr.Fields, len(tt.fields))
			for _, f := range tt.fields {
				assert.True(t, vErr.Has(f), "expected %s to be rejected, got %v", f, vErr.Fields)
			}
		})
	}
}

func TestNew_AcceptsTinyPositivePrice(t *testing.T) {
	p, err := NewGame(1, "Ghost", decimal.RequireFromString("1e-400"), "RPG", "Dev")
	require.NoError(t, err)
	assert.True(t, p.Price().IsPositive())
}

func TestNewPeripheral_TrimsConnectionType(t *testing.T) {
	p, err := NewPeripheral(3, "DualSense", decimal.NewFromInt(450), "Sony", "  Bluetooth ")
	require.NoError(t, err)

	per, ok := p.Peripheral()
	require.True(t, ok)
	assert.Equal(t, "Bluetooth", per.ConnectionType)
}

func TestNewGame_TrimsTextFields(t *testing.T) {
	p, err := NewGame(2, "  Hades ", decimal.NewFromInt(50), " Roguelike", "Supergiant ")
	require.NoError(t, err)

	assert.Equal(t, "Hades", p.Name())
	g, ok := p.Game()
	require.True(t, ok)
	assert.Equal(t, Game{Genre: "Roguelike", Developer: "Supergiant"}, g)

	_, ok = p.Console()
	assert.False(t, ok)
}

func TestValidationError_Message(t *testing.T) {
	_, err := NewConsole(1, "", decimal.NewFromInt(-1), 999, "Sony")
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "name must not be blank")
	assert.Contains(t, msg, "price must be greater than or equal to 0")
	assert.Contains(t, msg, "storage must be one of: 500, 1024, 2048")
}

func TestDraftOf_RebuildsEqualProduct(t *testing.T) {
	original, err := NewPeripheral(4, "Keyboard", price(t, "199.99"), "Logitech", "USB-C")
	require.NoError(t, err)

	rebuilt, err := New(original.ID(), DraftOf(original))
	require.NoError(t, err)

	assert.True(t, original.Equal(rebuilt))
}

func TestWithID_KeepsFieldsAndRevalidates(t *testing.T) {
	p, err := NewGame(0, "Celeste", decimal.NewFromInt(40), "Platformer", "Maddy Makes Games")
	require.NoError(t, err)

	stamped, err := p.WithID(12)
	require.NoError(t, err)
	assert.Equal(t, 12, stamped.ID())
	assert.Equal(t, p.Name(), stamped.Name())
	assert.Equal(t, 0, p.ID())

	_, err = p.WithID(-3)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestProductType_String(t *testing.T) {
	assert.Equal(t, "Game", TypeGame.String())
	assert.Equal(t, "Console", TypeConsole.String())
	assert.Equal(t, "Peripheral", TypePeripheral.String())
	assert.Equal(t, "ProductType(7)", ProductType(7).String())
	assert.False(t, ProductType(0).IsValid())
}
