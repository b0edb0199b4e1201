package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Field is one labelled value of a product description
type Field struct {
	Label string
	Value string
}

// View is the read-only rendering data of a product
type View struct {
	ID      int
	Name    string
	Type    ProductType
	Price   decimal.Decimal
	Details []Field
}

// View describes p, including its type-specific fields
func (p Product) View() View {
	v := View{
		ID:    p.id,
		Name:  p.name,
		Type:  p.kind,
		Price: p.price,
	}

	switch p.kind {
	case TypeGame:
		g, _ := p.Game()
		v.Details = []Field{
			{Label: "Genre", Value: g.Genre},
			{Label: "Developer", Value: g.Developer},
		}
	case TypeConsole:
		c, _ := p.Console()
		v.Details = []Field{
			{Label: "Brand", Value: c.Brand},
			{Label: "Storage", Value: c.Storage.String()},
		}
	case TypePeripheral:
		per, _ := p.Peripheral()
		v.Details = []Field{
			{Label: "Brand", Value: per.Brand},
			{Label: "Connection", Value: per.ConnectionType},
		}
	}

	return v
}

// Fields returns the common fields followed by the type-specific ones,
// with the price in plain two-decimal notation
func (v View) Fields() []Field {
	fields := []Field{
		{Label: "ID", Value: strconv.Itoa(v.ID)},
		{Label: "Name", Value: v.Name},
		{Label: "Type", Value: v.Type.String()},
		{Label: "Price", Value: v.Price.StringFixed(2)},
	}
	return append(fields, v.Details...)
}

// Lines renders the view as "Label: value" lines
func (v View) Lines() []string {
	fields := v.Fields()
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	return lines
}
