package cli

import (
	"context"
	"io"

	"press-start/internal/domain"
	"press-start/internal/input"
	"press-start/internal/repository"
	"press-start/internal/service"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

type action struct {
	title string
	run   func() error
}

// Menu drives the interactive catalog session
type Menu struct {
	catalog service.CatalogService
	in      *input.Reader
	printer *Printer
	logger  *zap.Logger
	actions map[int]action
}

// NewMenu creates a Menu over the given catalog and console
func NewMenu(catalog service.CatalogService, in *input.Reader, printer *Printer, logger *zap.Logger) *Menu {
	m := &Menu{
		catalog: catalog,
		in:      in,
		printer: printer,
		logger:  logger,
	}

	m.actions = map[int]action{
		1: {title: "List all products", run: m.listAll},
		2: {title: "List product by ID", run: m.listByID},
		3: {title: "Register product", run: m.register},
		4: {title: "Update product", run: m.update},
		5: {title: "Delete product", run: m.delete},
	}

	return m
}

// Run shows the menu until the operator exits, input ends or ctx is
// cancelled
func (m *Menu) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		m.printer.Menu()
		option, err := m.in.Int("Enter the desired option: ")
		if err != nil {
			return m.endOfInput(ctx, err)
		}

		if option == 0 {
			m.printer.About()
			m.logger.Info("Session finished by operator")
			return nil
		}

		a, ok := m.actions[option]
		if !ok {
			m.printer.Failure("Invalid option!")
		} else {
			m.printer.Heading(a.title)
			if err := m.safely(a); err != nil {
				return m.endOfInput(ctx, err)
			}
		}

		if _, err := m.in.Line("\nPress enter to continue..."); err != nil {
			return m.endOfInput(ctx, err)
		}
	}
}

func (m *Menu) endOfInput(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) || ctx.Err() != nil {
		m.logger.Info("Input closed, leaving menu")
		return nil
	}
	return errors.Wrap(err, "read input")
}

// safely runs an action, converting a panic into a logged failure so the
// loop keeps going
func (m *Menu) safely(a action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic recovered",
				zap.Any("error", r),
				zap.String("action", a.title),
			)
			m.printer.Failure("Unexpected error, the operation was aborted.")
			err = nil
		}
	}()

	return a.run()
}

func (m *Menu) listAll() error {
	if m.catalog.Count() == 0 {
		m.printer.Info("No products registered.")
		return nil
	}

	for p := range m.catalog.List() {
		m.printer.Product(p.View())
	}
	return nil
}

func (m *Menu) listByID() error {
	id, err := m.in.Int("Product ID: ")
	if err != nil {
		return err
	}

	view, err := m.catalog.Describe(id)
	if err != nil {
		m.report(id, err)
		return nil
	}

	m.printer.Product(view)
	return nil
}

func (m *Menu) register() error {
	types := domain.ProductTypes()
	idx, err := m.in.Choice("Product type: ", labels(types), -1)
	if err != nil {
		return err
	}

	draft, err := m.readDraft(domain.ProductDraft{Type: types[idx]}, false)
	if err != nil {
		return err
	}

	product, err := m.catalog.Create(draft)
	if err != nil {
		m.report(0, err)
		return nil
	}

	m.printer.Success("Product %q was registered successfully with ID %d!", product.Name(), product.ID())
	return nil
}

func (m *Menu) update() error {
	id, err := m.in.Int("Product ID: ")
	if err != nil {
		return err
	}

	current, err := m.catalog.Find(id)
	if err != nil {
		m.report(id, err)
		return nil
	}

	m.printer.Product(current.View())
	m.printer.Info("Press enter to keep the current value.")

	draft, err := m.readDraft(domain.DraftOf(current), true)
	if err != nil {
		return err
	}

	product, err := m.catalog.Update(id, draft)
	if err != nil {
		m.report(id, err)
		return nil
	}

	m.printer.Success("Product %q was updated successfully!", product.Name())
	return nil
}

func (m *Menu) delete() error {
	id, err := m.in.Int("Product ID: ")
	if err != nil {
		return err
	}

	if err := m.catalog.Delete(id); err != nil {
		m.report(id, err)
		return nil
	}

	m.printer.Success("Product deleted successfully!")
	return nil
}

// readDraft asks for every field of the draft's type. When editing, the
// draft's values are offered as defaults.
func (m *Menu) readDraft(d domain.ProductDraft, editing bool) (domain.ProductDraft, error) {
	var err error

	if d.Name, err = m.in.Text("Name: ", d.Name); err != nil {
		return d, err
	}
	if editing {
		d.Price, err = m.in.DecimalOr("Price: ", d.Price)
	} else {
		d.Price, err = m.in.Decimal("Price: ")
	}
	if err != nil {
		return d, err
	}

	switch d.Type {
	case domain.TypeGame:
		if d.Genre, err = m.in.Text("Genre: ", d.Genre); err != nil {
			return d, err
		}
		if d.Developer, err = m.in.Text("Developer: ", d.Developer); err != nil {
			return d, err
		}
	case domain.TypeConsole:
		if d.Brand, err = m.in.OptionalText("Brand: ", d.Brand); err != nil {
			return d, err
		}
		sizes := domain.StorageCapacities()
		options := labels(sizes)
		idx, err := m.in.Choice("Storage: ", options, indexOf(options, d.Storage.String()))
		if err != nil {
			return d, err
		}
		d.Storage = sizes[idx]
	case domain.TypePeripheral:
		if d.Brand, err = m.in.OptionalText("Brand: ", d.Brand); err != nil {
			return d, err
		}
		options := domain.ConnectionTypes()
		idx, err := m.in.Choice("Connection type: ", options, indexOf(options, d.ConnectionType))
		if err != nil {
			return d, err
		}
		d.ConnectionType = options[idx]
	}

	return d, nil
}

// report tells the operator why an operation did not happen
func (m *Menu) report(id int, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		m.printer.Failure("The product is invalid:")
		for _, f := range vErr.Fields {
			m.printer.Detail("%s %s", f.Field, f.Message)
		}
	case errors.Is(err, repository.ErrProductNotFound):
		m.printer.Failure("Product with ID %d was not found!", id)
	case errors.Is(err, repository.ErrProductAlreadyExists):
		m.printer.Failure("A product with this ID already exists!")
	case errors.Is(err, service.ErrTypeChange):
		m.printer.Failure("The product type cannot be changed.")
	default:
		m.logger.Error("Operation failed", zap.Int("id", id), zap.Error(err))
		m.printer.Failure("Unexpected error: %v", err)
	}
}
