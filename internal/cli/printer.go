package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"press-start/internal/domain"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rule = "*****************************************************"

// PrinterOptions controls how the menu renders
type PrinterOptions struct {
	Color          bool
	Locale         language.Tag
	CurrencySymbol string
}

// Printer writes menu screens and product descriptions
type Printer struct {
	out      io.Writer
	numbers  *message.Printer
	currency string
	fraction string

	banner    *color.Color
	title     *color.Color
	plain     *color.Color
	success   *color.Color
	failure   *color.Color
	secondary *color.Color
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer, opts PrinterOptions) *Printer {
	p := &Printer{
		out:       out,
		numbers:   message.NewPrinter(opts.Locale),
		currency:  opts.CurrencySymbol,
		banner:    color.New(color.FgHiMagenta, color.BgBlack),
		title:     color.New(color.FgHiCyan),
		plain:     color.New(color.FgHiWhite),
		success:   color.New(color.FgHiGreen),
		failure:   color.New(color.FgHiRed),
		secondary: color.New(color.FgHiBlack),
	}
	p.fraction = fractionSeparator(p.numbers)

	if !opts.Color {
		for _, c := range []*color.Color{p.banner, p.title, p.plain, p.success, p.failure, p.secondary} {
			c.DisableColor()
		}
	}

	return p
}

// Money formats an amount with the locale's separators and the currency
// symbol, always with two decimals
func (p *Printer) Money(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	// Group the integer part through the locale; values past int64 keep
	// their digits ungrouped
	grouped := whole
	if units, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = p.numbers.Sprint(number.Decimal(units))
	}

	formatted := grouped + p.fraction + cents
	if amount.IsNegative() && fixed != "0.00" {
		formatted = "-" + formatted
	}
	if p.currency == "" {
		return formatted
	}
	return p.currency + " " + formatted
}

// fractionSeparator reads the locale's decimal separator off a formatted
// sample
func fractionSeparator(mp *message.Printer) string {
	sep := strings.Trim(mp.Sprint(number.Decimal(0.5, number.Scale(1))), "05")
	if sep == "" {
		return "."
	}
	return sep
}

// Menu prints the main menu
func (p *Printer) Menu() {
	p.banner.Fprintln(p.out, rule)
	p.banner.Fprintln(p.out, "                                                     ")
	p.banner.Fprintln(p.out, "                PRESS START GAMES                    ")
	p.banner.Fprintln(p.out, "                                                     ")
	p.banner.Fprintln(p.out, rule)
	p.title.Fprintln(p.out, "            1 - List all products                    ")
	p.title.Fprintln(p.out, "            2 - List product by ID                   ")
	p.title.Fprintln(p.out, "            3 - Register product                     ")
	p.title.Fprintln(p.out, "            4 - Update product                       ")
	p.title.Fprintln(p.out, "            5 - Delete product                       ")
	p.title.Fprintln(p.out, "            0 - Exit                                 ")
	p.title.Fprintln(p.out, rule)
	fmt.Fprintln(p.out)
}

// Heading prints the title of the running action
func (p *Printer) Heading(title string) {
	p.plain.Fprintf(p.out, "\n\n%s\n\n", title)
}

// Product prints one product description
func (p *Printer) Product(view domain.View) {
	p.title.Fprintln(p.out, "\n"+rule)
	p.plain.Fprintln(p.out, "                    PRODUCT DATA                     ")
	p.title.Fprintln(p.out, rule)

	for _, f := range view.Fields() {
		value := f.Value
		if f.Label == "Price" {
			value = p.Money(view.Price)
		}
		fmt.Fprintf(p.out, "%s: %s\n", f.Label, value)
	}

	p.title.Fprintln(p.out, rule)
}

// Success prints a confirmation
func (p *Printer) Success(format string, args ...any) {
	p.success.Fprintf(p.out, "\n"+format+"\n", args...)
}

// Failure prints a recoverable problem
func (p *Printer) Failure(format string, args ...any) {
	p.failure.Fprintf(p.out, "\n"+format+"\n", args...)
}

// Detail prints an indented line under a failure
func (p *Printer) Detail(format string, args ...any) {
	p.failure.Fprintf(p.out, "  - "+format+"\n", args...)
}

// Info prints neutral text
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// About prints the closing screen
func (p *Printer) About() {
	p.success.Fprintln(p.out, "\nPress Start Games")
	p.secondary.Fprintln(p.out, rule)
	p.secondary.Fprintln(p.out, "Catalog manager for games, consoles and peripherals")
	p.secondary.Fprintln(p.out, "All data lives in memory and ends with the session")
	p.secondary.Fprintln(p.out, rule)
}

func labels[T fmt.Stringer](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if strings.EqualFold(o, value) {
			return i
		}
	}
	return -1
}
