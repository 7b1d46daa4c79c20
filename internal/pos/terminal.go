package pos

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/chrisdamba/restobill/internal/models"
)

// Terminal runs one interactive billing session: the main menu loop, order
// assembly and the admin catalog operations. It owns the catalog for the
// lifetime of the process; nothing is persisted across runs except receipts.
type Terminal struct {
	Config  *models.Config
	Catalog *Catalog

	reader    *Reader
	out       io.Writer
	formatter ReceiptFormatter
	receipts  []ReceiptDestination
	now       func() time.Time
}

func NewTerminal(config *models.Config, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		Config:  config,
		Catalog: NewCatalog(config.SeedMenu),
		reader:  NewReader(in, out),
		out:     out,
		formatter: ReceiptFormatter{
			RestaurantName: config.RestaurantName,
			Currency:       config.Currency,
		},
		receipts: []ReceiptDestination{
			&ConsoleOutput{Writer: out},
			NewFileOutput(config.ReceiptFolder),
		},
		now: time.Now,
	}
}

// Run drives the main menu until the user exits or the input stream ends.
// Every in-session error is recovered and reported; only end-of-input or a
// broken input stream ends the loop early.
func (t *Terminal) Run() error {
	fmt.Fprintln(t.out, "=== Welcome to Simple Restaurant Billing System ===")
	for {
		t.showMainMenu()
		choice, err := t.reader.ReadInt("Choose option: ")
		if err != nil {
			return t.finish(err)
		}
		switch choice {
		case models.ChoiceViewMenu:
			t.showMenu()
		case models.ChoicePlaceOrder:
			if err := t.placeOrder(); err != nil {
				return t.finish(err)
			}
		case models.ChoiceAddItem:
			if err := t.adminAddItem(); err != nil {
				return t.finish(err)
			}
		case models.ChoiceRemoveItem:
			if err := t.adminRemoveItem(); err != nil {
				return t.finish(err)
			}
		case models.ChoiceExit:
			fmt.Fprintln(t.out, "Thank you! Exiting...")
			return nil
		default:
			fmt.Fprintln(t.out, "Invalid choice. Try again.")
		}
	}
}

// finish turns end-of-input into a graceful exit.
func (t *Terminal) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(t.out, "\nInput closed. Exiting...")
		return nil
	}
	return err
}

func (t *Terminal) showMainMenu() {
	fmt.Fprintln(t.out, "\nMain Menu:")
	fmt.Fprintln(t.out, "1. View Menu")
	fmt.Fprintln(t.out, "2. Place Order")
	fmt.Fprintln(t.out, "3. Admin - Add Menu Item")
	fmt.Fprintln(t.out, "4. Admin - Remove Menu Item")
	fmt.Fprintln(t.out, "5. Exit")
}

func (t *Terminal) showMenu() {
	fmt.Fprintln(t.out, "\n----- MENU -----")
	for _, item := range t.Catalog.List() {
		fmt.Fprintf(t.out, "%2d. %-20s %s %.2f\n", item.ID, item.Name, t.Config.Currency, item.Price)
	}
}

func (t *Terminal) placeOrder() error {
	if t.Catalog.IsEmpty() {
		fmt.Fprintln(t.out, "Menu is empty. Ask admin to add items.")
		return nil
	}
	order := models.NewOrder(t.now())
	for {
		t.showMenu()
		id, err := t.reader.ReadInt("Enter Menu ID to add to order (0 to finish): ")
		if err != nil {
			return err
		}
		if id == models.FinishOrdering {
			break
		}
		item, ok := t.Catalog.FindByID(id)
		if !ok {
			fmt.Fprintln(t.out, "Invalid Menu ID. Try again.")
			continue
		}
		qty, err := t.reader.ReadInt("Enter quantity: ")
		if err != nil {
			return err
		}
		if addErr := order.AddItem(item, qty); addErr != nil {
			fmt.Fprintln(t.out, "Quantity must be >= 1")
			continue
		}
		fmt.Fprintf(t.out, "Added: %s x%d\n", item.Name, qty)
		more, err := t.reader.ReadString("Add more? (y/n): ")
		if err != nil {
			return err
		}
		if !strings.EqualFold(more, "y") {
			break
		}
	}
	if order.IsEmpty() {
		fmt.Fprintln(t.out, "No items ordered.")
		return nil
	}
	t.printReceipt(order)
	return nil
}

// printReceipt computes the bill and delivers the receipt to every
// destination. A failed delivery is a warning, never fatal: the order is
// complete once the receipt has been shown.
func (t *Terminal) printReceipt(order *models.Order) {
	bill := ComputeBilling(order, t.Config.TaxRate)
	text := t.formatter.Format(order, bill, order.PlacedAt, t.Config.TaxRate)
	name := ReceiptFileName(order.PlacedAt)

	for _, dest := range t.receipts {
		location, err := dest.WriteReceipt(name, []byte(text))
		if err != nil {
			log.Printf("could not deliver receipt %s: %v", name, err)
			fmt.Fprintf(t.out, "Could not save receipt: %v\n", err)
			continue
		}
		if location != "" {
			fmt.Fprintf(t.out, "Receipt saved to %s\n", location)
		}
	}
}

func (t *Terminal) adminAddItem() error {
	name, err := t.reader.ReadString("Enter item name: ")
	if err != nil {
		return err
	}
	price, err := t.reader.ReadFloat(fmt.Sprintf("Enter price (%s): ", t.Config.Currency))
	if err != nil {
		return err
	}
	for price < 0 {
		fmt.Fprintln(t.out, "Price must be non-negative.")
		price, err = t.reader.ReadFloat(fmt.Sprintf("Enter price (%s): ", t.Config.Currency))
		if err != nil {
			return err
		}
	}
	item := t.Catalog.Add(name, price)
	fmt.Fprintf(t.out, "Item added with ID %d\n", item.ID)
	return nil
}

func (t *Terminal) adminRemoveItem() error {
	t.showMenu()
	id, err := t.reader.ReadInt("Enter Menu ID to remove: ")
	if err != nil {
		return err
	}
	if t.Catalog.RemoveByID(id) {
		fmt.Fprintln(t.out, "Item removed.")
	} else {
		fmt.Fprintln(t.out, "Item id not found.")
	}
	return nil
}
