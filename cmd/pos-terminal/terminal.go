package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/poscatcafe/pos-terminal/internal/api"
	"github.com/poscatcafe/pos-terminal/internal/cart"
	"github.com/poscatcafe/pos-terminal/internal/checkout"
	"github.com/poscatcafe/pos-terminal/internal/loyalty"
	"github.com/poscatcafe/pos-terminal/internal/models"
	"github.com/poscatcafe/pos-terminal/internal/panel"
	"github.com/poscatcafe/pos-terminal/internal/session"
	"github.com/poscatcafe/pos-terminal/internal/store"
)

type panels struct {
	products  *panel.ProductPanel
	customers *panel.CustomerPanel
	employees *panel.EmployeePanel
	settings  *panel.SettingsPanel
}

// terminal is the line-oriented front end: it renders stores and drives the
// cart, the checkout machine and the CRUD panels from typed commands.
type terminal struct {
	reader     *bufio.Reader
	user       *models.User
	guard      *session.Guard
	cart       *cart.Cart
	machine    *checkout.Machine
	searcher   *loyalty.Searcher
	products   *store.ProductStore
	panels     panels
	loyaltyAPI api.LoyaltyAPI
	ordersAPI  api.OrdersAPI
}

func (t *terminal) run(ctx context.Context) {

	fmt.Println(`Type "help" for commands.`)

	for {
		fmt.Print("> ")

		line, err := t.reader.ReadString('\n')
		if err != nil {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		command, args := fields[0], fields[1:]

		switch command {
		case "help":
			t.printHelp()
		case "products":
			t.showProducts(strings.Join(args, " "))
		case "add":
			t.withProductID(args, func(id int64) {
				if err := t.cart.Add(id); err != nil {
					fmt.Println("! " + err.Error())
				}
				t.showCart()
			})
		case "qty":
			t.changeQuantity(args)
		case "rm":
			t.withProductID(args, func(id int64) {
				t.cart.Remove(id)
				t.showCart()
			})
		case "cart":
			t.showCart()
		case "clearcart":
			t.cart.Clear()
			t.machine.ClearCustomer()
			t.showCart()
		case "customer":
			t.searchCustomer(ctx, strings.Join(args, " "))
		case "pick":
			t.pickCustomer(ctx, args)
		case "nocustomer":
			t.machine.ClearCustomer()
			fmt.Println("Customer cleared.")
		case "coupon":
			if err := t.machine.ToggleCoupon(ctx); err != nil {
				fmt.Println("! " + err.Error())
			} else {
				fmt.Printf("Coupon applied: %v\n", t.machine.UseCoupon())
			}
		case "pay":
			t.checkout(ctx)
		case "customers":
			t.showCustomers(ctx, strings.Join(args, " "))
		case "employees":
			t.showEmployees(ctx, strings.Join(args, " "))
		case "settings":
			t.showSettings(ctx)
		case "report":
			t.showReport(ctx)
		case "logout":
			t.guard.Logout(ctx)
			fmt.Println("Logged out.")

			return
		case "quit", "exit":
			return
		default:
			fmt.Println("Unknown command. Type \"help\".")
		}
	}
}

func (t *terminal) printHelp() {
	fmt.Println(`Commands:
  products [term]     list the catalog, optionally filtered
  add <id>            add one unit of a product to the cart
  qty <id> <delta>    change a cart line's quantity
  rm <id>             remove a cart line
  cart                show the cart
  clearcart           empty the cart
  customer <query>    search loyalty customers
  pick <n>            select search result n
  nocustomer          detach the selected customer
  coupon              toggle the loyalty coupon
  pay                 start checkout
  customers [term]    customer management
  employees [term]    employee management (admin only)
  settings            show shop settings
  report              sales report
  logout | quit`)
}

func (t *terminal) withProductID(args []string, fn func(int64)) {

	if len(args) < 1 {
		fmt.Println("Product id required.")

		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number.")

		return
	}

	fn(id)
}

func (t *terminal) changeQuantity(args []string) {

	if len(args) < 2 {
		fmt.Println("Usage: qty <id> <delta>")

		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number.")

		return
	}

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("Delta must be a number.")

		return
	}

	if err := t.cart.ChangeQuantity(id, delta); err != nil {
		fmt.Println("! " + err.Error())
	}

	t.showCart()
}

func (t *terminal) showProducts(term string) {

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tPRICE\tSTOCK\tCATEGORY")

	for _, p := range t.products.Filter(term, store.CategoryAll) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Code, p.Name, baht(p.Price), p.Stock, p.NormalizedCategory())
	}

	w.Flush()
}

func (t *terminal) showCart() {

	lines := t.cart.Lines()

	if len(lines) == 0 {
		fmt.Println("Cart is empty.")

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQTY\tSUBTOTAL")

	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", l.ProductID, l.ProductName, baht(l.UnitPrice), l.Quantity, baht(l.Subtotal()))
	}

	w.Flush()

	fmt.Printf("Total: %s\n", baht(t.machine.TotalDue()))
}

func (t *terminal) searchCustomer(ctx context.Context, query string) {

	if len([]rune(strings.TrimSpace(query))) < loyalty.MinQueryLength {
		fmt.Println("Type at least 2 characters.")

		return
	}

	done := make(chan struct{})

	searcher := loyalty.NewSearcher(t.loyaltyAPI, func(results []models.LoyaltySummary) {
		if len(results) == 0 {
			fmt.Println("No customers found.")
		}

		for i, r := range results {
			fmt.Printf("%d. %s — %d points, %d coupons, %d to next\n",
				i+1, r.CustomerName, r.CurrentPoints, r.RedeemableCoupons, r.PointsToNextCoupon)
		}

		close(done)
	}, func(err error) {
		fmt.Println("! Customer search failed: " + err.Error())
		close(done)
	})

	t.searcher = searcher

	searcher.HandleInput(ctx, query)

	<-done
}

func (t *terminal) pickCustomer(ctx context.Context, args []string) {

	if len(args) < 1 {
		fmt.Println("Usage: pick <n>")

		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		fmt.Println("Pick a result number.")

		return
	}

	if t.searcher == nil {
		fmt.Println("Search for a customer first.")

		return
	}

	result, ok := t.searcher.Result(n - 1)
	if !ok {
		fmt.Println("No such search result.")

		return
	}

	t.machine.SelectCustomer(ctx, result)
	t.searcher.Clear()

	customer := t.machine.Customer()
	fmt.Printf("Selected %s.\n", customer.Name)

	if detail := t.machine.LoyaltyDetail(); detail != nil {
		fmt.Printf("Points: %d | available coupons: %d | points to next coupon: %d\n",
			detail.TotalPoints,
			models.RedeemableCoupons(detail.TotalPoints),
			models.PointsToNextCoupon(detail.TotalPoints))
	} else {
		fmt.Println("Loyalty detail unavailable; coupons cannot be used.")
	}
}

// checkout walks the full flow: review, method, amount, submit, receipt.
func (t *terminal) checkout(ctx context.Context) {

	if err := t.machine.BeginReview(ctx); err != nil {
		// A stock failure leaves the flow in Reviewing; abandon it so the
		// next pay starts fresh.
		t.machine.Cancel()

		return
	}

	summary, _ := t.machine.Summary()
	fmt.Printf("Subtotal %s | discount %s | total %s\n", baht(summary.Subtotal), baht(summary.Discount), baht(summary.Total))

	if err := t.machine.Proceed(); err != nil {
		fmt.Println("! " + err.Error())

		return
	}

	fmt.Print("Payment method (cash/qr, empty cancels): ")

	line, err := t.reader.ReadString('\n')
	if err != nil {
		t.machine.Cancel()

		return
	}

	method := strings.TrimSpace(line)
	if method == "" {
		t.machine.Cancel()
		fmt.Println("Checkout cancelled; cart kept.")

		return
	}

	if err := t.machine.SelectMethod(method); err != nil {
		fmt.Println("! " + err.Error())
		t.machine.Cancel()

		return
	}

	var result *checkout.Result

	if method == models.PaymentMethodQR {

		for {
			fmt.Printf("Scan to pay: %s\nPress enter once settled, or type cancel: ", baht(t.machine.TotalDue()))

			line, err := t.reader.ReadString('\n')
			if err != nil || strings.TrimSpace(line) == "cancel" {
				t.machine.Cancel()
				fmt.Println("Checkout cancelled; cart kept.")

				return
			}

			result, err = t.machine.SubmitQR(ctx)
			if err == nil {
				break
			}
		}
	} else {

		for {
			fmt.Print("Cash received (empty cancels): ")

			line, err := t.reader.ReadString('\n')
			if err != nil || strings.TrimSpace(line) == "" {
				t.machine.Cancel()
				fmt.Println("Checkout cancelled; cart kept.")

				return
			}

			received, parseErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
			if parseErr != nil {
				fmt.Println("! Enter a number.")

				continue
			}

			result, err = t.machine.SubmitCash(ctx, received)
			if err == nil {
				break
			}
		}

		fmt.Printf("Change: %s\n", baht(result.Change))
	}

	if result.ReceiptHTML != "" {
		fmt.Println("---- receipt ----")
		fmt.Println(result.ReceiptHTML)
		fmt.Println("-----------------")
	} else {
		fmt.Println("Payment settled.")
	}

	t.machine.Reset()
}

func (t *terminal) showCustomers(ctx context.Context, term string) {

	if err := t.panels.customers.Load(ctx); err != nil {
		fmt.Println("! " + err.Error())

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tPHONE\tEMAIL\tPOINTS")

	for _, c := range t.panels.customers.Filter(term) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", c.DisplayCode(), c.Name, c.Phone, c.Email, c.LoyaltyPoints)
	}

	w.Flush()
}

func (t *terminal) showEmployees(ctx context.Context, term string) {

	if err := session.RequireAdmin(t.user); err != nil {
		fmt.Println("🚫 " + err.Error())

		return
	}

	if err := t.panels.employees.Load(ctx); err != nil {
		fmt.Println("! " + err.Error())

		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE")

	for _, e := range t.panels.employees.Filter(term) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Username, e.Name, e.Role)
	}

	w.Flush()
}

func (t *terminal) showSettings(ctx context.Context) {

	settings, err := t.panels.settings.Load(ctx)
	if err != nil {
		fmt.Println("! " + err.Error())

		return
	}

	fmt.Printf("Shop: %s\nAddress: %s\nPhone: %s\nTax ID: %s\nPromptPay: %s\n",
		settings.ShopName, settings.Address, settings.Phone, settings.TaxID, settings.PromptpayID)
}

func (t *terminal) showReport(ctx context.Context) {

	report, err := t.ordersAPI.SalesReport(ctx, "", "")
	if err != nil {
		fmt.Println("! " + err.Error())

		return
	}

	fmt.Printf("Orders: %d | total sales: %s\n", report.TotalOrders, baht(report.TotalSales))
}

func baht(n float64) string {
	return fmt.Sprintf("฿%.2f", n)
}
