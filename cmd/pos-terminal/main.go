package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/poscatcafe/pos-terminal/internal/api"
	"github.com/poscatcafe/pos-terminal/internal/cart"
	"github.com/poscatcafe/pos-terminal/internal/checkout"
	"github.com/poscatcafe/pos-terminal/internal/config"
	"github.com/poscatcafe/pos-terminal/internal/metrics"
	"github.com/poscatcafe/pos-terminal/internal/models"
	"github.com/poscatcafe/pos-terminal/internal/panel"
	"github.com/poscatcafe/pos-terminal/internal/session"
	"github.com/poscatcafe/pos-terminal/internal/store"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	// Load config
	cfg := config.MustLoad()

	// Credential store + API client
	creds, err := session.NewStore(cfg.Session.StateDir)
	if err != nil {
		slog.Error("❌ Error opening the session state directory", "error", err.Error())
		os.Exit(1)
	}

	client := api.New(cfg.Server.BaseURL, cfg.Server.Timeout, creds)
	guard := session.NewGuard(creds, client)

	// Optional Prometheus endpoint
	if cfg.Metrics.Addr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", metrics.Handler())

			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				slog.Error("Metrics listener stopped", slog.String("error", err.Error()))
			}
		}()
	}

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	// Session guard: validate the stored token, fall back to login.
	user, err := guard.Check(ctx)
	if err != nil {
		user, err = promptLogin(ctx, guard, reader)
		if err != nil {
			slog.Error("❌ Login failed", "error", err.Error())
			os.Exit(1)
		}
	}

	fmt.Printf("Welcome, %s (%s)\n", user.Name, user.Role)

	// Stores and panels
	productStore := store.NewProductStore()
	customerStore := store.NewCustomerStore()
	employeeStore := store.NewEmployeeStore()

	productPanel := panel.NewProductPanel(client, client, productStore)
	customerPanel := panel.NewCustomerPanel(client, customerStore)
	employeePanel := panel.NewEmployeePanel(client, employeeStore, user.ID)
	settingsPanel := panel.NewSettingsPanel(client)

	// Cart + checkout
	posCart := cart.New(productStore)

	machine := checkout.NewMachine(posCart, client, client, client, productPanel.Load, checkout.Listeners{
		OnNotice: func(message string) {
			fmt.Println("! " + message)
		},
	})

	if err := productPanel.Load(ctx); err != nil {
		slog.Error("❌ Error loading the product catalog", "error", err.Error())
		os.Exit(1)
	}

	term := &terminal{
		reader:     reader,
		user:       user,
		guard:      guard,
		cart:       posCart,
		machine:    machine,
		products:   productStore,
		panels:     panels{products: productPanel, customers: customerPanel, employees: employeePanel, settings: settingsPanel},
		loyaltyAPI: client,
		ordersAPI:  client,
	}

	slog.Info("🚀 POS terminal ready", slog.String("server", cfg.Server.BaseURL), slog.String("env", cfg.Env))

	term.run(ctx)
}

func promptLogin(ctx context.Context, guard *session.Guard, reader *bufio.Reader) (user *models.User, err error) {

	for range 3 {
		fmt.Print("Username: ")

		username, readErr := reader.ReadString('\n')
		if readErr != nil {
			return nil, readErr
		}

		fmt.Print("Password: ")

		password, readErr := reader.ReadString('\n')
		if readErr != nil {
			return nil, readErr
		}

		user, err = guard.Login(ctx, strings.TrimSpace(username), strings.TrimSpace(password))
		if err == nil {
			return user, nil
		}

		fmt.Println("Login failed: " + err.Error())
	}

	return nil, err
}
