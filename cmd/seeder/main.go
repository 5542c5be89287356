// cmd/seeder/main.go
//
// Seeds a development database with demo users, catalog data, stock
// levels and a few orders. Destructive when run with -reset; never run
// it against production.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/acardosi/stockroom-be/internal/adapters/db"
	"github.com/acardosi/stockroom-be/internal/adapters/security"
	"github.com/acardosi/stockroom-be/internal/core/domain"
	"github.com/acardosi/stockroom-be/internal/pkg/config"
	"github.com/acardosi/stockroom-be/internal/pkg/logger"
)

func main() {
	var (
		reset   = flag.Bool("reset", false, "truncate all tables before seeding")
		migrate = flag.Bool("migrate", true, "run migrations before seeding")
	)
	flag.Parse()

	slogger := logger.SetupLogger("info", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.IsProduction() {
		slogger.Error("refusing to seed a production database")
		os.Exit(1)
	}

	ctx := context.Background()

	if *migrate {
		if err := db.RunMigrationsWithRetry(ctx, &db.MigrationConfig{
			DatabaseURL: cfg.GetDatabaseURL(),
		}, slogger, 3); err != nil {
			slogger.Error("failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: 4,
		MinConnections: 1,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	seeder := &Seeder{db: database, logger: slogger, bcryptCost: cfg.Security.BcryptCost}

	if *reset {
		if err := seeder.Reset(ctx); err != nil {
			slogger.Error("failed to reset database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	start := time.Now()
	if err := seeder.Run(ctx); err != nil {
		slogger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slogger.Info("seeding complete", slog.Duration("elapsed", time.Since(start)))
}

// Seeder populates the database with demo data.
type Seeder struct {
	db         *db.Database
	logger     *slog.Logger
	bcryptCost int

	categoryIDs map[string]int64
	supplierIDs map[string]int64
	customerIDs map[string]int64
	locationIDs map[string]int64
	productIDs  map[string]int64
}

// Reset truncates every table, child tables first.
func (s *Seeder) Reset(ctx context.Context) error {
	s.logger.Warn("truncating all tables")

	_, err := s.db.Exec(ctx, `
		TRUNCATE inventory_movements, inventory, order_items, orders,
			products, locations, customers, suppliers, categories, users
		RESTART IDENTITY CASCADE`)
	return err
}

// Run seeds all entities in dependency order.
func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"users", s.seedUsers},
		{"categories", s.seedCategories},
		{"suppliers", s.seedSuppliers},
		{"customers", s.seedCustomers},
		{"locations", s.seedLocations},
		{"products", s.seedProducts},
		{"inventory", s.seedInventory},
		{"orders", s.seedOrders},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}
		s.logger.Info("seeded", slog.String("step", step.name))
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	hasher := security.NewBcryptHasher(s.bcryptCost)

	users := []struct {
		username, email, fullName, password string
		role                                domain.UserRole
	}{
		{"admin", "admin@stockroom.local", "Administrator", "admin", domain.RoleAdmin},
		{"mrossi", "m.rossi@stockroom.local", "Marco Rossi", "password", domain.RoleManager},
		{"lbianchi", "l.bianchi@stockroom.local", "Laura Bianchi", "password", domain.RoleClerk},
		{"gferrari", "g.ferrari@stockroom.local", "Giulia Ferrari", "password", domain.RoleClerk},
	}

	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(ctx, `
			INSERT INTO users (username, email, full_name, role, password_hash)
			VALUES ($1, $2, $3, $4, $5)`,
			u.username, u.email, u.fullName, string(u.role), hash)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context) error {
	s.categoryIDs = make(map[string]int64)

	categories := []struct{ name, description string }{
		{"Beverages", "Bottled and canned drinks"},
		{"Dry Goods", "Pasta, rice, flour and other shelf-stable food"},
		{"Dairy", "Refrigerated milk products"},
		{"Cleaning", "Detergents and cleaning supplies"},
		{"Packaging", "Boxes, bags and wrapping material"},
	}

	for _, c := range categories {
		var id int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO categories (name, description)
			VALUES ($1, $2) RETURNING id`,
			c.name, c.description).Scan(&id)
		if err != nil {
			return err
		}
		s.categoryIDs[c.name] = id
	}
	return nil
}

func (s *Seeder) seedSuppliers(ctx context.Context) error {
	s.supplierIDs = make(map[string]int64)

	suppliers := []struct{ name, contact, email, phone, address string }{
		{"Alimentari Russo SRL", "Paolo Russo", "orders@russo.example", "+39 02 1234567", "Via Milano 12, Milano"},
		{"CleanPro Distribution", "Sandra Greco", "sales@cleanpro.example", "+39 06 7654321", "Via Roma 88, Roma"},
		{"PackItalia", "Enzo Moretti", "info@packitalia.example", "+39 011 445566", "Corso Torino 3, Torino"},
	}

	for _, sup := range suppliers {
		var id int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO suppliers (name, contact_name, email, phone, address)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			sup.name, sup.contact, sup.email, sup.phone, sup.address).Scan(&id)
		if err != nil {
			return err
		}
		s.supplierIDs[sup.name] = id
	}
	return nil
}

func (s *Seeder) seedCustomers(ctx context.Context) error {
	s.customerIDs = make(map[string]int64)

	customers := []struct{ name, email, phone, address string }{
		{"Bar Centrale", "barcentrale@example.com", "+39 02 998877", "Piazza Duomo 1, Milano"},
		{"Ristorante Da Luigi", "luigi@example.com", "+39 02 112233", "Via Verdi 45, Milano"},
		{"Hotel Bellavista", "purchasing@bellavista.example", "+39 031 556677", "Lungolago 9, Como"},
		{"Mensa Scolastica Nord", "mensa.nord@example.com", "+39 02 334455", "Via Scuole 7, Monza"},
	}

	for _, c := range customers {
		var id int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO customers (name, email, phone, address)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			c.name, c.email, c.phone, c.address).Scan(&id)
		if err != nil {
			return err
		}
		s.customerIDs[c.name] = id
	}
	return nil
}

func (s *Seeder) seedLocations(ctx context.Context) error {
	s.locationIDs = make(map[string]int64)

	locations := []struct{ name, address, notes string }{
		{"Main Warehouse", "Via Industria 24, Milano", "Primary storage, dock access"},
		{"Cold Storage", "Via Industria 24, Milano", "Refrigerated room, dairy only"},
		{"Shop Floor", "Via Garibaldi 5, Milano", "Front of house shelving"},
	}

	for _, l := range locations {
		var id int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO locations (name, address, notes)
			VALUES ($1, $2, $3) RETURNING id`,
			l.name, l.address, l.notes).Scan(&id)
		if err != nil {
			return err
		}
		s.locationIDs[l.name] = id
	}
	return nil
}

type seedProduct struct {
	sku, name, category, supplier string
	unitPrice, unitCost           string
	reorderLevel                  int
}

var demoProducts = []seedProduct{
	{"BEV-001", "Sparkling Water 1L", "Beverages", "Alimentari Russo SRL", "1.20", "0.55", 48},
	{"BEV-002", "Orange Juice 1L", "Beverages", "Alimentari Russo SRL", "2.40", "1.30", 24},
	{"BEV-003", "Espresso Beans 1kg", "Beverages", "Alimentari Russo SRL", "18.90", "11.00", 10},
	{"DRY-001", "Spaghetti 500g", "Dry Goods", "Alimentari Russo SRL", "1.10", "0.48", 60},
	{"DRY-002", "Arborio Rice 1kg", "Dry Goods", "Alimentari Russo SRL", "3.60", "1.95", 30},
	{"DRY-003", "Flour Type 00 1kg", "Dry Goods", "Alimentari Russo SRL", "1.50", "0.72", 40},
	{"DAI-001", "Whole Milk 1L", "Dairy", "Alimentari Russo SRL", "1.60", "0.95", 36},
	{"DAI-002", "Parmigiano Reggiano 300g", "Dairy", "Alimentari Russo SRL", "9.80", "6.10", 12},
	{"CLN-001", "Dish Soap 750ml", "Cleaning", "CleanPro Distribution", "2.90", "1.40", 20},
	{"CLN-002", "Surface Degreaser 5L", "Cleaning", "CleanPro Distribution", "12.50", "7.20", 8},
	{"PKG-001", "Cardboard Box 40x30x20", "Packaging", "PackItalia", "0.85", "0.32", 100},
	{"PKG-002", "Paper Bags (50 pack)", "Packaging", "PackItalia", "4.20", "2.10", 25},
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	s.productIDs = make(map[string]int64)

	for _, p := range demoProducts {
		var id int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO products (sku, name, description, category_id, supplier_id,
				unit_price, unit_cost, reorder_level)
			VALUES ($1, $2, '', $3, $4, $5, $6, $7) RETURNING id`,
			p.sku, p.name, s.categoryIDs[p.category], s.supplierIDs[p.supplier],
			decimal.RequireFromString(p.unitPrice), decimal.RequireFromString(p.unitCost),
			p.reorderLevel).Scan(&id)
		if err != nil {
			return err
		}
		s.productIDs[p.sku] = id
	}
	return nil
}

// seedInventory stocks every product in the main warehouse and a
// subset on the shop floor, with a matching inbound movement per row.
func (s *Seeder) seedInventory(ctx context.Context) error {
	mainID := s.locationIDs["Main Warehouse"]
	shopID := s.locationIDs["Shop Floor"]

	var stockRows [][]any
	var movementRows [][]any

	for i, p := range demoProducts {
		productID := s.productIDs[p.sku]
		warehouseQty := p.reorderLevel * 3

		stockRows = append(stockRows, []any{productID, mainID, warehouseQty, 0})
		movementRows = append(movementRows, []any{productID, mainID, "inbound", warehouseQty, "SEED", "initial stock"})

		if i%2 == 0 {
			shopQty := p.reorderLevel
			stockRows = append(stockRows, []any{productID, shopID, shopQty, 0})
			movementRows = append(movementRows, []any{productID, shopID, "inbound", shopQty, "SEED", "initial stock"})
		}
	}

	_, err := s.db.CopyFrom(ctx,
		pgx.Identifier{"inventory"},
		[]string{"product_id", "location_id", "current_stock", "reserved_stock"},
		pgx.CopyFromRows(stockRows))
	if err != nil {
		return fmt.Errorf("copying inventory rows: %w", err)
	}

	_, err = s.db.CopyFrom(ctx,
		pgx.Identifier{"inventory_movements"},
		[]string{"product_id", "location_id", "type", "quantity", "reference", "notes"},
		pgx.CopyFromRows(movementRows))
	if err != nil {
		return fmt.Errorf("copying movement rows: %w", err)
	}
	return nil
}

type seedOrderItem struct {
	sku      string
	quantity int
}

func (s *Seeder) seedOrders(ctx context.Context) error {
	mainID := s.locationIDs["Main Warehouse"]

	orders := []struct {
		number    string
		orderType domain.OrderType
		status    domain.OrderStatus
		supplier  string
		customer  string
		notes     string
		items     []seedOrderItem
	}{
		{
			number: "PO-2026-0001", orderType: domain.OrderPurchase, status: domain.StatusDraft,
			supplier: "Alimentari Russo SRL", notes: "weekly restock",
			items: []seedOrderItem{{"BEV-001", 96}, {"DRY-001", 120}, {"DAI-001", 72}},
		},
		{
			number: "PO-2026-0002", orderType: domain.OrderPurchase, status: domain.StatusActive,
			supplier: "PackItalia", notes: "packaging top-up",
			items: []seedOrderItem{{"PKG-001", 200}, {"PKG-002", 50}},
		},
		{
			number: "SO-2026-0001", orderType: domain.OrderSale, status: domain.StatusDraft,
			customer: "Bar Centrale", notes: "standing weekly order",
			items: []seedOrderItem{{"BEV-001", 24}, {"BEV-003", 2}, {"DAI-001", 12}},
		},
	}

	for _, o := range orders {
		var supplierID, customerID *int64
		if o.supplier != "" {
			id := s.supplierIDs[o.supplier]
			supplierID = &id
		}
		if o.customer != "" {
			id := s.customerIDs[o.customer]
			customerID = &id
		}

		type line struct {
			productID int64
			quantity  int
			unitPrice decimal.Decimal
			lineTotal decimal.Decimal
		}
		total := decimal.Zero
		var lines []line
		for _, item := range o.items {
			var price string
			for _, p := range demoProducts {
				if p.sku == item.sku {
					if o.orderType == domain.OrderPurchase {
						price = p.unitCost
					} else {
						price = p.unitPrice
					}
					break
				}
			}
			unitPrice := decimal.RequireFromString(price)
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
			total = total.Add(lineTotal)
			lines = append(lines, line{s.productIDs[item.sku], item.quantity, unitPrice, lineTotal})
		}

		var orderID int64
		err := s.db.QueryRow(ctx, `
			INSERT INTO orders (number, type, status, supplier_id, customer_id,
				location_id, notes, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			o.number, string(o.orderType), string(o.status), supplierID, customerID,
			mainID, o.notes, total).Scan(&orderID)
		if err != nil {
			return err
		}

		for _, l := range lines {
			_, err := s.db.Exec(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
				VALUES ($1, $2, $3, $4, $5)`,
				orderID, l.productID, l.quantity, l.unitPrice, l.lineTotal)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
