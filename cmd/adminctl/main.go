package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"food-express-backend/db"
	"food-express-backend/models"
	"food-express-backend/repository"
	"food-express-backend/service"
	"food-express-backend/storage"
	"food-express-backend/utils"
)

// adminctl is the operations CLI: seed the dish catalog, inspect orders and
// customer roll-ups without going through the HTTP API.
func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "adminctl",
		Usage: "food-express operations tool",
		Commands: []*cli.Command{
			{
				Name:  "seed-dishes",
				Usage: "import dishes from a JSON file into the catalog",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to a JSON array of dishes"},
				},
				Action: seedDishes,
			},
			{
				Name:   "orders",
				Usage:  "list all orders, newest first",
				Action: listOrders,
			},
			{
				Name:   "users",
				Usage:  "print per-customer totals, highest spender first",
				Action: listUsers,
			},
			{
				Name:   "stats",
				Usage:  "print the dashboard headline numbers",
				Action: showStats,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openStore() (storage.Store, error) {
	if err := db.InitDB(); err != nil {
		return nil, err
	}
	return storage.NewPostgresStore(db.DB), nil
}

func seedDishes(c *cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer db.CloseDB()

	raw, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	var dishes []models.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return err
	}

	menu := service.NewMenuService(repository.NewDishRepository(store))
	for i := range dishes {
		if err := menu.SaveDish(c.Context, &dishes[i]); err != nil {
			return err
		}
	}

	fmt.Printf("Seeded %d dishes\n", len(dishes))
	return nil
}

func listOrders(c *cli.Context) error {
	admin, err := openAdmin()
	if err != nil {
		return err
	}
	defer db.CloseDB()

	orders, err := admin.ListOrders(c.Context)
	if err != nil {
		return err
	}

	for _, order := range orders {
		fmt.Printf("%-22s %-9s %-28s %-18s %s\n",
			order.OrderID,
			utils.FormatINR(int64(order.Total)),
			order.UserEmail,
			order.Status,
			order.OrderDate.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d orders\n", len(orders))
	return nil
}

func listUsers(c *cli.Context) error {
	admin, err := openAdmin()
	if err != nil {
		return err
	}
	defer db.CloseDB()

	aggregates, err := admin.AggregateUsers(c.Context)
	if err != nil {
		return err
	}

	for _, agg := range aggregates {
		fmt.Printf("%-20s %-28s %3d orders  %s\n",
			agg.Name, agg.Email, agg.TotalOrders, utils.FormatINR(int64(agg.TotalSpent)))
	}
	return nil
}

func showStats(c *cli.Context) error {
	admin, err := openAdmin()
	if err != nil {
		return err
	}
	defer db.CloseDB()

	stats, err := admin.Stats(c.Context)
	if err != nil {
		return err
	}

	fmt.Printf("Orders:   %d\n", stats.TotalOrders)
	fmt.Printf("Revenue:  %s\n", utils.FormatINR(int64(stats.TotalRevenue)))
	fmt.Printf("Users:    %d\n", stats.TotalUsers)
	fmt.Printf("Pending:  %d\n", stats.PendingOrders)
	fmt.Printf("Dishes:   %d\n", stats.TotalDishes)
	return nil
}

func openAdmin() (*service.AdminService, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	orders := repository.NewOrderRepository(store)
	dishes := repository.NewDishRepository(store)
	directory := service.NewLocalDirectory(orders, 0)
	return service.NewAdminService(orders, dishes, directory), nil
}
