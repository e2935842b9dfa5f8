package stories

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"datatable/internal/config"
	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/ui"
)

// orderSpace seeds the order IDs so every run generates the same data
var orderSpace = uuid.MustParse("6f1c2d1e-8a43-4c55-9d2a-5b0f3e7c9a10")

// Order is a generated record for the large story
type Order struct {
	ID       uuid.UUID `table:"id"`
	Number   string    `table:"number"`
	Customer string    `table:"customer"`
	Amount   float64   `table:"amount"`
	Placed   time.Time `table:"placed"`
	Paid     bool      `table:"paid"`
}

// OrderKey identifies orders by ID
func OrderKey(o Order) string {
	return o.ID.String()
}

// OrderColumns are the columns of the large story
func OrderColumns() []domain.Column {
	return []domain.Column{
		{Key: "number", Title: "Order", DataIndex: "number", Sortable: true, Natural: true},
		{Key: "customer", Title: "Customer", DataIndex: "customer", Sortable: true},
		{Key: "amount", Title: "Amount", DataIndex: "amount", Sortable: true},
		{Key: "placed", Title: "Placed", DataIndex: "placed", Sortable: true},
		{Key: "paid", Title: "Paid", DataIndex: "paid", Sortable: true},
		{Key: "id", Title: "ID", DataIndex: "id"},
	}
}

// Orders generates n orders. The same n always yields the same orders.
func Orders(n int) []Order {
	users := Users()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	orders := make([]Order, n)
	for i := range orders {
		number := fmt.Sprintf("ORD-%d", i+1)
		orders[i] = Order{
			ID:       uuid.NewSHA1(orderSpace, []byte(number)),
			Number:   number,
			Customer: users[(i*7)%len(users)].Name,
			Amount:   float64((i*37)%500) + 0.99,
			Placed:   start.Add(time.Duration((i*13)%90) * 24 * time.Hour),
			Paid:     i%3 != 0,
		}
	}
	return orders
}

// Large shows enough rows to scroll
func Large(bus eventbus.EventBus, _ *config.Config) Model {
	return ui.NewModel(bus, ui.Props[Order]{
		Title:      "Orders",
		Data:       Orders(200),
		Columns:    OrderColumns(),
		Selectable: true,
		Key:        OrderKey,
	})
}
