package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/catalog"
	"github.com/odyssey-erp/registrar/internal/lastshown"
	"github.com/odyssey-erp/registrar/internal/shared"
)

// ListMenu shows every menu item.
type ListMenu struct{}

func (ListMenu) Kind() catalog.Kind { return catalog.KindListMenu }

func (ListMenu) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all menu items", book.KindMenu, env.Books.Menu.Records()), nil
}

// AddMenu adds a dish.
type AddMenu struct {
	Item book.MenuItem
}

func (AddMenu) Kind() catalog.Kind { return catalog.KindAddMenu }

func (c AddMenu) Execute(_ context.Context, env *Env) (Result, error) {
	if err := book.Validate(c.Item); err != nil {
		return Result{}, err
	}
	if err := env.Books.Menu.Add(c.Item); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("New menu item added: %s", c.Item)), nil
}

// DeleteMenu removes a dish. Existing orders keep the dish name.
type DeleteMenu struct {
	Index int
}

func (DeleteMenu) Kind() catalog.Kind { return catalog.KindDeleteMenu }

func (c DeleteMenu) Execute(_ context.Context, env *Env) (Result, error) {
	item, err := lastshown.ResolveMutable(env.Shown, env.Books.Menu, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *item
	if err := env.Books.Menu.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Deleted Menu Item: %s", removed)), nil
}

// ListOrders shows every order.
type ListOrders struct{}

func (ListOrders) Kind() catalog.Kind { return catalog.KindListOrders }

func (ListOrders) Execute(_ context.Context, env *Env) (Result, error) {
	return WithListing("Listed all orders", book.KindOrder, env.Books.Orders.Records()), nil
}

// AddOrder places an order for dishes on the menu. A member with the same
// phone number earns loyalty points for it.
type AddOrder struct {
	Customer string
	Phone    string
	Dishes   []string
}

func (AddOrder) Kind() catalog.Kind { return catalog.KindAddOrder }

func (c AddOrder) Execute(_ context.Context, env *Env) (Result, error) {
	if len(c.Dishes) == 0 {
		return Result{}, shared.Invalid("An order needs at least one dish.")
	}
	dishes := make([]book.MenuItem, 0, len(c.Dishes))
	for _, name := range c.Dishes {
		item, err := env.Books.Menu.Find(book.Fold(name))
		if err != nil {
			return Result{}, shared.Invalid(fmt.Sprintf("%q is not on the menu.", name))
		}
		dishes = append(dishes, *item)
	}
	order, err := book.NewOrder(c.Customer, c.Phone, dishes, env.now())
	if errors.Is(err, book.ErrTotalOverflow) {
		return Result{}, shared.Invalid("The order total is too large.")
	}
	if err != nil {
		return Result{}, err
	}
	if err := book.Validate(order); err != nil {
		return Result{}, err
	}
	if err := env.Books.Orders.Add(order); err != nil {
		return Result{}, err
	}
	msg := fmt.Sprintf("New order added: %s", order)
	if earned := book.PointsFor(order.TotalCents); earned > 0 {
		for _, m := range env.Books.Members.Filter(func(m book.Member) bool { return m.Phone == order.Phone }) {
			live, err := env.Books.Members.Find(m.Key())
			if err != nil {
				return Result{}, err
			}
			live.Points += earned
			msg += fmt.Sprintf("\n%s earned %d points", live.Name, earned)
		}
	}
	return NewResult(msg), nil
}

// CompleteOrder marks an order served.
type CompleteOrder struct {
	Index int
}

func (CompleteOrder) Kind() catalog.Kind { return catalog.KindCompleteOrder }

func (c CompleteOrder) Execute(_ context.Context, env *Env) (Result, error) {
	order, err := lastshown.ResolveMutable(env.Shown, env.Books.Orders, c.Index)
	if err != nil {
		return Result{}, err
	}
	if order.Status == book.OrderCompleted {
		return Result{}, shared.Invalid("The order is already completed.")
	}
	order.Status = book.OrderCompleted
	return NewResult(fmt.Sprintf("Completed Order: %s", *order)), nil
}

// DeleteOrder removes an order.
type DeleteOrder struct {
	Index int
}

func (DeleteOrder) Kind() catalog.Kind { return catalog.KindDeleteOrder }

func (c DeleteOrder) Execute(_ context.Context, env *Env) (Result, error) {
	order, err := lastshown.ResolveMutable(env.Shown, env.Books.Orders, c.Index)
	if err != nil {
		return Result{}, err
	}
	removed := *order
	if err := env.Books.Orders.Remove(removed.Key()); err != nil {
		return Result{}, err
	}
	return NewResult(fmt.Sprintf("Deleted Order: %s", removed)), nil
}
