package actions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/masalawok/orderbot/internal/store"
	"github.com/masalawok/orderbot/internal/timewindow"
)

// Refusal strings relayed back to the model when a business rule is not met.
const (
	refusalDineInTime       = "For dine-in reservations, reservation_time is required."
	refusalDeliveryAddress  = "For delivery reservations, address is required."
	refusalDeliveryWindow   = "For delivery reservations, a delivery window is required."
	refusalOrderAddress     = "Please provide the address for delivery."
	refusalOrderTime        = "Please select a delivery time."
	refusalOrderContact     = "Name and phone number are required for placing an order."
	refusalOutsideWindow    = "Delivery time must be 30 mins after the current time. First delivery is at 10AM and last at 7:30PM."
	refusalCancelIdentifier = "Please provide either a reservation number or phone number to cancel."
)

func (r *Registry) getMenu(ctx context.Context, args map[string]any) (string, error) {
	var b strings.Builder
	for _, section := range r.catalog.Sections() {
		b.WriteString(section)
		b.WriteString(": ")
		b.WriteString(strings.Join(r.catalog.Items(section), ", "))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Registry) placeOrder(ctx context.Context, args map[string]any) (string, error) {
	item := argString(args, "item")
	orderType := strings.ToLower(argString(args, "order_type"))
	name := argString(args, "name")
	phone := argString(args, "phone_number")
	email := argString(args, "email_address")
	address := argString(args, "address")
	deliveryTime := argString(args, "delivery_time")
	customizations := argStringSlice(args, "customizations")

	if orderType == "delivery" && address == "" {
		return refusalOrderAddress, nil
	}
	if orderType == "delivery" && deliveryTime == "" {
		return refusalOrderTime, nil
	}
	if name == "" || phone == "" {
		return refusalOrderContact, nil
	}

	if !r.catalog.Contains(item) {
		if matches := r.catalog.ClosestMatches(item, 3); len(matches) > 0 {
			return fmt.Sprintf("'%s' is not in our menu. Did you mean: %s?", item, strings.Join(matches, ", ")), nil
		}
		return fmt.Sprintf("'%s' is not in our menu.", item), nil
	}

	if orderType == "delivery" {
		ok, err := r.window.WithinWindow(deliveryTime)
		if err != nil {
			if errors.Is(err, timewindow.ErrUnparseableTime) {
				return fmt.Sprintf("Sorry, I couldn't understand the delivery time '%s'. Please give a time like 6:30 PM.", deliveryTime), nil
			}
			return "", err
		}
		if !ok {
			return refusalOutsideWindow, nil
		}
	}

	today := time.Now().In(r.window.Location()).Format("2006-01-02")
	id, err := r.store.Insert(ctx, store.Reservation{
		Date:         today,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Guests:       0,
		Type:         store.TypeDelivery,
		Address:      address,
		DeliveryTime: deliveryTime,
	})
	if err != nil {
		return "", err
	}
	r.logger.Info("order placed",
		"reservation_number", id,
		"item", item,
		"customizations", strings.Join(customizations, ", "),
		"delivery_time", deliveryTime,
	)
	return fmt.Sprintf("%s confirmed for %s. Reservation number: %d.", store.TypeDelivery, name, id), nil
}

func (r *Registry) makeReservation(ctx context.Context, args map[string]any) (string, error) {
	date := argString(args, "reservation_date")
	resTime := argString(args, "reservation_time")
	name := argString(args, "name")
	phone := argString(args, "phone_number")
	email := argString(args, "email_address")
	resType := argString(args, "reservation_type")
	deliveryTime := argString(args, "delivery_time")
	address := argString(args, "address")
	guests, _ := argInt(args, "guests")

	lower := strings.ToLower(resType)
	if lower == "dine-in" && resTime == "" {
		return refusalDineInTime, nil
	}
	if lower == "delivery" && address == "" {
		return refusalDeliveryAddress, nil
	}
	if lower == "delivery" && deliveryTime == "" {
		return refusalDeliveryWindow, nil
	}

	id, err := r.store.Insert(ctx, store.Reservation{
		Date:         date,
		Time:         resTime,
		Name:         name,
		Phone:        phone,
		Email:        email,
		Guests:       int(guests),
		Type:         resType,
		Address:      address,
		DeliveryTime: deliveryTime,
	})
	if err != nil {
		return "", err
	}
	r.logger.Info("reservation made", "reservation_number", id, "type", resType, "guests", guests)
	return fmt.Sprintf("%s confirmed for %s. Reservation number: %d.", capitalize(resType), name, id), nil
}

func (r *Registry) cancelReservation(ctx context.Context, args map[string]any) (string, error) {
	if id, ok := argInt(args, "reservation_number"); ok {
		deleted, err := r.store.DeleteByID(ctx, id)
		if err != nil {
			return "", err
		}
		if !deleted {
			return fmt.Sprintf("Reservation number %d not found.", id), nil
		}
		r.logger.Info("reservation cancelled", "reservation_number", id)
		return fmt.Sprintf("Reservation number %d has been cancelled", id), nil
	}

	if phone := argString(args, "phone_number"); phone != "" {
		count, err := r.store.DeleteByPhone(ctx, phone)
		if err != nil {
			return "", err
		}
		if count == 0 {
			return fmt.Sprintf("No reservations found for phone number %s.", phone), nil
		}
		r.logger.Info("reservations cancelled", "phone_number", phone, "count", count)
		return fmt.Sprintf("Reservations for phone number %s have been cancelled.", phone), nil
	}

	return refusalCancelIdentifier, nil
}

func (r *Registry) getReservations(ctx context.Context, args map[string]any) (string, error) {
	reservations, err := r.store.ListAll(ctx)
	if err != nil {
		return "", err
	}
	if len(reservations) == 0 {
		return "There are no reservations at the moment.", nil
	}
	var b strings.Builder
	b.WriteString("Current reservations:\n")
	for _, res := range reservations {
		b.WriteString(formatReservation(res))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (r *Registry) getAllOrders(ctx context.Context, args map[string]any) (string, error) {
	orders, err := r.store.ListOrders(ctx)
	if err != nil {
		return "", err
	}
	if len(orders) == 0 {
		return "There are no orders at the moment.", nil
	}
	var b strings.Builder
	b.WriteString("Current orders:\n")
	for _, order := range orders {
		b.WriteString(formatReservation(order))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (r *Registry) getHours(ctx context.Context, args map[string]any) (string, error) {
	return "We are open from 10 AM to 10 PM every day.", nil
}

func (r *Registry) getSpecialOffers(ctx context.Context, args map[string]any) (string, error) {
	return "We have a 20% discount on all desserts this week!", nil
}

func (r *Registry) getLocation(ctx context.Context, args map[string]any) (string, error) {
	return "We are located at 123 Main Street, Anytown.", nil
}

func (r *Registry) contactHuman(ctx context.Context, args map[string]any) (string, error) {
	return "You can reach us at (123) 456-7890 or email us at contact@restaurant.com.", nil
}

func formatReservation(res store.Reservation) string {
	if res.IsOrder() {
		return fmt.Sprintf("#%d %s - delivery to %s at %s (%s)", res.ID, res.Name, res.Address, res.DeliveryTime, res.Phone)
	}
	return fmt.Sprintf("#%d %s - %s at %s for %d guests (%s)", res.ID, res.Name, res.Date, res.Time, res.Guests, res.Type)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
