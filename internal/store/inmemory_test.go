package store

import (
	"context"
	"testing"
)

func dineIn(name, phone string) Reservation {
	return Reservation{
		Date:   "2026-09-01",
		Time:   "7:00 PM",
		Name:   name,
		Phone:  phone,
		Email:  name + "@example.com",
		Guests: 2,
		Type:   TypeDineIn,
	}
}

func deliveryOrder(name, phone string) Reservation {
	return Reservation{
		Date:         "2026-09-01",
		Name:         name,
		Phone:        phone,
		Email:        name + "@example.com",
		Guests:       0,
		Type:         TypeDelivery,
		Address:      "123 Elm St",
		DeliveryTime: "6:30 PM",
	}
}

func TestInsertAssignsFreshIDs(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()

	first, err := s.Insert(ctx, dineIn("jane", "555-1234"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	second, err := s.Insert(ctx, dineIn("john", "555-5678"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %d twice", first)
	}

	all, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(all))
	}
	if all[0].ID != first || all[1].ID != second {
		t.Fatalf("expected id order %d,%d got %d,%d", first, second, all[0].ID, all[1].ID)
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("expected created_at to be set on insert")
	}
}

func TestFindByIDNotFound(t *testing.T) {
	s := NewInMemoryStore()
	if _, err := s.FindByID(context.Background(), 42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByID(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	id, _ := s.Insert(ctx, dineIn("jane", "555-1234"))

	deleted, err := s.DeleteByID(ctx, id)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got deleted=%v err=%v", deleted, err)
	}
	deleted, err = s.DeleteByID(ctx, id)
	if err != nil || deleted {
		t.Fatalf("expected second delete to report missing, got deleted=%v err=%v", deleted, err)
	}
}

func TestDeleteByPhoneRemovesAllMatches(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	s.Insert(ctx, dineIn("jane", "555-1234"))
	s.Insert(ctx, deliveryOrder("jane", "555-1234"))
	s.Insert(ctx, dineIn("john", "555-5678"))

	count, err := s.DeleteByPhone(ctx, "555-1234")
	if err != nil {
		t.Fatalf("delete by phone: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 deletions, got %d", count)
	}

	remaining, _ := s.ListAll(ctx)
	if len(remaining) != 1 || remaining[0].Name != "john" {
		t.Fatalf("unexpected remaining records: %v", remaining)
	}
}

func TestListOrdersFiltersDineIn(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	s.Insert(ctx, dineIn("jane", "555-1234"))
	s.Insert(ctx, deliveryOrder("john", "555-5678"))

	orders, err := s.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Name != "john" {
		t.Fatalf("expected only the delivery order, got %v", orders)
	}
	if !orders[0].IsOrder() {
		t.Error("expected record to classify as an order")
	}
}

func TestFindByPhone(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	s.Insert(ctx, dineIn("jane", "555-1234"))
	s.Insert(ctx, deliveryOrder("jane", "555-1234"))

	found, err := s.FindByPhone(ctx, "555-1234")
	if err != nil {
		t.Fatalf("find by phone: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(found))
	}
	if found, _ := s.FindByPhone(ctx, "000-0000"); len(found) != 0 {
		t.Fatalf("expected no matches, got %v", found)
	}
}
