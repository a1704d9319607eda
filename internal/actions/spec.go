package actions

// Spec declares one callable restaurant action: its name, a description the
// model sees, and a JSON-schema object for its parameters. The full catalog
// is advertised on every chat completion call.
type Spec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

func noParams() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

func catalogSpecs() []Spec {
	return []Spec{
		{
			Name:        "get_menu",
			Description: "Get the menu",
			Parameters:  noParams(),
		},
		{
			Name:        "place_order",
			Description: "Place an order for delivery",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item":          map[string]any{"type": "string", "description": "The item to order"},
					"email_address": map[string]any{"type": "string", "description": "Email address for the order"},
					"name":          map[string]any{"type": "string", "description": "Name of the person placing the order"},
					"phone_number":  map[string]any{"type": "string", "description": "Phone number for the order"},
					"address":       map[string]any{"type": "string", "description": "Address for delivery"},
					"delivery_time": map[string]any{"type": "string", "description": "Delivery time in PM or AM"},
					"customizations": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "List of customizations for the item",
					},
					"order_type": map[string]any{
						"type":        "string",
						"enum":        []any{"delivery"},
						"description": "Type of order: delivery",
					},
				},
				// address and delivery_time are enforced by the handler so a
				// missing one becomes a refusal the model can relay, not a
				// validation failure.
				"required": []any{"item", "order_type", "name", "phone_number", "email_address"},
			},
		},
		{
			Name:        "make_reservation",
			Description: "Make a reservation or book a table for dine-in",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"reservation_date": map[string]any{"type": "string", "description": "The date of the reservation"},
					"reservation_time": map[string]any{"type": "string", "description": "The time of the reservation"},
					"name":             map[string]any{"type": "string", "description": "Name of the person under whom the reservation is made"},
					"phone_number":     map[string]any{"type": "string", "description": "Phone number for the reservation"},
					"email_address":    map[string]any{"type": "string", "description": "Email address for the reservation"},
					"guests":           map[string]any{"type": "integer", "description": "Number of guests"},
					"address":          map[string]any{"type": "string", "description": "Address for delivery reservations"},
					"delivery_time":    map[string]any{"type": "string", "description": "Delivery time for delivery reservations"},
					"reservation_type": map[string]any{
						"type":        "string",
						"enum":        []any{"dine-in", "delivery"},
						"description": "Type of reservation: dine-in or delivery",
					},
				},
				"required": []any{"reservation_date", "name", "phone_number", "email_address", "guests", "reservation_type"},
			},
		},
		{
			Name:        "cancel_reservation",
			Description: "Cancel a reservation or order",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"reservation_number": map[string]any{"type": "integer", "description": "Reservation or order number to cancel"},
					"phone_number":       map[string]any{"type": "string", "description": "Phone number under which reservation or order was made"},
				},
			},
		},
		{
			Name:        "get_reservations",
			Description: "Get all reservations",
			Parameters:  noParams(),
		},
		{
			Name:        "get_all_orders",
			Description: "Get all delivery orders",
			Parameters:  noParams(),
		},
		{
			Name:        "get_hours",
			Description: "Get the operating hours",
			Parameters:  noParams(),
		},
		{
			Name:        "get_special_offers",
			Description: "Get the special offers",
			Parameters:  noParams(),
		},
		{
			Name:        "get_location",
			Description: "Get the location of the restaurant",
			Parameters:  noParams(),
		},
		{
			Name:        "contact_human",
			Description: "Get contact information for human assistance",
			Parameters:  noParams(),
		},
	}
}
