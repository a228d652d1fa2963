package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "placed_at", "type": "string"},
		{"name": "payment_method", "type": "string"},
		{"name": "lines", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_line",
			"fields": [
				{"name": "product_id", "type": "string"},
				{"name": "name", "type": "string"},
				{"name": "size", "type": "string"},
				{"name": "color", "type": "string"},
				{"name": "quantity", "type": "int"},
				{"name": "unit_price", "type": "double"}
			]
		}}},
		{"name": "pricing", "type": {
			"type": "record",
			"name": "order_pricing",
			"fields": [
				{"name": "subtotal", "type": "double"},
				{"name": "shipping", "type": "double"},
				{"name": "tax", "type": "double"},
				{"name": "cod_surcharge", "type": "double"},
				{"name": "grand_total", "type": "double"}
			]
		}},
		{"name": "ship_to", "type": {
			"type": "record",
			"name": "ship_to",
			"fields": [
				{"name": "city", "type": "string"},
				{"name": "state", "type": "string"},
				{"name": "pincode", "type": "string"}
			]
		}}
	]
}`

type (
	OrderPlacedV1 struct {
		OrderID       string         `avro:"order_id"`
		PlacedAt      string         `avro:"placed_at"`
		PaymentMethod string         `avro:"payment_method"`
		Lines         []OrderLineV1  `avro:"lines"`
		Pricing       OrderPricingV1 `avro:"pricing"`
		ShipTo        OrderShipToV1  `avro:"ship_to"`
	}

	OrderLineV1 struct {
		ProductID string  `avro:"product_id"`
		Name      string  `avro:"name"`
		Size      string  `avro:"size"`
		Color     string  `avro:"color"`
		Quantity  int     `avro:"quantity"`
		UnitPrice float64 `avro:"unit_price"`
	}

	OrderPricingV1 struct {
		Subtotal     float64 `avro:"subtotal"`
		Shipping     float64 `avro:"shipping"`
		Tax          float64 `avro:"tax"`
		CODSurcharge float64 `avro:"cod_surcharge"`
		GrandTotal   float64 `avro:"grand_total"`
	}

	OrderShipToV1 struct {
		City    string `avro:"city"`
		State   string `avro:"state"`
		Pincode string `avro:"pincode"`
	}
)
