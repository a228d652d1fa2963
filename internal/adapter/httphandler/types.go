package httphandler

import "github.com/crushcollection/storefront/internal/core/domain"

type (
	Product struct {
		ID            string   `json:"id"`
		Name          string   `json:"name"`
		Price         float64  `json:"price"`
		OriginalPrice float64  `json:"original_price,omitempty"`
		Image         string   `json:"image"`
		Images        []string `json:"images"`
		Category      string   `json:"category"`
		Sizes         []string `json:"sizes"`
		Colors        []string `json:"colors"`
		Description   string   `json:"description"`
		Featured      bool     `json:"featured,omitempty"`
	}

	ProductDetail struct {
		Product
		UnitsSold int64 `json:"units_sold"`
	}

	ProductList struct {
		Products []Product `json:"products"`
		Total    int       `json:"total"`
	}

	CartItem struct {
		Product       Product `json:"product"`
		Quantity      int     `json:"quantity"`
		SelectedSize  string  `json:"selected_size"`
		SelectedColor string  `json:"selected_color"`
		LineTotal     float64 `json:"line_total"`
	}

	CartView struct {
		Items    []CartItem `json:"items"`
		Count    int        `json:"count"`
		Subtotal float64    `json:"subtotal"`
	}

	AddCartItem struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
		Quantity  int    `json:"quantity"`
	}

	UpdateCartItem struct {
		Size     string `json:"size"`
		Color    string `json:"color"`
		Quantity int    `json:"quantity"`
	}

	WishlistView struct {
		Products []Product `json:"products"`
		Count    int       `json:"count"`
	}

	ToggleResult struct {
		InWishlist bool `json:"in_wishlist"`
	}

	FilterCriteria struct {
		Category string   `json:"category"`
		PriceMin float64  `json:"price_min"`
		PriceMax float64  `json:"price_max"`
		Sizes    []string `json:"sizes"`
		Colors   []string `json:"colors"`
		SortBy   string   `json:"sort_by"`
		Query    string   `json:"query,omitempty"`
	}

	// FilterPatch carries per-field setters; absent fields are left
	// untouched. Toggle fields flip one size or color in or out.
	FilterPatch struct {
		Category    *string  `json:"category,omitempty"`
		PriceMin    *float64 `json:"price_min,omitempty"`
		PriceMax    *float64 `json:"price_max,omitempty"`
		ToggleSize  *string  `json:"toggle_size,omitempty"`
		ToggleColor *string  `json:"toggle_color,omitempty"`
		SortBy      *string  `json:"sort_by,omitempty"`
		Query       *string  `json:"query,omitempty"`
	}

	PriceBreakdown struct {
		Subtotal     float64 `json:"subtotal"`
		Shipping     float64 `json:"shipping"`
		Tax          float64 `json:"tax"`
		CODSurcharge float64 `json:"cod_surcharge"`
		GrandTotal   float64 `json:"grand_total"`
	}

	Summary struct {
		CartCount     int            `json:"cart_count"`
		CartTotal     float64        `json:"cart_total"`
		WishlistCount int            `json:"wishlist_count"`
		Pricing       PriceBreakdown `json:"pricing"`
	}

	ShippingInfo struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		City      string `json:"city"`
		State     string `json:"state"`
		Pincode   string `json:"pincode"`
	}

	PaymentInfo struct {
		Method     string `json:"method"`
		CardNumber string `json:"card_number,omitempty"`
		ExpiryDate string `json:"expiry_date,omitempty"`
		CVV        string `json:"cvv,omitempty"`
		NameOnCard string `json:"name_on_card,omitempty"`
	}

	CheckoutView struct {
		Stage    string            `json:"stage"`
		Shipping ShippingInfo      `json:"shipping"`
		Payment  PaymentInfo       `json:"payment"`
		Errors   map[string]string `json:"errors"`
		Items    []CartItem        `json:"items"`
		Pricing  PriceBreakdown    `json:"pricing"`
	}

	OrderConfirmation struct {
		OrderID  string         `json:"order_id"`
		Pricing  PriceBreakdown `json:"pricing"`
		PlacedAt string         `json:"placed_at"`
	}
)

func toProduct(p domain.Product) Product {
	return Product{
		ID:            p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Images:        p.Images,
		Category:      string(p.Category),
		Sizes:         p.Sizes,
		Colors:        p.Colors,
		Description:   p.Description,
		Featured:      p.Featured,
	}
}

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = toProduct(p)
	}
	return out
}

func toCartView(items []domain.CartItem) CartView {
	v := CartView{
		Items:    make([]CartItem, len(items)),
		Count:    domain.UnitCount(items),
		Subtotal: domain.Subtotal(items),
	}
	for i, it := range items {
		v.Items[i] = CartItem{
			Product:       toProduct(it.Product),
			Quantity:      it.Quantity,
			SelectedSize:  it.SelectedSize,
			SelectedColor: it.SelectedColor,
			LineTotal:     it.LineTotal(),
		}
	}
	return v
}

func toCriteria(c domain.FilterCriteria) FilterCriteria {
	return FilterCriteria{
		Category: string(c.Category),
		PriceMin: c.PriceRange.Min,
		PriceMax: c.PriceRange.Max,
		Sizes:    c.Sizes,
		Colors:   c.Colors,
		SortBy:   string(c.SortBy),
		Query:    c.Query,
	}
}

func toBreakdown(b domain.PriceBreakdown) PriceBreakdown {
	return PriceBreakdown{
		Subtotal:     b.Subtotal,
		Shipping:     b.Shipping,
		Tax:          b.Tax,
		CODSurcharge: b.CODSurcharge,
		GrandTotal:   b.GrandTotal,
	}
}

func toCheckoutView(v domain.CheckoutView) CheckoutView {
	cart := toCartView(v.Items)
	return CheckoutView{
		Stage: string(v.Stage),
		Shipping: ShippingInfo{
			FirstName: v.Draft.Shipping.FirstName,
			LastName:  v.Draft.Shipping.LastName,
			Email:     v.Draft.Shipping.Email,
			Phone:     v.Draft.Shipping.Phone,
			Address:   v.Draft.Shipping.Address,
			City:      v.Draft.Shipping.City,
			State:     v.Draft.Shipping.State,
			Pincode:   v.Draft.Shipping.Pincode,
		},
		Payment: PaymentInfo{
			Method:     string(v.Draft.Payment.Method),
			NameOnCard: v.Draft.Payment.NameOnCard,
		},
		Errors:  v.Errors,
		Items:   cart.Items,
		Pricing: toBreakdown(v.Pricing),
	}
}
