package model

// ShopperState reports where a shopper session sits in the subscription
// flow, plus the prompt the UI should show next, if any.
type ShopperState struct {
	Subscribed bool   `json:"subscribed"`
	Prompt     string `json:"prompt,omitempty"`
}

// PlaceOrderResponse is returned from the shopper's place-order call. While
// the session is unsubscribed, Order is nil and State carries the payment
// prompt instead.
type PlaceOrderResponse struct {
	Order *Order       `json:"order,omitempty"`
	State ShopperState `json:"state"`
}
