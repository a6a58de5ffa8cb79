package model

// Item represents a creator-listed product.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Business    string   `json:"business"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// ItemRequest represents the request payload for listing a new item.
type ItemRequest struct {
	Name        string   `json:"name"`
	Business    string   `json:"business"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}
