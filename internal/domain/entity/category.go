package entity

// Category groups products for browsing.
type Category struct {
	ID          int64  `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
