package entity

import "github.com/shopspring/decimal"

// Product is a catalog item. From the cart and checkout perspective it is a
// read-only snapshot: prices copied from it at checkout time never change
// retroactively.
type Product struct {
	ID          int64           `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"categoryId"`
	Description string          `json:"description"`
	SubCategory string          `json:"subCategory"`
	Stock       int             `json:"stock"`
	Featured    bool            `json:"featured"`
	ImageURL    string          `json:"imageUrl"`
}
