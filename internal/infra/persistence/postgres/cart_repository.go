package postgres

import (
	"context"

	"easyshop/internal/domain/entity"
	domainerrors "easyshop/internal/domain/errors"
	"easyshop/internal/domain/repository"
	"easyshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// cartRow is the scan target for the cart/product join.
type cartRow struct {
	Quantity    int
	ProductID   int64
	Name        string
	Price       decimal.Decimal
	CategoryID  int64
	Description string
	SubCategory string
	Stock       int
	Featured    bool
	ImageURL    string
}

// GetCart materializes the user's cart by joining cart rows with the current
// product data, so every line carries the authoritative, up-to-date price.
// The inner join excludes cart rows whose product no longer exists.
func (repo *cartRepository) GetCart(ctx context.Context, userID int64) (*entity.ShoppingCart, error) {
	var rows []cartRow

	err := repo.db.WithContext(ctx).
		Table("shopping_cart AS sc").
		Select(`sc.quantity,
			p.product_id, p.name, p.price, p.category_id, p.description,
			p.subcategory AS sub_category, p.stock, p.featured, p.image_url`).
		Joins("JOIN products p ON p.product_id = sc.product_id").
		Where("sc.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shopping cart")
	}

	cart := entity.NewShoppingCart()
	for _, row := range rows {
		cart.Add(&entity.CartItem{
			Product: &entity.Product{
				ID:          row.ProductID,
				Name:        row.Name,
				Price:       row.Price,
				CategoryID:  row.CategoryID,
				Description: row.Description,
				SubCategory: row.SubCategory,
				Stock:       row.Stock,
				Featured:    row.Featured,
				ImageURL:    row.ImageURL,
			},
			Quantity:        row.Quantity,
			DiscountPercent: decimal.Zero,
		})
	}

	return cart, nil
}

// AddProduct inserts a cart line with quantity 1 or increments the existing
// line, as one atomic statement. This is the PostgreSQL rendition of
// "INSERT ... ON DUPLICATE KEY UPDATE quantity = quantity + 1": a race between
// two concurrent adds can neither produce two rows nor lose an increment.
func (repo *cartRepository) AddProduct(ctx context.Context, userID, productID int64) error {
	item := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("shopping_cart.quantity + 1"),
			}),
		}).
		Create(item).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product to cart")
	}

	return nil
}

// UpdateQuantity sets the line's quantity directly. Quantity validation
// happens upstream; a missing line is a silent no-op by contract.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart quantity")
	}

	return nil
}

// ClearCart deletes all cart rows for the user. Clearing an empty cart
// succeeds silently.
func (repo *cartRepository) ClearCart(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}

	return nil
}
