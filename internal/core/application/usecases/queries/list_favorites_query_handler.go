package queries

import (
	"context"
	"database/sql"
	"time"

	"foodsewa/internal/core/domain/model/favorite"
	"foodsewa/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFavoritesQueryHandler retrieves a customer's active favorites from the
// database with pagination and an exact total count.
type ListFavoritesQueryHandler struct {
	db *gorm.DB
}

// NewListFavoritesQueryHandler creates a handler for favorites listing queries.
// Requires a GORM database connection for query execution.
func NewListFavoritesQueryHandler(db *gorm.DB) ListFavoritesQueryHandler {
	return ListFavoritesQueryHandler{db: db}
}

// Handle executes the favorites listing. Only active favorites are returned;
// soft-deleted records stay hidden until reactivated.
func (h ListFavoritesQueryHandler) Handle(
	ctx context.Context,
	query ListFavoritesQuery,
) (ListFavoritesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListFavoritesQueryResponse{}, err
	}

	where := `customer_id = ? AND state = ?`
	args := []any{query.CustomerID().String(), favorite.StateActive.String()}
	if query.Kind() != favorite.KindUnknown {
		where += ` AND kind = ?`
		args = append(args, query.Kind().String())
	}

	var total int64
	if err := h.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) FROM favorites WHERE `+where, args...,
	).Scan(&total).Error; err != nil {
		return ListFavoritesQueryResponse{}, err
	}

	direction := "DESC"
	if query.Sort() == SortAddedAsc {
		direction = "ASC"
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			menu_item_id,
			kind,
			dish_name,
			dish_price_cents,
			dish_image_url,
			added_at
		FROM favorites
		WHERE `+where+`
		ORDER BY added_at `+direction+`
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return ListFavoritesQueryResponse{}, err
	}
	defer rows.Close()

	favorites := make([]ListFavoritesItemResponse, 0)
	for rows.Next() {
		var (
			item           ListFavoritesItemResponse
			id             uuid.UUID
			restaurantID   uuid.UUID
			menuItemID     sql.NullString
			kindValue      string
			dishPriceCents int64
			addedAt        time.Time
		)

		err = rows.Scan(
			&id,
			&restaurantID,
			&menuItemID,
			&kindValue,
			&item.DishName,
			&dishPriceCents,
			&item.DishImageURL,
			&addedAt,
		)
		if err != nil {
			return ListFavoritesQueryResponse{}, err
		}

		favoriteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListFavoritesQueryResponse{}, idErr
		}
		item.ID = favoriteID

		rid, ridErr := kernel.UUIDFromBytes(restaurantID[:])
		if ridErr != nil {
			return ListFavoritesQueryResponse{}, ridErr
		}
		item.RestaurantID = rid

		if menuItemID.Valid {
			mid, midErr := kernel.UUIDFromString(menuItemID.String)
			if midErr != nil {
				return ListFavoritesQueryResponse{}, midErr
			}
			item.MenuItemID = &mid
		}

		kind, kindErr := favorite.KindFromString(kindValue)
		if kindErr != nil {
			return ListFavoritesQueryResponse{}, kindErr
		}
		item.Kind = kind
		item.DishPriceCents = dishPriceCents
		item.AddedAt = addedAt
		favorites = append(favorites, item)
	}

	if err = rows.Err(); err != nil {
		return ListFavoritesQueryResponse{}, err
	}

	return ListFavoritesQueryResponse{
		Favorites: favorites,
		Total:     total,
		Page:      query.Page(),
		PageSize:  query.PageSize(),
	}, nil
}
