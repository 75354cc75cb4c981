package restaurants

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/dbctx"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type RestaurantRepo interface {
	Create(dbc dbctx.Context, rows []*domain.Restaurant) ([]*domain.Restaurant, error)
	GetByID(dbc dbctx.Context, id uint) (*domain.Restaurant, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*domain.Restaurant, error)
	ListWithDishes(dbc dbctx.Context) ([]*domain.Restaurant, error)
	ExistsByID(dbc dbctx.Context, id uint) (bool, error)
	Count(dbc dbctx.Context) (int64, error)
	UpdateColumns(dbc dbctx.Context, r *domain.Restaurant) (int64, error)
	DeleteByIDs(dbc dbctx.Context, ids []uint) (int64, error)
}

type restaurantRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestaurantRepo(db *gorm.DB, baseLog *logger.Logger) RestaurantRepo {
	return &restaurantRepo{db: db, log: baseLog.With("repo", "RestaurantRepo")}
}

// Create inserts the restaurant rows only. Dishes are persisted through DishRepo.
func (r *restaurantRepo) Create(dbc dbctx.Context, rows []*domain.Restaurant) ([]*domain.Restaurant, error) {
	if len(rows) == 0 {
		return []*domain.Restaurant{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID returns (nil, nil) when no row has the id.
func (r *restaurantRepo) GetByID(dbc dbctx.Context, id uint) (*domain.Restaurant, error) {
	rows, err := r.GetByIDs(dbc, []uint{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *restaurantRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*domain.Restaurant, error) {
	out := []*domain.Restaurant{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := withDishes(dbc.DB(r.db)).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restaurantRepo) ListWithDishes(dbc dbctx.Context) ([]*domain.Restaurant, error) {
	out := []*domain.Restaurant{}
	if err := withDishes(dbc.DB(r.db)).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *restaurantRepo) ExistsByID(dbc dbctx.Context, id uint) (bool, error) {
	var count int64
	if err := dbc.DB(r.db).
		Model(&domain.Restaurant{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *restaurantRepo) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := dbc.DB(r.db).Model(&domain.Restaurant{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateColumns writes every scalar and address column of r onto the row with
// r.ID and reports how many rows matched. It never inserts.
func (r *restaurantRepo) UpdateColumns(dbc dbctx.Context, row *domain.Restaurant) (int64, error) {
	if row == nil || row.ID == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Model(&domain.Restaurant{}).
		Where("id = ?", row.ID).
		Updates(columnsOf(row))
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *restaurantRepo) DeleteByIDs(dbc dbctx.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("id IN ?", ids).
		Delete(&domain.Restaurant{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func withDishes(db *gorm.DB) *gorm.DB {
	return db.Preload("Dishes", func(q *gorm.DB) *gorm.DB {
		return q.Order("dish.id ASC")
	})
}

// columnsOf maps a restaurant onto its row. An absent address clears the
// address columns instead of leaving stale values behind.
func columnsOf(row *domain.Restaurant) map[string]interface{} {
	cols := map[string]interface{}{
		"name":           row.Name,
		"description":    row.Description,
		"category":       row.Category,
		"has_delivery":   row.HasDelivery,
		"contact_email":  row.ContactEmail,
		"contact_number": row.ContactNumber,
		"updated_at":     time.Now().UTC(),
	}
	if row.Address != nil {
		cols["address_street"] = row.Address.Street
		cols["address_city"] = row.Address.City
		cols["address_postal_code"] = row.Address.PostalCode
	} else {
		cols["address_street"] = nil
		cols["address_city"] = nil
		cols["address_postal_code"] = nil
	}
	return cols
}
