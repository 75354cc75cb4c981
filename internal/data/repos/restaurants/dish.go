package restaurants

import (
	"gorm.io/gorm"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/platform/dbctx"
	"github.com/yungbote/restaurants-backend/internal/platform/logger"
)

type DishRepo interface {
	Create(dbc dbctx.Context, dishes []*domain.Dish) ([]*domain.Dish, error)
	GetByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) ([]*domain.Dish, error)
	CountByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) (int64, error)
	DeleteByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) (int64, error)
}

type dishRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDishRepo(db *gorm.DB, baseLog *logger.Logger) DishRepo {
	return &dishRepo{db: db, log: baseLog.With("repo", "DishRepo")}
}

func (r *dishRepo) Create(dbc dbctx.Context, dishes []*domain.Dish) ([]*domain.Dish, error) {
	if len(dishes) == 0 {
		return []*domain.Dish{}, nil
	}
	for _, d := range dishes {
		if d != nil {
			d.Price = domain.RoundPrice(d.Price)
		}
	}
	if err := dbc.DB(r.db).Create(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepo) GetByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) ([]*domain.Dish, error) {
	out := []*domain.Dish{}
	if len(restaurantIDs) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).
		Where("restaurant_id IN ?", restaurantIDs).
		Order("restaurant_id ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *dishRepo) CountByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) (int64, error) {
	var count int64
	if len(restaurantIDs) == 0 {
		return 0, nil
	}
	if err := dbc.DB(r.db).
		Model(&domain.Dish{}).
		Where("restaurant_id IN ?", restaurantIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *dishRepo) DeleteByRestaurantIDs(dbc dbctx.Context, restaurantIDs []uint) (int64, error) {
	if len(restaurantIDs) == 0 {
		return 0, nil
	}
	res := dbc.DB(r.db).
		Where("restaurant_id IN ?", restaurantIDs).
		Delete(&domain.Dish{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
