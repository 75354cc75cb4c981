package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	domain "github.com/yungbote/restaurants-backend/internal/domain/restaurants"
	"github.com/yungbote/restaurants-backend/internal/modules/restaurants/validation"
	"github.com/yungbote/restaurants-backend/internal/platform/pointers"
)

//go:embed sample_restaurants.yaml
var sampleCatalog []byte

type yamlCatalog struct {
	Restaurants []yamlRestaurant `yaml:"restaurants"`
}

type yamlRestaurant struct {
	Name          string       `yaml:"name"`
	Description   string       `yaml:"description"`
	Category      string       `yaml:"category"`
	HasDelivery   bool         `yaml:"hasDelivery"`
	ContactEmail  string       `yaml:"contactEmail"`
	ContactNumber string       `yaml:"contactNumber"`
	Address       *yamlAddress `yaml:"address"`
	Dishes        []yamlDish   `yaml:"dishes"`
}

type yamlAddress struct {
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postalCode"`
}

type yamlDish struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Price        string `yaml:"price"`
	KiloCalories *int   `yaml:"kiloCalories"`
}

// LoadCatalog reads the restaurants in path, or the built-in sample set when
// path is empty.
func LoadCatalog(path string) ([]*domain.Restaurant, error) {
	raw := sampleCatalog
	source := "embedded sample"
	if p := strings.TrimSpace(path); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		raw, source = b, p
	}
	return ParseCatalog(raw, source)
}

// ParseCatalog decodes and validates a YAML catalog. Every restaurant must
// pass the same rules the API enforces.
func ParseCatalog(raw []byte, source string) ([]*domain.Restaurant, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(raw, &yc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	v := validation.New()
	out := make([]*domain.Restaurant, 0, len(yc.Restaurants))
	for i, yr := range yc.Restaurants {
		r, err := mapRestaurant(yr)
		if err != nil {
			return nil, fmt.Errorf("%s: restaurant %d (%s): %w", source, i, yr.Name, err)
		}
		if violations := v.ValidateRestaurantInput(inputOf(r)); len(violations) > 0 {
			return nil, fmt.Errorf("%s: restaurant %d (%s): %w", source, i, yr.Name, violations)
		}
		out = append(out, r)
	}
	return out, nil
}

func mapRestaurant(yr yamlRestaurant) (*domain.Restaurant, error) {
	r := &domain.Restaurant{
		Name:          strings.TrimSpace(yr.Name),
		Description:   strings.TrimSpace(yr.Description),
		Category:      strings.TrimSpace(yr.Category),
		HasDelivery:   yr.HasDelivery,
		ContactEmail:  optional(yr.ContactEmail),
		ContactNumber: optional(yr.ContactNumber),
		Dishes:        make([]domain.Dish, 0, len(yr.Dishes)),
	}
	if yr.Address != nil {
		addr := domain.Address{Street: yr.Address.Street, City: yr.Address.City, PostalCode: yr.Address.PostalCode}
		if !addr.IsZero() {
			r.Address = &addr
		}
	}
	for _, yd := range yr.Dishes {
		price, err := decimal.NewFromString(strings.TrimSpace(yd.Price))
		if err != nil {
			return nil, fmt.Errorf("dish %q price: %w", yd.Name, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("dish %q price must not be negative", yd.Name)
		}
		r.Dishes = append(r.Dishes, domain.Dish{
			Name:         strings.TrimSpace(yd.Name),
			Description:  strings.TrimSpace(yd.Description),
			Price:        domain.RoundPrice(price),
			KiloCalories: pointers.Clone(yd.KiloCalories),
		})
	}
	return r, nil
}

func inputOf(r *domain.Restaurant) domain.CreateRestaurantInput {
	return domain.CreateRestaurantInput{
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		HasDelivery:   r.HasDelivery,
		ContactEmail:  r.ContactEmail,
		ContactNumber: r.ContactNumber,
		Address:       r.Address,
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
