package storage

import (
	"time"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

// seed installs the restaurant's launch catalog into an empty memory store.
func (r *MemoryRepository) seed() {
	categories := []struct {
		name        string
		displayName string
	}{
		{"soup", "국물요리 (Soup Dishes)"},
		{"noodles", "면류 (Noodles)"},
		{"rice", "밥류 (Rice Dishes)"},
		{"meat", "고기요리 (Meat Dishes)"},
		{"appetizer", "안주/전류 (Appetizers)"},
		{"hotpot", "전골류 (Hot Pot)"},
	}
	for i, c := range categories {
		category := domain.Category{
			ID:          r.nextCategoryID,
			Name:        c.name,
			DisplayName: c.displayName,
			IsVisible:   true,
			SortOrder:   i + 1,
			CreatedAt:   time.Now(),
		}
		r.nextCategoryID++
		r.categories[category.ID] = category
	}

	menuItems := []struct {
		name     string
		price    int
		category string
	}{
		{"곰탕", 140000, "soup"},
		{"순두부찌개", 140000, "soup"},
		{"갈비탕", 198000, "soup"},
		{"비지찌개", 140000, "soup"},
		{"해장국", 140000, "soup"},
		{"김치찌개", 140000, "soup"},
		{"콩국수", 140000, "noodles"},
		{"물냉면", 140000, "noodles"},
		{"비빔냉면", 140000, "noodles"},
		{"해물라면", 140000, "noodles"},
		{"비빔밥", 120000, "rice"},
		{"뚝불고기", 190000, "meat"},
		{"제육볶음", 140000, "meat"},
		{"오삼불고기", 450000, "meat"},
		{"보쌈", 400000, "meat"},
		{"군만두", 70000, "appetizer"},
		{"감자전", 140000, "appetizer"},
		{"해물파전", 250000, "appetizer"},
		{"만두전골", 400000, "hotpot"},
		{"두부전골", 300000, "hotpot"},
	}
	for _, m := range menuItems {
		item := domain.MenuItem{
			ID:        r.nextMenuID,
			Name:      m.name,
			Price:     m.price,
			Image:     "",
			Category:  m.category,
			Available: true,
			IsVisible: true,
		}
		r.nextMenuID++
		r.menuItems[item.ID] = item
	}
}
