package feed

import (
	"testing"

	"github.com/jiyul/junior-insight/internal/models"
)

func mkPool(categories ...models.Category) []models.Article {
	pool := make([]models.Article, len(categories))
	for i, c := range categories {
		pool[i] = models.Article{ID: string(rune('a' + i)), Category: c}
	}
	return pool
}

func TestSelectSmallPool(t *testing.T) {
	pool := mkPool(models.CategorySociety, models.CategoryEconomy)
	selected := Select(pool, 6)
	if len(selected) != 2 {
		t.Fatalf("selected %d, want the whole pool", len(selected))
	}
}

func TestSelectGuaranteesWorldSlot(t *testing.T) {
	pool := mkPool(
		models.CategorySociety,
		models.CategoryEconomy,
		models.CategoryEnvironment,
		models.CategorySociety,
		models.CategoryTechEconomy,
		models.CategoryEconomy,
		models.CategorySociety,
		models.CategoryWorld, // index 7, outside the head
	)
	selected := Select(pool, 6)
	if len(selected) != 6 {
		t.Fatalf("selected %d, want 6", len(selected))
	}
	last := selected[5]
	if last.Category != models.CategoryWorld {
		t.Errorf("last slot category = %q, want World pulled from deeper in the pool", last.Category)
	}
	if last.ID != pool[7].ID {
		t.Errorf("last slot id = %q, want the first World article", last.ID)
	}
}

func TestSelectHeadAlreadyHasWorld(t *testing.T) {
	pool := mkPool(
		models.CategoryWorld,
		models.CategoryEconomy,
		models.CategorySociety,
		models.CategorySociety,
		models.CategoryEconomy,
		models.CategorySociety,
		models.CategoryWorld,
	)
	selected := Select(pool, 6)
	for i := 0; i < 6; i++ {
		if selected[i].ID != pool[i].ID {
			t.Fatalf("slot %d should keep feed order when the head already has World", i)
		}
	}
}

func TestSelectNoWorldAnywhere(t *testing.T) {
	pool := mkPool(
		models.CategorySociety,
		models.CategoryEconomy,
		models.CategorySociety,
		models.CategoryEconomy,
		models.CategorySociety,
		models.CategoryEconomy,
		models.CategorySociety,
	)
	selected := Select(pool, 6)
	if len(selected) != 6 {
		t.Fatalf("selected %d, want 6 even without a World article", len(selected))
	}
	for i := 0; i < 6; i++ {
		if selected[i].ID != pool[i].ID {
			t.Fatalf("slot %d should fall back to plain feed order", i)
		}
	}
}

func TestSelectAssignsImportance(t *testing.T) {
	pool := mkPool(
		models.CategorySociety, models.CategoryEconomy, models.CategoryWorld,
		models.CategorySociety, models.CategoryEconomy, models.CategorySociety,
		models.CategoryEconomy, models.CategorySociety, models.CategoryEconomy,
		models.CategorySociety,
	)
	selected := Select(pool, 10)
	want := []int{100, 95, 90, 85, 80, 75, 70, 65, 60, 60}
	for i, a := range selected {
		if a.Importance != want[i] {
			t.Errorf("importance[%d] = %d, want %d", i, a.Importance, want[i])
		}
	}
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	pool := mkPool(models.CategorySociety, models.CategoryWorld)
	Select(pool, 2)
	if pool[0].Importance != 0 {
		t.Error("Select should not write importance back into the pool")
	}
}
