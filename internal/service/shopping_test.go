package service_test

import (
	"testing"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
)

func TestAddShoppingItemsMergesOnNameAndUnit(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	n, err := service.AddShoppingItems(db, []model.ShoppingIngredient{
		{Name: "Riz", Quantity: "200", Unit: "g", Category: model.CategoryGrains},
		{Name: "Tomates", Quantity: "4", Category: model.CategoryVegetables},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows written, got %d", n)
	}

	// Same name/unit with a new quantity updates in place.
	if _, err := service.AddShoppingItems(db, []model.ShoppingIngredient{
		{Name: "riz", Quantity: "500", Unit: "g", Category: model.CategoryGrains},
	}); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	items, err := service.ListShoppingItems(db, service.ListShoppingFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items after merge, got %d", len(items))
	}
	for _, item := range items {
		if item.Name == "Riz" && item.Quantity != "500" {
			t.Fatalf("expected merged quantity 500, got %q", item.Quantity)
		}
	}
}

func TestAddShoppingItemsSkipsBlankAndFillsDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	n, err := service.AddShoppingItems(db, []model.ShoppingIngredient{
		{Name: "   "},
		{Name: "Citron"},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row written, got %d", n)
	}

	items, err := service.ListShoppingItems(db, service.ListShoppingFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Quantity != "1" || items[0].Category != model.CategoryOther {
		t.Fatalf("expected default quantity/category, got %+v", items[0])
	}
}

func TestListShoppingItemsFilters(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if _, err := service.AddShoppingItems(db, []model.ShoppingIngredient{
		{Name: "Pommes", Quantity: "2", Unit: "kg", Category: model.CategoryFruits},
		{Name: "Poulet", Quantity: "500", Unit: "g", Category: model.CategoryProteins},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	fruits, err := service.ListShoppingItems(db, service.ListShoppingFilter{Category: model.CategoryFruits})
	if err != nil {
		t.Fatalf("list fruits: %v", err)
	}
	if len(fruits) != 1 || fruits[0].Name != "Pommes" {
		t.Fatalf("unexpected category filter result: %+v", fruits)
	}

	items, err := service.ListShoppingItems(db, service.ListShoppingFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := service.SetShoppingItemChecked(db, items[0].ID, true); err != nil {
		t.Fatalf("check: %v", err)
	}

	pending, err := service.ListShoppingItems(db, service.ListShoppingFilter{PendingOnly: true})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID == items[0].ID {
		t.Fatalf("unexpected pending filter result: %+v", pending)
	}
}

func TestSetShoppingItemCheckedNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	if err := service.SetShoppingItemChecked(db, 999, true); err == nil {
		t.Fatal("expected not-found error")
	}
	if err := service.SetShoppingItemChecked(db, 0, true); err == nil {
		t.Fatal("expected invalid id error")
	}
}

func TestDeleteAndClearShoppingItems(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	if _, err := service.AddShoppingItems(db, []model.ShoppingIngredient{
		{Name: "Lait", Quantity: "1", Unit: "l", Category: model.CategoryDairy},
		{Name: "Oeufs", Quantity: "6", Category: model.CategoryProteins},
		{Name: "Pain", Quantity: "1", Category: model.CategoryGrains},
	}); err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := service.ListShoppingItems(db, service.ListShoppingFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := service.DeleteShoppingItem(db, items[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := service.DeleteShoppingItem(db, items[0].ID); err == nil {
		t.Fatal("expected not-found on second delete")
	}

	if err := service.SetShoppingItemChecked(db, items[1].ID, true); err != nil {
		t.Fatalf("check: %v", err)
	}
	removed, err := service.ClearShoppingItems(db, true)
	if err != nil {
		t.Fatalf("clear checked: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 checked item removed, got %d", removed)
	}

	removed, err = service.ClearShoppingItems(db, false)
	if err != nil {
		t.Fatalf("clear all: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 remaining item removed, got %d", removed)
	}
}
