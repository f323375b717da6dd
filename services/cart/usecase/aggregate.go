package usecase

import (
	"github.com/piresc/flashfood/internal/pkg/models"
	"github.com/piresc/flashfood/services/cart"
)

// GroupByRestaurant buckets cart lines by restaurant id. Lines keep their input order inside a group.
func GroupByRestaurant(items []models.CartLineItem) models.GroupedCart {
	grouped := make(models.GroupedCart)
	for _, item := range items {
		id := item.RestaurantID()
		grouped[id] = append(grouped[id], item)
	}
	return grouped
}

// MergeVariantIntoItem adds incoming to the item's variants. A variant already present gets the
// quantities summed and keeps its first-seen price; a new variant is appended.
// The returned item never shares its variant slice with existing.
func MergeVariantIntoItem(existing models.CartLineItem, incoming models.VariantSelection) models.CartLineItem {
	variants := make([]models.VariantSelection, len(existing.Variants), len(existing.Variants)+1)
	copy(variants, existing.Variants)

	merged := false
	for i := range variants {
		if variants[i].VariantID == incoming.VariantID {
			variants[i].Quantity += incoming.Quantity
			merged = true
			break
		}
	}
	if !merged {
		variants = append(variants, incoming)
	}

	existing.Variants = variants
	return existing
}

// CanAddToSelection reports whether a variant of candidate may join a selection currently
// staged for current. An empty current means nothing is staged yet.
func CanAddToSelection(current, candidate string) bool {
	return current == "" || current == candidate
}

// ToggleVariantSelection removes staged from the selection when it is already there and adds it
// otherwise. Adding from a second restaurant fails with ErrMixedRestaurants; removing the last
// variant clears the restaurant. The input selection is left untouched.
func ToggleVariantSelection(selection models.Selection, restaurant models.RestaurantSummary, staged models.StagedVariant) (models.Selection, error) {
	variants := make([]models.StagedVariant, 0, len(selection.Variants)+1)
	removed := false
	for _, v := range selection.Variants {
		if v.ItemID == staged.ItemID && v.VariantSelection.VariantID == staged.VariantSelection.VariantID {
			removed = true
			continue
		}
		variants = append(variants, v)
	}

	if removed {
		selection.Variants = variants
		if len(variants) == 0 {
			selection.RestaurantID = ""
			selection.RestaurantAddress = ""
		}
		return selection, nil
	}

	if !CanAddToSelection(selection.RestaurantID, restaurant.ID) {
		return selection, cart.ErrMixedRestaurants
	}

	selection.Variants = append(variants, staged)
	selection.RestaurantID = restaurant.ID
	selection.RestaurantAddress = restaurant.Address
	return selection, nil
}

// findLine returns the index of the cart line with the given id, or -1
func findLine(items []models.CartLineItem, lineID string) int {
	for i := range items {
		if items[i].ID == lineID {
			return i
		}
	}
	return -1
}

// findVariant returns the index of the variant with the given id, or -1
func findVariant(variants []models.VariantSelection, variantID string) int {
	for i := range variants {
		if variants[i].VariantID == variantID {
			return i
		}
	}
	return -1
}
