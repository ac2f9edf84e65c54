package display

// categoryIcons maps store category IDs to icon asset names. Several IDs share
// one icon (all multiplayer flavours, all co-op flavours).
var categoryIcons = func() map[int]string {
	groups := map[string][]int{
		"ico_multiPlayer":        {1, 27, 36, 37},
		"ico_coop":               {9, 24, 38, 39},
		"ico_singlePlayer":       {2},
		"ico_vac":                {8},
		"ico_cc":                 {13},
		"ico_commentary":         {14},
		"ico_stats":              {15},
		"ico_editor":             {17},
		"ico_partial_controller": {18},
		"ico_achievements":       {22},
		"ico_cloud":              {23},
		"ico_controller":         {28},
		"ico_cards":              {29},
		"ico_workshop":           {30},
		"ico_cart":               {35},
	}

	table := make(map[int]string)
	for icon, ids := range groups {
		for _, id := range ids {
			table[id] = icon
		}
	}
	return table
}()

// CategoryIcon returns the icon asset name for a category ID.
func CategoryIcon(id int) (string, bool) {
	icon, ok := categoryIcons[id]
	return icon, ok
}
