package generator

import "github.com/vovakirdan/levelgen/internal/catalog"

// plantfoodRange is the die rolled for a bonus plant food on ordinary waves;
// rolls at or below plantfoodHits grant one.
const (
	plantfoodRange = 15
	plantfoodHits  = 2
)

// Fill spends budget on randomly chosen roster entries. Each step picks
// uniformly among the entries that still fit in the remaining budget; when
// none fit it spawns the cost-1 fallback unit. Entries may repeat.
// It returns the chosen names in spawn order and the points spent.
func Fill(budget int, roster []catalog.Entry, fallback string, src Source) ([]string, int) {
	var chosen []string
	spent := 0
	affordable := make([]catalog.Entry, 0, len(roster))

	for spent < budget {
		remaining := budget - spent

		affordable = affordable[:0]
		for _, e := range roster {
			if e.Cost <= remaining {
				affordable = append(affordable, e)
			}
		}

		pick := catalog.Entry{Name: fallback, Cost: 1}
		if len(affordable) > 0 {
			pick = affordable[src.Intn(len(affordable))]
		}

		chosen = append(chosen, pick.Name)
		spent += pick.Cost
	}

	return chosen, spent
}

// rollPlantfood decides whether an ordinary wave grants a bonus plant food.
func rollPlantfood(src Source) bool {
	return between(src, 1, plantfoodRange) <= plantfoodHits
}
