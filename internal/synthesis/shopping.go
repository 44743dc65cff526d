package synthesis

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

// Tier 1: the assistant was asked for a tagged JSON block.
var taggedBlockRe = regexp.MustCompile(`(?s)<INGREDIENTS>(.*?)</INGREDIENTS>`)

type taggedPayload struct {
	Ingredients []struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit"`
		Category string `json:"category"`
	} `json:"ingredients"`
}

// Tier 2: label patterns whose captured fragment is split into tokens.
var shoppingLabelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^.*?liste des ingrédients\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?ingrédients\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?pour \d+ personnes?\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?vous aurez besoin de\s*:?\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?recette\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?préparation\s*:\s*(.+)$`),
	regexp.MustCompile(`(?im)^.*?matériel\s*:\s*(.+)$`),
}

var tokenSplitRe = regexp.MustCompile(`[,;]|\s+et\s+`)

var (
	tokenUnitRe = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(g|kg|ml|l|cuillères?|tasses?|pincées?|branches?|gousses?|tranches?|unités?)\s+(?:de\s+|d')?(.+)$`)
	tokenBareRe = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s+(.+)$`)
)

var leadingArticles = []string{"de la ", "de l'", "des ", "de ", "du ", "d'", "le ", "la ", "les ", "l'", "un ", "une "}

var trailingQualifiers = []string{"frais", "fraîche", "fraîches", "râpé", "râpée", "complet", "complète", "entier", "entière", "moulu", "moulue", "haché", "hachée", "concassé", "concassée", "découpé", "découpée"}

// ExtractShoppingIngredients parses an assistant response into
// shopping-list entries. A valid tagged JSON block wins outright; a
// missing or malformed block falls through to the label heuristics,
// which is the expected path when the generator ignored the
// structured format.
func ExtractShoppingIngredients(text string) []model.ShoppingIngredient {
	if items := extractTaggedIngredients(text); len(items) > 0 {
		return items
	}
	return extractLabeledIngredients(text)
}

func extractTaggedIngredients(text string) []model.ShoppingIngredient {
	m := taggedBlockRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var payload taggedPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &payload); err != nil {
		// Tier miss, not an error: the generator produced a broken block.
		return nil
	}
	items := make([]model.ShoppingIngredient, 0, len(payload.Ingredients))
	for _, ing := range payload.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		quantity := strings.TrimSpace(ing.Quantity)
		if quantity == "" {
			quantity = "1"
		}
		category := strings.TrimSpace(ing.Category)
		if category == "" {
			category = CategorizeIngredient(name)
		}
		items = append(items, model.ShoppingIngredient{
			Name:     name,
			Quantity: quantity,
			Unit:     strings.TrimSpace(ing.Unit),
			Category: category,
		})
	}
	return items
}

func extractLabeledIngredients(text string) []model.ShoppingIngredient {
	items := make([]model.ShoppingIngredient, 0)
	seen := make(map[string]bool)

	for _, re := range shoppingLabelRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, token := range tokenSplitRe.Split(m[1], -1) {
				item, ok := parseShoppingToken(token)
				if !ok {
					continue
				}
				key := strings.ToLower(item.Name)
				if seen[key] {
					continue
				}
				seen[key] = true
				items = append(items, item)
			}
		}
	}
	return items
}

// parseShoppingToken turns one comma-separated fragment into an entry.
// Unparseable quantities degrade to "1 <token>" rather than dropping
// the token.
func parseShoppingToken(token string) (model.ShoppingIngredient, bool) {
	token = strings.TrimSpace(strings.Trim(token, ".:-•*"))
	if token == "" {
		return model.ShoppingIngredient{}, false
	}

	var name, quantity, unit string
	if m := tokenUnitRe.FindStringSubmatch(token); m != nil {
		quantity, unit, name = m[1], strings.ToLower(m[2]), m[3]
	} else if m := tokenBareRe.FindStringSubmatch(token); m != nil {
		quantity, name = m[1], m[2]
	} else {
		quantity, name = "1", token
	}

	name = cleanShoppingName(name)
	if len([]rune(name)) < 2 {
		return model.ShoppingIngredient{}, false
	}
	return model.ShoppingIngredient{
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		Category: CategorizeIngredient(name),
	}, true
}

func cleanShoppingName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	for changed := true; changed; {
		changed = false
		for _, article := range leadingArticles {
			if strings.HasPrefix(name, article) {
				name = strings.TrimSpace(strings.TrimPrefix(name, article))
				changed = true
			}
		}
	}
	words := strings.Fields(name)
	for len(words) > 1 && isQualifier(words[len(words)-1]) {
		words = words[:len(words)-1]
	}
	return strings.Trim(strings.Join(words, " "), " .,;:!()")
}

func isQualifier(word string) bool {
	for _, q := range trailingQualifiers {
		if word == q {
			return true
		}
	}
	return false
}

// Category buckets, first match wins. Keyword sets deliberately use
// singular stems so plural forms match by substring.
var categoryBuckets = []struct {
	category string
	keywords []string
}{
	{model.CategoryFruits, []string{
		"pomme", "banane", "orange", "citron", "fraise", "framboise", "myrtille",
		"mûre", "cerise", "raisin", "poire", "pêche", "abricot", "prune", "ananas",
		"mangue", "kiwi", "melon", "pastèque", "grenade", "figue", "datte",
		"clémentine", "mandarine", "pamplemousse", "fruit",
	}},
	{model.CategoryVegetables, []string{
		"tomate", "carotte", "courgette", "aubergine", "poivron", "brocoli",
		"chou", "épinard", "salade", "laitue", "roquette", "concombre",
		"haricot vert", "petits pois", "champignon", "oignon", "échalote", "ail",
		"poireau", "céleri", "betterave", "potiron", "courge", "fenouil",
		"asperge", "avocat", "radis", "navet", "légume",
	}},
	{model.CategoryProteins, []string{
		"poulet", "dinde", "boeuf", "bœuf", "veau", "porc", "jambon", "lardon",
		"bacon", "agneau", "canard", "steak", "viande", "saumon", "thon",
		"cabillaud", "colin", "merlu", "sardine", "maquereau", "truite",
		"crevette", "moule", "poisson", "oeuf", "œuf", "tofu", "tempeh",
		"seitan", "lentille", "pois chiche", "haricot rouge", "haricot blanc",
	}},
	{model.CategoryGrains, []string{
		"riz", "pâte", "spaghetti", "quinoa", "boulgour", "semoule", "couscous",
		"avoine", "muesli", "céréale", "pain", "baguette", "farine", "blé",
		"polenta", "maïs", "tortilla", "wrap", "pomme de terre", "patate",
	}},
	{model.CategoryGrocery, []string{
		"huile", "olive", "sel", "poivre", "sucre", "épice", "vinaigre",
		"moutarde", "mayonnaise", "ketchup", "sauce", "miel", "confiture",
		"chocolat", "cacao", "café", "thé", "bouillon", "levure", "amande",
		"noix", "noisette", "cacahuète", "graine", "sésame", "sirop", "curry",
		"curcuma", "gingembre", "persil", "basilic", "coriandre", "houmous",
		"pesto", "whey", "protéine en poudre",
	}},
	{model.CategoryDairy, []string{
		"lait", "yaourt", "fromage", "mozzarella", "parmesan", "feta",
		"gruyère", "emmental", "chèvre", "beurre", "crème", "skyr", "ricotta",
	}},
}

// CategorizeIngredient assigns a shopping category by keyword
// membership; unknown ingredients land in Autres. Multi-word keywords
// are tested first so "pomme de terre" lands in Céréales, not Fruits.
func CategorizeIngredient(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, multiWord := range []bool{true, false} {
		for _, bucket := range categoryBuckets {
			for _, kw := range bucket.keywords {
				if strings.Contains(kw, " ") != multiWord {
					continue
				}
				if strings.Contains(lower, kw) {
					return bucket.category
				}
			}
		}
	}
	return model.CategoryOther
}
