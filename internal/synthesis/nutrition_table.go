package synthesis

// foodFacts holds macros per 100 g.
type foodFacts struct {
	calories float64
	carbs    float64
	protein  float64
	fat      float64
}

// nutritionPer100g maps lowercased French ingredient names to their
// per-100g macros. Lookup is exact and case-insensitive (callers
// lowercase first). Values are rounded reference-table figures.
var nutritionPer100g = map[string]foodFacts{
	// protéines animales
	"poulet":             {165, 0, 31, 3.6},
	"blanc de poulet":    {165, 0, 31, 3.6},
	"escalope de poulet": {165, 0, 31, 3.6},
	"cuisse de poulet":   {209, 0, 26, 11},
	"dinde":              {135, 0, 29, 1.7},
	"boeuf":              {250, 0, 26, 15},
	"bœuf":               {250, 0, 26, 15},
	"steak haché":        {241, 0, 26, 15},
	"veau":               {172, 0, 31, 5},
	"porc":               {242, 0, 27, 14},
	"jambon":             {145, 1, 21, 6},
	"jambon blanc":       {115, 1, 20, 3},
	"lardons":            {317, 1, 14, 29},
	"bacon":              {317, 1, 14, 29},
	"agneau":             {294, 0, 25, 21},
	"canard":             {337, 0, 19, 28},
	"saumon":             {208, 0, 20, 13},
	"thon":               {132, 0, 28, 1.3},
	"cabillaud":          {82, 0, 18, 0.7},
	"colin":              {82, 0, 18, 0.9},
	"merlu":              {86, 0, 18, 1.3},
	"sardine":            {208, 0, 25, 11},
	"maquereau":          {205, 0, 19, 14},
	"truite":             {141, 0, 20, 6},
	"crevettes":          {99, 0, 24, 0.3},
	"crevette":           {99, 0, 24, 0.3},
	"moules":             {86, 4, 12, 2},
	"oeuf":               {155, 1.1, 13, 11},
	"œuf":                {155, 1.1, 13, 11},
	"oeufs":              {155, 1.1, 13, 11},
	"œufs":               {155, 1.1, 13, 11},
	"blanc d'oeuf":       {52, 0.7, 11, 0.2},
	"tofu":               {76, 1.9, 8, 4.8},
	"tempeh":             {193, 9, 19, 11},
	"seitan":             {370, 14, 75, 1.9},

	// laitages
	"lait":                 {42, 5, 3.4, 1},
	"lait écrémé":          {34, 5, 3.4, 0.1},
	"lait d'amande":        {17, 0.6, 0.6, 1.5},
	"yaourt":               {59, 3.6, 10, 0.4},
	"yaourt grec":          {97, 3.6, 9, 5},
	"fromage blanc":        {72, 4, 8, 3},
	"skyr":                 {63, 4, 11, 0.2},
	"fromage":              {350, 2, 25, 27},
	"mozzarella":           {280, 2.2, 22, 20},
	"parmesan":             {431, 4.1, 38, 29},
	"feta":                 {264, 4.1, 14, 21},
	"gruyère":              {413, 0.4, 30, 32},
	"emmental":             {382, 1.5, 28, 29},
	"chèvre":               {364, 2.5, 22, 30},
	"beurre":               {717, 0.1, 0.9, 81},
	"crème fraîche":        {292, 3, 2.4, 30},
	"crème":                {292, 3, 2.4, 30},
	"cottage cheese":       {98, 3.4, 11, 4.3},
	"ricotta":              {174, 3, 11, 13},

	// céréales et féculents
	"riz":               {130, 28, 2.7, 0.3},
	"riz basmati":       {121, 25, 3.5, 0.4},
	"riz complet":       {111, 23, 2.6, 0.9},
	"pâtes":             {131, 25, 5, 1.1},
	"pâtes complètes":   {124, 23, 5.3, 1.3},
	"spaghetti":         {131, 25, 5, 1.1},
	"quinoa":            {120, 21, 4.4, 1.9},
	"boulgour":          {83, 19, 3.1, 0.2},
	"semoule":           {112, 23, 3.8, 0.2},
	"couscous":          {112, 23, 3.8, 0.2},
	"avoine":            {389, 66, 17, 7},
	"flocons d'avoine":  {389, 66, 17, 7},
	"muesli":            {367, 66, 10, 6},
	"pain":              {265, 49, 9, 3.2},
	"pain complet":      {247, 41, 13, 3.4},
	"pain de mie":       {265, 50, 8, 3.5},
	"baguette":          {272, 56, 9, 1.4},
	"farine":            {364, 76, 10, 1},
	"pomme de terre":    {77, 17, 2, 0.1},
	"pommes de terre":   {77, 17, 2, 0.1},
	"patate douce":      {86, 20, 1.6, 0.1},
	"lentilles":         {116, 20, 9, 0.4},
	"pois chiches":      {164, 27, 9, 2.6},
	"haricots rouges":   {127, 23, 9, 0.5},
	"haricots blancs":   {139, 25, 9, 0.6},
	"maïs":              {86, 19, 3.2, 1.2},
	"polenta":           {85, 18, 2, 0.4},
	"galettes de riz":   {387, 81, 8, 2.8},
	"tortilla":          {218, 36, 6, 5},
	"wrap":              {218, 36, 6, 5},

	// légumes
	"tomate":            {18, 3.9, 0.9, 0.2},
	"tomates":           {18, 3.9, 0.9, 0.2},
	"tomates cerises":   {18, 3.9, 0.9, 0.2},
	"carotte":           {41, 10, 0.9, 0.2},
	"carottes":          {41, 10, 0.9, 0.2},
	"courgette":         {17, 3.1, 1.2, 0.3},
	"courgettes":        {17, 3.1, 1.2, 0.3},
	"aubergine":         {25, 6, 1, 0.2},
	"poivron":           {31, 6, 1, 0.3},
	"brocoli":           {34, 7, 2.8, 0.4},
	"chou-fleur":        {25, 5, 1.9, 0.3},
	"chou":              {25, 6, 1.3, 0.1},
	"épinards":          {23, 3.6, 2.9, 0.4},
	"salade":            {15, 2.9, 1.4, 0.2},
	"laitue":            {15, 2.9, 1.4, 0.2},
	"roquette":          {25, 3.7, 2.6, 0.7},
	"concombre":         {16, 3.6, 0.7, 0.1},
	"haricots verts":    {31, 7, 1.8, 0.1},
	"petits pois":       {81, 14, 5.4, 0.4},
	"champignons":       {22, 3.3, 3.1, 0.3},
	"champignon":        {22, 3.3, 3.1, 0.3},
	"oignon":            {40, 9.3, 1.1, 0.1},
	"oignons":           {40, 9.3, 1.1, 0.1},
	"échalote":          {72, 17, 2.5, 0.1},
	"ail":               {149, 33, 6.4, 0.5},
	"poireau":           {61, 14, 1.5, 0.3},
	"céleri":            {16, 3, 0.7, 0.2},
	"betterave":         {43, 10, 1.6, 0.2},
	"potiron":           {26, 7, 1, 0.1},
	"courge":            {26, 7, 1, 0.1},
	"fenouil":           {31, 7, 1.2, 0.2},
	"asperges":          {20, 3.9, 2.2, 0.1},
	"avocat":            {160, 9, 2, 15},
	"radis":             {16, 3.4, 0.7, 0.1},

	// fruits
	"pomme":        {52, 14, 0.3, 0.2},
	"pommes":       {52, 14, 0.3, 0.2},
	"banane":       {89, 23, 1.1, 0.3},
	"bananes":      {89, 23, 1.1, 0.3},
	"orange":       {47, 12, 0.9, 0.1},
	"clémentine":   {47, 12, 0.9, 0.1},
	"mandarine":    {53, 13, 0.8, 0.3},
	"citron":       {29, 9, 1.1, 0.3},
	"pamplemousse": {42, 11, 0.8, 0.1},
	"fraise":       {32, 7.7, 0.7, 0.3},
	"fraises":      {32, 7.7, 0.7, 0.3},
	"framboises":   {52, 12, 1.2, 0.7},
	"myrtilles":    {57, 14, 0.7, 0.3},
	"mûres":        {43, 10, 1.4, 0.5},
	"cerises":      {63, 16, 1.1, 0.2},
	"raisin":       {69, 18, 0.7, 0.2},
	"poire":        {57, 15, 0.4, 0.1},
	"pêche":        {39, 10, 0.9, 0.3},
	"abricot":      {48, 11, 1.4, 0.4},
	"prune":        {46, 11, 0.7, 0.3},
	"ananas":       {50, 13, 0.5, 0.1},
	"mangue":       {60, 15, 0.8, 0.4},
	"kiwi":         {61, 15, 1.1, 0.5},
	"melon":        {34, 8, 0.8, 0.2},
	"pastèque":     {30, 8, 0.6, 0.2},
	"grenade":      {83, 19, 1.7, 1.2},
	"figue":        {74, 19, 0.8, 0.3},
	"dattes":       {282, 75, 2.5, 0.4},
	"raisins secs": {299, 79, 3.1, 0.5},
	"fruits rouges": {45, 10, 1, 0.4},

	// épicerie, graisses, divers
	"huile d'olive":    {884, 0, 0, 100},
	"huile":            {884, 0, 0, 100},
	"huile de coco":    {892, 0, 0, 99},
	"olives":           {115, 6, 0.8, 11},
	"amandes":          {579, 22, 21, 50},
	"noix":             {654, 14, 15, 65},
	"noisettes":        {628, 17, 15, 61},
	"noix de cajou":    {553, 30, 18, 44},
	"cacahuètes":       {567, 16, 26, 49},
	"beurre de cacahuète": {588, 20, 25, 50},
	"graines de chia":  {486, 42, 17, 31},
	"graines de lin":   {534, 29, 18, 42},
	"graines de courge": {559, 11, 30, 49},
	"sésame":           {573, 23, 18, 50},
	"miel":             {304, 82, 0.3, 0},
	"confiture":        {278, 69, 0.4, 0.1},
	"sucre":            {387, 100, 0, 0},
	"chocolat":         {546, 61, 4.9, 31},
	"chocolat noir":    {546, 61, 4.9, 31},
	"cacao":            {228, 58, 20, 14},
	"sirop d'érable":   {260, 67, 0, 0.1},
	"ketchup":          {112, 26, 1.2, 0.1},
	"moutarde":         {66, 6, 4.4, 3.3},
	"mayonnaise":       {680, 0.6, 1, 75},
	"sauce soja":       {53, 5, 8, 0.6},
	"sauce tomate":     {29, 5.5, 1.4, 0.2},
	"vinaigre":         {19, 0.9, 0, 0},
	"vinaigre balsamique": {88, 17, 0.5, 0},
	"lait de coco":     {230, 6, 2.3, 24},
	"houmous":          {166, 14, 8, 10},
	"protéine en poudre": {375, 7, 80, 5},
	"whey":             {375, 7, 80, 5},
	"flocons de pois chiches": {364, 55, 22, 6},
	"pesto":            {458, 6, 5, 45},
	"bouillon":         {5, 0.5, 0.4, 0.1},
	"gingembre":        {80, 18, 1.8, 0.8},
	"curry":            {325, 56, 14, 14},
	"curcuma":          {354, 65, 8, 10},
	"persil":           {36, 6, 3, 0.8},
	"basilic":          {23, 2.7, 3.2, 0.6},
	"coriandre":        {23, 3.7, 2.1, 0.5},
}
