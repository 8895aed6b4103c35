package wage

// Convention data for January 2025 through March 2026. Seed material for the
// database tables; at runtime the engine reads whatever the database holds.

var conventionMonths = []string{
	"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06",
	"2025-07", "2025-08", "2025-09", "2025-10", "2025-11", "2025-12",
	"2026-01", "2026-02", "2026-03",
}

// Hourly base rate per category, aligned with conventionMonths.
var hourlyByCategory = map[string][]float64{
	"A": {2546, 2583, 2621, 2658, 2696, 2750, 2804, 2858, 2912, 2966, 3020, 3080, 3141, 3141, 3231},
	"B": {2593, 2631, 2669, 2707, 2745, 2800, 2855, 2910, 2965, 3020, 3074, 3135, 3197, 3197, 3289},
	"C": {2643, 2682, 2721, 2759, 2798, 2854, 2910, 2966, 3022, 3078, 3134, 3197, 3259, 3259, 3353},
	"D": {2690, 2729, 2769, 2808, 2848, 2905, 2962, 3019, 3076, 3133, 3190, 3254, 3318, 3318, 3413},
	"E": {2745, 2785, 2826, 2866, 2906, 2964, 3022, 3080, 3138, 3197, 3255, 3320, 3385, 3385, 3483},
	"F": {2798, 2839, 2880, 2921, 2962, 3021, 3080, 3140, 3199, 3258, 3317, 3383, 3450, 3450, 3549},
	"G": {2885, 2927, 2969, 3012, 3054, 3115, 3176, 3237, 3298, 3359, 3420, 3488, 3557, 3557, 3659},
	"H": {2947, 2990, 3033, 3077, 3120, 3182, 3245, 3307, 3370, 3432, 3494, 3564, 3634, 3634, 3739},
}

// Seniority bonuses are published only for the months where they change.
// DefaultTables carries each anchor forward until the next one.
var seniorityAnchors = map[int]map[string]float64{
	1:  {"2025-01": 25, "2025-07": 27, "2025-09": 28, "2026-01": 29, "2026-03": 30},
	3:  {"2025-01": 37, "2025-07": 39, "2025-09": 41, "2026-01": 42, "2026-03": 43},
	5:  {"2025-01": 50, "2025-07": 53, "2025-09": 56, "2026-01": 58, "2026-03": 60},
	7:  {"2025-01": 68, "2025-07": 72, "2025-09": 76, "2026-01": 78, "2026-03": 81},
	9:  {"2025-01": 81, "2025-07": 86, "2025-09": 91, "2026-01": 93, "2026-03": 96},
	12: {"2025-01": 108, "2025-07": 114, "2025-09": 121, "2026-01": 124, "2026-03": 128},
	15: {"2025-01": 130, "2025-07": 138, "2025-09": 146, "2026-01": 150, "2026-03": 155},
	18: {"2025-01": 152, "2025-07": 161, "2025-09": 170, "2026-01": 174, "2026-03": 179},
	22: {"2025-01": 175, "2025-07": 186, "2025-09": 196, "2026-01": 201, "2026-03": 207},
	26: {"2025-01": 198, "2025-07": 210, "2025-09": 222, "2026-01": 228, "2026-03": 235},
	30: {"2025-01": 217, "2025-07": 230, "2025-09": 243, "2026-01": 249, "2026-03": 256},
	35: {"2025-01": 238, "2025-07": 252, "2025-09": 267, "2026-01": 273, "2026-03": 281},
	40: {"2025-01": 261, "2025-07": 277, "2025-09": 292, "2026-01": 300, "2026-03": 309},
}

var nonRemunerativeByMonth = map[string]float64{
	"2025-01": 210000, "2025-02": 210000, "2025-03": 210000, "2025-04": 210000,
	"2025-05": 210000, "2025-06": 315000, "2025-07": 210000, "2025-08": 210000,
	"2025-09": 210000, "2025-10": 210000, "2025-11": 210000, "2025-12": 315000,
	"2026-01": 210000, "2026-02": 210000, "2026-03": 210000,
}

// DefaultTables builds the shipped convention tables, materializing the
// sparse seniority anchors into full monthly coverage.
func DefaultTables() *Tables {
	tables := &Tables{
		Hourly:          make(map[string]map[string]float64, len(hourlyByCategory)),
		Seniority:       make(map[int]map[string]float64, len(seniorityAnchors)),
		NonRemunerative: make(map[string]float64, len(nonRemunerativeByMonth)),
	}

	for category, rates := range hourlyByCategory {
		byMonth := make(map[string]float64, len(conventionMonths))
		for i, month := range conventionMonths {
			byMonth[month] = rates[i]
		}
		tables.Hourly[category] = byMonth
	}

	for years, anchors := range seniorityAnchors {
		byMonth := make(map[string]float64, len(conventionMonths))
		current := 0.0
		for _, month := range conventionMonths {
			if v, ok := anchors[month]; ok {
				current = v
			}
			if current > 0 {
				byMonth[month] = current
			}
		}
		tables.Seniority[years] = byMonth
	}

	for month, amount := range nonRemunerativeByMonth {
		tables.NonRemunerative[month] = amount
	}

	return tables
}
