package synthesis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
)

const (
	maxExercises = 10
	maxTips      = 5
)

// exName matches a plausible exercise name: letters first, then
// letters, apostrophes, spaces and hyphens. Œ/œ sit outside the À-ÿ
// range and are listed explicitly.
const exName = `[A-Za-zÀ-ÿŒœ][A-Za-zÀ-ÿŒœ'’ \-]{1,59}`

type exercisePattern struct {
	re        *regexp.Regexp
	nameIdx   int
	setsIdx   int // 0 when the pattern carries no sets capture
	repsIdx   int
	duration  bool   // reps are seconds, rendered with an "s" suffix
	fixedSets string // used when setsIdx == 0
}

// The exercise cascade. All patterns run, in order, against the whole
// text; duplicates collapse on the first-seen name. "sec" variants sit
// immediately before their plain counterparts so a duration line is
// claimed as a duration exercise, not as absurd rep counts.
var exercisePatterns = []exercisePattern{
	{re: regexp.MustCompile(`(?m)^[ \t]*[-•*]\s*(` + exName + `)\s*\(\s*(\d+)\s*[xX×]\s*(\d+)\s*s(?:ec(?:ondes)?)?\s*\)`), nameIdx: 1, setsIdx: 2, repsIdx: 3, duration: true},
	{re: regexp.MustCompile(`(?m)^[ \t]*[-•*]\s*(` + exName + `)\s*\(\s*(\d+)\s*[xX×]\s*(\d+)\s*\)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?m)^[ \t]*[-•*]\s*(` + exName + `)\s*[–:-]\s*(\d+)\s*[xX×]\s*(\d+)\s*s(?:ec(?:ondes)?)?\b`), nameIdx: 1, setsIdx: 2, repsIdx: 3, duration: true},
	{re: regexp.MustCompile(`(?m)^[ \t]*[-•*]\s*(` + exName + `)\s*[–:-]\s*(\d+)\s*[xX×]\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?m)^[ \t]*[-•*]\s*(` + exName + `)\s+(\d+)\s*[xX×]\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?m)^[ \t]*\d+[.)]\s*(` + exName + `)\s*[–:-]?\s*(\d+)\s*[xX×]\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?m)^[ \t]*(?:[-•*]\s*)?(\d+)\s*[xX×]\s*(\d+)\s*[–:-]?\s*(` + exName + `)\s*$`), nameIdx: 3, setsIdx: 1, repsIdx: 2},
	{re: regexp.MustCompile(`(?i)(\d+)\s*séries?\s*de\s*(\d+)\s*(?:répétitions?\s*)?(?:de\s+|d')(` + exName + `)`), nameIdx: 3, setsIdx: 1, repsIdx: 2},
	{re: regexp.MustCompile(`(?i)(` + exName + `)\s*:\s*(\d+)\s*séries?\s*de\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?i)(` + exName + `)\s*[–,:-]?\s*(\d+)\s*séries?\s*(?:[xX×]|de)?\s*(\d+)\s*répétitions?`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?im)^[ \t]*[-•*]\s*(` + exName + `)\s*[–:-]?\s*(\d+)\s*séries?\s*de\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?im)^[ \t]*[-•*]\s*(` + exName + `)\s*[–:-]\s*(\d+)\s*s(?:ec(?:ondes)?)?\b`), nameIdx: 1, repsIdx: 2, duration: true, fixedSets: "3"},
	{re: regexp.MustCompile(`(` + exName + `)\s*\(\s*(\d+)\s*[xX×]\s*(\d+)\s*\)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(` + exName + `)\s*[–:-]\s*(\d+)\s*[xX×]\s*(\d+)\s*s(?:ec(?:ondes)?)?\b`), nameIdx: 1, setsIdx: 2, repsIdx: 3, duration: true},
	{re: regexp.MustCompile(`(` + exName + `)\s*[–:-]\s*(\d+)\s*[xX×]\s*(\d+)`), nameIdx: 1, setsIdx: 2, repsIdx: 3},
	{re: regexp.MustCompile(`(?i)(\d+)\s*s(?:ec(?:ondes)?)?\s*(?:de\s+|d')(` + exName + `)`), nameIdx: 2, repsIdx: 1, duration: true, fixedSets: "3"},
}

// Words that regexes over-match but that never name an exercise.
var exerciseStoplist = map[string]bool{
	"série": true, "séries": true, "series": true,
	"répétition": true, "répétitions": true, "reps": true, "rep": true,
	"repos": true, "pause": true, "durée": true,
	"min": true, "minute": true, "minutes": true,
	"sec": true, "seconde": true, "secondes": true,
	"échauffement": true, "récupération": true, "retour": true,
	"exercice": true, "exercices": true, "séance": true,
	"entraînement": true, "circuit": true, "tour": true, "tours": true,
	"fais": true, "faites": true, "faire": true, "avec": true, "pendant": true,
}

var (
	durationRe = regexp.MustCompile(`(?i)(\d+)\s*(min(?:utes?)?|h(?:eures?)?)\b`)
	restRe     = regexp.MustCompile(`(?i)(?:repos\s*:?\s*)?(\d+)\s*(s(?:ec(?:ondes)?)?|min(?:utes?)?)\s*(?:de\s+)?(?:repos|pause)`)
	restAltRe  = regexp.MustCompile(`(?i)repos\s*:?\s*(\d+)\s*(s(?:ec(?:ondes)?)?|min(?:utes?)?)`)
	warmupRe   = regexp.MustCompile(`(?im)^.*?échauffement\s*:?\s*(.{5,200})$`)
	cooldownRe = regexp.MustCompile(`(?im)^.*?(?:récupération|retour au calme)\s*:?\s*(.{5,200})$`)

	tipRes = []*regexp.Regexp{
		regexp.MustCompile(`(?im)^.*?conseils?\s*:\s*(.+)$`),
		regexp.MustCompile(`(?im)^.*?astuces?\s*:\s*(.+)$`),
		regexp.MustCompile(`(?im)^.*?important\s*:\s*(.+)$`),
	}

	lineSecRe    = regexp.MustCompile(`(?i)(\d+)\s*s(?:ec(?:ondes)?)?\b`)
	lineSetRepRe = regexp.MustCompile(`(\d+)\s*[xX×]\s*(\d+)`)
	lineMarkerRe = regexp.MustCompile(`^[ \t]*(?:[-•*]+|\d+[.)])\s*`)
)

var genericExercises = []model.WorkoutExercise{
	{Name: "Pompes", Sets: "3", Reps: "12", Rest: "60 sec", MuscleGroups: "Poitrine/Triceps"},
	{Name: "Squats", Sets: "3", Reps: "15", Rest: "60 sec", MuscleGroups: "Jambes/Fessiers"},
	{Name: "Fentes", Sets: "3", Reps: "12", Rest: "60 sec", MuscleGroups: "Jambes/Fessiers"},
	{Name: "Gainage", Sets: "3", Reps: "30s", Rest: "30 sec", MuscleGroups: "Abdominaux"},
	{Name: "Burpees", Sets: "3", Reps: "10", Rest: "60 sec", MuscleGroups: "Full Body"},
	{Name: "Mountain Climbers", Sets: "3", Reps: "20", Rest: "30 sec", MuscleGroups: "Abdominaux"},
}

var genericTips = []string{
	"Restez hydraté tout au long de la séance",
	"Privilégiez la qualité d'exécution à la vitesse",
	"Respirez profondément entre les séries",
}

// SynthesizeWorkout extracts a structured workout from free text. It
// never fails: each section degrades through its cascade down to a
// generic default.
func SynthesizeWorkout(text string) model.SynthesizedWorkout {
	duration := detectWorkoutDuration(text)
	lower := strings.ToLower(text)

	exercises := tryInOrder(text, extractPatternExercises, extractLineExercises)
	if len(exercises) == 0 {
		exercises = append([]model.WorkoutExercise(nil), genericExercises...)
	}

	return model.SynthesizedWorkout{
		Title:     fmt.Sprintf("Séance de %s %s", duration, detectSessionType(lower)),
		Duration:  duration,
		Exercises: truncate(exercises, maxExercises),
		Warmup:    firstCapture(warmupRe, text, "5 minutes de cardio léger pour monter en température"),
		Cooldown:  firstCapture(cooldownRe, text, "5 minutes d'étirements doux pour récupérer"),
		Tips:      truncate(extractTips(text), maxTips),
	}
}

func detectWorkoutDuration(text string) string {
	m := durationRe.FindStringSubmatch(text)
	if m == nil {
		return "45 min"
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return "45 min"
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		n *= 60
	}
	return fmt.Sprintf("%d min", n)
}

func detectSessionType(lower string) string {
	switch {
	case strings.Contains(lower, "sans matériel"):
		return "au poids du corps"
	case strings.Contains(lower, "haltère"):
		return "avec haltères"
	case strings.Contains(lower, "barre"):
		return "avec barre"
	case strings.Contains(lower, "cardio"):
		return "cardio"
	case strings.Contains(lower, "musculation"):
		return "de musculation"
	default:
		return "full body"
	}
}

func extractPatternExercises(text string) []model.WorkoutExercise {
	exercises := make([]model.WorkoutExercise, 0)
	seen := make(map[string]bool)

	for _, p := range exercisePatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(text, -1) {
			if len(exercises) >= maxExercises {
				return exercises
			}
			name := cleanExerciseName(capture(text, idx, p.nameIdx))
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}

			sets := p.fixedSets
			if p.setsIdx > 0 {
				sets = capture(text, idx, p.setsIdx)
			}
			reps := capture(text, idx, p.repsIdx)
			if sets == "" || reps == "" {
				continue
			}
			if p.duration {
				reps += "s"
			}

			line := lineAround(text, idx[0])
			rest := detectRest(line, p.duration)
			seen[key] = true
			exercises = append(exercises, model.WorkoutExercise{
				Name:         name,
				Sets:         sets,
				Reps:         reps,
				Rest:         rest,
				MuscleGroups: ClassifyMuscleGroups(name + " " + line),
			})
		}
	}
	return exercises
}

// extractLineExercises is the last heuristic rung before the generic
// fallback: any reasonably sized line carrying a number is probed for
// a duration suffix or a sets×reps token.
func extractLineExercises(text string) []model.WorkoutExercise {
	exercises := make([]model.WorkoutExercise, 0)
	seen := make(map[string]bool)

	for _, raw := range strings.Split(text, "\n") {
		if len(exercises) >= maxExercises {
			break
		}
		line := strings.TrimSpace(raw)
		if len(line) < 5 || len(line) > 100 || !strings.ContainsAny(line, "0123456789") {
			continue
		}

		var sets, reps, rest string
		duration := false
		if m := lineSecRe.FindStringSubmatch(line); m != nil {
			sets, reps, duration = "3", m[1]+"s", true
			line = strings.Replace(line, m[0], "", 1)
		} else if m := lineSetRepRe.FindStringSubmatch(line); m != nil {
			sets, reps = m[1], m[2]
			line = strings.Replace(line, m[0], "", 1)
		} else {
			continue
		}

		name := cleanExerciseName(lineMarkerRe.ReplaceAllString(line, ""))
		if name == "" || seen[strings.ToLower(name)] {
			continue
		}
		rest = detectRest(raw, duration)
		seen[strings.ToLower(name)] = true
		exercises = append(exercises, model.WorkoutExercise{
			Name:         name,
			Sets:         sets,
			Reps:         reps,
			Rest:         rest,
			MuscleGroups: ClassifyMuscleGroups(name + " " + raw),
		})
	}
	return exercises
}

func cleanExerciseName(raw string) string {
	name := strings.TrimSpace(raw)
	name = strings.Trim(name, "-–—•*:,.()'’ \t")
	name = strings.Join(strings.Fields(name), " ")
	if len([]rune(name)) < 3 {
		return ""
	}
	lower := strings.ToLower(name)
	if exerciseStoplist[lower] {
		return ""
	}
	words := strings.Fields(lower)
	if len(words) > 0 && exerciseStoplist[words[0]] {
		return ""
	}
	return name
}

func detectRest(line string, duration bool) string {
	if m := restRe.FindStringSubmatch(line); m != nil {
		return formatRest(m[1], m[2])
	}
	if m := restAltRe.FindStringSubmatch(line); m != nil {
		return formatRest(m[1], m[2])
	}
	if duration {
		return "30 sec"
	}
	return "60 sec"
}

func formatRest(n, unit string) string {
	if strings.HasPrefix(strings.ToLower(unit), "m") {
		return n + " min"
	}
	return n + " sec"
}

func extractTips(text string) []string {
	tips := make([]string, 0)
	seen := make(map[string]bool)
	for _, re := range tipRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			tip := strings.TrimSpace(m[1])
			if len(tip) <= 10 || seen[strings.ToLower(tip)] {
				continue
			}
			seen[strings.ToLower(tip)] = true
			tips = append(tips, tip)
		}
	}
	if len(tips) == 0 {
		return append([]string(nil), genericTips...)
	}
	return tips
}

func capture(text string, idx []int, group int) string {
	start, end := idx[2*group], idx[2*group+1]
	if start < 0 || end < 0 {
		return ""
	}
	return strings.TrimSpace(text[start:end])
}

func lineAround(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : pos+end]
}

func firstCapture(re *regexp.Regexp, text, fallback string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return fallback
}
