package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Matt777777777/AthletIQ-sub000/internal/model"
	"github.com/Matt777777777/AthletIQ-sub000/internal/service"
	"github.com/Matt777777777/AthletIQ-sub000/internal/synthesis"
)

type textRequest struct {
	Text string `json:"text"`
	Save bool   `json:"save,omitempty"`
}

type nutritionRequest struct {
	Text     string `json:"text"`
	MealType string `json:"meal_type"`
	Log      bool   `json:"log,omitempty"`
}

type caloriesRequest struct {
	Text    string         `json:"text"`
	Profile *model.Profile `json:"profile,omitempty"`
	Log     bool           `json:"log,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSynthesizeWorkout(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	workout := synthesis.SynthesizeWorkout(req.Text)
	resp := map[string]any{
		"workout":   workout,
		"formatted": synthesis.FormatWorkout(workout),
	}
	if req.Save && s.db != nil {
		if id, err := savePlanJSON(s, service.PlanKindWorkout, workout.Title, req.Text, workout); err == nil {
			resp["plan_id"] = id
		} else {
			log.Printf("save workout plan: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSynthesizeMeal(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	meal := synthesis.SynthesizeMeal(req.Text)
	resp := map[string]any{
		"meal":      meal,
		"formatted": synthesis.FormatMeal(meal),
	}
	if req.Save && s.db != nil {
		if id, err := savePlanJSON(s, service.PlanKindMeal, meal.Title, req.Text, meal); err == nil {
			resp["plan_id"] = id
		} else {
			log.Printf("save meal plan: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleShoppingExtract(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	items := synthesis.ExtractShoppingIngredients(req.Text)
	resp := map[string]any{"items": items}
	if req.Save && s.db != nil {
		saved, err := service.AddShoppingItems(s.db, items)
		if err != nil {
			log.Printf("save shopping items: %v", err)
		}
		resp["saved"] = saved
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNutritionEstimate(w http.ResponseWriter, r *http.Request) {
	var req nutritionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	ingredients := synthesis.ExtractMealIngredients(req.Text)
	nutrition := synthesis.EstimateMealNutrition(req.Text, req.MealType)
	resp := map[string]any{
		"nutrition":   nutrition,
		"ingredients": ingredients,
	}
	if req.Log && s.db != nil {
		if id, err := service.LogMeal(s.db, req.MealType, nutrition, time.Now()); err == nil {
			resp["log_id"] = id
		} else {
			log.Printf("log meal: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWorkoutCalories(w http.ResponseWriter, r *http.Request) {
	var req caloriesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	profile := req.Profile
	if profile == nil && s.db != nil {
		stored, err := service.GetProfile(s.db)
		if err != nil {
			log.Printf("load profile: %v", err)
		} else {
			profile = stored
		}
	}
	calc := synthesis.CalculateWorkoutCalories(req.Text, profile)
	resp := map[string]any{"calculation": calc}
	if req.Log && s.db != nil {
		if id, err := service.LogWorkout(s.db, calc, time.Now()); err == nil {
			resp["log_id"] = id
		} else {
			log.Printf("log workout: %v", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func savePlanJSON(s *Server, kind, title, source string, payload any) (int64, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	return service.SavePlan(s.db, kind, title, source, string(raw))
}

// decodeBody rejects only unreadable or malformed JSON. Missing or
// empty fields fall through to the pipeline's own defaults.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
