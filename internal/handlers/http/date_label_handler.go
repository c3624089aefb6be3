// internal/handlers/http/date_label_handler.go
// GET /api/date-label?date=... -> {"input": ..., "label": "Thu, Jul 24"}

package http

import (
	"encoding/json"
	"net/http"

	"weather-dashboard/internal/util"
	"weather-dashboard/pkg/datefmt"
)

type dateLabelResp struct {
	Input string `json:"input"`
	Label string `json:"label"`
}

func DateLabelHandler(w http.ResponseWriter, r *http.Request) {
	in := r.URL.Query().Get("date")
	label, err := datefmt.Format(in)
	if err != nil {
		util.WriteError(w, util.InvalidDateFormat(err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dateLabelResp{Input: in, Label: label})
}
