package routes

import (
	"encoding/json"
	"net/http"

	"github.com/LilVoxy/department_summary/ETL/utils"
)

func writeJSON(w http.ResponseWriter, logger *utils.ETLLogger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("❌ Ошибка при кодировании JSON: %v", err)
	}
}
