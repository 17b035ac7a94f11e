package httputils

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/merolaashraf15-source/MED/internal/app/model"
)

const (
	RequestTimeout = 3 * time.Second
)

func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	out, err := json.Marshal(payload)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}

func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, model.ErrorResponse{Message: message})
}
