package httputils

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	RequestTimeout = 3 * time.Second
)

func WriteJSON(w http.ResponseWriter, statusCode int, value any) {
	out, err := json.Marshal(value)
	if err != nil {
		zap.L().Error("error while marshalling response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(out)
}
