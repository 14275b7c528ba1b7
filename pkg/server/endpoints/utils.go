package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/robohub/robohub/pkg/server/apierror"
)

type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondWithData(w http.ResponseWriter, data interface{}) {
	respondWithJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func respondWithCreated(w http.ResponseWriter, data interface{}) {
	respondWithJSON(w, http.StatusCreated, successEnvelope{Success: true, Data: data})
}

func respondWithMessage(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, successEnvelope{Success: true, Message: message})
}

func respondWithError(w http.ResponseWriter, err error) {
	apierror.Respond(w, err)
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apierror.New(apierror.BadRequest, "invalid request body")
	}
	return nil
}
