package httpserver

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
	ContentTypeHTML    = "text/html; charset=utf-8"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty" msgpack:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	errResponse := &ErrorResponse{
		Message: errMsg,
	}
	w.Header().Add("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errResponse)
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Add("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func ReplyMsgpackResponse(w http.ResponseWriter, statusCode int, output any) {
	body, err := msgpack.Marshal(output)
	if err != nil {
		slog.Error("encoding msgpack response", slog.Any("error", err))
		ReplyWithError(w, http.StatusInternalServerError, "encoding response")
		return
	}
	w.Header().Add("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(statusCode)
	w.Write(body)
}

// ReplyNegotiated answers in msgpack when the client asks for it and in JSON otherwise.
func ReplyNegotiated(w http.ResponseWriter, r *http.Request, statusCode int, output any) {
	w.Header().Add("Vary", "Accept")
	if AcceptsMsgpack(r) {
		ReplyMsgpackResponse(w, statusCode, output)
		return
	}
	ReplyJSONResponse(w, statusCode, output)
}

func AcceptsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType == ContentTypeMsgpack || mediaType == "application/x-msgpack" {
			return true
		}
	}
	return false
}

func ReplyHTML(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Add("Content-Type", ContentTypeHTML)
	w.WriteHeader(statusCode)
	w.Write(body)
}

func GetPathParam(r *http.Request, name string) string {
	return r.PathValue(name)
}

func GetQueryParam(r *http.Request, name string) string {
	val := r.URL.Query().Get(name)
	return val
}
