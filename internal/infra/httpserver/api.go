package httpserver

import "net/http"

type Controller interface {
	AddRoutes(*http.ServeMux)
}

// Config holds the listener settings read from the http.* configuration keys.
type Config struct {
	Address        string
	AllowedOrigins []string
}
