package fakeapi

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	Authorization  = "Authorization"
	RequestUserKey = "requestUser"
)

// RequireBasicAuth answers 401 with the management plugin's error body
// unless the request carries the expected basic credentials. The
// authenticated user is stored under RequestUserKey.
func RequireBasicAuth(username, password string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(Authorization) == "" {
				return c.JSONBlob(http.StatusUnauthorized, []byte(`{"error":"not_authorized","reason":"Not_Authorized"}`))
			}

			user, pass, ok := c.Request().BasicAuth()
			if !ok || user != username || pass != password {
				return c.JSONBlob(http.StatusUnauthorized, []byte(`{"error":"not_authorized","reason":"Login failed"}`))
			}

			c.Set(RequestUserKey, user)
			return next(c)
		}
	}
}

// RecordRequests hands a copy of every request to record before the
// request reaches authentication or routing.
func RecordRequests(record func(Request)) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			var body []byte
			if req.Body != nil {
				var err error
				if body, err = io.ReadAll(req.Body); err != nil {
					return err
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			record(Request{
				Method: req.Method,
				Path:   req.URL.EscapedPath(),
				Query:  req.URL.Query(),
				Header: req.Header.Clone(),
				Body:   body,
			})
			return next(c)
		}
	}
}
