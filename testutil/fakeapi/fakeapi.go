// Package fakeapi serves canned management API responses over HTTP so the
// client can be tested without a broker.
package fakeapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Request is a request as received by the fake server. Path keeps its
// escaping, so the default virtual host appears as %2F.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type Server struct {
	echo       *echo.Echo
	httpServer *httptest.Server

	mu       sync.Mutex
	requests []Request
}

// New starts a server accepting only the given credentials. Unregistered
// routes answer 404 with the management plugin's "Object Not Found" body.
func New(username, password string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)

	s := &Server{echo: e}
	e.Pre(RecordRequests(s.record))
	e.Use(RequireBasicAuth(username, password))
	e.RouteNotFound("/*", func(c echo.Context) error {
		log.Warnf("fakeapi: no response registered for %s %s", c.Request().Method, c.Request().URL.EscapedPath())
		return c.JSONBlob(http.StatusNotFound, []byte(`{"error":"Object Not Found","reason":"Not Found"}`))
	})

	s.httpServer = httptest.NewServer(e)
	return s
}

// URL is the base URL to configure the client with.
func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// Handle registers a canned response. path uses echo route syntax
// (/api/queues/:vhost/:name). An empty body yields a bodiless response.
func (s *Server) Handle(method, path string, status int, body string) {
	s.echo.Add(method, path, func(c echo.Context) error {
		if body == "" {
			return c.NoContent(status)
		}
		return c.JSONBlob(status, []byte(body))
	})
}

// HandleFunc registers a custom handler.
func (s *Server) HandleFunc(method, path string, handler echo.HandlerFunc) {
	s.echo.Add(method, path, handler)
}

// Requests returns every request received so far, oldest first.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or the zero Request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) record(r Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}
