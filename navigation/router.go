// Package navigation resolves view routes requested by the splash and other views
package navigation

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
)

// Navigator accepts view navigation requests
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(ctx context.Context, target string) error

// Navigate calls f
func (f NavigatorFunc) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

// Errors
var (
	ErrUnknownRoute = errors.New("unknown route")
	ErrRedirectLoop = errors.New("redirect loop")
)

// maxRedirects bounds redirect chains
const maxRedirects = 8

// Route is a registered view path
type Route struct {
	Path string
	// Redirect, if set, replaces Path when resolved
	Redirect string
	// Guarded routes require an admin session, resolution still succeeds and the flag is reported
	Guarded bool
}

// DefaultRoutes is the application's view table
var DefaultRoutes = []Route{
	{Path: "/"},
	{Path: "/login"},
	{Path: "/register"},
	{Path: "/home"},
	{Path: "/dashboard"},
	{Path: "/habits"},
	{Path: "/statistics"},
	{Path: "/about"},
	{Path: "/admin", Redirect: "/admin/dashboard"},
	{Path: "/admin/login"},
	{Path: "/admin/dashboard", Guarded: true},
}

// Router resolves targets against a route table and records history
// Safe for concurrent use
type Router struct {
	mu      sync.RWMutex
	routes  map[string]Route
	history []string
	onEnter func(Route)
}

// NewRouter creates a router over routes, DefaultRoutes when none are given
func NewRouter(routes ...Route) *Router {
	if len(routes) == 0 {
		routes = DefaultRoutes
	}
	r := &Router{routes: make(map[string]Route, len(routes))}
	for _, rt := range routes {
		rt.Path = normalize(rt.Path)
		if rt.Redirect != "" {
			rt.Redirect = normalize(rt.Redirect)
		}
		r.routes[rt.Path] = rt
	}
	return r
}

// OnEnter registers a hook run after every successful navigation
func (r *Router) OnEnter(f func(Route)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEnter = f
}

// normalize cleans a path and strips trailing slashes, "login" and "/login/" both become "/login"
func normalize(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}

// Resolve follows redirects without navigating
func (r *Router) Resolve(target string) (Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(target)
}

func (r *Router) resolveLocked(target string) (Route, error) {
	p := normalize(target)
	for i := 0; i <= maxRedirects; i++ {
		rt, ok := r.routes[p]
		if !ok {
			return Route{}, fmt.Errorf("%w: %s", ErrUnknownRoute, p)
		}
		if rt.Redirect == "" {
			return rt, nil
		}
		p = rt.Redirect
	}
	return Route{}, fmt.Errorf("%w: %s", ErrRedirectLoop, normalize(target))
}

// Navigate resolves target and makes it the current route
func (r *Router) Navigate(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	rt, err := r.resolveLocked(target)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	r.history = append(r.history, rt.Path)
	hook := r.onEnter
	r.mu.Unlock()

	if hook != nil {
		hook(rt)
	}
	return nil
}

// Current returns the last resolved route path, empty before any navigation
func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.history) == 0 {
		return ""
	}
	return r.history[len(r.history)-1]
}

// History returns a copy of every resolved path in order
func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.history))
	copy(out, r.history)
	return out
}
