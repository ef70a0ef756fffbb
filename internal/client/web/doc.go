// Package web serves the portal to browsers: the route table, the session
// guard and the server-rendered pages. All state lives in the shared
// services.AuthService; the package itself is stateless.
package web
