// Package server assembles the RoboHub HTTP server: router, handler
// chain, storage, and domain services.
package server
