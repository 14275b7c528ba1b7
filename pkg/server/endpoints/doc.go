// Package endpoints implements the RoboHub HTTP API handlers.
//
// Responses use a uniform envelope: successes carry
// {"success":true,"data":...} and failures
// {"success":false,"error":{"type":...,"message":...}}.
package endpoints
