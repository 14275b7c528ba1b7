// Package robotics validates device commands and simulates telemetry.
//
// Each supported device type (drone, robot, rover) carries its own
// command set. Commands with parameters (movement, rotation, hover) are
// parsed and range-checked before dispatch, and an estimated battery
// drain is computed from the parsed parameters.
package robotics
