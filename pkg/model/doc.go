// Package model defines the database models for RoboHub.
//
// This package contains GORM models that map to the RoboHub PostgreSQL
// schema:
//
//   - User: platform accounts, optionally linked to a wallet
//   - Device: registered robotics devices (drones, robots, rovers)
//   - Transaction: payment records, optionally tied to an on-chain hash
//
// Primary keys are UUIDs generated in BeforeCreate hooks when not set
// by the caller.
package model
