// Package factory provides a small generic registry used to instantiate
// modules from configuration. Modules are defined by a type string and a map
// of raw settings. Factories decode the settings into typed structs and
// return the concrete implementation.
//
// The fleet package uses it to build vehicle templates ("car", "truck",
// "electric") from the fleet section of the configuration file, and the
// metrics package to build sinks ("prometheus", "influx", "nop").
package factory
