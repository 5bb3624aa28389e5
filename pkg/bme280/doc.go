// Package bme280 reads a Bosch BME280 temperature, pressure and humidity
// sensor over I²C and applies the factory compensation.
//
// A run is strictly sequential: identify, read calibration, trigger and read
// one raw sample, compensate. Every bus failure is returned as a *BusError and
// nothing is retried.
package bme280
