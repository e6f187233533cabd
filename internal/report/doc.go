// Package report renders solved scenarios for the terminal: spectrum
// tables, wavefunction overlay plots, and an interactive browser.
package report
