// Package pins handles parsing and writing of workloadq.pins.yaml files.
// Pin files record explicit manifest version pins per manifest id, which
// override anything directory scanning would discover.
package pins
