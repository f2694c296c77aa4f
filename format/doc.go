// Package format enumerates the text formats go-aons can read and write.
//
// AONS is the native format. JSON and YAML are supported as output
// conversions by the encode package and the aons command.
package format
