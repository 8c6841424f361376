package ioformat

import (
	"path/filepath"
	"strings"
)

// Format names an input edge-list format.
type Format string

const (
	FormatNSE  Format = "NSE"
	FormatNSA  Format = "NSA"
	FormatNCOL Format = "NCOL"
)

// InferFormat guesses a Format from path's extension: ".nse" -> NSE,
// ".nsa" -> NSA, anything else -> NCOL.
func InferFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nse":
		return FormatNSE
	case ".nsa":
		return FormatNSA
	default:
		return FormatNCOL
	}
}
