package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Format lexer failures
	FmtInfo                     Code = 1000
	FmtInvalidArgument          Code = 1001
	FmtAllocationFailure        Code = 1002
	FmtUnexpectedEndOfDirective Code = 1003
	FmtWidthOverflow            Code = 1004
	FmtUnterminatedScanset      Code = 1005

	// Catalog entries
	CatInfo       Code = 2000
	CatBadQuoting Code = 2001

	IOLoadFileError Code = 4001

	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		FmtInfo:                     "Format information",
		FmtInvalidArgument:          "Invalid argument",
		FmtAllocationFailure:        "Token buffer exhausted",
		FmtUnexpectedEndOfDirective: "Unexpected end of directive",
		FmtWidthOverflow:            "Field width overflow",
		FmtUnterminatedScanset:      "Unterminated scanset",
		CatInfo:                     "Catalog information",
		CatBadQuoting:               "Malformed quoted catalog entry",
		IOLoadFileError:             "I/O load file error",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("CAT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
