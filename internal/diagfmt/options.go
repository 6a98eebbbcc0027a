package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto shortens paths under the base directory to relative
	// form and long absolute paths elsewhere to their base name.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // source lines shown around the primary line
	PathMode  PathMode
	ShowNotes bool
	Width     int // wrap notes at this column; 0 disables wrapping
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // add line/col
	PathMode         PathMode
	Max              int // truncates output, not the Bag
	IncludeNotes     bool
}

// TokenFormat selects the encoding of a token dump.
type TokenFormat string

const (
	TokenFormatPretty  TokenFormat = "pretty"
	TokenFormatJSON    TokenFormat = "json"
	TokenFormatMsgpack TokenFormat = "msgpack"
)

// ParseTokenFormat validates a user supplied format name.
func ParseTokenFormat(s string) (TokenFormat, bool) {
	switch f := TokenFormat(s); f {
	case TokenFormatPretty, TokenFormatJSON, TokenFormatMsgpack:
		return f, true
	}
	return "", false
}
