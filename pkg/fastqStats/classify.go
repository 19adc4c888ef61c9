package fastqStats

// LineKind is the role of one FASTQ line inside the four line cycle
type LineKind int

const (
	Header LineKind = iota
	Sequence
	Separator
	Quality
)

func (k LineKind) String() string {
	switch k {
	case Header:
		return "Header"
	case Sequence:
		return "Sequence"
	case Separator:
		return "Separator"
	case Quality:
		return "Quality"
	}
	return "Unknown"
}

// ParserState tells whether the next unrecognized line is a read or its quality
type ParserState int

const (
	ExpectHeaderOrSequence ParserState = iota
	ExpectQuality
)

// header fields after @[A-Z]: true means the ':' must be followed by a digit
var headerFields = [...]bool{true, false, true, true, true, true}

// IsHeader reports whether line looks like a flow-cell read identifier,
// e.g. @HISEQ:1:FCC:1:1:1:1.
// Any text may sit between the fields, so the leftmost match of each field is taken.
func IsHeader(line string) bool {
	if len(line) < 2 || line[0] != '@' || line[1] < 'A' || line[1] > 'Z' {
		return false
	}
	var pos = 2
	for _, needDigit := range headerFields {
		var found = false
		for ; pos < len(line); pos++ {
			if line[pos] != ':' {
				continue
			}
			if !needDigit {
				pos++
				found = true
				break
			}
			if pos+1 < len(line) && isDigit(line[pos+1]) {
				pos += 2
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Classify decides the kind of a trimmed line and returns the next state
func Classify(line string, state ParserState) (LineKind, ParserState) {
	switch {
	case IsHeader(line):
		return Header, ExpectHeaderOrSequence
	case line == "+":
		return Separator, ExpectQuality
	case state == ExpectHeaderOrSequence:
		return Sequence, ExpectHeaderOrSequence
	default:
		return Quality, ExpectHeaderOrSequence
	}
}
