package textdiff

import (
	"cmp"

	"znkr.io/assertdiff/diff"
)

// The heuristics below follow the slider heuristics of git's xdiff, see
// https://github.com/git/git/tree/master/xdiff.

// Never move a group more than this many lines.
const maxSliding = 100

// slideGroups moves every group of consecutive lines with the same op (other than Kept) along the
// Kept lines around it to the position where the group boundaries line up best with the
// indentation of the surrounding text. A group only moves across a Kept line that has the same value
// as the line at the other end of the group, which keeps the diff valid and its cost unchanged.
// escaped reports whether the lines are the output of [Escape].
func slideGroups(lines []Line, escaped bool) {
	for start, end := 0, 0; start < len(lines); start = end {
		for ; start < len(lines); start++ {
			if lines[start].Op != diff.Kept {
				break
			}
		}
		if start == len(lines) {
			break
		}

		op := lines[start].Op
		for end = start; end < len(lines); end++ {
			if lines[end].Op != op {
				break
			}
		}
		groupSize := end - start

		// slide up as much as possible
		for start > 0 && lines[start-1].Op == diff.Kept && lines[start-1].Value == lines[end-1].Value {
			lines[start-1], lines[end-1] = lines[end-1], lines[start-1]
			start--
			end--
		}

		earliestEnd := end // highest position of the group end

		// slide down as much as possible
		for end < len(lines) && lines[end].Op == diff.Kept && lines[start].Value == lines[end].Value {
			lines[start], lines[end] = lines[end], lines[start]
			start++
			end++
		}

		if end == earliestEnd {
			// no shifting possible
			continue
		}

		// The group is at its lowest position now, so only upward shifts need to be considered.
		shift := max(earliestEnd, end-groupSize-1, end-maxSliding)
		bestShift := -1
		bestScore := score{}
		for ; shift <= end; shift++ {
			s := score{}
			s.add(measureSplit(lines, shift, escaped))
			s.add(measureSplit(lines, shift-groupSize, escaped))
			if bestShift == -1 || s.isBetterThan(bestScore) {
				bestShift = shift
				bestScore = s
			}
		}

		for end > bestShift {
			lines[start-1], lines[end-1] = lines[end-1], lines[start-1]
			start--
			end--
		}
	}
}

type measure struct {
	eof        bool
	indent     int
	preBlank   int
	preIndent  int
	postBlank  int
	postIndent int
}

// Don't consider more than this number of consecutive blank lines.
const maxBlanks = 20

func measureSplit(lines []Line, split int, escaped bool) measure {
	m := measure{}
	if split >= len(lines) {
		m.eof = true
		m.indent = -1
	} else {
		m.indent = getIndent(lines[split].Value, escaped)
	}

	m.preIndent = -1
	for i := split - 1; i >= 0; i-- {
		m.preIndent = getIndent(lines[i].Value, escaped)
		if m.preIndent != -1 {
			break
		}
		m.preBlank++
		if m.preBlank == maxBlanks {
			m.preIndent = 0
			break
		}
	}

	m.postIndent = -1
	for i := split + 1; i < len(lines); i++ {
		m.postIndent = getIndent(lines[i].Value, escaped)
		if m.postIndent != -1 {
			break
		}
		m.postBlank++
		if m.postBlank == maxBlanks {
			m.postIndent = 0
			break
		}
	}
	return m
}

// Indentation beyond this is clamped, it doesn't matter for readability.
const maxIndent = 200

// getIndent returns the indentation width of line, counting tabs up to the next multiple of 8, or
// -1 if the line is blank. If the line is escaped, escaped tabs and line terminators count like the
// characters they stand for.
func getIndent(line string, escaped bool) int {
	indent := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		if escaped && c == '\\' && i+1 < len(line) {
			switch line[i+1] {
			case 't':
				c = '\t'
				i++
			case 'r', 'n':
				c = '\n'
				i++
			}
		}
		switch c {
		case ' ':
			indent++
		case '\t':
			indent += 8 - indent%8
		case '\r', '\n', '\f', '\v':
			// ignore all other spaces
		default:
			return indent
		}
		if indent >= maxIndent {
			return maxIndent
		}
	}
	return -1 // only whitespace
}

type score struct {
	effectiveIndent int // smaller is better
	penalty         int // smaller is better
}

const startOfFilePenalty = 1               // No non-blank lines before the split
const endOfFilePenalty = 21                // No non-blank lines after the split
const totalBlankWeight = -30               // Weight for number of blank lines around the split
const postBlankWeight = 6                  // Weight for number of blank lines after the split
const relativeIndentPenalty = -4           // Indented more than predecessor
const relativeIndentWithBlankPenalty = 10  // Indented more than predecessor, with blank lines
const relativeOutdentPenalty = 24          // Indented less than predecessor
const relativeOutdentWithBlankPenalty = 17 // Indented less than predecessor, with blank lines
const relativeDentPenalty = 23             // Indented less than predecessor but not less than successor
const relativeDentWithBlankPenalty = 17    // Indented less than predecessor but not less than successor, with blank lines

// Only the sign of the difference between the effective indents of two scores matters. It's
// multiplied by this weight and combined with the penalties to pick the better score.
const indentWeight = 60

func (s *score) add(m measure) {
	if m.preIndent == -1 && m.preBlank == 0 {
		s.penalty += startOfFilePenalty
	}
	if m.eof {
		s.penalty += endOfFilePenalty
	}

	postBlank := 0
	if m.indent == -1 {
		postBlank = 1 + m.postBlank
	}
	totalBlank := m.preBlank + postBlank

	// Penalties based on nearby blank lines
	s.penalty += totalBlankWeight * totalBlank
	s.penalty += postBlankWeight * postBlank

	indent := m.indent
	if indent == -1 {
		indent = m.postIndent
	}

	s.effectiveIndent += indent

	switch {
	case indent == -1 || m.preIndent == -1:
		// No additional adjustment needed.
	case indent > m.preIndent:
		if totalBlank != 0 {
			s.penalty += relativeIndentWithBlankPenalty
		} else {
			s.penalty += relativeIndentPenalty
		}
	case indent == m.preIndent:
		// Same indentation as the previous line.
	case m.postIndent != -1 && m.postIndent > indent:
		// Indented less than the predecessor, but the next line is indented more. This line is
		// likely the start of a new block (e.g., an "else" block).
		if totalBlank != 0 {
			s.penalty += relativeOutdentWithBlankPenalty
		} else {
			s.penalty += relativeOutdentPenalty
		}
	default:
		// Indented less than the predecessor, likely the terminator of the previous block.
		if totalBlank != 0 {
			s.penalty += relativeDentWithBlankPenalty
		} else {
			s.penalty += relativeDentPenalty
		}
	}
}

func (s *score) isBetterThan(t score) bool {
	return indentWeight*cmp.Compare(s.effectiveIndent, t.effectiveIndent)+s.penalty-t.penalty <= 0
}
