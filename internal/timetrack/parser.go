package timetrack

import (
	"regexp"
	"strings"
)

var (
	headingRe  = regexp.MustCompile(`^#{1,6}\s`)
	ttHeaderRe = regexp.MustCompile(`^#{1,6}\s+TT\s+(\d{4}-\d{2}-\d{2})\s*$`)
	entryLnRe  = regexp.MustCompile(`^\s*-\s+(.+)$`)
)

// LineKind is the structural classification of a single input line.
type LineKind int

const (
	LineOther LineKind = iota
	LineHeaderTT
	LineHeaderInvalidDate
	LineHeaderOther
	LineEntry
)

// ClassifiedLine is the result of classifying one line of a journal file.
type ClassifiedLine struct {
	Kind      LineKind
	Date      EntryDate // valid when Kind == LineHeaderTT
	RawDate   string    // the unparsed date capture, valid when Kind == LineHeaderInvalidDate
	EntryText string    // content after "- ", valid when Kind == LineEntry
}

// ClassifyLine classifies a single line per spec: a TT header, a non-TT
// heading (closes any open TT section), an entry line, or anything else.
func ClassifyLine(line string) ClassifiedLine {
	line = strings.TrimRight(line, " \t\r")
	if m := ttHeaderRe.FindStringSubmatch(line); m != nil {
		if d, ok := ParseEntryDate(m[1]); ok {
			return ClassifiedLine{Kind: LineHeaderTT, Date: d}
		}
		return ClassifiedLine{Kind: LineHeaderInvalidDate, RawDate: m[1]}
	}
	if headingRe.MatchString(line) {
		return ClassifiedLine{Kind: LineHeaderOther}
	}
	if m := entryLnRe.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: LineEntry, EntryText: m[1]}
	}
	return ClassifiedLine{Kind: LineOther}
}

// ParseEntry parses the content of an entry line (the text after "- ") into
// a TimeEntry. It is eager: the first violation wins.
//
// Algorithm (spec 4.D): a leading run of tag tokens establishes the entry's
// project/outcome tags; once a non-tag token is seen the run ends and every
// remaining token is either a duration token or a description word, in any
// order.
func ParseEntry(raw string) (TimeEntry, error) {
	fields := strings.Fields(raw)

	i := 0
	var projectTags []Tag
	var outcome *Tag
	for i < len(fields) {
		tag, ok := classifyTagToken(fields[i])
		if !ok {
			break
		}
		if tag.Kind == TagOutcome {
			if outcome != nil {
				return TimeEntry{}, InvalidLineFormat(raw)
			}
			t := tag
			outcome = &t
		} else {
			projectTags = append(projectTags, tag)
		}
		i++
	}
	if len(projectTags) == 0 {
		return TimeEntry{}, InvalidLineFormat(raw)
	}

	var minutesTotal uint64
	var descWords []string
	for _, tok := range fields[i:] {
		if looksLikeDurationToken(tok) {
			m, err := parseDurationToken(tok)
			if err != nil {
				return TimeEntry{}, err
			}
			minutesTotal += uint64(m)
			if minutesTotal > maxUint32Value {
				return TimeEntry{}, InvalidTime(tok)
			}
			continue
		}
		descWords = append(descWords, tok)
	}
	if minutesTotal == 0 {
		return TimeEntry{}, MissingTime(raw)
	}

	var description *string
	if len(descWords) > 0 {
		joined := strings.TrimSpace(strings.Join(descWords, " "))
		if joined != "" {
			description = &joined
		}
	}

	return TimeEntry{
		tags:        projectTags,
		minutes:     uint32(minutesTotal),
		description: description,
		outcome:     outcome,
	}, nil
}

const maxUint32Value = 1<<32 - 1
