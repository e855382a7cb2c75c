package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Inline style tags understood in messages when markup is enabled:
//
//	<b> <bold>        <i> <italic>      <u> <underline>
//	<d> <dim>         <s> <strike>      <blink>  <reverse>
//	<red> <bright-red> <on-blue> <on-bright-blue>
//	</> and </tag>    reset all styling, for any known tag above
//	<info> <warn> <tick> <cross> <heart> icons
//
// Unknown tags, closing ones included, are written verbatim. Numeric
// color indexes are not tags.

var markupAttrs = map[string]string{
	"b":             termenv.BoldSeq,
	"bold":          termenv.BoldSeq,
	"d":             termenv.FaintSeq,
	"dim":           termenv.FaintSeq,
	"dimmed":        termenv.FaintSeq,
	"i":             termenv.ItalicSeq,
	"italic":        termenv.ItalicSeq,
	"u":             termenv.UnderlineSeq,
	"underline":     termenv.UnderlineSeq,
	"blink":         termenv.BlinkSeq,
	"reverse":       termenv.ReverseSeq,
	"s":             termenv.CrossOutSeq,
	"strike":        termenv.CrossOutSeq,
	"strikethrough": termenv.CrossOutSeq,
}

var markupIcons = map[string]string{
	"info":  "ℹ",
	"warn":  "⚠",
	"tick":  "✔",
	"cross": "✖",
	"heart": "♥",
}

// markupSeq resolves a tag body to an SGR sequence.
func markupSeq(tag string) (string, bool) {
	if seq, ok := markupAttrs[tag]; ok {
		return seq, true
	}
	bg := false
	for _, p := range [...]string{"on-", "on "} {
		if strings.HasPrefix(tag, p) {
			bg = true
			tag = tag[len(p):]
			break
		}
	}
	if _, err := strconv.Atoi(tag); err == nil {
		return "", false
	}
	c, ok := ParseColor(tag)
	if !ok {
		return "", false
	}
	return c.Sequence(bg), true
}

// isClosingTag reports whether tag is "/" or "/" followed by a known
// style tag.
func isClosingTag(tag string) bool {
	name, ok := strings.CutPrefix(tag, "/")
	if !ok {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	_, known := markupSeq(name)
	return known
}

// writeMarkup expands style tags in msg into buf. With color off, known
// tags are dropped and only their text content remains.
func writeMarkup(buf *bytes.Buffer, msg string, color bool) {
	open := false
	for {
		lt := strings.IndexByte(msg, '<')
		if lt < 0 {
			break
		}
		gt := strings.IndexByte(msg[lt+1:], '>')
		if gt < 0 {
			break
		}
		gt += lt + 1

		buf.WriteString(msg[:lt])
		tag := strings.ToLower(strings.TrimSpace(msg[lt+1 : gt]))

		switch {
		case isClosingTag(tag):
			if color && open {
				sgr(buf, termenv.ResetSeq)
				open = false
			}
		case markupIcons[tag] != "":
			buf.WriteString(markupIcons[tag])
		default:
			seq, ok := markupSeq(tag)
			if !ok {
				buf.WriteString(msg[lt : gt+1])
				break
			}
			if color {
				sgr(buf, seq)
				open = true
			}
		}
		msg = msg[gt+1:]
	}
	buf.WriteString(msg)
	if open {
		sgr(buf, termenv.ResetSeq)
	}
}

// StripMarkup removes known style tags from msg.
func StripMarkup(msg string) string {
	var buf bytes.Buffer
	writeMarkup(&buf, msg, false)
	return buf.String()
}
