package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode"

	abicodec "github.com/wippyai/abi-codec"
)

// callData is hex input split into an optional selector and argument words.
type callData struct {
	selector    abicodec.Selector
	hasSelector bool
	args        []byte
}

// readInput returns the bytes named by -data or -file. File contents are
// treated as hex text.
func readInput(data, file string) ([]byte, error) {
	text := data
	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text = string(raw)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no input: use -data or -file")
	}
	return parseHex(text)
}

// parseHex decodes hex with an optional 0x prefix. Whitespace is ignored.
func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return b, nil
}

// splitInput recognizes call data by its length: a selector leaves four
// bytes over a whole number of words.
func splitInput(b []byte) callData {
	if len(b)%abicodec.WordSize == abicodec.SelectorSize {
		var cd callData
		copy(cd.selector[:], b)
		cd.hasSelector = true
		cd.args = b[abicodec.SelectorSize:]
		return cd
	}
	return callData{args: b}
}

type wordNote struct {
	index  int
	target int // word an offset points at, 0 if none
	word   abicodec.Word
	note   string
}

// annotate guesses the role of each word. Offsets are recognized as word
// aligned values pointing forward inside the data; the words they point at
// are read as lengths.
func annotate(b []byte) []wordNote {
	n := len(b) / abicodec.WordSize
	words, _ := abicodec.BytesToWords(b[:n*abicodec.WordSize])
	notes := make([]wordNote, n)
	targets := make(map[int]bool)

	for i := range notes {
		notes[i].word = words[i]
		notes[i].index = i
	}

	for i := range notes {
		v, ok := notes[i].word.Uint64()
		if !ok || v == 0 || v%abicodec.WordSize != 0 || v >= uint64(len(b)) {
			continue
		}
		target := int(v / abicodec.WordSize)
		if target <= i {
			continue
		}
		notes[i].note = fmt.Sprintf("offset -> word %d", target)
		notes[i].target = target
		targets[target] = true
	}

	for i := range notes {
		if notes[i].note != "" {
			continue
		}
		w := notes[i].word
		v, small := w.Uint64()
		switch {
		case targets[i] && small && v <= uint64(len(b)):
			notes[i].note = fmt.Sprintf("length %d", v)
		case w.IsZero():
			notes[i].note = "zero"
		case small:
			notes[i].note = fmt.Sprintf("uint %d", v)
		case looksLikeAddress(w):
			notes[i].note = "address " + hexBytes(w[abicodec.WordSize-20:])
		default:
			if s, ok := leftAlignedText(w); ok {
				notes[i].note = fmt.Sprintf("text %q", s)
			}
		}
	}
	return notes
}

func looksLikeAddress(w abicodec.Word) bool {
	for _, c := range w[:abicodec.WordSize-20] {
		if c != 0 {
			return false
		}
	}
	return true
}

// leftAlignedText reports whether w is printable ASCII followed by zero
// padding.
func leftAlignedText(w abicodec.Word) (string, bool) {
	end := len(w)
	for end > 0 && w[end-1] == 0 {
		end--
	}
	if end == 0 {
		return "", false
	}
	for _, c := range w[:end] {
		if c >= unicode.MaxASCII || !unicode.IsPrint(rune(c)) {
			return "", false
		}
	}
	return string(w[:end]), true
}

func hexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// formatDump renders the notes one word per line.
func formatDump(cd callData, notes []wordNote, st styles) string {
	var b strings.Builder
	if cd.hasSelector {
		b.WriteString(st.label.Render("selector"))
		b.WriteString(" ")
		b.WriteString(st.value.Render(cd.selector.String()))
		b.WriteString("\n")
	}
	if rem := len(cd.args) % abicodec.WordSize; rem != 0 {
		b.WriteString(st.err.Render(fmt.Sprintf("warning: %d trailing bytes are not a whole word", rem)))
		b.WriteString("\n")
	}
	for _, n := range notes {
		fmt.Fprintf(&b, "%s %s", st.label.Render(fmt.Sprintf("%4d 0x%04x", n.index, n.index*abicodec.WordSize)), hex.EncodeToString(n.word[:]))
		if n.note != "" {
			b.WriteString("  ")
			b.WriteString(st.note.Render(n.note))
		}
		b.WriteString("\n")
	}
	return b.String()
}
