package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// transfer(0x...11, 1000) followed by nothing else.
const transferCall = "0xa9059cbb" +
	"0000000000000000000000001111111111111111111111111111111111111111" +
	"00000000000000000000000000000000000000000000000000000000000003e8"

// (bool,string) params: true, "hi".
const boolString = "" +
	"0000000000000000000000000000000000000000000000000000000000000001" +
	"0000000000000000000000000000000000000000000000000000000000000040" +
	"0000000000000000000000000000000000000000000000000000000000000002" +
	"6869000000000000000000000000000000000000000000000000000000000000"

func mustInput(t *testing.T, s string) []byte {
	t.Helper()
	b, err := parseHex(s)
	require.NoError(t, err)
	return b
}

func TestParseHex(t *testing.T) {
	b, err := parseHex(" 0xdead\n beef ")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, b)

	_, err = parseHex("abc")
	require.Error(t, err)

	_, err = parseHex("zz")
	require.Error(t, err)
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call.hex")
	require.NoError(t, os.WriteFile(path, []byte(transferCall+"\n"), 0o600))

	b, err := readInput("", path)
	require.NoError(t, err)
	require.Len(t, b, 68)

	_, err = readInput("", "")
	require.Error(t, err)

	_, err = readInput("", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestSplitInput(t *testing.T) {
	cd := splitInput(mustInput(t, transferCall))
	require.True(t, cd.hasSelector)
	require.Equal(t, "0xa9059cbb", cd.selector.String())
	require.Len(t, cd.args, 64)

	cd = splitInput(mustInput(t, boolString))
	require.False(t, cd.hasSelector)
	require.Len(t, cd.args, 128)
}

func TestAnnotate(t *testing.T) {
	notes := annotate(mustInput(t, boolString))
	require.Len(t, notes, 4)

	require.Equal(t, "uint 1", notes[0].note)
	require.Equal(t, "offset -> word 2", notes[1].note)
	require.Equal(t, 2, notes[1].target)
	require.Equal(t, "length 2", notes[2].note)
	require.Equal(t, `text "hi"`, notes[3].note)

	notes = annotate(splitInput(mustInput(t, transferCall)).args)
	require.Equal(t, "address 0x1111111111111111111111111111111111111111", notes[0].note)
	require.Equal(t, "uint 1000", notes[1].note)
	require.Zero(t, notes[1].target)
}

func TestAnnotate_BackwardValueIsNotOffset(t *testing.T) {
	in := mustInput(t, ""+
		"0000000000000000000000000000000000000000000000000000000000000000"+
		"0000000000000000000000000000000000000000000000000000000000000020")
	notes := annotate(in)
	require.Equal(t, "zero", notes[0].note)
	require.Equal(t, "uint 32", notes[1].note)
}

func TestFormatDump(t *testing.T) {
	cd := splitInput(mustInput(t, transferCall))
	out := formatDump(cd, annotate(cd.args), plainStyles())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "selector 0xa9059cbb", lines[0])
	require.True(t, strings.HasPrefix(lines[2], "   1 0x0020 "))
	require.True(t, strings.HasSuffix(lines[2], "uint 1000"))
}

func TestDecodeInput(t *testing.T) {
	t.Run("function with selector", func(t *testing.T) {
		cd := splitInput(mustInput(t, transferCall))
		args, err := decodeInput(cd, decodeRequest{sig: "transfer(address to, uint256 amount)", params: true})
		require.NoError(t, err)
		require.Len(t, args, 2)
		require.Equal(t, "to", args[0].name)
		require.Equal(t, "0x1111111111111111111111111111111111111111", args[0].value.String())
		require.Equal(t, "uint256", args[1].typ)
		require.Equal(t, "1000", args[1].value.String())
	})

	t.Run("selector mismatch", func(t *testing.T) {
		cd := splitInput(mustInput(t, transferCall))
		_, err := decodeInput(cd, decodeRequest{sig: "approve(address,uint256)", params: true})
		require.ErrorIs(t, err, &abierrors.Error{Phase: abierrors.PhaseCall, Kind: abierrors.KindSelectorMismatch})
	})

	t.Run("type list as params", func(t *testing.T) {
		cd := splitInput(mustInput(t, boolString))
		args, err := decodeInput(cd, decodeRequest{sig: "(bool, string)", params: true})
		require.NoError(t, err)
		require.Equal(t, "arg0", args[0].name)
		require.Equal(t, "true", args[0].value.String())
		require.Equal(t, "hi", args[1].value.String())
	})

	t.Run("type list as single", func(t *testing.T) {
		cd := splitInput(mustInput(t, "0000000000000000000000000000000000000000000000000000000000000020"+boolString))
		args, err := decodeInput(cd, decodeRequest{sig: "(bool,string)", params: false})
		require.NoError(t, err)
		require.Equal(t, "hi", args[1].value.String())
	})

	t.Run("strict config", func(t *testing.T) {
		cd := splitInput(mustInput(t, boolString+"0000000000000000000000000000000000000000000000000000000000000000"))
		_, err := decodeInput(cd, decodeRequest{sig: "(bool,string)", params: true, cfg: &coder.Config{Strict: true}})
		require.ErrorIs(t, err, abierrors.ErrInvalidEncoding)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := decodeInput(callData{}, decodeRequest{sig: "(uint7)"})
		require.Error(t, err)
	})
}

func TestFormatArgs(t *testing.T) {
	cd := splitInput(mustInput(t, boolString))
	args, err := decodeInput(cd, decodeRequest{sig: "(bool ok, string msg)", params: true})
	require.NoError(t, err)

	out := formatArgs(args, false, plainStyles())
	require.Equal(t, "[0] ok bool = true\n[1] msg string = hi\n", out)

	verbose := formatArgs(args, true, plainStyles())
	require.Contains(t, verbose, "[1] msg string = hi")
	require.Greater(t, strings.Count(verbose, "\n"), 2)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, coder.DefaultConfig(), cfg)

	path := filepath.Join(dir, "limits.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_input_size = 4096\nstrict = true\n"), 0o600))
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.MaxInputSize)
	require.Equal(t, coder.DefaultReadBudgetMultiple, cfg.ReadBudgetMultiple)
	require.True(t, cfg.Strict)
	require.False(t, cfg.ValidateUTF8)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("read_budget_multiple = 0\n"), 0o600))
	_, err = loadConfig(bad)
	require.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("max_depth = 3\n"), 0o600))
	_, err = loadConfig(unknown)
	require.ErrorContains(t, err, "max_depth")

	_, err = loadConfig(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel(mustInput(t, boolString), decodeRequest{params: true})
	require.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	require.Contains(t, m.View(), "4 words")

	m.Update(key("j"))
	require.Equal(t, 1, m.selected)

	m.Update(key("enter"))
	require.Equal(t, 2, m.selected, "enter follows the offset")

	m.Update(key("backspace"))
	require.Equal(t, 1, m.selected)

	m.Update(key("s"))
	require.Equal(t, stateSignature, m.state)
	for _, r := range "(bool,string)" {
		m.Update(key(string(r)))
	}
	m.Update(key("enter"))
	require.Equal(t, stateResult, m.state)
	require.NoError(t, m.err)
	require.Contains(t, m.result, "hi")

	m.Update(key("esc"))
	require.Equal(t, stateBrowse, m.state)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
}
