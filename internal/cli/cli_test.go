package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/dfa"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_BuiltinExample(t *testing.T) {
	out, _, err := execute(t, "run", "01001101", "", "2", "11111")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `The string "01001101" is accepted by the DFA.`, lines[0])
	assert.Equal(t, `The string "" is rejected by the DFA: "A" is not an accepting state.`, lines[1])
	assert.Equal(t, `The string "2" is rejected by the DFA: the symbol "2" doesn't belong to the alphabet.`, lines[2])
	assert.Equal(t, `The string "11111" is rejected by the DFA: "A" is not an accepting state.`, lines[3])
}

func TestRun_Trace(t *testing.T) {
	out, _, err := execute(t, "run", "--trace", "01")
	require.NoError(t, err)
	assert.Contains(t, out, "path: A -> B -> C")
}

func TestRun_Strict(t *testing.T) {
	_, _, err := execute(t, "run", "--strict", "01", "10")
	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, err.Error(), "1 of 2")

	_, _, err = execute(t, "run", "--strict", "01", "1101")
	require.NoError(t, err)
}

func TestRun_DebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "--debug", "run", "01")
	require.NoError(t, err)
	assert.Contains(t, stderr, "definition.loaded")
	assert.Contains(t, stderr, "input.processed")

	_, stderr, err = execute(t, "run", "01")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestRun_DefinitionFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
states: [even, odd]
alphabet: [a]
start: even
accept: [even]
transitions:
  - {from: even, on: a, to: odd}
`), 0o600))

	out, _, err := execute(t, "-d", path, "run", "", "aa")
	require.NoError(t, err)
	assert.Contains(t, out, `The string "" is accepted by the DFA.`)
	assert.Contains(t, out, `The string "aa" is rejected by the DFA: no transition from "odd" on "a".`)
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "OK\nstates: 3, symbols: 2, accepting: 1, complete: true\n", out)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"states":["A","B","C"],"alphabet":["0"],"start":"Z"}`), 0o600))

	_, stderr, err := execute(t, "--def", path, "check")
	require.ErrorIs(t, err, dfa.ErrInvalidDefinition)
	assert.Equal(t, 1, strings.Count(stderr, `start state "Z"`), "error reported once: %s", stderr)
	assert.NotContains(t, stderr, "definition.invalid")
}

const turnstileYAML = `
states: [locked, unlocked]
alphabet: [coin, push]
start: locked
accept: [unlocked]
transitions:
  - {from: locked, on: coin, to: unlocked}
  - {from: unlocked, on: push, to: locked}
`

func TestRun_Separator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnstile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(turnstileYAML), 0o600))

	out, _, err := execute(t, "-d", path, "run", "--sep", ",", "coin", "coin,push", "coin,push,coin", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, `The string "coin" is accepted by the DFA.`, lines[0])
	assert.Equal(t, `The string "coin,push" is rejected by the DFA: "locked" is not an accepting state.`, lines[1])
	assert.Equal(t, `The string "coin,push,coin" is accepted by the DFA.`, lines[2])
	assert.Equal(t, `The string "" is rejected by the DFA: "locked" is not an accepting state.`, lines[3])

	// Without --sep every character is a symbol of its own.
	out, _, err = execute(t, "-d", path, "run", "coin")
	require.NoError(t, err)
	assert.Contains(t, out, `the symbol "c" doesn't belong to the alphabet`)
}

func TestCheck_MultiCharacterSymbols(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turnstile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(turnstileYAML), 0o600))

	out, _, err := execute(t, "-d", path, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "use run --sep")

	out, _, err = execute(t, "check")
	require.NoError(t, err)
	assert.NotContains(t, out, "--sep")
}

func TestShow(t *testing.T) {
	out, _, err := execute(t, "show")
	require.NoError(t, err)

	d, err := dfa.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.True(t, d.Accepts("0101"))

	out, _, err = execute(t, "show", "--json")
	require.NoError(t, err)

	d, err = dfa.ParseJSON([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, dfa.State("A"), d.Start())
}

func TestDescribe_UndefinedTransition(t *testing.T) {
	v := dfa.Verdict{Reason: dfa.ReasonUndefinedTransition, State: "q", Symbol: "x"}
	assert.Equal(t, `The string "x" is rejected by the DFA: no transition from "q" on "x".`, string(describe("x", v)))
}
