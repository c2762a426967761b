package huffio

import (
	"strings"
	"testing"
)

func TestNewTree_Shape(t *testing.T) {
	tree := NewTree(scenarioFrequencies(t))

	// The two lowest weights, (0, EOS) and (2, 70), merge first.
	expect := &Tree{
		left: &Tree{
			left: &Tree{
				left:  &Tree{symbol: EndOfStream},
				right: &Tree{symbol: 70},
			},
			right: &Tree{symbol: 71},
		},
		right: &Tree{symbol: 69},
	}
	if !tree.Equal(expect) {
		var buf strings.Builder
		_, _ = tree.Dump(&buf)
		t.Errorf("wrong tree shape:\n%s", buf.String())
	}
}

func TestNewTree_Dump(t *testing.T) {
	tree := NewTree(scenarioFrequencies(t))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tBranch{\n",
		"\t\tBranch{\n",
		"\t\t\tBranch{\n",
		"\t\t\t\tLeaf(EOS)\n",
		"\t\t\t\tLeaf(70)\n",
		"\t\t\t}\n",
		"\t\t\tLeaf(71)\n",
		"\t\t}\n",
		"\t\tLeaf(69)\n",
		"\t}\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestNewTree_Deterministic(t *testing.T) {
	freqs := scenarioFrequencies(t)
	first := NewTree(freqs)
	second := NewTree(freqs)
	if !first.Equal(second) {
		t.Error("two trees built from the same table differ")
	}
}

func TestNewTree_SingleValue(t *testing.T) {
	freqs, err := CountBytes(strings.NewReader("AAAA"))
	if err != nil {
		t.Fatalf("CountBytes failed: %v", err)
	}
	tree := NewTree(freqs)

	expect := &Tree{
		left:  &Tree{symbol: EndOfStream},
		right: &Tree{symbol: 65},
	}
	if !tree.Equal(expect) {
		var buf strings.Builder
		_, _ = tree.Dump(&buf)
		t.Errorf("wrong tree shape:\n%s", buf.String())
	}
}
