package dialogue

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltinLibraryResolvesEveryBranch(t *testing.T) {
	lib, err := NewLibrary(BuiltinNodes()...)
	if err != nil {
		t.Fatalf("builtin library: %v", err)
	}
	for _, id := range []ID{IDIntro, IDMemo, IDArchivist, IDBudget, IDMinutes, IDCipher, IDShredder, IDEndingWin, IDEndingLose} {
		if _, err := lib.Resolve(id); err != nil {
			t.Fatalf("resolve %s: %v", id, err)
		}
	}
	chain, err := lib.Chain(IDArchivist)
	if err != nil {
		t.Fatalf("chain: %v", err)
	}
	if len(chain) != 2 || chain[1].ID != IDArchivistReply {
		t.Fatalf("archivist chain: got %d nodes", len(chain))
	}
	for _, id := range []ID{IDEndingWin, IDEndingLose} {
		n, _ := lib.Resolve(id)
		if !n.Final {
			t.Fatalf("%s should be final", id)
		}
	}
}

func TestResolveSuggestsNearestID(t *testing.T) {
	lib := BuiltinLibrary()

	_, err := lib.Resolve("archivst")
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("got %v want ErrMissingAsset", err)
	}
	if !strings.Contains(err.Error(), `did you mean "archivist"`) {
		t.Fatalf("missing suggestion: %v", err)
	}

	_, err = lib.Resolve("zz")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("short ids should not get suggestions: %v", err)
	}
}

func TestNewLibraryRejectsBadScripts(t *testing.T) {
	for name, nodes := range map[string][]Node{
		"empty id":     {{ID: " "}},
		"duplicate":    {{ID: "a"}, {ID: "a"}},
		"dangling":     {{ID: "a", Advance: BranchTo("b")}},
		"final branch": {{ID: "a", Final: true, Advance: BranchTo("b")}, {ID: "b"}},
		"negative":     {{ID: "a", Rate: -1}},
	} {
		if _, err := NewLibrary(nodes...); !errors.Is(err, ErrInvalidScript) {
			t.Fatalf("%s: got %v want ErrInvalidScript", name, err)
		}
	}
}
