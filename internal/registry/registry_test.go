package registry

import (
	"testing"

	"github.com/miniarcade/arcade-hub/internal/core"
)

// fakeGame is a minimal Game implementation for registry tests.
type fakeGame struct {
	id    string
	title string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_alpha", func() Game { return &fakeGame{id: "test_alpha", title: "Alpha"} })

	if !Exists("test_alpha") {
		t.Fatal("registered game not found")
	}

	g, err := Create("test_alpha")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_alpha" || g.Title() != "Alpha" {
		t.Errorf("created game = %q/%q", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance.
	g2, _ := Create("test_alpha")
	if g == g2 {
		t.Error("Create() returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("no_such_game") {
		t.Error("unknown game reported as existing")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test_zeta", func() Game { return &fakeGame{id: "test_zeta", title: "Zeta"} })
	Register("test_beta", func() Game { return &fakeGame{id: "test_beta", title: "Beta"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted: %v before %v", list[i-1].ID, list[i].ID)
		}
	}

	found := map[string]string{}
	for _, info := range list {
		found[info.ID] = info.Title
	}
	if found["test_beta"] != "Beta" || found["test_zeta"] != "Zeta" {
		t.Errorf("titles missing from list: %v", found)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()

	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
	Register("test_dup", func() Game { return &fakeGame{id: "test_dup"} })
}
