package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-warior/internal/core"
)

type stubGame struct {
	id    string
	deps  Deps
	state core.GameState
}

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) State() core.GameState                         { return g.state }

var errBroken = errors.New("broken")

func init() {
	Register("zz_stub", "Stub Game", func(deps Deps) (Game, error) {
		return &stubGame{id: "zz_stub", deps: deps}, nil
	})
	Register("zz_broken", "Broken", func(Deps) (Game, error) {
		return nil, errBroken
	})
}

func TestCreatePassesDeps(t *testing.T) {
	g, err := Create("zz_stub", Deps{ConfigPath: "custom.yaml"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	stub := g.(*stubGame)
	if stub.deps.ConfigPath != "custom.yaml" {
		t.Errorf("ConfigPath = %q, expected custom.yaml", stub.deps.ConfigPath)
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("nope", Deps{}); err == nil {
		t.Error("Create() of unknown id should fail")
	}
	if _, err := Create("zz_broken", Deps{}); !errors.Is(err, errBroken) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestListSortedWithTitles(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz_stub" && info.Title == "Stub Game" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include zz_stub with its title")
	}
}

func TestExistsAndTitle(t *testing.T) {
	if !Exists("zz_stub") || Exists("missing") {
		t.Error("Exists() reports wrong membership")
	}
	if Title("zz_stub") != "Stub Game" || Title("missing") != "missing" {
		t.Error("Title() returned unexpected values")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_stub", "Again", func(Deps) (Game, error) { return nil, nil })
}
