package registry

import (
	"testing"

	"github.com/vovakirdan/blur/internal/core"
)

type stubScene struct{ id string }

func (s *stubScene) ID() string                           { return s.id }
func (s *stubScene) Title() string                        { return "Stub " + s.id }
func (s *stubScene) Reset(core.RuntimeConfig)             {}
func (s *stubScene) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(*core.Screen)                  {}
func (s *stubScene) State() core.SceneState               { return core.SceneState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Scene { return &stubScene{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered scene should exist")
	}

	s, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if s.ID() != "zz-stub" {
		t.Errorf("Create returned scene %q", s.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = info.Title == "Stub zz-stub"
		}
	}
	if !found {
		t.Error("List should include the registered scene with its title")
	}

	ids := IDs()
	if len(ids) == 0 || ids[len(ids)-1] != "zz-stub" {
		t.Errorf("IDs() should be sorted, got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Scene { return &stubScene{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", func() Scene { return &stubScene{id: "dup-stub"} })
}
