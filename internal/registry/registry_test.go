package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/whackamole/internal/mole"
)

type stubBoard struct{ id string }

func (b stubBoard) ID() string    { return b.id }
func (b stubBoard) Title() string { return "Stub " + b.id }
func (b stubBoard) Play(ctx context.Context, opts Options) (Result, error) {
	return Result{Games: []mole.GameReport{{Score: 3}, {Score: 11}, {Score: 7}}}, nil
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", func() Board { return stubBoard{id: "zz-stub"} })
	Register("aa-stub", func() Board { return stubBoard{id: "aa-stub"} })

	if !Exists("zz-stub") || !Exists("aa-stub") {
		t.Fatal("Registered boards should exist")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	var found bool
	for _, info := range list {
		if info.ID == "aa-stub" {
			found = true
			if info.Title != "Stub aa-stub" {
				t.Errorf("Title = %q, expected Stub aa-stub", info.Title)
			}
		}
	}
	if !found {
		t.Error("aa-stub missing from List()")
	}

	b, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	res, _ := b.Play(context.Background(), Options{})
	if res.Best() != 11 {
		t.Errorf("Best() = %d, expected 11", res.Best())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-board"); err == nil {
		t.Error("Create() of an unknown board should fail")
	}
	if Exists("no-such-board") {
		t.Error("Exists() should be false for an unknown board")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Board { return stubBoard{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("Duplicate Register() should panic")
		}
	}()
	Register("dup-stub", func() Board { return stubBoard{id: "dup-stub"} })
}

func TestBestOfNothing(t *testing.T) {
	if (Result{}).Best() != 0 {
		t.Error("Best() of an empty result should be 0")
	}
}
