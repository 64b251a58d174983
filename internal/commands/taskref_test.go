package commands

import (
	"testing"

	"todo/internal/service"
)

func TestParseTaskRef_Number(t *testing.T) {
	ref, err := ParseTaskRef("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef("#1700000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID {
		t.Error("expected ByID to be true")
	}
	if ref.ID != 1700000000000 {
		t.Errorf("expected ID 1700000000000, got %d", ref.ID)
	}
	if ref.String() != "#1700000000000" {
		t.Errorf("unexpected String(): %q", ref.String())
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, arg := range []string{"abc", "#", "#x1", "1a", "-1", "٣"} {
		_, err := ParseTaskRef(arg)
		if err == nil {
			t.Errorf("ParseTaskRef(%q): expected error", arg)
			continue
		}
		expected := "invalid task reference: " + arg
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
	}
}

func TestParseTaskRef_Empty(t *testing.T) {
	if _, err := ParseTaskRef(""); err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRefs_Mixed(t *testing.T) {
	refs, err := ParseTaskRefs([]string{"1", "#42", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	if refs[0].ByID || refs[0].Num != 1 {
		t.Errorf("unexpected ref[0]: %#v", refs[0])
	}
	if !refs[1].ByID || refs[1].ID != 42 {
		t.Errorf("unexpected ref[1]: %#v", refs[1])
	}
	if refs[2].ByID || refs[2].Num != 3 {
		t.Errorf("unexpected ref[2]: %#v", refs[2])
	}
}

func TestParseTaskRefs_NoArgs(t *testing.T) {
	if _, err := ParseTaskRefs(nil); err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRefs_InvalidToken(t *testing.T) {
	_, err := ParseTaskRefs([]string{"1", "abc"})
	if err == nil {
		t.Fatal("expected error for invalid token")
	}
	if err.Error() != "invalid task reference: abc" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveTaskRefs(t *testing.T) {
	list := service.TaskList{
		{ID: 1, Text: "a"},
		{ID: 1700000000000, Text: "b"},
		{ID: 1700000000001, Text: "c"},
	}

	ids, err := resolveTaskRefs(list, []TaskRef{{Num: 3}, {ID: 1, ByID: true}, {Num: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != 1700000000001 || ids[1] != 1 {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestResolveTaskRefs_Errors(t *testing.T) {
	list := service.TaskList{{ID: 1, Text: "a"}}

	tests := []struct {
		ref      TaskRef
		expected string
	}{
		{TaskRef{Num: 0}, "task number out of range: 0"},
		{TaskRef{Num: 2}, "task number out of range: 2"},
		{TaskRef{ID: 99, ByID: true}, "task not found: #99"},
	}
	for _, tt := range tests {
		_, err := resolveTaskRefs(list, []TaskRef{tt.ref})
		if err == nil {
			t.Errorf("%v: expected error", tt.ref)
			continue
		}
		if err.Error() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, err.Error())
		}
	}
}
