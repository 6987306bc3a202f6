package uitree

import (
	"reflect"
	"testing"
)

func TestBelow(t *testing.T) {
	nodes := Parse(sampleDebugDescription)
	wifi := nodes[6]

	got := Below(nodes, wifi)
	want := []string{`Line one\nLine two`, "", "Cancel", "Save"}
	if !reflect.DeepEqual(labels(got), want) {
		t.Errorf("Below() = %v, want %v", labels(got), want)
	}
}

func TestAbove(t *testing.T) {
	nodes := Parse(sampleDebugDescription)
	wifi := nodes[6]

	got := Above(nodes, wifi)
	if len(got) != 3 {
		t.Fatalf("Above() returned %d nodes, want 3: %v", len(got), labels(got))
	}
	if got[0].ElementType != "NavigationBar" {
		t.Errorf("nearest node above = %s, want NavigationBar", got[0].ElementType)
	}
	if got[2].LabelText() != "Settings" {
		t.Errorf("farthest node above = %q, want Settings", got[2].LabelText())
	}
}

func TestLeftOfRightOf(t *testing.T) {
	nodes := Parse(sampleDebugDescription)
	cancel, save := nodes[9], nodes[10]

	if got := labels(LeftOf(nodes, save)); !reflect.DeepEqual(got, []string{"Cancel", "Back"}) {
		t.Errorf("LeftOf(Save) = %v", got)
	}
	if got := labels(RightOf(nodes, cancel)); !reflect.DeepEqual(got, []string{"Save"}) {
		t.Errorf("RightOf(Cancel) = %v", got)
	}
}

func TestPositionFilters_AnchorWithoutFrame(t *testing.T) {
	nodes := Parse(sampleDebugDescription)
	app := nodes[0]

	if Below(nodes, app) != nil || Above(nodes, app) != nil || LeftOf(nodes, app) != nil || RightOf(nodes, app) != nil {
		t.Error("frameless anchor should yield no results")
	}
	if len(ChildrenOf(nodes, app)) != 0 || len(InsideOf(nodes, app)) != 0 {
		t.Error("frameless anchor contains nothing")
	}
}

func TestChildrenOfInsideOf(t *testing.T) {
	nodes := Parse(sampleDebugDescription)
	navBar := nodes[3]

	if got := ChildrenOf(nodes, navBar); len(got) != 3 {
		t.Errorf("ChildrenOf(navBar) returned %d nodes, want 3", len(got))
	}
	if got := InsideOf(nodes, navBar); len(got) != 3 {
		t.Errorf("InsideOf(navBar) returned %d nodes, want 3", len(got))
	}
}

func TestDeepest(t *testing.T) {
	nodes := Parse(sampleDebugDescription)

	n, ok := Deepest(nodes)
	if !ok {
		t.Fatal("expected a node")
	}
	if n.LabelText() != "Back" {
		t.Errorf("Deepest() = %s, want the Back button", n)
	}

	if _, ok := Deepest(nil); ok {
		t.Error("Deepest(nil) should report false")
	}
}

func TestChildren(t *testing.T) {
	nodes := Parse(sampleDebugDescription)

	if got := labels(Children(nodes, 3)); !reflect.DeepEqual(got, []string{"Back", "Settings"}) {
		t.Errorf("Children(navBar) = %v", got)
	}
	if got := Children(nodes, 2); len(got) != 6 {
		t.Errorf("Children(other) returned %d nodes, want 6", len(got))
	}
	if got := Children(nodes, 4); len(got) != 0 {
		t.Errorf("leaf should have no children, got %d", len(got))
	}
	if Children(nodes, -1) != nil || Children(nodes, 99) != nil {
		t.Error("out-of-range index should yield nil")
	}
}

func TestParent(t *testing.T) {
	nodes := Parse(sampleDebugDescription)

	tests := []struct {
		i      int
		want   int
		wantOK bool
	}{
		{0, 0, false},
		{1, 0, true},
		{4, 3, true},
		{5, 3, true},
		{6, 2, true},
		{99, 0, false},
	}
	for _, tt := range tests {
		got, ok := Parent(nodes, tt.i)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parent(%d) = (%d, %v), want (%d, %v)", tt.i, got, ok, tt.want, tt.wantOK)
		}
	}
}
