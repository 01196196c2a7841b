package node

import "testing"

func TestFragment(t *testing.T) {
	g := Fragment("a", nil, P("b"), []Node{Text{Value: 1}}, []Tag{Br()}, 2.5)
	if len(g.Children) != 5 {
		t.Fatalf("Children len = %d, want 5", len(g.Children))
	}
	if txt, ok := g.Children[0].(Text); !ok || txt.Value != "a" {
		t.Errorf("first child = %#v", g.Children[0])
	}
	if txt, ok := g.Children[4].(Text); !ok || txt.Value != 2.5 {
		t.Errorf("last child = %#v", g.Children[4])
	}
}

func TestConditionals(t *testing.T) {
	p := P("x")
	if If(true, p) == nil || If(false, p) != nil {
		t.Error("If misbehaves")
	}
	if Unless(true, p) != nil || Unless(false, p) == nil {
		t.Error("Unless misbehaves")
	}
	if IfElse(false, p, Br()).(Tag).Name != "br" {
		t.Error("IfElse should return second node")
	}
	called := false
	When(false, func() Node { called = true; return p })
	if called {
		t.Error("When(false) should not call fn")
	}
	if Either(nil, p) == nil || Either(Br(), p).(Tag).Name != "br" {
		t.Error("Either misbehaves")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "", "c"}
	nodes := Range(items, func(s string, i int) Node {
		if s == "" {
			return nil
		}
		return Li(s)
	})
	if len(nodes) != 2 {
		t.Errorf("Range len = %d, want 2", len(nodes))
	}
}

func TestRepeat(t *testing.T) {
	if Repeat(0, func(int) Node { return Br() }) != nil {
		t.Error("Repeat(0) should be nil")
	}
	if got := len(Repeat(3, func(int) Node { return Br() })); got != 3 {
		t.Errorf("Repeat(3) len = %d", got)
	}
}

func TestTextfAndRaw(t *testing.T) {
	if Textf("%d%%", 5).Value != "5%" {
		t.Error("Textf formatting failed")
	}
	if Raw("<b>").Value != "<b>" {
		t.Error("Raw should keep content")
	}
	if GroupOf(Br(), Hr()).Children[1].(Tag).Name != "hr" {
		t.Error("GroupOf order")
	}
}
