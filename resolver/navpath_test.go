package resolver

import "testing"

func TestNavPathJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"empty stack is root", nil, "root"},
		{"single key", []string{"properties"}, "root.properties"},
		{"nested keys", []string{"properties", "a"}, "root.properties.a"},
		{"array index attaches without separator", []string{"items", "[0]"}, "root.items[0]"},
		{"index then key", []string{"items", "[2]", "content"}, "root.items[2].content"},
		{"composition keyword", []string{"oneOf"}, "root.oneOf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &navPath{}
			for _, seg := range tt.segments {
				p.push(seg)
			}
			if got := p.current(); got != tt.want {
				t.Errorf("current() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNavPathPushPop(t *testing.T) {
	p := &navPath{}
	p.push("a")
	p.push("b")
	p.pop()
	if got := p.current(); got != "root.a" {
		t.Errorf("current() after pop = %q, want %q", got, "root.a")
	}
	p.pop()
	if got := p.current(); got != "root" {
		t.Errorf("current() after full pop = %q, want %q", got, "root")
	}
}

func TestParentPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"root.properties.a", "root.properties"},
		{"root.properties", "root"},
		{"root.items[3]", "root.items"},
		{"root", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := parentPath(tt.path); got != tt.want {
			t.Errorf("parentPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
