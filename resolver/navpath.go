package resolver

import "strings"

// RootPath is the synthetic navigation path at which the root document is
// registered before recursive resolution begins.
const RootPath = "root"

// navPath tracks the current navigation position as a stack of segments,
// pushed and popped symmetrically with recursion. Object keys are plain
// segments; array indices use the "[i]" form.
type navPath struct {
	segments []string
}

func (p *navPath) push(segment string) {
	p.segments = append(p.segments, segment)
}

func (p *navPath) pop() {
	p.segments = p.segments[:len(p.segments)-1]
}

// current joins the stack into the canonical navigation path form:
// "."-separated keys with "[i]" appended without a separator, rooted at
// the literal "root" (e.g. "root.properties.items[2].content").
func (p *navPath) current() string {
	var b strings.Builder
	b.WriteString(RootPath)
	for _, seg := range p.segments {
		if !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// parentPath strips the last segment from a joined navigation path.
// Returns "" once there is nothing left to strip.
func parentPath(path string) string {
	dot := strings.LastIndexByte(path, '.')
	bracket := strings.LastIndexByte(path, '[')
	cut := dot
	if bracket > cut {
		cut = bracket
	}
	if cut <= 0 {
		return ""
	}
	return path[:cut]
}
