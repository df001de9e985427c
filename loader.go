package ccproto

import (
	"shanhu.io/misc/errcode"
	"shanhu.io/text/lexing"
)

// Graph is a loaded set of targets. Libraries are already analyzed; proto
// libraries are waiting to be composed.
type Graph struct {
	libraries map[string]*ConfiguredTarget
	protos    []*protoNode
}

type protoNode struct {
	name string
	deps []string
	srcs []PathFragment
	pos  *lexing.Pos
}

// Library returns the analyzed library of the given name.
func (g *Graph) Library(name string) (*ConfiguredTarget, bool) {
	t, ok := g.libraries[name]
	return t, ok
}

// ProtoLibraries returns the names of the proto libraries in declaration
// order.
func (g *Graph) ProtoLibraries() []string {
	var names []string
	for _, p := range g.protos {
		names = append(names, p.name)
	}
	return names
}

type loader struct {
	nodes   map[string]*buildNode
	order   []*buildNode
	errList *lexing.ErrorList
}

func newLoader() *loader {
	return &loader{
		nodes:   make(map[string]*buildNode),
		errList: lexing.NewErrorList(),
	}
}

func (l *loader) register(n *buildNode) {
	if p, ok := l.nodes[n.name]; ok {
		l.errList.Errorf(n.pos, "target %q redeclared", n.name)
		if p.pos != nil {
			l.errList.Errorf(p.pos, "  previously defined here")
		}
		return
	}
	l.nodes[n.name] = n
	l.order = append(l.order, n)
}

func (l *loader) readBuildFile(f string) {
	nodes, errs := readBuildFile(f)
	l.errList.AddAll(errs)
	for _, n := range nodes {
		l.register(n)
	}
}

func (l *loader) loadProto(n *buildNode) *protoNode {
	p := &protoNode{
		name: n.name,
		deps: n.proto.Deps,
		pos:  n.pos,
	}
	// The number of deps is checked when composing, so the error is
	// attributed to the rule instead of the file.
	for _, dep := range n.proto.Deps {
		d, ok := l.nodes[dep]
		if !ok {
			l.errList.Errorf(n.pos, "cannot resolve %q", dep)
			continue
		}
		if d.typ != ruleLibrary {
			l.errList.Errorf(
				n.pos, "dep %q is a %s, not a %s", dep, d.typ, ruleLibrary,
			)
		}
	}
	for _, src := range n.proto.Srcs {
		f, err := ParsePath(src)
		if err != nil {
			l.errList.Add(&lexing.Error{
				Pos: n.pos,
				Err: errcode.Annotatef(err, "src %q", src),
			})
			continue
		}
		p.srcs = append(p.srcs, f)
	}
	return p
}

func (l *loader) graph() *Graph {
	g := &Graph{libraries: make(map[string]*ConfiguredTarget)}
	for _, n := range l.order {
		switch n.typ {
		case ruleLibrary:
			t, err := newLibraryTarget(n.library)
			if err != nil {
				l.errList.Add(&lexing.Error{Pos: n.pos, Err: err})
				continue
			}
			g.libraries[n.name] = t
		case ruleProtoLibrary:
			g.protos = append(g.protos, l.loadProto(n))
		}
	}
	return g
}

// LoadGraph reads the targets declared in a build file.
func LoadGraph(f string) (*Graph, []*lexing.Error) {
	l := newLoader()
	l.readBuildFile(f)
	if errs := l.errList.Errs(); errs != nil {
		return nil, errs
	}

	g := l.graph()
	if errs := l.errList.Errs(); errs != nil {
		return nil, errs
	}
	return g, nil
}
