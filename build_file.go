package ccproto

import (
	"shanhu.io/misc/jsonx"
	"shanhu.io/text/lexing"
)

// BuildFileName is the default name of the file that declares targets.
const BuildFileName = "BUILD.ccproto"

func makeBuildFileNode(t string) interface{} {
	switch t {
	case ruleLibrary:
		return new(LibraryRule)
	case ruleProtoLibrary:
		return new(ProtoLibraryRule)
	}
	return nil
}

type buildNode struct {
	name string
	typ  string
	pos  *lexing.Pos

	library *LibraryRule
	proto   *ProtoLibraryRule
}

func readBuildFile(f string) ([]*buildNode, []*lexing.Error) {
	rules, errs := jsonx.ReadSeriesFile(f, makeBuildFileNode)
	if errs != nil {
		return nil, errs
	}

	var nodes []*buildNode
	errList := lexing.NewErrorList()
	for _, r := range rules {
		node := &buildNode{typ: r.Type, pos: r.Pos}
		switch v := r.V.(type) {
		case *LibraryRule:
			node.name = v.Name
			node.library = v
		case *ProtoLibraryRule:
			node.name = v.Name
			node.proto = v
		}
		if node.name == "" {
			errList.Errorf(r.Pos, "rule has no name")
			continue
		}
		nodes = append(nodes, node)
	}

	if errs := errList.Errs(); errs != nil {
		return nil, errs
	}
	return nodes, nil
}
