package grammar

// ParseNode is the tagged-union parse-tree node design note §3 names: a Leaf
// carries a terminal's name, an Internal node carries a non-terminal's
// name and its ordered children. Both G.ll1_parse and G.forest build
// trees of this one shared type.
type ParseNode struct {
	Terminal bool
	Symbol   string
	Children []*ParseNode
}

// Leaf constructs a terminal ParseNode.
func Leaf(terminal string) *ParseNode {
	return &ParseNode{Terminal: true, Symbol: terminal}
}

// Internal constructs a non-terminal ParseNode with the given children.
func Internal(nonTerminal string, children []*ParseNode) *ParseNode {
	return &ParseNode{Symbol: nonTerminal, Children: children}
}
