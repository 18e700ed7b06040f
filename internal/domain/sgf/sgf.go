package sgf

// GameTree — одно дерево SGF: основная линия узлов плюс вариации.
type GameTree struct {
	Nodes    []Node
	Children []*GameTree
}

// AppendNode дописывает узел в хвост основной линии.
func (t *GameTree) AppendNode(n Node) {
	t.Nodes = append(t.Nodes, n)
}

// Node — один узел SGF. Значения свойства могут повторяться,
// например AB[aa][bb].
type Node struct {
	Properties map[string][]string
}

// SGF — корень SGF-файла.
type SGF struct {
	Root *GameTree
}
