// Package menu is a keyboard-driven menu tree. Nodes are a tagged variant:
// the Kind decides which fields and callbacks apply.
package menu

// Kind selects a node's behavior when activated
type Kind int

const (
	// KindSubmenu opens its children
	KindSubmenu Kind = iota
	// KindAction runs OnSelect
	KindAction
	// KindCheck toggles Checked and reports it through OnToggle
	KindCheck
	// KindRadio checks itself, unchecks its siblings and runs OnSelect
	KindRadio
	// KindKeyBind waits for the next key and passes its name to OnBind
	KindKeyBind
)

// Key names understood by HandleKey for navigation
const (
	KeyUp        = "ArrowUp"
	KeyDown      = "ArrowDown"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyBackspace = "Backspace"
)

// Node is one menu entry
type Node struct {
	Kind     Kind
	Label    string
	Shortcut string
	Disabled bool
	Checked  bool

	OnSelect func()
	OnToggle func(bool)
	OnBind   func(key string)
	Binding  func() string

	children []*Node
	parent   *Node
	selected int
}

// Submenu creates a node that opens children
func Submenu(label, shortcut string, children ...*Node) *Node {
	n := &Node{Kind: KindSubmenu, Label: label, Shortcut: shortcut}
	n.Add(children...)
	return n
}

// Action creates a node that runs fn
func Action(label, shortcut string, fn func()) *Node {
	return &Node{Kind: KindAction, Label: label, Shortcut: shortcut, OnSelect: fn}
}

// Check creates a toggle
func Check(label, shortcut string, checked bool, fn func(bool)) *Node {
	return &Node{Kind: KindCheck, Label: label, Shortcut: shortcut, Checked: checked, OnToggle: fn}
}

// Radio creates one option of a group formed by its siblings
func Radio(label string, checked bool, fn func()) *Node {
	return &Node{Kind: KindRadio, Label: label, Checked: checked, OnSelect: fn}
}

// KeyBind creates a node that rebinds a key. binding reports the current key name for display.
func KeyBind(label string, binding func() string, bind func(key string)) *Node {
	return &Node{Kind: KindKeyBind, Label: label, Binding: binding, OnBind: bind}
}

// Add appends children to the node
func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Children returns the node's entries
func (n *Node) Children() []*Node { return n.children }

// Selected returns the index of the highlighted child
func (n *Node) Selected() int { return n.selected }

// Text returns the label as displayed, with check marks and bindings
func (n *Node) Text() string {
	switch n.Kind {
	case KindCheck, KindRadio:
		if n.Checked {
			return "[x] " + n.Label
		}
		return "[ ] " + n.Label
	case KindKeyBind:
		if n.Binding != nil {
			return n.Label + ": " + n.Binding()
		}
	}
	return n.Label
}

// Menu tracks the open node and any pending key capture
type Menu struct {
	root      *Node
	current   *Node
	capturing *Node
}

// New creates a menu opened at root
func New(root *Node) *Menu {
	return &Menu{root: root, current: root}
}

// Current returns the node whose children are on display
func (m *Menu) Current() *Node { return m.current }

// Capturing reports whether a key-bind node is waiting for a key
func (m *Menu) Capturing() bool { return m.capturing != nil }

// Reset returns to the root and clears the selection
func (m *Menu) Reset() {
	for n := m.current; n != nil; n = n.parent {
		n.selected = 0
	}
	m.current = m.root
	m.capturing = nil
}

// HandleKey processes one key press by name and reports whether it was used
func (m *Menu) HandleKey(key string) bool {
	if m.capturing != nil {
		node := m.capturing
		m.capturing = nil
		if key != KeyEscape && node.OnBind != nil {
			node.OnBind(key)
		}
		return true
	}

	n := m.current
	switch key {
	case KeyUp:
		if n.selected > 0 {
			n.selected--
		}
		return true
	case KeyDown:
		if n.selected < len(n.children)-1 {
			n.selected++
		}
		return true
	case KeyEnter:
		if len(n.children) > 0 {
			m.activate(n.children[n.selected])
		}
		return true
	case KeyEscape, KeyBackspace:
		if n.parent != nil {
			m.current = n.parent
			return true
		}
		return false
	}

	for i, c := range n.children {
		if c.Shortcut != "" && c.Shortcut == key {
			n.selected = i
			m.activate(c)
			return true
		}
	}
	return false
}

func (m *Menu) activate(n *Node) {
	if n.Disabled {
		return
	}
	switch n.Kind {
	case KindSubmenu:
		if len(n.children) > 0 {
			m.current = n
		}
	case KindAction:
		if n.OnSelect != nil {
			n.OnSelect()
		}
	case KindCheck:
		n.Checked = !n.Checked
		if n.OnToggle != nil {
			n.OnToggle(n.Checked)
		}
	case KindRadio:
		if n.parent != nil {
			for _, sibling := range n.parent.children {
				if sibling.Kind == KindRadio {
					sibling.Checked = false
				}
			}
		}
		n.Checked = true
		if n.OnSelect != nil {
			n.OnSelect()
		}
	case KindKeyBind:
		m.capturing = n
	}
}
