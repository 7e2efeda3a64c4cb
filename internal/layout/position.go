package layout

import "github.com/MeKo-Christian/JustGoHTML/internal/style"

// flowAnchor is the box a position-pass formula measures obj against:
// the previous positioned sibling at this level, or — for a first
// child, which has none — a zero-sized box pinned to the parent's own
// point. Using the parent's already-finalized total size as the anchor
// for every child (what this port did before) collapses every sibling
// onto the same point, since the parent's size never changes between
// siblings; the previous sibling's point/size is what actually advances
// from child to child.
type flowAnchor struct {
	Point        Point
	Size         Size
	MarginBottom float64
}

func anchorFor(parent, prevSibling *Object) flowAnchor {
	if prevSibling != nil {
		return flowAnchor{
			Point:        prevSibling.Point,
			Size:         prevSibling.Size,
			MarginBottom: prevSibling.Style.MarginBottom(),
		}
	}
	return flowAnchor{Point: parent.Point}
}

// positionPass implements spec.md §4.6's position pass in tree order,
// grounded on layout_view.rs's calculate_node_position: a node's point
// is set from its parent's point/style and the previous sibling's
// point/size (spec.md §4.6 "given parent point and parent style, and
// previous sibling's point/size"), then the same function recurses
// into the node's children (with the node itself as their parent, and
// no previous sibling yet) and into its next sibling (with the
// *original* parent unchanged and this node as the sibling's previous
// sibling).
//
// root (no parent layout object, i.e. the <body> layout object) is
// pinned at the origin, per spec.md §4.6 Build's "rooted at the layout
// object for <body>".
func positionPass(obj *Object, parent, prevSibling *Object) {
	if obj == nil {
		return
	}

	if parent == nil {
		obj.Point = Point{X: 0, Y: 0}
	} else {
		setPosition(obj, parent, anchorFor(parent, prevSibling))
	}

	positionPass(obj.firstChild, obj, nil)
	positionPass(obj.nextSibling, parent, obj)
}

// setPosition implements spec.md §4.6's four-case position rule. Each
// case reads the flow anchor (the previous sibling, or the parent's
// own point with zero size for a first child) rather than the
// parent's static total size, so successive siblings stack after one
// another instead of all landing at the same point.
func setPosition(obj, parent *Object, anchor flowAnchor) {
	parentDisplay := parent.Style.DisplayOr(style.DisplayBlock)
	selfDisplay := obj.Style.DisplayOr(style.DisplayBlock)

	switch parentDisplay {
	case style.DisplayInline:
		switch selfDisplay {
		case style.DisplayBlock:
			obj.Point.X = obj.Style.MarginLeft()
			obj.Point.Y = obj.Style.MarginTop() + anchor.Size.Height
		case style.DisplayInline:
			obj.Point.X = anchor.Point.X + anchor.Size.Width
			obj.Point.Y = anchor.Point.Y
		}

	case style.DisplayBlock:
		switch selfDisplay {
		case style.DisplayBlock:
			obj.Point.X = obj.Style.MarginLeft()
			obj.Point.Y = anchor.Point.Y + anchor.Size.Height + anchor.MarginBottom + obj.Style.MarginTop()
		case style.DisplayInline:
			obj.Point.X = 0
			obj.Point.Y = anchor.Point.Y + anchor.Size.Height
		}
	}
}
