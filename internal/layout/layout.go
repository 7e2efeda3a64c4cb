// layout.go wires the two-pass layout engine of spec.md §4.6 together:
// size computation followed by position computation, over a tree
// already built by Build/BuildFromDocument.
package layout

import "github.com/MeKo-Christian/JustGoHTML/internal/config"

// Layout runs the size pass then the position pass over root in
// place, per spec.md §2 item 10 "Layout engine — two passes over the
// layout tree: size computation... then position computation". A nil
// root (no <body>) is a no-op.
func Layout(root *Object, cfg *config.Options) {
	if root == nil {
		return
	}
	sizePass(root, cfg.ContentWidth, cfg)
	positionPass(root, nil, nil)
}
