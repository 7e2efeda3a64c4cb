package style

// inheritForText implements spec.md §4.5 stage 3: "Text layout objects
// inherit their parent's computed style wholesale; block/inline layout
// objects do not inherit". Resolve (resolver.go) only calls this for a
// DOM text node with a parent Computed style available — a text node's
// layout object is always Text-kind (spec.md §4.6's Build), so DOM node
// kind alone decides when stage 3 applies; block/inline layout objects
// come from element DOM nodes and keep their own cascade+default result
// untouched.
func inheritForText(parent Computed) Computed {
	return parent
}
