// Package intrusive translates between a struct and a field embedded in it,
// and wraps that translation in ownership handles.
//
// A pairing is declared once, usually as a package-level variable:
//
//	type Node struct {
//		Value int
//		Link  Link
//	}
//
//	var nodeLink = intrusive.MustDeclare[Node, Link]("Link")
//
// An owned node can then travel as its Link and come back as the Node:
//
//	o := intrusive.Take(&Node{Value: 1})
//	l := nodeLink.IntoField(o) // *Owned[Link], same block
//	n := nodeLink.Release(l)   // *Node again
//
// Declaration errors (missing field, wrong type, field behind a pointer) are
// reported by Declare and Describe. Misuse of handles (using a moved handle,
// transferring while borrowed) panics. Passing ContainerOf or Adopt a pointer
// that is not the declared field of a live container is undefined behaviour
// and is not detected.
package intrusive
