// Package template builds and flattens declarative template trees.
//
// A template is a tree of types.Node values built with Dir, File and
// BinaryFile. Build walks the tree, validating and canonicalizing every
// path and normalizing every file's content, and returns a deterministic
// types.Spec: directories sorted lexicographically, files sorted by path.
// Fingerprint digests a Spec so two logically identical templates compare
// equal regardless of node order or source indentation.
//
// Duplicate file paths are kept. The sort is stable, so entries sharing a
// path stay in declaration order and the last declared one is written last.
//
//	spec, err := template.Build("demo", []types.Node{
//	    template.Dir("src",
//	        template.File("index.txt", `
//	            hello
//	            world
//	        `),
//	    ),
//	})
package template
