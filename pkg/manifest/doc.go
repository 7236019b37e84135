// Package manifest reads template trees from YAML, TOML or JSON files.
//
// A manifest names the workspace and lists its structure:
//
//	id: demo
//	owner_id: alice
//	structure:
//	  - type: directory
//	    name: src
//	    children:
//	      - type: file
//	        name: index.txt
//	        content: |
//	          hello
//	          world
//
// A node without a type is a directory when it has children and a file
// otherwise.
package manifest
